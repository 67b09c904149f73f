package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/etnz/carteira"
)

// ImportTransactions uploads a CSV of transactions. The response is a partial
// success report: row errors do not fail the call.
//
// Multipart bodies must not get the JSON content type: the multipart writer
// provides the boundary-carrying value.
func (c *Client) ImportTransactions(ctx context.Context, filename string, r io.Reader) (*carteira.ImportReport, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("cannot build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("cannot read csv content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("cannot finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/csv/import/transactions", nil, &body, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var report carteira.ImportReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("cannot decode import report: %w", err)
	}
	return &report, nil
}

// ExportTransactions streams the CSV export into w.
func (c *Client) ExportTransactions(ctx context.Context, w io.Writer) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/csv/export/transactions", nil, nil, "")
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("cannot write csv export: %w", err)
	}
	return nil
}
