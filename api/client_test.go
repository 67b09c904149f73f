package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/session"
)

func newTestStore(t *testing.T, token string) *session.Store {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	if token != "" {
		require.NoError(t, store.Save(token))
	}
	return store
}

func TestDashboard_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"summary":{"totalHeritage":100},"percentages":{"crypto":{"percentage":100}},"assets":{}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t, "tok123"))
	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, 100.0, d.Summary.TotalHeritage)
	assert.True(t, d.Percentages["crypto"].IsLeaf())
}

func TestAuthGate_ClearsTokenOn403(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		store := newTestStore(t, "expired")
		c := New(srv.URL, store)

		_, err := c.Dashboard(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)

		token, loadErr := store.Load()
		require.NoError(t, loadErr)
		assert.Empty(t, token, "token must be cleared after a %d", status)
		srv.Close()
	}
}

func TestAuthGate_AnyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	store := newTestStore(t, "expired")
	c := New(srv.URL, store)
	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := c.Evolution(ctx, EvolutionFilter{}); return err },
		func() error { return c.Refresh(ctx) },
		func() error { return c.DeleteAsset(ctx, "PETR4", "STOCK") },
		func() error { _, err := c.Search(ctx, "petr"); return err },
		func() error {
			_, err := c.ImportTransactions(ctx, "tx.csv", strings.NewReader("a,b\n"))
			return err
		},
	}
	for i, call := range calls {
		require.NoError(t, store.Save("expired"))
		assert.ErrorIs(t, call(), ErrUnauthorized, "call %d", i)
		token, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, token, "call %d left a token behind", i)
	}
}

func TestEvolution_ForwardsFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"evolution":[{"date":"Jan/24","valorAplicado":100,"patrimonio":110}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t, ""))
	points, err := c.Evolution(context.Background(), EvolutionFilter{Category: "crypto", Ticker: "BTC"})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 110.0, points[0].TotalValue)
	assert.Contains(t, gotQuery, "category=crypto")
	assert.Contains(t, gotQuery, "ticker=BTC")
	assert.NotContains(t, gotQuery, "assetType")
}

func TestStatusError_CarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"ticker desconhecido"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t, ""))
	err := c.AddTransaction(context.Background(), carteira.TransactionRequest{})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "ticker desconhecido")
}

func TestImportTransactions_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		assert.True(t, strings.HasPrefix(ct, "multipart/form-data"), "content type %q", ct)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "tx.csv", header.Filename)

		w.Write([]byte(`{"successCount":2,"errorCount":1,"errors":["row 3: bad date"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t, "tok"))
	report, err := c.ImportTransactions(context.Background(), "tx.csv", strings.NewReader("ticker,qty\nPETR4,10\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, []string{"row 3: bad date"}, report.Errors)
}

func TestPrice_PlucksProviderFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/market-data/price/PETR4", r.URL.Path)
		w.Write([]byte(`{"ticker":"PETR4","price":"37.52","currency":"BRL","provider":{"name":"b3"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t, ""))
	quote, err := c.Price(context.Background(), "PETR4")
	require.NoError(t, err)
	assert.Equal(t, "PETR4", quote.Ticker)
	assert.Equal(t, 37.52, quote.Price) // string-quoted numbers are tolerated
	assert.Equal(t, "BRL", quote.Currency)
}

func TestLoginURL(t *testing.T) {
	c := New("http://backend:8080", nil)
	assert.Equal(t, "http://backend:8080/oauth2/authorization/google", c.LoginURL())
}
