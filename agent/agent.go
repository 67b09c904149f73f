// Package agent implements the AI assistant that answers questions about the
// user's portfolio. It grounds a Gemini chat on the backend data through
// function calls, so the model never guesses figures.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"

	"github.com/etnz/carteira/api"
)

const model = "gemini-2.5-flash"

const systemInstruction = `
Você é o assistente financeiro do Minha Carteira, um painel de investimentos
pessoal. Responda sempre em português do Brasil, de forma direta e com os
números formatados em reais quando fizer sentido.

Os dados da carteira do usuário estão disponíveis pelas ferramentas. Nunca
invente valores: consulte as ferramentas antes de afirmar qualquer número.
Você não dá recomendação de compra ou venda; quando perguntado, explique que
só descreve a carteira.
`

// Advisor wraps a Gemini chat grounded on the user's portfolio.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	client *api.Client
	chat   *genai.Chat
}

// New creates an Advisor. It takes the backend client the tools read from,
// an io.Writer for the assistant's output and an io.Reader for user input.
func New(w io.Writer, r io.Reader, client *api.Client) *Advisor {
	return &Advisor{
		w:      w,
		r:      bufio.NewReader(r),
		client: client,
	}
}

// Start opens the chat session with the portfolio tools attached.
func (a *Advisor) Start(ctx context.Context, gc *genai.Client) error {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: declarations()},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := gc.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends parts to the chat and resolves function calls against the backend
// until the model produces a text answer.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the assistant")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.call(ctx, part0.FunctionCall)
		// hand the tool output back until we have a real answer
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session.
func (a *Advisor) Run(ctx context.Context, gc *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, gc); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Assistente do Minha Carteira. Digite 'sair' para encerrar.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// flush the initial prompts before reading from the user
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		switch strings.TrimSpace(input) {
		case "sair", "bye", "exit":
			return nil
		case "":
			continue
		}

		content, err := a.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
