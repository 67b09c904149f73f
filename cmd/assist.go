package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/etnz/carteira/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI assistant about your portfolio" }
func (*assistCmd) Usage() string {
	return `mc assist [<initial question>]

  Starts an interactive session with the Gemini-backed assistant. It answers
  in Portuguese and reads your portfolio through the backend before citing
  any figure. Requires GEMINI_API_KEY.

Usage Examples:
$ mc assist
$ mc assist quanto rendeu minha carteira este ano?
`
}
func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY não está definida. Gere uma chave em https://aistudio.google.com e exporte a variável.")
		return subcommands.ExitFailure
	}

	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}
	gc, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.New(os.Stdout, os.Stdin, client)
	if err := advisor.Run(ctx, gc, initialPrompt); err != nil {
		return reportErr(err)
	}
	return subcommands.ExitSuccess
}
