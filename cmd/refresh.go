package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
)

type refreshCmd struct {
	wait bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "trigger a server-side quote refresh" }
func (*refreshCmd) Usage() string {
	return `mc refresh [-wait=false]

  Asks the backend to refresh quotes. The job is asynchronous; by default the
  command polls the dashboard with backoff until the figures change or the
  retries run out, then prints the summary. The backend exposes no completion
  signal, so a quiet poll only means nothing changed yet.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.wait, "wait", true, "poll for the refreshed figures before printing")
}

// polling schedule: bounded retries with doubling delay.
const pollAttempts = 5
const pollInitialDelay = 2 * time.Second

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}

	var baseline *carteira.Summary
	if c.wait {
		if before, err := client.Dashboard(ctx); err == nil {
			baseline = &before.Summary
		}
	}

	if err := client.Refresh(ctx); err != nil {
		return reportErr(err)
	}

	if !c.wait {
		fmt.Println("Atualização de cotações solicitada.")
		return subcommands.ExitSuccess
	}

	delay := pollInitialDelay
	for attempt := 0; attempt < pollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return reportErr(ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2

		after, err := client.Dashboard(ctx)
		if err != nil {
			return reportErr(err)
		}
		if baseline == nil || !reflect.DeepEqual(*baseline, after.Summary) {
			printMarkdown(renderer.SummaryMarkdown(after.Summary))
			return subcommands.ExitSuccess
		}
	}

	fmt.Fprintln(os.Stderr, "As cotações ainda não mudaram; o backend pode continuar atualizando em segundo plano.")
	return subcommands.ExitSuccess
}
