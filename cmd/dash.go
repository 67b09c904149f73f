package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"

	"github.com/etnz/carteira/tui"
)

type dashCmd struct{}

func (*dashCmd) Name() string     { return "dash" }
func (*dashCmd) Synopsis() string { return "open the interactive dashboard" }
func (*dashCmd) Usage() string {
	return `mc dash

  Opens the full-screen dashboard: summary cards, allocation with
  drill-down, and the net-worth evolution. Navigate with the arrow keys,
  enter drills into a slice, esc goes back, / searches, r refreshes
  quotes, q quits.
`
}
func (*dashCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		return reportErr(err)
	}

	// the theme probe must run before bubbletea takes the terminal
	m := tui.New(client, tui.DetectTheme())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
