// Package tui implements the interactive terminal dashboard behind `mc dash`.
//
// The model follows the usual bubbletea shape: every backend fetch is a
// tea.Cmd producing one typed message, and each panel fails independently so
// a broken evolution endpoint never blanks the allocation chart.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/api"
)

// Model is the state of the whole dashboard.
type Model struct {
	client *api.Client
	theme  Theme

	// Data. Each fetch keeps its own error so panels degrade independently.
	dashboard *carteira.Dashboard
	dashErr   error
	evolution []carteira.EvolutionPoint
	evoErr    error

	// Allocation drill-down state.
	view     *carteira.AllocationView
	selected int

	// Search overlay. seq discards answers from superseded queries.
	searching     bool
	searchInput   textinput.Model
	searchSeq     int
	searchResults []carteira.SearchResult
	searchErr     error

	// Refresh in flight.
	refreshing bool
	refreshErr error

	width  int
	height int
	ready  bool
}

// Messages

type dashboardMsg struct {
	dashboard *carteira.Dashboard
	err       error
}

type evolutionMsg struct {
	points []carteira.EvolutionPoint
	err    error
}

type searchDebounceMsg struct{ seq int }

type searchMsg struct {
	seq     int
	results []carteira.SearchResult
	err     error
}

type refreshDoneMsg struct {
	changed bool
	err     error
}

// Typing pauses this long before a search request goes out.
const searchDebounce = 400 * time.Millisecond

// Refresh poll: the backend updates quotes asynchronously, so after
// triggering we re-read the dashboard a few times with growing pauses.
const (
	pollAttempts     = 5
	pollInitialDelay = 2 * time.Second
)

// New creates the dashboard model over a backend client.
func New(client *api.Client, theme Theme) Model {
	input := textinput.New()
	input.Placeholder = "ticker ou nome"
	input.CharLimit = 40
	input.Width = 30

	return Model{
		client:      client,
		theme:       theme,
		view:        carteira.NewAllocationView(),
		searchInput: input,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchDashboard(m.client), fetchEvolution(m.client))
}

// Commands

func fetchDashboard(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		dash, err := c.Dashboard(context.Background())
		return dashboardMsg{dash, err}
	}
}

func fetchEvolution(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		points, err := c.Evolution(context.Background(), api.EvolutionFilter{})
		return evolutionMsg{points, err}
	}
}

func fetchSearch(c *api.Client, seq int, term string) tea.Cmd {
	return func() tea.Msg {
		results, err := c.Search(context.Background(), term)
		return searchMsg{seq, results, err}
	}
}

func debounceSearch(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq}
	})
}

// refresh triggers the backend quote update and polls the dashboard until
// the summary changes or the attempts run out.
func refresh(c *api.Client, baseline carteira.Summary) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := c.Refresh(ctx); err != nil {
			return refreshDoneMsg{err: err}
		}
		delay := pollInitialDelay
		for attempt := 0; attempt < pollAttempts; attempt++ {
			time.Sleep(delay)
			delay *= 2
			dash, err := c.Dashboard(ctx)
			if err != nil {
				return refreshDoneMsg{err: err}
			}
			if dash.Summary != baseline {
				return refreshDoneMsg{changed: true}
			}
		}
		return refreshDoneMsg{changed: false}
	}
}
