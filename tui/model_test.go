package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/api"
	"github.com/etnz/carteira/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := session.NewStore(t.TempDir() + "/token")
	return New(api.New("http://localhost:0", store), dark)
}

func sampleDashboard() *carteira.Dashboard {
	return &carteira.Dashboard{
		Summary: carteira.Summary{TotalHeritage: 1500, TotalInvested: 1000, Profitability: 50},
		Percentages: map[string]carteira.AllocationNode{
			"brazil": {Percentage: 60, Children: map[string]carteira.AllocationNode{
				"ações": {Percentage: 100},
			}},
			"crypto": {Percentage: 40},
		},
	}
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestDashboardMsgPopulatesIndependently(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(dashboardMsg{dashboard: sampleDashboard()})
	m = next.(Model)
	require.NotNil(t, m.dashboard)
	assert.NoError(t, m.dashErr)

	// a failing evolution fetch must not touch the dashboard panel
	next, _ = m.Update(evolutionMsg{err: assert.AnError})
	m = next.(Model)
	assert.Error(t, m.evoErr)
	assert.NotNil(t, m.dashboard)
	assert.Empty(t, m.evolution)
}

func TestDrillAndBack(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(dashboardMsg{dashboard: sampleDashboard()})
	m = next.(Model)

	// slices are sorted by share: brazil (60) first
	s := m.slices()
	require.Len(t, s, 2)
	assert.Equal(t, "brazil", s[0].Key)

	next, _ = m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	assert.Equal(t, "Alocação em Brasil", m.view.Title())
	assert.Equal(t, 0, m.selected)

	// drilling a leaf is a no-op
	next, _ = m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	assert.Equal(t, "Alocação em Brasil", m.view.Title())

	next, _ = m.Update(keyMsg(tea.KeyEsc))
	m = next.(Model)
	assert.Equal(t, 1, m.view.Depth())
}

func TestSelectionClamps(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(dashboardMsg{dashboard: sampleDashboard()})
	m = next.(Model)

	next, _ = m.Update(keyMsg(tea.KeyUp))
	m = next.(Model)
	assert.Equal(t, 0, m.selected)

	for i := 0; i < 5; i++ {
		next, _ = m.Update(keyMsg(tea.KeyDown))
		m = next.(Model)
	}
	assert.Equal(t, 1, m.selected, "selection stops at the last slice")
}

func TestStaleSearchResultDiscarded(t *testing.T) {
	m := newTestModel(t)
	m.searching = true
	m.searchSeq = 3

	next, _ := m.Update(searchMsg{seq: 2, results: []carteira.SearchResult{{Ticker: "OLD"}}})
	m = next.(Model)
	assert.Empty(t, m.searchResults, "result of a superseded query must be dropped")

	next, _ = m.Update(searchMsg{seq: 3, results: []carteira.SearchResult{{Ticker: "BTC"}}})
	m = next.(Model)
	require.Len(t, m.searchResults, 1)
	assert.Equal(t, "BTC", m.searchResults[0].Ticker)
}

func TestBarClamps(t *testing.T) {
	assert.Equal(t, "░░░░", bar(-10, 4))
	assert.Equal(t, "████", bar(150, 4))
	assert.Equal(t, "██░░", bar(50, 4))
}
