package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/etnz/carteira"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}

		case key.Matches(msg, keys.Down):
			if m.selected < len(m.slices())-1 {
				m.selected++
			}

		case key.Matches(msg, keys.Drill):
			if s := m.slices(); m.selected < len(s) {
				m.drill(s[m.selected].Key)
			}

		case key.Matches(msg, keys.Back):
			m.view.Back()
			m.selected = 0

		case key.Matches(msg, keys.Search):
			m.searching = true
			m.searchResults = nil
			m.searchErr = nil
			m.searchInput.SetValue("")
			return m, m.searchInput.Focus()

		case key.Matches(msg, keys.Refresh):
			if !m.refreshing && m.dashboard != nil {
				m.refreshing = true
				m.refreshErr = nil
				cmds = append(cmds, refresh(m.client, m.dashboard.Summary))
			}
		}

	case dashboardMsg:
		m.dashboard, m.dashErr = msg.dashboard, msg.err
		if m.selected >= len(m.slices()) {
			m.selected = 0
		}

	case evolutionMsg:
		m.evoErr = msg.err
		if msg.err == nil {
			m.evolution = carteira.Dedupe(msg.points)
		}

	case searchDebounceMsg:
		// only the latest keystroke's timer fires a request
		if m.searching && msg.seq == m.searchSeq && m.searchInput.Value() != "" {
			cmds = append(cmds, fetchSearch(m.client, msg.seq, m.searchInput.Value()))
		}

	case searchMsg:
		if msg.seq == m.searchSeq {
			m.searchResults, m.searchErr = msg.results, msg.err
		}

	case refreshDoneMsg:
		m.refreshing = false
		m.refreshErr = msg.err
		if msg.err == nil && msg.changed {
			cmds = append(cmds, fetchDashboard(m.client), fetchEvolution(m.client))
		}
	}

	return m, tea.Batch(cmds...)
}

// updateSearch handles keys while the search overlay is open.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(cmd, debounceSearch(m.searchSeq))
	}
	return m, cmd
}

// slices returns the display rows of the current allocation level.
func (m Model) slices() []carteira.Slice {
	if m.dashboard == nil {
		return nil
	}
	node, colorKey := m.view.Resolve(m.dashboard.Percentages)
	return carteira.Slices(node, colorKey)
}

// drill descends into a slice. Leaves and stale keys are no-ops, matching
// AllocationView.
func (m *Model) drill(key string) {
	depth := m.view.Depth()
	m.view.Drill(m.dashboard.Percentages, key)
	if m.view.Depth() != depth {
		m.selected = 0
	}
}
