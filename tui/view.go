package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/etnz/carteira"
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Carregando..."
	}

	sections := []string{
		m.viewHeader(),
		m.viewSummary(),
		m.viewAllocation(),
		m.viewEvolution(),
	}
	if m.searching {
		sections = append(sections, m.viewSearch())
	}
	sections = append(sections, m.viewFooter())

	page := lipgloss.NewStyle().Padding(1, 2)
	return page.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	t := m.theme
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Minha Carteira")

	status := ""
	switch {
	case m.refreshing:
		status = lipgloss.NewStyle().Foreground(t.Warning).Render("atualizando cotações...")
	case m.refreshErr != nil:
		status = lipgloss.NewStyle().Foreground(t.Error).Render("falha ao atualizar: " + m.refreshErr.Error())
	}
	if status == "" {
		return title
	}
	return title + "  " + status
}

func (m Model) viewSummary() string {
	t := m.theme
	if m.dashErr != nil {
		return lipgloss.NewStyle().Foreground(t.Error).Render("Não foi possível carregar o painel: " + m.dashErr.Error())
	}
	if m.dashboard == nil {
		return lipgloss.NewStyle().Foreground(t.Muted).Render("Carregando resumo...")
	}

	s := m.dashboard.Summary
	profColor := t.Success
	if s.Profitability < 0 {
		profColor = t.Error
	}

	label := lipgloss.NewStyle().Foreground(t.Muted)
	value := lipgloss.NewStyle().Bold(true).Foreground(t.Text)

	cards := []string{
		label.Render("Patrimônio Total  ") + value.Render(carteira.BRL(s.TotalHeritage).String()),
		label.Render("Valor Investido  ") + value.Render(carteira.BRL(s.TotalInvested).String()),
		label.Render("Rentabilidade  ") + lipgloss.NewStyle().Bold(true).Foreground(profColor).Render(carteira.Percent(s.Profitability).SignedString()),
	}
	return "\n" + strings.Join(cards, "    ") + "\n"
}

func (m Model) viewAllocation() string {
	t := m.theme
	if m.dashboard == nil {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Subtext).Render(m.view.Title())

	lines := []string{title}
	if path := m.view.Path(); len(path) > 0 {
		crumbs := make([]string, 0, len(path)+1)
		crumbs = append(crumbs, "Categorias")
		for _, key := range path {
			crumbs = append(crumbs, carteira.Translate(key))
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Join(crumbs, " › ")))
	}

	slices := m.slices()
	if len(slices) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("Adicione ativos para ver a alocação."))
		return strings.Join(lines, "\n") + "\n"
	}

	labelWidth := 0
	for _, s := range slices {
		if w := lipgloss.Width(s.Label); w > labelWidth {
			labelWidth = w
		}
	}

	for i, s := range slices {
		cursor := "  "
		if i == m.selected {
			cursor = lipgloss.NewStyle().Foreground(t.Primary).Render("▸ ")
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■")
		row := fmt.Sprintf("%s%s %-*s %s %6s",
			cursor, swatch, labelWidth, s.Label, bar(float64(s.Percent), 24), s.Percent)
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) viewEvolution() string {
	t := m.theme
	if m.evoErr != nil {
		return lipgloss.NewStyle().Foreground(t.Error).Render("Não foi possível carregar a evolução: " + m.evoErr.Error())
	}
	if len(m.evolution) == 0 {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Subtext).Render("Evolução do Patrimônio")
	lines := []string{title}

	if r, ok := carteira.TrailingReturn(m.evolution); ok {
		color := t.Success
		if r < 0 {
			color = t.Error
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(color).Render("Retorno no período: "+r.SignedString()))
	}

	// last twelve months, scaled against the series peak
	entries := carteira.Shape(m.evolution)
	if len(entries) > 12 {
		entries = entries[len(entries)-12:]
	}
	peak := 0.0
	for _, e := range entries {
		if e.TotalValue > peak {
			peak = e.TotalValue
		}
	}
	for _, e := range entries {
		pct := 0.0
		if peak > 0 {
			pct = e.TotalValue / peak * 100
		}
		lines = append(lines, fmt.Sprintf("%-6s %s %s",
			e.Date, bar(pct, 30), carteira.BRL(e.TotalValue).String()))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) viewSearch() string {
	t := m.theme
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(t.Subtext).Render("Buscar ativo"),
		m.searchInput.View(),
	}
	switch {
	case m.searchErr != nil:
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Error).Render(m.searchErr.Error()))
	case len(m.searchResults) == 0 && m.searchInput.Value() != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("nenhum resultado"))
	default:
		for _, r := range m.searchResults {
			lines = append(lines, fmt.Sprintf("%-8s %-30s %s", r.Ticker, r.Name, carteira.M(r.Price, r.Currency)))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) viewFooter() string {
	help := []string{
		keys.Up.Help().Key + "/" + keys.Down.Help().Key + " navegar",
		keys.Drill.Help().Key + " " + keys.Drill.Help().Desc,
		keys.Back.Help().Key + " " + keys.Back.Help().Desc,
		keys.Search.Help().Key + " " + keys.Search.Help().Desc,
		keys.Refresh.Help().Key + " " + keys.Refresh.Help().Desc,
		keys.Quit.Help().Key + " " + keys.Quit.Help().Desc,
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(help, "  ·  "))
}

// bar renders a proportional block bar for a 0-100 percentage. Values outside
// the range clamp.
func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
