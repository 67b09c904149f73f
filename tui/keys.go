package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Drill   key.Binding
	Back    key.Binding
	Search  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "subir")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "descer")),
	Drill:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detalhar")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
}
