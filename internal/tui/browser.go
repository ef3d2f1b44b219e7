// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/internal/stringutil"
)

const (
	nameColumnWidth = 24
	codeColumnWidth = 5
	defaultWidth    = 80
	defaultHeight   = 24
)

// BrowserKeyMap defines key bindings for the code browser.
type BrowserKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Quit        key.Binding
}

// DefaultBrowserKeyMap returns the default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Browser is the exit-code registry browser model.
type Browser struct {
	styles    *Styles
	infos     []errcode.Info
	cursor    int
	filter    string
	filtering bool
	width     int
	height    int
	quitting  bool
	keyMap    BrowserKeyMap
}

// NewBrowser creates a browser over the given registry entries.
func NewBrowser(infos []errcode.Info) *Browser {
	return &Browser{
		styles: NewStyles(),
		infos:  infos,
		width:  defaultWidth,
		height: defaultHeight,
		keyMap: DefaultBrowserKeyMap(),
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Visible returns the entries matching the current filter.
func (b *Browser) Visible() []errcode.Info {
	if b.filter == "" {
		return b.infos
	}

	var visible []errcode.Info

	for _, info := range b.infos {
		if b.matches(info) {
			visible = append(visible, info)
		}
	}

	return visible
}

// matches checks the filter against name, aliases, value and
// description.
func (b *Browser) matches(info errcode.Info) bool {
	if stringutil.ContainsIgnoreCase(info.Name, b.filter) ||
		stringutil.ContainsIgnoreCase(info.Description, b.filter) ||
		strings.Contains(strconv.Itoa(int(info.Code)), b.filter) {
		return true
	}

	for _, alias := range info.Aliases {
		if stringutil.ContainsIgnoreCase(alias, b.filter) {
			return true
		}
	}

	return false
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height

		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b.filtering {
		return b.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, b.keyMap.Quit):
		b.quitting = true

		return b, tea.Quit

	case key.Matches(msg, b.keyMap.Up):
		if b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(msg, b.keyMap.Down):
		if b.cursor < len(b.Visible())-1 {
			b.cursor++
		}

	case key.Matches(msg, b.keyMap.Filter):
		b.filtering = true

	case key.Matches(msg, b.keyMap.ClearFilter):
		b.filter = ""
		b.cursor = 0
	}

	return b, nil
}

func (b *Browser) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		b.filtering = false

	case tea.KeyEsc:
		b.filtering = false
		b.filter = ""
		b.cursor = 0

	case tea.KeyBackspace:
		if b.filter != "" {
			b.filter = b.filter[:len(b.filter)-1]
		}

	case tea.KeyRunes:
		b.filter += string(msg.Runes)
		b.cursor = 0

	case tea.KeyCtrlC:
		b.quitting = true

		return b, tea.Quit

	default:
	}

	return b, nil
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var view strings.Builder

	view.WriteString(b.styles.Title.Render("Exit code registry"))
	view.WriteString("\n")

	visible := b.Visible()
	if len(visible) == 0 {
		view.WriteString(b.styles.MutedText.Render("No codes match '" + b.filter + "'"))
		view.WriteString("\n")
	}

	descWidth := max(b.width-nameColumnWidth-codeColumnWidth-4, 10)

	for i, info := range visible {
		row := runewidth.FillRight(info.Name, nameColumnWidth) +
			runewidth.FillRight(strconv.Itoa(int(info.Code)), codeColumnWidth) +
			runewidth.Truncate(info.Description, descWidth, "…")

		if i == b.cursor {
			view.WriteString(b.styles.Selected.Render(row))
		} else {
			view.WriteString(b.styles.Unselected.Render(row))
		}

		view.WriteString("\n")
	}

	footer := "↑/↓ navigate · / filter · esc clear · q quit"
	if b.filtering {
		footer = "filter: " + b.filter + "▌ (enter to apply, esc to cancel)"
	} else if b.filter != "" {
		footer = "filter: " + b.filter + " · " + footer
	}

	view.WriteString(b.styles.Footer.Render(footer))

	return view.String()
}

// Run opens the browser over the full registry and blocks until the
// user quits.
func Run() error {
	program := tea.NewProgram(NewBrowser(errcode.All()), tea.WithAltScreen())

	_, err := program.Run()

	return err
}
