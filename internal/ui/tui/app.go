package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
	"github.com/joaobcpatricio/gotemplate/internal/usecase"
)

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	help  help.Model

	example *usecase.Example
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	h := help.New()
	h.Styles.ShortKey = t.Help.Bold(true)
	h.Styles.ShortDesc = t.Help
	h.Styles.ShortSeparator = t.Help
	h.Styles.FullKey = t.Help.Bold(true)
	h.Styles.FullDesc = t.Help
	h.Styles.FullSeparator = t.Help

	return model{
		theme: t,
		deps:  deps,
		keys:  defaultKeyMap(),
		help:  h,
		example: usecase.NewExample(deps.Project,
			usecase.WithOverflowPolicy(deps.Overflow),
			usecase.WithLogger(deps.Logger),
		),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Increment):
			before := m.example.Counter()
			m.example.CounterAddOne()
			m.toast = ""
			if before == domain.CounterMax {
				if m.example.Counter() == domain.CounterMax {
					m.toast = "Counter saturated"
				} else {
					m.toast = "Counter wrapped"
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.example.Reset()
			m.toast = ""
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	name, version := "gotemplate", ""
	if m.deps.Project != nil {
		name, version = m.deps.Project.Name(), m.deps.Project.Version()
	}
	header := m.theme.Title.Render(name) + "\n" + m.theme.Subtitle.Render(version) + "\n"

	body := fmt.Sprintf("Counter: %s\nOverflow: %s",
		m.theme.Value.Render(fmt.Sprintf("%d", m.example.Counter())),
		m.example.Policy(),
	)
	if m.example.Counter() == domain.CounterMax {
		body += "  " + m.theme.Warn.Render("(max)")
	}
	if m.toast != "" {
		body += "\n\n" + m.theme.Warn.Render(m.toast)
	}

	footer := m.help.View(m.keys)
	if m.deps.Debug {
		footer += "\n" + m.theme.Subtitle.Render("debug logging on (stderr)")
	}

	return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n" + footer)
}
