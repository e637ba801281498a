package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifememory/internal/adapters/tui/styles"
	"lifememory/internal/application/commands"
	"lifememory/internal/domain"
	"lifememory/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Distill  key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "scroll down"),
	),
	Distill: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "distill"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy path"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// noteEntry is one row in the note list: the memory file or a daily note.
type noteEntry struct {
	title string
	rel   string // vault-relative path
	date  string // YYYY-MM-DD, empty for the memory file
}

// BrowserModel lists the memory file and the daily notes with a preview of
// the selected one.
type BrowserModel struct {
	repo ports.VaultRepository

	entries    []noteEntry
	cursor     int
	preview    viewport.Model
	ready      bool
	message    string
	messageErr bool
	width      int
	height     int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(repo ports.VaultRepository) *BrowserModel {
	return &BrowserModel{
		repo: repo,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadNotes
}

func (m *BrowserModel) loadNotes() tea.Msg {
	dailies, err := m.repo.ListDailyNotes()
	if err != nil {
		return errMsg{err}
	}

	entries := []noteEntry{{
		title: "Memory",
		rel:   m.repo.MemoryPath(),
	}}
	// Newest day first
	for i := len(dailies) - 1; i >= 0; i-- {
		date := strings.TrimSuffix(dailies[i], ".md")
		entries = append(entries, noteEntry{
			title: date,
			rel:   m.repo.DailyNotePath(date),
			date:  date,
		})
	}
	return notesLoadedMsg{entries}
}

type notesLoadedMsg struct {
	entries []noteEntry
}

type noteContentMsg struct {
	content string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case notesLoadedMsg:
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = len(m.entries) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, m.loadSelected()

	case noteContentMsg:
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case successMsg:
		m.message = msg.message
		m.messageErr = false
		return m, m.loadSelected()

	case tea.KeyMsg:
		m.message = "" // Clear message on key press

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, m.loadSelected()

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, m.loadSelected()

		case key.Matches(msg, BrowserKeys.PageUp):
			m.preview.HalfViewUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.PageDown):
			m.preview.HalfViewDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.Distill):
			if e := m.selected(); e != nil && e.date != "" {
				return m, m.distill(e.date)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if e := m.selected(); e != nil {
				if err := clipboard.WriteAll(e.rel); err != nil {
					return m, func() tea.Msg { return errMsg{err} }
				}
				m.message = fmt.Sprintf("copied %s", e.rel)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.loadNotes

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) loadSelected() tea.Cmd {
	e := m.selected()
	if e == nil {
		return nil
	}
	rel := e.rel
	return func() tea.Msg {
		if !m.repo.NoteExists(rel) {
			return noteContentMsg{content: styles.MutedText.Render("(not created yet)")}
		}
		content, err := m.repo.ReadNote(rel)
		if err != nil {
			return errMsg{err}
		}
		return noteContentMsg{content}
	}
}

func (m *BrowserModel) distill(date string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewDistillCommand(m.repo, date).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		if result.Outcome == commands.DistillNoEvents {
			return successMsg{fmt.Sprintf("%s: no events to distill", date)}
		}
		return successMsg{fmt.Sprintf("distilled %s: kept %d/%d events", date, result.Kept, result.Total)}
	}
}

func (m *BrowserModel) selected() *noteEntry {
	if m.cursor >= 0 && m.cursor < len(m.entries) {
		return &m.entries[m.cursor]
	}
	return nil
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var list strings.Builder
	list.WriteString(styles.Title.Render("Life Memory"))
	list.WriteString("\n")
	list.WriteString(styles.Subtitle.Render("Memory vault browser"))
	list.WriteString("\n\n")

	today := domain.Today(time.Now())
	for i, e := range m.entries {
		list.WriteString(m.renderEntry(e, i == m.cursor, today))
		list.WriteString("\n")
	}

	left := lipgloss.NewStyle().Width(listWidth(m.width)).Render(list.String())
	right := styles.Preview.Render(m.preview.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var b strings.Builder
	b.WriteString(body)
	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderEntry(e noteEntry, selected bool, today string) string {
	text := e.title
	if e.date == "" {
		text = "★ " + text
	}

	if selected {
		return styles.NoteSelected.Render(text)
	}
	switch {
	case e.date == "":
		return styles.NoteMemory.Render(text)
	case e.date == today:
		return styles.NoteToday.Render(text)
	default:
		return styles.NoteDaily.Render(text)
	}
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"ctrl+u/d", "scroll"},
		{"d", "distill"},
		{"c", "copy path"},
		{"r", "reload"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

func listWidth(total int) int {
	w := total / 3
	if w < 16 {
		w = 16
	}
	return w
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	previewWidth := width - listWidth(width) - 8
	if previewWidth < 20 {
		previewWidth = 20
	}
	previewHeight := height - 8
	if previewHeight < 5 {
		previewHeight = 5
	}

	if !m.ready {
		m.preview = viewport.New(previewWidth, previewHeight)
		m.ready = true
	} else {
		m.preview.Width = previewWidth
		m.preview.Height = previewHeight
	}
}

// Reload reloads the note list from disk
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadNotes
}
