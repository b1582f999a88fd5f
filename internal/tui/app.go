package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/crewfile/internal/store"
)

// mode represents the current input mode of the roster screen
type mode int

const (
	modeBrowse mode = iota // Navigating the roster
	modeAdd                // Typing a new name into the text input
)

// Messages produced by store commands
type rosterLoadedMsg struct {
	users []store.User
	err   error
}

type userCreatedMsg struct {
	user store.User
	err  error
}

type userDeletedMsg struct {
	id      int
	removed bool
	err     error
}

// browseKeyMap defines key bindings for browse mode
type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Delete, k.Reload, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Delete, k.Reload, k.Quit},
	}
}

// Model is the single-screen roster manager. It lists the roster and
// supports adding, deleting and reloading; every mutation goes through
// the store's public operations, never the file directly.
type Model struct {
	Store *store.Store

	// Roster state
	Users  []store.User
	Cursor int

	// Input state
	Mode  mode
	Input textinput.Model

	// Status line (last operation result or error)
	Status    string
	StatusErr bool

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys browseKeyMap
}

// NewModel creates the roster manager model for the given store.
func NewModel(s *store.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.Prompt = PromptStyle.Render("New crew member: ")
	ti.CharLimit = 120

	keys := browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	return Model{
		Store: s,
		Mode:  modeBrowse,
		Input: ti,
		Help:  help.New(),
		Keys:  keys,
	}
}

// Init loads the roster from disk.
func (m Model) Init() tea.Cmd {
	return loadRoster(m.Store)
}

// loadRoster returns a command that reads the roster.
func loadRoster(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		users, err := s.List()
		return rosterLoadedMsg{users: users, err: err}
	}
}

// createUser returns a command that creates a user with the given name.
func createUser(s *store.Store, name string) tea.Cmd {
	return func() tea.Msg {
		user, err := s.Create(name)
		return userCreatedMsg{user: user, err: err}
	}
}

// deleteUser returns a command that deletes the user with the given id.
func deleteUser(s *store.Store, id int) tea.Cmd {
	return func() tea.Msg {
		removed, err := s.Delete(id)
		return userDeletedMsg{id: id, removed: removed, err: err}
	}
}

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case rosterLoadedMsg:
		if msg.err != nil {
			m.Status = fmt.Sprintf("load failed: %v", msg.err)
			m.StatusErr = true
			return m, nil
		}
		m.Users = msg.users
		if m.Cursor >= len(m.Users) {
			m.Cursor = len(m.Users) - 1
		}
		if m.Cursor < 0 {
			m.Cursor = 0
		}
		return m, nil

	case userCreatedMsg:
		if msg.err != nil {
			m.Status = fmt.Sprintf("add failed: %v", msg.err)
			m.StatusErr = true
			return m, nil
		}
		m.Status = fmt.Sprintf("added #%d %s", msg.user.ID, msg.user.Name)
		m.StatusErr = false
		return m, loadRoster(m.Store)

	case userDeletedMsg:
		if msg.err != nil {
			m.Status = fmt.Sprintf("delete failed: %v", msg.err)
			m.StatusErr = true
			return m, nil
		}
		if msg.removed {
			m.Status = fmt.Sprintf("removed #%d", msg.id)
		} else {
			m.Status = fmt.Sprintf("no crew member with id %d", msg.id)
		}
		m.StatusErr = !msg.removed
		return m, loadRoster(m.Store)

	case tea.KeyMsg:
		if m.Mode == modeAdd {
			return m.updateAdd(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateBrowse handles key presses while navigating the roster.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.Users)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.Add):
		m.Mode = modeAdd
		m.Input.SetValue("")
		m.Input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Delete):
		if len(m.Users) > 0 {
			return m, deleteUser(m.Store, m.Users[m.Cursor].ID)
		}

	case key.Matches(msg, m.Keys.Reload):
		m.Status = ""
		return m, loadRoster(m.Store)
	}

	return m, nil
}

// updateAdd handles key presses while typing a new name.
func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.Mode = modeBrowse
		m.Input.Blur()
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.Input.Value())
		m.Mode = modeBrowse
		m.Input.Blur()
		if name == "" {
			// Empty names are rejected here; the store accepts any
			// string it is handed.
			m.Status = "name must not be empty"
			m.StatusErr = true
			return m, nil
		}
		return m, createUser(m.Store, name)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// View renders the roster screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(m.Store.Path()))
	b.WriteString("\n\n")

	if len(m.Users) == 0 {
		b.WriteString(RowStyle.Render("(no crew members yet - press 'a' to add one)"))
		b.WriteString("\n")
	}

	for i, u := range m.Users {
		row := fmt.Sprintf("%s %s", IDStyle.Render(fmt.Sprintf("#%-4d", u.ID)), u.Name)
		if i == m.Cursor && m.Mode == modeBrowse {
			b.WriteString(SelectedRowStyle.Render("> " + row))
		} else {
			b.WriteString(RowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if m.Mode == modeAdd {
		b.WriteString("\n")
		b.WriteString(m.Input.View())
		b.WriteString("\n")
	}

	if m.Status != "" {
		b.WriteString("\n")
		if m.StatusErr {
			b.WriteString(StatusErrorStyle.Render(m.Status))
		} else {
			b.WriteString(StatusOKStyle.Render(m.Status))
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))
	b.WriteString("\n")

	return b.String()
}

// Run launches the roster manager and blocks until the user quits.
func Run(s *store.Store) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
