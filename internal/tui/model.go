// Package tui provides the terminal front-end: an ordered file list with
// single-row reordering, a content preview pane, and a combine action.
package tui

import (
	"fmt"
	"strings"
	"time"

	"combind/internal/combine"
	"combind/internal/config"
	"combind/internal/filelist"
	"combind/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI
type Mode int

const (
	// Normal is the default mode for list navigation and reordering
	Normal Mode = iota
	// AddInput is the mode for typing a file path to add
	AddInput
	// CombineInput is the mode for typing the output path
	CombineInput
)

const previewLines = 20

type Model struct {
	// Core state
	list   *filelist.List
	engine *combine.Engine
	cfg    *config.Config

	mode      Mode
	cursor    int
	preview   string
	statusMsg string
	showHelp  bool

	input textinput.Model

	width  int
	height int
}

// New creates a TUI model around the shared file list
func New(list *filelist.List, engine *combine.Engine, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	return &Model{
		list:   list,
		engine: engine,
		cfg:    cfg,
		mode:   Normal,
		input:  ti,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case AddInput, CombineInput:
		return m.handleInputMode(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
			m.refreshPreview()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.refreshPreview()
		}
	case "J", "shift+down":
		// Move the row under the cursor down one slot
		if err := m.list.Move(m.cursor, m.cursor+1); err == nil {
			m.cursor++
			m.statusMsg = "Moved entry down"
		}
	case "K", "shift+up":
		if err := m.list.Move(m.cursor, m.cursor-1); err == nil {
			m.cursor--
			m.statusMsg = "Moved entry up"
		}
	case "g":
		m.cursor = 0
		m.refreshPreview()
	case "G":
		if m.list.Len() > 0 {
			m.cursor = m.list.Len() - 1
			m.refreshPreview()
		}
	case "enter":
		m.refreshPreview()
	case "a":
		m.mode = AddInput
		m.input.Placeholder = "path/to/file.txt"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "c":
		if m.list.Len() == 0 {
			m.statusMsg = "Nothing to combine"
			return m, nil
		}
		m.mode = CombineInput
		m.input.Placeholder = "output path"
		m.input.SetValue(m.cfg.OutputFileName(time.Now()))
		m.input.Focus()
		return m, textinput.Blink
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = Normal
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = Normal
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if mode == AddInput {
			m.list.Append(value)
			m.cursor = m.list.Len() - 1
			m.refreshPreview()
			m.statusMsg = fmt.Sprintf("Added %s", value)
		} else {
			m.runCombine(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runCombine(outputPath string) {
	result, err := m.engine.Combine(m.list.Snapshot(), outputPath)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Combine failed: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("Combined %d files into %s", result.FileCount, result.OutputPath)
}

func (m *Model) refreshPreview() {
	path, err := m.list.EntryAt(m.cursor)
	if err != nil {
		m.preview = ""
		return
	}
	content, err := combine.ReadFile(path)
	if err != nil {
		m.preview = ""
		m.statusMsg = err.Error()
		return
	}
	lines := strings.Split(content, "\n")
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], "...")
	}
	m.preview = strings.Join(lines, "\n")
}

// View implements tea.Model
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(styles.Title.Render("Combind") + "\n")

	entries := m.list.Entries()
	var listPane strings.Builder
	if len(entries) == 0 {
		listPane.WriteString(styles.Unselected.Render("No files added. Press 'a' to add one."))
	}
	for i, entry := range entries {
		cursor := " "
		style := styles.Unselected
		if i == m.cursor {
			cursor = ">"
			style = styles.Selected
		}
		listPane.WriteString(fmt.Sprintf("%s %2d. %s\n", cursor, i+1, style.Render(entry.Path)))
	}
	s.WriteString(styles.FileListStyle.Render(listPane.String()) + "\n")

	if m.preview != "" {
		s.WriteString(styles.PreviewStyle.Render(m.preview) + "\n")
	}

	switch m.mode {
	case AddInput:
		s.WriteString("Add file: " + m.input.View() + "\n")
	case CombineInput:
		s.WriteString("Output file: " + m.input.View() + "\n")
	}

	if m.statusMsg != "" {
		s.WriteString(styles.Status.Render(m.statusMsg) + "\n")
	}

	if m.showHelp {
		s.WriteString(styles.Help.Render(helpText))
	} else {
		s.WriteString(styles.Help.Render("j/k move · J/K reorder · a add · c combine · ? help · q quit"))
	}

	return styles.App.Render(s.String())
}

const helpText = `
j/k, up/down   move cursor (previews the file under it)
J/K            move the entry under the cursor down/up
g/G            jump to first/last entry
a              add a file by path
c              combine into an output file
enter          refresh preview
q, esc         quit
`

// Getters used by the views and tests

// Cursor returns the cursor position
func (m *Model) Cursor() int {
	return m.cursor
}

// Mode returns the current input mode
func (m *Model) Mode() Mode {
	return m.mode
}

// Preview returns the current preview text
func (m *Model) Preview() string {
	return m.preview
}

// StatusMsg returns the current status line
func (m *Model) StatusMsg() string {
	return m.statusMsg
}

// List returns the underlying file list model
func (m *Model) List() *filelist.List {
	return m.list
}

// SetCursor sets the cursor position
func (m *Model) SetCursor(pos int) {
	if pos >= 0 && pos < m.list.Len() {
		m.cursor = pos
	}
}
