// Package tui provides the Bubble Tea form editor for discman.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/discman/internal/config"
	"github.com/handiism/discman/internal/model"
	"github.com/handiism/discman/internal/project"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4A90E2")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// State represents the current UI state.
type State int

const (
	StateEditing State = iota
	StateOpenPrompt
	StateConfirmOverwrite
)

// field is a header form field. Track rows follow the header fields in
// focus order.
type field int

const (
	fieldSaveDir field = iota
	fieldYear
	fieldMonth
	fieldDay
	fieldOrder
	fieldType
	fieldTitle
	headerFields
)

// Model is the Bubble Tea model for the editor.
type Model struct {
	state State
	store *project.Store
	draft *model.Draft

	saveDir     string
	inputs      map[field]textinput.Model
	trackInputs map[model.TrackID]textinput.Model
	pathInput   textinput.Model

	// focus indexes header fields first, then track rows in display order.
	focus int

	// pending export waiting for overwrite confirmation
	pending    *model.Release
	pendingDir string

	status    string
	statusErr bool

	width int
}

// NewModel creates an editor for a new release dated now.
func NewModel(settings *config.Settings, store *project.Store, now time.Time) Model {
	rel := model.NewRelease(now)
	rel.Type = settings.DefaultType

	m := Model{
		state:       StateEditing,
		store:       store,
		draft:       model.NewDraft(rel),
		saveDir:     settings.SaveDir,
		inputs:      make(map[field]textinput.Model),
		trackInputs: make(map[model.TrackID]textinput.Model),
		focus:       int(fieldOrder),
		width:       80,
	}

	m.inputs[fieldSaveDir] = newInput("folder", 200)
	m.inputs[fieldYear] = newInput("YYYY", 4)
	m.inputs[fieldOrder] = newInput("1", 6)
	m.inputs[fieldTitle] = newInput("title (file name)", 200)

	typeInput := newInput("Single, Album, EP...", 60)
	typeInput.ShowSuggestions = true
	typeInput.SetSuggestions(settings.ReleaseTypes)
	// down and ctrl+n are taken by focus movement and track adding.
	typeInput.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+y"))
	typeInput.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+j"))
	typeInput.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+k"))
	m.inputs[fieldType] = typeInput

	m.pathInput = newInput("path/to/release.json or .txt", 500)

	m.syncInputs()
	m.applyFocus()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Prompt = ""
	return ti
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Draft returns the release being edited.
func (m Model) Draft() *model.Draft {
	return m.draft
}

// SaveDir returns the current save folder.
func (m Model) SaveDir() string {
	return m.saveDir
}

// Load replaces the edited release with the file at path. On failure the
// editor is left as it was and the error is shown.
func (m Model) Load(path string) Model {
	rel, err := m.store.Load(path)
	if err != nil {
		m.setError(err)
		return m
	}

	m.draft.Apply(rel)
	m.saveDir = filepath.Dir(path)
	m.syncInputs()
	m.focus = int(fieldTitle)
	m.applyFocus()
	m.setStatus(fmt.Sprintf("Loaded %s", path))
	return m
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.resizeInputs()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateOpenPrompt:
			return m.updateOpenPrompt(msg)
		case StateConfirmOverwrite:
			return m.updateConfirm(msg)
		}
		return m.updateEditing(msg)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "ctrl+n":
		id := m.draft.Tracks.Append("", false)
		m.trackInputs[id] = newTrackInput(m.width)
		m.focus = int(headerFields) + m.draft.Tracks.Len() - 1
		m.applyFocus()
		return m, nil

	case "alt+up", "alt+down":
		if id, ok := m.focusedTrack(); ok {
			delta := 1
			if msg.String() == "alt+up" {
				delta = -1
			}
			if m.draft.Tracks.Move(id, delta) {
				m.focus = int(headerFields) + m.draft.Tracks.Position(id) - 1
			}
		}
		return m, nil

	case "ctrl+d":
		if id, ok := m.focusedTrack(); ok {
			m.draft.Tracks.Delete(id)
			delete(m.trackInputs, id)
			m.clampFocus()
			m.applyFocus()
		}
		return m, nil

	case "ctrl+t":
		if id, ok := m.focusedTrack(); ok {
			m.draft.Tracks.ToggleInstrumental(id)
		}
		return m, nil

	case "ctrl+s":
		m.saveJSON()
		return m, nil

	case "ctrl+e":
		m.exportText()
		return m, nil

	case "ctrl+o":
		m.state = StateOpenPrompt
		m.pathInput.SetValue(m.saveDir + string(filepath.Separator))
		m.pathInput.CursorEnd()
		m.pathInput.Focus()
		return m, textinput.Blink

	case "left", "right", "-", "+":
		f := field(m.focus)
		if f == fieldMonth || f == fieldDay {
			delta := 1
			if msg.String() == "left" || msg.String() == "-" {
				delta = -1
			}
			m.cyclePicker(f, delta)
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateOpenPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = StateEditing
		m.pathInput.Blur()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		m.state = StateEditing
		m.pathInput.Blur()
		if path == "" {
			return m, nil
		}
		return m.Load(path), nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y":
		rel, dir := m.pending, m.pendingDir
		m.pending = nil
		m.state = StateEditing
		path, _, err := m.store.ExportText(rel, dir, func(string) bool { return true })
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Exported %s", path))
	case "n", "N", "esc":
		m.pending = nil
		m.state = StateEditing
		m.setWarning("Export cancelled")
	}
	return m, nil
}

// updateFocusedInput passes a key to the focused text input and copies the
// new value into the draft.
func (m Model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if id, ok := m.focusedTrack(); ok {
		ti := m.trackInputs[id]
		ti, cmd = ti.Update(msg)
		m.trackInputs[id] = ti
		m.draft.Tracks.SetName(id, ti.Value())
		return m, cmd
	}

	f := field(m.focus)
	ti, ok := m.inputs[f]
	if !ok {
		return m, nil
	}
	ti, cmd = ti.Update(msg)
	m.inputs[f] = ti

	switch f {
	case fieldSaveDir:
		m.saveDir = ti.Value()
	case fieldYear:
		m.draft.Year = ti.Value()
		m.draft.Day = model.ClampDay(m.draft.Year, m.draft.Month, m.draft.Day)
	case fieldOrder:
		m.draft.Order = ti.Value()
	case fieldType:
		m.draft.Type = ti.Value()
	case fieldTitle:
		m.draft.Title = ti.Value()
	}
	return m, cmd
}

func (m *Model) saveJSON() {
	path, err := m.store.SaveJSON(m.draft.Snapshot(), m.saveDir)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Saved %s", path))
}

func (m *Model) exportText() {
	rel := m.draft.Snapshot()
	needsConfirm := false
	path, written, err := m.store.ExportText(rel, m.saveDir, func(string) bool {
		needsConfirm = true
		return false
	})
	switch {
	case err != nil:
		m.setError(err)
	case written:
		m.setStatus(fmt.Sprintf("Exported %s", path))
	case needsConfirm:
		m.pending = rel
		m.pendingDir = m.saveDir
		m.state = StateConfirmOverwrite
		m.setWarning(fmt.Sprintf("%s exists. Overwrite? (y/n)", path))
	}
}

func (m *Model) cyclePicker(f field, delta int) {
	switch f {
	case fieldMonth:
		m.draft.Month = cycle(model.MonthOptions(), m.draft.Month, delta)
		m.draft.Day = model.ClampDay(m.draft.Year, m.draft.Month, m.draft.Day)
	case fieldDay:
		days := model.DayOptions(m.draft.Year, m.draft.Month)
		if len(days) > 0 {
			m.draft.Day = cycle(days, m.draft.Day, delta)
		}
	}
}

// cycle returns the option delta steps away from current, wrapping around.
// An unknown current value starts from the first option.
func cycle(options []string, current string, delta int) string {
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		return options[0]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

func (m *Model) focusedTrack() (model.TrackID, bool) {
	i := m.focus - int(headerFields)
	ids := m.draft.Tracks.IDs()
	if i < 0 || i >= len(ids) {
		return 0, false
	}
	return ids[i], true
}

func (m *Model) moveFocus(delta int) {
	total := int(headerFields) + m.draft.Tracks.Len()
	m.focus = ((m.focus+delta)%total + total) % total
	m.applyFocus()
}

func (m *Model) clampFocus() {
	last := int(headerFields) + m.draft.Tracks.Len() - 1
	if m.focus > last {
		m.focus = last
	}
}

// applyFocus focuses the input under m.focus and blurs every other input.
func (m *Model) applyFocus() {
	for f, ti := range m.inputs {
		if int(f) == m.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[f] = ti
	}

	focused, hasTrack := m.focusedTrack()
	for id, ti := range m.trackInputs {
		if hasTrack && id == focused {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.trackInputs[id] = ti
	}
}

// syncInputs rebuilds every input from the draft.
func (m *Model) syncInputs() {
	values := map[field]string{
		fieldSaveDir: m.saveDir,
		fieldYear:    m.draft.Year,
		fieldOrder:   m.draft.Order,
		fieldType:    m.draft.Type,
		fieldTitle:   m.draft.Title,
	}
	for f, v := range values {
		ti := m.inputs[f]
		ti.SetValue(v)
		m.inputs[f] = ti
	}

	m.trackInputs = make(map[model.TrackID]textinput.Model)
	for _, id := range m.draft.Tracks.IDs() {
		t, _ := m.draft.Tracks.Get(id)
		ti := newTrackInput(m.width)
		ti.SetValue(t.Name)
		m.trackInputs[id] = ti
	}
}

func newTrackInput(width int) textinput.Model {
	ti := newInput("track name", 200)
	ti.Width = inputWidth(width)
	return ti
}

func inputWidth(width int) int {
	w := width - 30
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) resizeInputs() {
	w := inputWidth(m.width)
	for _, f := range []field{fieldSaveDir, fieldTitle, fieldType} {
		ti := m.inputs[f]
		ti.Width = w
		m.inputs[f] = ti
	}
	for id, ti := range m.trackInputs {
		ti.Width = w
		m.trackInputs[id] = ti
	}
	m.pathInput.Width = w
}

func (m *Model) setStatus(s string) {
	m.status = successStyle.Render(s)
	m.statusErr = false
}

func (m *Model) setWarning(s string) {
	m.status = warningStyle.Render(s)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = errorStyle.Render("Error: " + err.Error())
	m.statusErr = true
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Discography Manager"))
	b.WriteString("\n")

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTracks())
	b.WriteString("\n")

	switch m.state {
	case StateOpenPrompt:
		b.WriteString(boxStyle.Render(labelStyle.Render("Open file: ") + m.pathInput.View()))
		b.WriteString("\n")
	case StateConfirmOverwrite:
		b.WriteString(boxStyle.Render(warningStyle.Render("Overwrite existing export? (y/n)")))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) label(f field, text string) string {
	if int(f) == m.focus && m.state == StateEditing {
		return focusStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func (m Model) picker(f field, value string) string {
	if value == "" {
		value = "--"
	}
	if int(f) == m.focus && m.state == StateEditing {
		return focusStyle.Render("‹ " + value + " ›")
	}
	return "  " + value + "  "
}

func (m Model) viewHeader() string {
	var b strings.Builder

	b.WriteString(m.label(fieldSaveDir, "Save folder: "))
	b.WriteString(m.inputs[fieldSaveDir].View())
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldYear, "Year: "))
	b.WriteString(m.inputs[fieldYear].View())
	b.WriteString(m.label(fieldMonth, "Month:"))
	b.WriteString(m.picker(fieldMonth, m.draft.Month))
	b.WriteString(m.label(fieldDay, "Day:"))
	b.WriteString(m.picker(fieldDay, m.draft.Day))
	b.WriteString("\n")

	b.WriteString(m.label(fieldOrder, "Order (number): "))
	b.WriteString(m.inputs[fieldOrder].View())
	b.WriteString("\n")

	b.WriteString(m.label(fieldType, "Type: "))
	b.WriteString(m.inputs[fieldType].View())
	b.WriteString("\n")

	b.WriteString(m.label(fieldTitle, "Title: "))
	b.WriteString(m.inputs[fieldTitle].View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewTracks() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(fmt.Sprintf("Tracks (%d)", m.draft.Tracks.Len())))
	b.WriteString("\n")

	focused, hasFocus := m.focusedTrack()
	for _, id := range m.draft.Tracks.IDs() {
		t, _ := m.draft.Tracks.Get(id)

		cursor := "  "
		if hasFocus && id == focused && m.state == StateEditing {
			cursor = focusStyle.Render("› ")
		}
		inst := "[ ]"
		if t.Instrumental {
			inst = "[x]"
		}

		b.WriteString(cursor)
		b.WriteString(dimStyle.Render(fmt.Sprintf("%3d.", m.draft.Tracks.Position(id))))
		b.WriteString(" ")
		b.WriteString(m.trackInputs[id].View())
		b.WriteString(" ")
		b.WriteString(inst + " Inst")
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateOpenPrompt:
		return "enter: open • esc: cancel"
	case StateConfirmOverwrite:
		return "y: overwrite • n: cancel"
	}
	return "tab/↑↓: move • ←→: month/day • ctrl+n: add track • alt+↑↓: reorder • ctrl+d: delete • ctrl+t: inst\n" +
		"ctrl+s: save .json • ctrl+e: export .txt • ctrl+o: open • ctrl+j/k: next/prev type • ctrl+y: accept type • esc: quit"
}

// Run starts the editor. When path is not empty the file is loaded first.
func Run(settings *config.Settings, store *project.Store, path string) error {
	m := NewModel(settings, store, time.Now())
	if path != "" {
		m = m.Load(path)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
