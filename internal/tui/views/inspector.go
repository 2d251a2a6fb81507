package views

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	curlparser "github.com/tyrchen/curl-parser"
	"github.com/tyrchen/curl-parser/internal/output"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(1, 2).
			Width(80)

	resultStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	jsonKeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	jsonStringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	jsonOtherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	jsonPunctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// View represents a TUI view interface.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
}

// InspectorView parses a pasted curl command and previews the result.
type InspectorView struct {
	form      *huh.Form
	command   string
	variables string
	parse     bool
	parsed    bool
	err       error
	formatted string
	width     int
	height    int
	viewport  viewport.Model
}

// NewInspectorView creates a new inspector view.
func NewInspectorView() View {
	v := &InspectorView{
		width:    80,
		height:   20,
		viewport: viewport.New(80, 20),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("curl command").
				Description("Paste the curl invocation to convert").
				Placeholder("curl -H 'Accept: application/json' https://api.example.com/users").
				Value(&v.command).
				Key("command"),

			huh.NewText().
				Title("Template variables").
				Description("Optional, one key=value per line; fills {{ name }} placeholders").
				Value(&v.variables).
				Key("variables"),

			huh.NewConfirm().
				Title("Parse now?").
				Value(&v.parse).
				Key("parse"),
		),
	)

	v.form = form
	return v
}

// Init initializes the view.
func (v *InspectorView) Init() tea.Cmd {
	return v.form.Init()
}

// Update handles messages.
func (v *InspectorView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = max(msg.Width, 40)
		v.height = max(msg.Height, 10)
		v.resizeViewport()

	case tea.KeyMsg:
		key := msg.String()
		if v.formatted != "" {
			switch key {
			case "up", "k", "pgup":
				v.viewport.LineUp(1)
				return v, nil
			case "down", "j", "pgdown":
				v.viewport.LineDown(1)
				return v, nil
			case "home":
				v.viewport.GotoTop()
				return v, nil
			case "end":
				v.viewport.GotoBottom()
				return v, nil
			}
		}
		if key == "esc" {
			return v, tea.Quit
		}

	case errorMsg:
		v.err = msg.err
		v.parsed = false
		v.formatted = ""
		v.viewport.SetContent("")

	case resultMsg:
		v.err = nil
		v.formatted = highlightJSON(msg.rendered)
		v.viewport.SetContent(v.formatted)
		v.viewport.GotoTop()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
		cmds = append(cmds, cmd)
	}

	if v.form.State == huh.StateCompleted && !v.parsed && v.command != "" && v.parse {
		v.parsed = true
		cmds = append(cmds, v.parseCommand())
	}

	return v, tea.Batch(cmds...)
}

// parseCommand runs the parse off the update loop and reports the outcome.
func (v *InspectorView) parseCommand() tea.Cmd {
	command := v.command
	context := parseVariables(v.variables)

	return func() tea.Msg {
		req, err := curlparser.Load(command, context)
		if err != nil {
			return errorMsg{err: err}
		}

		view, err := output.NewView(req)
		if err != nil {
			return errorMsg{err: err}
		}

		rendered, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return errorMsg{err: err}
		}
		return resultMsg{rendered: string(rendered)}
	}
}

// parseVariables reads one key=value pair per line into a template context.
func parseVariables(text string) map[string]any {
	context := make(map[string]any)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		context[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return context
}

// View renders the view.
func (v *InspectorView) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("curl-parser - Interactive Inspector"))
	s.WriteString("\n\n")

	if v.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", v.err)))
		s.WriteString("\n\n")
	}

	if v.formatted != "" {
		v.resizeViewport()
		s.WriteString(resultStyle.Width(v.viewport.Width + 4).Render(v.viewport.View()))
		s.WriteString("\n\n")
	}

	s.WriteString(v.form.View())
	s.WriteString("\n")
	if v.formatted != "" {
		s.WriteString("Press 'esc' to quit, ↑/↓ to scroll, home/end to jump\n")
	} else {
		s.WriteString("Press 'esc' to quit, 'ctrl+c' to exit\n")
	}

	return s.String()
}

func (v *InspectorView) resizeViewport() {
	v.viewport.Width = max(v.width-6, 20)
	v.viewport.Height = max(v.height-15, 5)
	if v.formatted != "" {
		v.viewport.SetContent(v.formatted)
	}
}

type errorMsg struct {
	err error
}

type resultMsg struct {
	rendered string
}

// highlightJSON applies per-line syntax highlighting to pretty-printed JSON.
func highlightJSON(pretty string) string {
	lines := strings.Split(pretty, "\n")
	for i, line := range lines {
		lines[i] = highlightJSONLine(line)
	}
	return strings.Join(lines, "\n")
}

// highlightJSONLine colors one line of indented JSON. It only needs to handle
// the output of json.MarshalIndent, not arbitrary JSON.
func highlightJSONLine(line string) string {
	var out strings.Builder
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == '"':
			end := i + 1
			for end < len(line) {
				if line[end] == '\\' {
					end += 2
					continue
				}
				if line[end] == '"' {
					end++
					break
				}
				end++
			}
			if end > len(line) {
				end = len(line)
			}
			str := line[i:end]
			if end < len(line) && line[end] == ':' {
				out.WriteString(jsonKeyStyle.Render(str))
			} else {
				out.WriteString(jsonStringStyle.Render(str))
			}
			i = end
		case c == '{' || c == '}' || c == '[' || c == ']' || c == ',' || c == ':':
			out.WriteString(jsonPunctStyle.Render(string(c)))
			i++
		case c == ' ' || c == '\t':
			out.WriteByte(c)
			i++
		default:
			// numbers, true/false/null
			start := i
			for i < len(line) && line[i] != ',' && line[i] != '}' && line[i] != ']' {
				i++
			}
			out.WriteString(jsonOtherStyle.Render(line[start:i]))
		}
	}
	return out.String()
}
