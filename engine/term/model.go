package term

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	xterm "golang.org/x/term"

	"github.com/hubastard/grui/engine/colors"
	"github.com/hubastard/grui/engine/logging"
	"github.com/hubastard/grui/engine/ui"
)

// keyMap defines the bindings handled by the terminal host itself.
type keyMap struct {
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit} }

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

func defaultKeys() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// redrawMsg asks for one more frame with the pointer unchanged, so a click
// seen by the interaction update reaches the builder right away.
type redrawMsg struct{}

func redraw() tea.Msg { return redrawMsg{} }

// Model hosts a ui.Ctx inside a Bubble Tea program. Every mouse event runs
// exactly one frame.
type Model struct {
	ctx     *ui.Ctx
	build   ui.Builder
	canvas  *Canvas
	style   ui.Style
	pointer ui.Input
	frame   *ui.Frame
	err     error

	keys keyMap
	help help.Model
	log  *zap.Logger
}

type Option func(*Model)

func WithStyle(st ui.Style) Option { return func(m *Model) { m.style = st } }

// WithOriginCells places the root's top-left corner at a cell.
func WithOriginCells(col, row int) Option {
	return func(m *Model) { m.ctx.SetOrigin(float32(col*CellW), float32(row*CellH)) }
}

func WithClearColor(c colors.Color) Option { return func(m *Model) { m.canvas.clear = c } }

func NewModel(build ui.Builder, opts ...Option) *Model {
	canvas := NewCanvas(80, 24, colors.DarkGray)
	m := &Model{
		build:  build,
		canvas: canvas,
		style:  ui.DefaultStyle,
		keys:   defaultKeys(),
		help:   help.New(),
		log:    logging.Named("term"),
	}
	m.ctx = ui.New(ui.WithMetrics(canvas.Metrics()), ui.WithOrigin(2*CellW, CellH), ui.WithLogger(m.log))
	for _, o := range opts {
		o(m)
	}
	m.canvas.Clear()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd { return redraw }

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		// one row is reserved for the help line
		m.canvas.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, m.runFrame()
	case tea.MouseMsg:
		m.pointer = pointerFrom(m.pointer, tea.MouseEvent(msg))
		return m, m.runFrame()
	case redrawMsg:
		return m, m.runFrame()
	}
	return m, nil
}

// pointerFrom folds one mouse event into the pointer snapshot. Only the
// left button drives MouseDown.
func pointerFrom(prev ui.Input, ev tea.MouseEvent) ui.Input {
	in := prev
	in.MouseX, in.MouseY = ToPixel(ev.X, ev.Y)
	if ev.Button == tea.MouseButtonLeft {
		switch ev.Action {
		case tea.MouseActionPress:
			in.MouseDown = true
		case tea.MouseActionRelease:
			in.MouseDown = false
		}
	} else if ev.Action == tea.MouseActionRelease {
		// some terminals report releases without a button
		in.MouseDown = false
	}
	return in
}

func (m *Model) runFrame() tea.Cmd {
	f, err := m.ctx.Frame(m.pointer, m.build)
	m.err = err
	if err != nil {
		return nil
	}
	m.frame = f
	m.canvas.Clear()
	ui.Paint(m.canvas, f, m.style)

	if f.State.MousePressed || f.State.MouseReleased {
		return redraw
	}
	return nil
}

// Frame is the last frame painted, nil before the first one.
func (m *Model) Frame() *ui.Frame { return m.frame }

// Err is the error of the last failed build, if any.
func (m *Model) Err() error { return m.err }

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)

// View implements tea.Model
func (m *Model) View() string {
	footer := m.help.View(m.keys)
	if m.err != nil {
		footer = errStyle.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.canvas.Render(), footer)
}

// ErrNotTerminal is returned by Run when stdout is redirected.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Run starts a full-screen program with mouse motion reporting.
func Run(build ui.Builder, opts ...Option) error {
	fd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(fd) {
		return ErrNotTerminal
	}
	m := NewModel(build, opts...)
	if w, h, err := xterm.GetSize(fd); err == nil {
		m.canvas.Resize(w, h-1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	if err != nil {
		m.log.Error("terminal program failed", zap.Error(err))
	}
	return err
}
