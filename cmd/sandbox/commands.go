package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hubastard/grui/engine/colors"
	"github.com/hubastard/grui/engine/core"
	glbackend "github.com/hubastard/grui/engine/gfx/gl"
	"github.com/hubastard/grui/engine/logging"
	"github.com/hubastard/grui/engine/platform"
	"github.com/hubastard/grui/engine/profiler"
	"github.com/hubastard/grui/engine/term"
	"github.com/hubastard/grui/engine/text"
	"github.com/hubastard/grui/engine/ui"
)

// Command flags
var (
	winWidth  int
	winHeight int
	fontPath  string
	fontSize  float32
	showDebug bool
	dumpX     float32
	dumpY     float32
	dumpFixed bool
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(dumpCmd)

	runCmd.Flags().IntVar(&winWidth, "width", 0, "Window width (overrides config)")
	runCmd.Flags().IntVar(&winHeight, "height", 0, "Window height (overrides config)")
	runCmd.Flags().StringVar(&fontPath, "font", "", "TTF/OTF font file (default: built-in bitmap face)")
	runCmd.Flags().Float32Var(&fontSize, "font-size", 0, "Font size in pixels (overrides config)")
	runCmd.Flags().BoolVar(&showDebug, "debug", false, "Show the statistics overlay")

	dumpCmd.Flags().Float32Var(&dumpX, "x", 0, "Pointer x for the dumped frame")
	dumpCmd.Flags().Float32Var(&dumpY, "y", 0, "Pointer y for the dumped frame")
	dumpCmd.Flags().BoolVar(&dumpFixed, "fixed", true, "Size leaves with the fixed 140x28 / 280x20 metrics instead of the built-in font")
}

// runCmd opens the OpenGL window
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the screen in an OpenGL window",
	Example: `  # Built-in sign-in demo
  sandbox run

  # A layout file with a TrueType font and the stats overlay
  sandbox run --layout screens/login.yaml --font fonts/Inter.ttf --debug`,
	RunE: runGL,
}

// termCmd runs the screen in the terminal
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show the screen in the terminal (mouse required)",
	Long: `Run the screen inside the terminal. Widgets are sized in cells and the
mouse drives hover and clicks exactly like in the window. Logs go to stderr,
so redirect it when logging is enabled:

  sandbox term --log-level debug 2>grui.log`,
	RunE: runTerm,
}

// dumpCmd prints a single frame without any window
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the flattened items of one frame",
	Long: `Build, lay out and flatten one frame headlessly, then print every item
with its uid, widget and absolute rect in traversal order.`,
	Example: `  # Dump the embedded demo layout
  sandbox dump --layout hello

  # Which button is hovered at (100, 110)?
  sandbox dump --x 100 --y 110`,
	RunE: runDump,
}

func runGL(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("width") {
		cfg.Width = winWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = winHeight
	}
	if cmd.Flags().Changed("font") {
		cfg.FontPath = fontPath
	}
	if cmd.Flags().Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	build, err := pickBuilder(cfg.Layout)
	if err != nil {
		return err
	}

	var font *text.Font
	if cfg.FontPath != "" {
		if font, err = text.LoadTTF(cfg.FontPath, cfg.FontSize); err != nil {
			return err
		}
	}

	app := &App{build: build, debug: showDebug, log: logging.Named("sandbox")}
	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg, font)
	}
	return core.Run(app, cfg, newWindow, newRenderer)
}

func runTerm(cmd *cobra.Command, args []string) error {
	build, err := pickBuilder(cfg.Layout)
	if err != nil {
		return err
	}
	return term.Run(build, term.WithClearColor(colors.Color(cfg.ClearColor)))
}

func runDump(cmd *cobra.Command, args []string) error {
	build, err := pickBuilder(cfg.Layout)
	if err != nil {
		return err
	}
	var metrics ui.Metrics = ui.DefaultMetrics
	if !dumpFixed {
		metrics = ui.NewTextMetrics(text.Default(), 0)
	}
	ctx := ui.New(ui.WithMetrics(metrics), ui.WithOrigin(cfg.OriginX, cfg.OriginY))
	f, err := ctx.Frame(ui.Input{MouseX: dumpX, MouseY: dumpY}, build)
	if err != nil {
		return err
	}
	return writeDump(cmd.OutOrStdout(), f)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// writeDump prints the frame as a table, marking the hovered item.
func writeDump(w io.Writer, f *ui.Frame) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("UID", "WIDGET", "X", "Y", "W", "H", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, it := range f.Items {
		mark := ""
		if f.State.Hover.Is(it.UID) {
			mark = "hover"
		}
		t.Row(
			it.UID.String(),
			it.Widget.String(),
			num(it.Rect.Pos[0]), num(it.Rect.Pos[1]),
			num(it.Rect.Size[0]), num(it.Rect.Size[1]),
			mark,
		)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func num(v float32) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// App is the GL host: it pushes the ui layer and the optional overlay.
type App struct {
	build ui.Builder
	debug bool
	log   *zap.Logger
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	st := ui.DefaultStyle
	st.FontSize = e.Config.FontSize
	layer := NewLayerUI(a.build, st)
	e.Layers.Push(layer)
	if a.debug {
		e.Layers.Push(NewLayerDebug(layer))
	}
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.log.Info("bye", zap.Duration("uptime", e.Uptime()))
}
