package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-kolorful/kolorful"
	"github.com/valerio/go-kolorful/kolorful/backend/terminal/render"
	"github.com/valerio/go-kolorful/kolorful/cpu"
	"github.com/valerio/go-kolorful/kolorful/disasm"
)

const (
	frameTime     = time.Second / 60
	stepsPerFrame = 20000
	logCapacity   = 256

	leftWidth      = 38
	registerHeight = 9
	stackRows      = 8
	disasmBefore   = 6
	disasmAfter    = 10
	disasmHeight   = disasmBefore + disasmAfter + 1
	minTermWidth   = 80
	minTermHeight  = 24
)

var (
	borderStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	codeStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	currentStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	errorStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Backend is an interactive debugger drawn with tcell: registers, stack,
// disassembly around PC, serial output and logs, with step/run control and
// breakpoints.
type Backend struct {
	screen  tcell.Screen
	console *kolorful.Console

	logBuffer  *render.LogBuffer
	logLevel   slog.Level
	prevLogger *slog.Logger

	paused   bool
	quit     bool
	status   string
	fault    error
	executed int

	// disassembly of the active ROM, rebuilt when the boot ROM unmaps
	listing     []disasm.Line
	listingBoot bool
}

// New creates a debugger for console. It starts paused.
func New(console *kolorful.Console) *Backend {
	return &Backend{
		console:   console,
		logBuffer: render.NewLogBuffer(logCapacity),
		logLevel:  slog.LevelInfo,
		paused:    true,
	}
}

// Init takes over the terminal, or screen when it is not nil, and routes
// slog output at level and above into the log panel.
func (t *Backend) Init(screen tcell.Screen, level slog.Level) error {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	t.screen = screen
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.logLevel = level
	t.prevLogger = slog.Default()
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, level)))

	slog.Info("debugger ready", "pc", fmt.Sprintf("0x%04X", t.console.CPU().PC()))
	return nil
}

// Cleanup releases the terminal and restores the previous logger.
func (t *Backend) Cleanup() {
	if t.prevLogger != nil {
		slog.SetDefault(t.prevLogger)
		t.prevLogger = nil
	}
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
}

// Run processes input and drives the console until the user quits, the
// process is interrupted or ctx is done.
func (t *Backend) Run(ctx context.Context) error {
	if t.screen == nil {
		return errors.New("terminal: Run called before Init")
	}
	defer t.Cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go t.screen.ChannelEvents(events, done)
	defer close(done)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	t.draw()
	for !t.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			t.handleEvent(ev)
		case <-ticker.C:
			if !t.paused {
				t.runFrame(ctx)
			}
		}
		if !t.quit {
			t.draw()
		}
	}
	return nil
}

func (t *Backend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Backend) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyF10:
		t.step()
		return
	case tcell.KeyF9:
		t.toggleBreakpoint()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		t.quit = true
	case 'n', 's':
		t.step()
	case ' ':
		t.togglePause()
	case 'b':
		t.toggleBreakpoint()
	case 'c':
		t.console.Breakpoints().Clear()
		slog.Info("breakpoints cleared")
	case '+', '=':
		t.changeLogLevel(-1)
	case '-', '_':
		t.changeLogLevel(1)
	}
}

// step executes one instruction while paused, stepping over a breakpoint at
// the current PC.
func (t *Backend) step() {
	if !t.paused || !t.canExecute() {
		return
	}
	if _, err := t.console.Continue(); err != nil {
		t.stop(err)
		return
	}
	t.executed++
	t.status = "STEP"
}

func (t *Backend) togglePause() {
	if !t.paused {
		t.paused = true
		t.status = "PAUSED"
		slog.Info("paused", "pc", fmt.Sprintf("0x%04X", t.console.CPU().PC()))
		return
	}
	if !t.canExecute() {
		return
	}

	// leave the breakpoint we are sitting on before running again
	if t.console.Breakpoints().Has(t.console.CPU().PC()) {
		if _, err := t.console.Continue(); err != nil {
			t.stop(err)
			return
		}
		t.executed++
	}
	t.paused = false
	t.status = "RUNNING"
}

func (t *Backend) canExecute() bool {
	if t.fault != nil {
		slog.Warn("execution stopped by a fault", "err", t.fault)
		return false
	}
	return true
}

func (t *Backend) toggleBreakpoint() {
	pc := t.console.CPU().PC()
	on := t.console.Breakpoints().Toggle(pc)
	slog.Info("breakpoint", "addr", fmt.Sprintf("0x%04X", pc), "set", on)
}

func (t *Backend) runFrame(ctx context.Context) {
	n, err := t.console.RunFor(ctx, stepsPerFrame)
	t.executed += n
	if err != nil {
		t.stop(err)
	}
}

func (t *Backend) stop(err error) {
	t.paused = true
	switch {
	case errors.Is(err, kolorful.ErrBreakpoint):
		t.status = "BREAK"
		slog.Info("breakpoint hit", "pc", fmt.Sprintf("0x%04X", t.console.CPU().PC()))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		t.status = "PAUSED"
	default:
		t.status = "FAULT"
		t.fault = err
		slog.Error("execution stopped", "err", err)
	}
}

func (t *Backend) changeLogLevel(direction int) {
	old := t.logLevel
	next := t.logLevel + slog.Level(4*direction)
	if next < slog.LevelDebug || next > slog.LevelError {
		return
	}
	t.logLevel = next
	slog.Info("log filter changed", "from", old, "to", t.logLevel)
}

// disassembly returns the lines around pc, reusing the listing of the
// active ROM until the boot ROM is unmapped.
func (t *Backend) disassembly(pc uint16, boot bool) []disasm.Line {
	c := t.console.CPU()
	if t.listing == nil || t.listingBoot != boot {
		t.listing = disasm.Listing(c)
		t.listingBoot = boot
		slog.Debug("listing rebuilt", "lines", len(t.listing), "boot", boot)
	}
	return disasm.Window(t.listing, c, pc, disasmBefore, disasmAfter)
}

func (t *Backend) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	if w < minTermWidth || h < minTermHeight {
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		render.Text(t.screen, 0, h/2, w, msg, errorStyle)
		t.screen.Show()
		return
	}

	state := t.console.CPU().Snapshot()
	right := leftWidth + 2
	rightWidth := w - right

	render.VLine(t.screen, leftWidth, 0, h-1, borderStyle)

	render.Text(t.screen, 1, 0, leftWidth-1, " CPU ", titleStyle)
	t.drawRegisters(1, 1, leftWidth-1, state)

	y := registerHeight + 1
	render.HLine(t.screen, 0, leftWidth, y, borderStyle)
	render.Text(t.screen, 1, y, leftWidth-1, " Stack ", titleStyle)
	t.drawStack(1, y+1, leftWidth-1, state)

	y += stackRows + 1
	render.HLine(t.screen, 0, leftWidth, y, borderStyle)
	render.Text(t.screen, 1, y, leftWidth-1, " Serial ", titleStyle)
	t.drawSerial(1, y+1, leftWidth-1, h-1-(y+1))

	render.Text(t.screen, right, 0, rightWidth, " Disassembly ", titleStyle)
	t.drawDisassembly(right, 1, rightWidth, state)

	y = disasmHeight + 1
	render.HLine(t.screen, leftWidth+1, w, y, borderStyle)
	render.Text(t.screen, right, y, rightWidth, fmt.Sprintf(" Logs [%s] (-/+ filter) ", t.logLevel), titleStyle)
	t.drawLogs(right, y+1, rightWidth, h-1-(y+1))

	help := " SPACE=run/pause N=step B=breakpoint C=clear breakpoints Q=quit "
	render.Text(t.screen, 0, h-1, w, help, borderStyle)

	t.screen.Show()
}

func (t *Backend) drawRegisters(x, y, width int, s cpu.State) {
	status := t.status
	if status == "" {
		status = "PAUSED"
	}

	next := "?"
	if s.NextErr != nil {
		next = s.NextErr.Error()
	} else if s.Next != nil {
		next = s.Next.String()
	}

	onOff := map[bool]string{true: "ON", false: "OFF"}
	lines := []string{
		fmt.Sprintf("Status: %s  Steps: %d", status, t.executed),
		fmt.Sprintf("AF: 0x%04X  Flags: %s", s.Registers.AF, s.Flags),
		fmt.Sprintf("BC: 0x%04X  DE: 0x%04X", s.Registers.BC, s.Registers.DE),
		fmt.Sprintf("HL: 0x%04X  SP: 0x%04X", s.Registers.HL, s.Registers.SP),
		fmt.Sprintf("PC: 0x%04X  Boot: %s", s.Registers.PC, onOff[s.Boot]),
		fmt.Sprintf("IME: %s  IE: 0x%02X  IF: 0x%02X", onOff[s.IME], s.IE, s.IF),
		fmt.Sprintf("Halted: %s  Cycles: %d", onOff[s.Halted], s.Cycles),
		"Next: " + next,
		"Breaks: " + t.breakpointList(),
	}

	for i, line := range lines {
		style := textStyle
		if i == 0 && t.fault != nil {
			style = errorStyle
		}
		render.Text(t.screen, x, y+i, width, render.Truncate(line, width), style)
	}
}

func (t *Backend) breakpointList() string {
	list := t.console.Breakpoints().List()
	if len(list) == 0 {
		return "none"
	}
	parts := make([]string, len(list))
	for i, a := range list {
		parts[i] = fmt.Sprintf("%04X", a)
	}
	return strings.Join(parts, " ")
}

// drawStack shows the stack as little-endian words, SP first.
func (t *Backend) drawStack(x, y, width int, s cpu.State) {
	if len(s.Stack) == 0 {
		render.Text(t.screen, x, y, width, "(empty)", textStyle)
		return
	}
	for row := 0; row < stackRows && row*2 < len(s.Stack); row++ {
		i := row * 2
		address := s.Registers.SP + uint16(i)
		var line string
		if i+1 < len(s.Stack) {
			line = fmt.Sprintf("SP+%02X  0x%04X: 0x%02X%02X", i, address, s.Stack[i+1], s.Stack[i])
		} else {
			line = fmt.Sprintf("SP+%02X  0x%04X: 0x%02X", i, address, s.Stack[i])
		}
		render.Text(t.screen, x, y+row, width, line, textStyle)
	}
}

func (t *Backend) drawSerial(x, y, width, height int) {
	if height <= 0 {
		return
	}
	lines := t.console.Serial().Lines()
	if pending := t.console.Serial().Pending(); pending != "" {
		lines = append(lines, pending)
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for i, line := range lines {
		render.Text(t.screen, x, y+i, width, render.Truncate(line, width), textStyle)
	}
}

func (t *Backend) drawDisassembly(x, y, width int, s cpu.State) {
	pc := s.Registers.PC
	bps := t.console.Breakpoints()
	for i, line := range t.disassembly(pc, s.Boot) {
		if i >= disasmHeight {
			break
		}
		marker, bp, style := " ", " ", codeStyle
		if line.Address == pc {
			marker, style = "→", currentStyle
		}
		if bps.Has(line.Address) {
			bp = "●"
		}
		if line.Err != nil {
			style = errorStyle
		}
		text := render.Truncate(marker+bp+" "+line.String(), width)
		render.Text(t.screen, x, y+i, width, text, style)
	}
}

func (t *Backend) drawLogs(x, y, width, height int) {
	if height <= 0 {
		return
	}
	for i, entry := range t.logBuffer.Recent(height, t.logLevel) {
		style := textStyle
		switch {
		case entry.Level >= slog.LevelError:
			style = errorStyle
		case entry.Level >= slog.LevelWarn:
			style = titleStyle
		case entry.Level < slog.LevelInfo:
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		render.Text(t.screen, x, y+i, width, render.Truncate(render.FormatLogEntry(entry), width), style)
	}
}
