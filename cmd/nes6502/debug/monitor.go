package debug

import (
    "bytes"
    "context"
    "errors"
    "fmt"
    "io"
    "log"
    "os"
    "strings"
    "sync"
    "sync/atomic"
    "time"

    nes "github.com/kazzmir/nes6502/lib"

    "github.com/jroimartin/gocui"
    "golang.org/x/sync/errgroup"
    "golang.org/x/term"
)

const (
    viewRegisters = "registers"
    viewStack = "stack"
    viewDisassembly = "disassembly"
    viewMemory = "memory"
    viewBreakpoints = "breakpoints"
    viewLog = "log"
    viewHelp = "help"
)

/* keeps the last few lines written by the log package so they can be shown
 * in a view instead of scribbling over the terminal
 */
type logBuffer struct {
    lock sync.Mutex
    lines []string
    partial []byte
    max int
}

func (buffer *logBuffer) Write(data []byte) (int, error) {
    buffer.lock.Lock()
    defer buffer.lock.Unlock()

    buffer.partial = append(buffer.partial, data...)
    for {
        index := bytes.IndexByte(buffer.partial, '\n')
        if index == -1 {
            break
        }
        buffer.lines = append(buffer.lines, string(buffer.partial[:index]))
        buffer.partial = buffer.partial[index+1:]
    }

    if len(buffer.lines) > buffer.max {
        buffer.lines = buffer.lines[len(buffer.lines) - buffer.max:]
    }

    return len(data), nil
}

func (buffer *logBuffer) Last(count int) []string {
    buffer.lock.Lock()
    defer buffer.lock.Unlock()
    if count > len(buffer.lines) {
        count = len(buffer.lines)
    }
    return append([]string(nil), buffer.lines[len(buffer.lines) - count:]...)
}

type Monitor struct {
    cpu *nes.CPUState
    debugger *DefaultDebugger
    /* held while the cpu is stepping or being drawn */
    lock sync.Mutex
    reset atomic.Bool
    logs *logBuffer
}

func MakeMonitor(cpu *nes.CPUState) *Monitor {
    return &Monitor{
        cpu: cpu,
        debugger: MakeDebugger(),
        logs: &logBuffer{max: 200},
    }
}

func (monitor *Monitor) Debugger() *DefaultDebugger {
    return monitor.debugger
}

/* wake up the emulator goroutine if it is waiting, drop the command if the queue is full */
func (monitor *Monitor) send(command DebugCommand){
    select {
        case monitor.debugger.Commands <- command:
        default:
    }
}

func (monitor *Monitor) layout(gui *gocui.Gui) error {
    maxX, maxY := gui.Size()
    middle := maxX / 2
    if middle < 40 {
        middle = 40
    }

    type box struct {
        name string
        title string
        x0, y0, x1, y1 int
    }

    boxes := []box{
        box{viewRegisters, "Registers", 0, 0, middle - 1, 3},
        box{viewDisassembly, "Disassembly", 0, 4, middle - 1, maxY - 9},
        box{viewBreakpoints, "Breakpoints", 0, maxY - 8, middle - 1, maxY - 4},
        box{viewHelp, "Keys", 0, maxY - 3, maxX - 1, maxY - 1},
        box{viewStack, "Stack", middle, 0, maxX - 1, 9},
        box{viewMemory, "Memory", middle, 10, maxX - 1, maxY - 13},
        box{viewLog, "Log", middle, maxY - 12, maxX - 1, maxY - 4},
    }

    for _, item := range boxes {
        if item.y1 <= item.y0 {
            item.y1 = item.y0 + 1
        }
        view, err := gui.SetView(item.name, item.x0, item.y0, item.x1, item.y1)
        if err != nil {
            if !errors.Is(err, gocui.ErrUnknownView) {
                return err
            }
            view.Title = item.title
            view.Wrap = false
            if item.name == viewHelp {
                fmt.Fprint(view, "s: step  c: continue  p: pause  b: toggle breakpoint at PC  r: reset  q: quit")
            }
        }
    }

    return nil
}

func (monitor *Monitor) render(gui *gocui.Gui) error {
    monitor.lock.Lock()
    defer monitor.lock.Unlock()

    cpu := monitor.cpu

    if view, err := gui.View(viewRegisters); err == nil {
        view.Clear()
        cpu.DumpRegisters(view, nes.DumpOptions{})
        state := "running"
        if monitor.debugger.IsStopped() {
            state = "stopped"
        }
        fmt.Fprintf(view, "%v", state)
    }

    if view, err := gui.View(viewStack); err == nil {
        view.Clear()
        cpu.DumpStack(view)
    }

    if view, err := gui.View(viewDisassembly); err == nil {
        view.Clear()
        _, height := view.Size()
        if height < 1 {
            height = 1
        }
        for i, line := range nes.DisassembleRange(cpu, cpu.PC, height) {
            marker := "  "
            if i == 0 {
                marker = "> "
            }
            fmt.Fprintf(view, "%v%v\n", marker, line)
        }
    }

    if view, err := gui.View(viewMemory); err == nil {
        view.Clear()
        _, height := view.Size()
        cpu.DumpAroundPC(view, height / 2 * 16, nes.DumpOptions{Color: true})
    }

    if view, err := gui.View(viewBreakpoints); err == nil {
        view.Clear()
        for _, breakpoint := range monitor.debugger.GetBreakpoints() {
            fmt.Fprintf(view, "%v: 0x%04X\n", breakpoint.Id, breakpoint.PC)
        }
    }

    if view, err := gui.View(viewLog); err == nil {
        view.Clear()
        _, height := view.Size()
        fmt.Fprint(view, strings.Join(monitor.logs.Last(height), "\n"))
    }

    return nil
}

func (monitor *Monitor) bindKeys(gui *gocui.Gui) error {
    quit := func(gui *gocui.Gui, view *gocui.View) error {
        return gocui.ErrQuit
    }

    step := func(gui *gocui.Gui, view *gocui.View) error {
        monitor.debugger.Stop()
        monitor.send(DebugCommandStep)
        return nil
    }

    continue_ := func(gui *gocui.Gui, view *gocui.View) error {
        monitor.send(DebugCommandContinue)
        return nil
    }

    pause := func(gui *gocui.Gui, view *gocui.View) error {
        monitor.debugger.Stop()
        return nil
    }

    reset := func(gui *gocui.Gui, view *gocui.View) error {
        monitor.reset.Store(true)
        monitor.send(DebugCommandStep)
        return nil
    }

    breakpoint := func(gui *gocui.Gui, view *gocui.View) error {
        monitor.lock.Lock()
        pc := monitor.cpu.PC
        monitor.lock.Unlock()
        if monitor.debugger.TogglePCBreakpoint(pc) {
            log.Printf("Breakpoint added at 0x%04x", pc)
        } else {
            log.Printf("Breakpoint removed at 0x%04x", pc)
        }
        return monitor.render(gui)
    }

    bindings := []struct {
        key interface{}
        handler func(*gocui.Gui, *gocui.View) error
    }{
        {gocui.KeyCtrlC, quit},
        {'q', quit},
        {'s', step},
        {'c', continue_},
        {'p', pause},
        {'r', reset},
        {'b', breakpoint},
    }

    for _, binding := range bindings {
        err := gui.SetKeybinding("", binding.key, gocui.ModNone, binding.handler)
        if err != nil {
            return err
        }
    }

    return nil
}

/* step the cpu whenever the debugger lets it */
func (monitor *Monitor) emulate(quit context.Context){
    for {
        if !monitor.debugger.Handle(quit, monitor.cpu) {
            return
        }

        monitor.lock.Lock()
        if monitor.reset.Swap(false) {
            log.Printf("Reset")
            monitor.cpu.Reset()
        } else {
            monitor.cpu.Step()
            if monitor.cpu.Halted {
                log.Printf("Halted: %v", monitor.cpu.Err())
            }
        }
        monitor.lock.Unlock()

        select {
            case <-quit.Done():
                return
            default:
        }
    }
}

/* Run the interactive monitor on the terminal until the user quits. The cpu
 * starts out stopped at its current PC.
 */
func (monitor *Monitor) Run(ctx context.Context) error {
    gui, err := gocui.NewGui(gocui.OutputNormal)
    if err != nil {
        return err
    }
    defer gui.Close()

    log.SetOutput(monitor.logs)
    defer log.SetOutput(os.Stderr)

    gui.SetManagerFunc(monitor.layout)
    err = monitor.bindKeys(gui)
    if err != nil {
        return err
    }

    quit, cancel := context.WithCancel(ctx)
    defer cancel()

    group, quit := errgroup.WithContext(quit)

    group.Go(func() error {
        monitor.emulate(quit)
        return nil
    })

    group.Go(func() error {
        ticker := time.NewTicker(time.Second / 15)
        defer ticker.Stop()
        for {
            select {
                case <-quit.Done():
                    return nil
                case <-ticker.C:
                    gui.Update(monitor.render)
            }
        }
    })

    err = gui.MainLoop()
    cancel()
    group.Wait()

    if errors.Is(err, gocui.ErrQuit) {
        return nil
    }
    return err
}

/* the monitor needs a real terminal */
func CanRun(output io.Writer) bool {
    file, ok := output.(*os.File)
    if !ok {
        return false
    }
    return term.IsTerminal(int(file.Fd()))
}
