package debug

import (
    "context"
    "log"
    "sync"
    "sync/atomic"

    nes "github.com/kazzmir/nes6502/lib"
)

type DebugCommand interface {
    Name() string
}

type DebugCommandSimple struct {
    name string
}

func (command *DebugCommandSimple) Name() string {
    return command.name
}

func makeCommand(name string) DebugCommand {
    return &DebugCommandSimple{name: name}
}

var DebugCommandStep DebugCommand = makeCommand("step")
var DebugCommandContinue DebugCommand = makeCommand("continue")

// break when the cpu's PC is at a specific value
type Breakpoint struct {
    PC uint16
    Id uint64
}

func (breakpoint *Breakpoint) Hit(cpu *nes.CPUState) bool {
    return breakpoint.PC == cpu.PC
}

type Debugger interface {
    /* called before every instruction, returns false when the run should end */
    Handle(quit context.Context, cpu *nes.CPUState) bool
}

type DefaultDebugger struct {
    Commands chan DebugCommand
    stopped atomic.Bool

    lock sync.Mutex
    Breakpoints []Breakpoint
    BreakpointId uint64
}

func (debugger *DefaultDebugger) IsStopped() bool {
    return debugger.stopped.Load()
}

func (debugger *DefaultDebugger) ContinueUntilBreak(){
    debugger.stopped.Store(false)
}

func (debugger *DefaultDebugger) Stop(){
    debugger.stopped.Store(true)
}

func (debugger *DefaultDebugger) AddPCBreakpoint(pc uint16) uint64 {
    debugger.lock.Lock()
    defer debugger.lock.Unlock()

    id := debugger.BreakpointId
    debugger.Breakpoints = append(debugger.Breakpoints, Breakpoint{
        PC: pc,
        Id: id,
    })
    debugger.BreakpointId += 1
    return id
}

func (debugger *DefaultDebugger) RemoveBreakpoint(id uint64){
    debugger.lock.Lock()
    defer debugger.lock.Unlock()

    var out []Breakpoint
    for _, breakpoint := range debugger.Breakpoints {
        if breakpoint.Id != id {
            out = append(out, breakpoint)
        }
    }
    debugger.Breakpoints = out
}

/* add a breakpoint at pc, or remove the one that is already there.
 * returns true if a breakpoint now exists at pc
 */
func (debugger *DefaultDebugger) TogglePCBreakpoint(pc uint16) bool {
    for _, breakpoint := range debugger.GetBreakpoints() {
        if breakpoint.PC == pc {
            debugger.RemoveBreakpoint(breakpoint.Id)
            return false
        }
    }

    debugger.AddPCBreakpoint(pc)
    return true
}

func (debugger *DefaultDebugger) GetBreakpoints() []Breakpoint {
    debugger.lock.Lock()
    defer debugger.lock.Unlock()
    return append([]Breakpoint(nil), debugger.Breakpoints...)
}

func (debugger *DefaultDebugger) hitBreakpoint(cpu *nes.CPUState) bool {
    debugger.lock.Lock()
    defer debugger.lock.Unlock()
    for _, breakpoint := range debugger.Breakpoints {
        if breakpoint.Hit(cpu) {
            return true
        }
    }
    return false
}

func (debugger *DefaultDebugger) Handle(quit context.Context, cpu *nes.CPUState) bool {
    if !debugger.IsStopped() && debugger.hitBreakpoint(cpu) {
        log.Printf("[debug] breakpoint at 0x%04x", cpu.PC)
        debugger.Stop()
    }

    if cpu.Halted {
        debugger.Stop()
    }

    if debugger.IsStopped() {
        select {
            case <-quit.Done():
                return false
            case command := <-debugger.Commands:
                if command == DebugCommandStep {
                    log.Printf("[debug] step")
                }
                if command == DebugCommandContinue {
                    log.Printf("[debug] continue")
                    debugger.ContinueUntilBreak()
                }
        }
    }

    return true
}

func MakeDebugger() *DefaultDebugger {
    debugger := &DefaultDebugger{
        Commands: make(chan DebugCommand, 5),
        BreakpointId: 1,
    }
    debugger.Stop()
    return debugger
}
