package debug

import (
    "context"
    "fmt"
    "testing"
    "time"

    nes "github.com/kazzmir/nes6502/lib"
)

func TestLogBuffer(test *testing.T){
    buffer := &logBuffer{max: 3}

    fmt.Fprint(buffer, "one\ntwo\nthr")
    fmt.Fprint(buffer, "ee\nfour\n")

    lines := buffer.Last(10)
    if len(lines) != 3 || lines[0] != "two" || lines[2] != "four" {
        test.Fatalf("unexpected lines %v", lines)
    }

    lines = buffer.Last(1)
    if len(lines) != 1 || lines[0] != "four" {
        test.Fatalf("unexpected last line %v", lines)
    }
}

func TestMonitorEmulate(test *testing.T){
    cpu := nes.NewCPU()
    // inx, jmp $1000
    cpu.MapMemory(0x1000, []byte{0xe8, 0x4c, 0x00, 0x10})
    cpu.PowerOnAt(0x1000)

    monitor := MakeMonitor(cpu)
    monitor.Debugger().AddPCBreakpoint(0x1001)

    quit, cancel := context.WithCancel(context.Background())
    done := make(chan struct{})
    go func(){
        monitor.emulate(quit)
        close(done)
    }()

    /* the monitor starts stopped, so this runs until the breakpoint */
    monitor.send(DebugCommandContinue)

    deadline := time.Now().Add(5 * time.Second)
    for {
        monitor.lock.Lock()
        x := cpu.X
        monitor.lock.Unlock()
        if x == 1 && monitor.Debugger().IsStopped() {
            break
        }
        if time.Now().After(deadline) {
            test.Fatalf("cpu never reached the breakpoint")
        }
        time.Sleep(time.Millisecond)
    }

    cancel()
    <-done

    if cpu.PC != 0x1001 {
        test.Fatalf("expected to stop at 0x1001 but PC is 0x%04x", cpu.PC)
    }
}
