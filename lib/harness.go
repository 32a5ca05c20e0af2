package lib

import (
    "bytes"
    "fmt"
)

/* blargg's test roms report through memory at 0x6000:
 *   0x6000       status, 0x80 while running, 0x81 when a reset is wanted,
 *                otherwise the result code (0 is a pass)
 *   0x6001-6003  0xde 0xb0 0x61 once the status is valid
 *   0x6004       zero terminated text describing the result
 */

const TestStatusAddress uint16 = 0x6000
const TestMessageAddress uint16 = 0x6004

/* longest message we bother reading */
const maxTestMessage = 0x1000

const (
    TestPassed byte = 0x00
    TestRunning byte = 0x80
    TestNeedsReset byte = 0x81
)

var testSignature = []byte{0xde, 0xb0, 0x61}

type TestStatus struct {
    /* the signature bytes are present */
    Valid bool
    Code byte
    Message string
}

func (status TestStatus) Passed() bool {
    return status.Valid && status.Code == TestPassed
}

func (status TestStatus) Running() bool {
    return status.Valid && status.Code == TestRunning
}

func (status TestStatus) NeedsReset() bool {
    return status.Valid && status.Code == TestNeedsReset
}

func (status TestStatus) Failed() bool {
    return status.Valid && status.Code >= 0x01 && status.Code <= 0x7f
}

/* the rom has written a final result */
func (status TestStatus) Done() bool {
    return status.Passed() || status.Failed()
}

func (status TestStatus) String() string {
    if !status.Valid {
        return "no result"
    }
    switch {
        case status.Passed(): return fmt.Sprintf("passed %v", status.Message)
        case status.Running(): return "running"
        case status.NeedsReset(): return "needs reset"
    }
    return fmt.Sprintf("failed with code 0x%02x: %v", status.Code, status.Message)
}

func ReadTestStatus(cpu *CPUState) TestStatus {
    if !bytes.Equal(cpu.MemoryRange(TestStatusAddress + 1, len(testSignature)), testSignature) {
        return TestStatus{}
    }

    var message bytes.Buffer
    for i := 0; i < maxTestMessage; i++ {
        value := cpu.LoadMemory(TestMessageAddress + uint16(i))
        if value == 0 {
            break
        }
        message.WriteByte(value)
    }

    return TestStatus{
        Valid: true,
        Code: cpu.LoadMemory(TestStatusAddress),
        Message: message.String(),
    }
}

type TestRomOptions struct {
    /* cycles to run between checks of the status, 10k if zero */
    SliceCycles int
    /* cycles to wait after a reset request, the roms need at least 100ms */
    ResetDelay int
    /* give up after this many cycles, 0 means no limit */
    MaxCycles uint64
}

func DefaultTestRomOptions() TestRomOptions {
    return TestRomOptions{
        SliceCycles: 10000,
        ResetDelay: int(CPUSpeed) / 5,
        MaxCycles: uint64(CPUSpeed * 60),
    }
}

type TestTimeoutError struct {
    Cycles uint64
    Status TestStatus
}

func (err *TestTimeoutError) Error() string {
    return fmt.Sprintf("test did not finish after %v cycles, last status: %v", err.Cycles, err.Status)
}

/* run a test rom that uses the 0x6000 protocol until it reports a result */
func RunTestRom(cpu *CPUState, options TestRomOptions) (TestStatus, error) {
    slice := options.SliceCycles
    if slice <= 0 {
        slice = 10000
    }

    for {
        cpu.Execute(slice)
        if cpu.Halted {
            return ReadTestStatus(cpu), cpu.Err()
        }

        status := ReadTestStatus(cpu)
        if status.Done() {
            return status, nil
        }

        if status.NeedsReset() {
            cpu.Execute(options.ResetDelay)
            if cpu.Halted {
                return status, cpu.Err()
            }
            /* the rom sets the status back to running once it restarts */
            cpu.StoreMemory(TestStatusAddress, TestRunning)
            cpu.Reset()
        }

        if options.MaxCycles > 0 && cpu.Cycle >= options.MaxCycles {
            return status, &TestTimeoutError{Cycles: cpu.Cycle, Status: status}
        }
    }
}

/* run for a fixed number of cycles and return the byte at address, for roms
 * that report a single result byte
 */
func RunForResult(cpu *CPUState, address uint16, cycles int) (byte, error) {
    cpu.Execute(cycles)
    if cpu.Halted {
        return cpu.LoadMemory(address), cpu.Err()
    }
    return cpu.LoadMemory(address), nil
}
