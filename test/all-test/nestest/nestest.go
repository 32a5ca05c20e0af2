package nestest

import (
    "bufio"
    "fmt"
    "log"
    "os"
    "strconv"
    "strings"

    nes "github.com/kazzmir/nes6502/lib"
    test_utils "github.com/kazzmir/nes6502/test/all-test/utils"
)

/* Run kevtris' nestest in automation mode: start at 0xc000 and compare the
 * registers before every instruction with the golden log. Put nestest.nes and
 * nestest.log into 'test-roms'.
 */

const Rom = "test-roms/nestest.nes"
const Log = "test-roms/nestest.log"

/* the official opcode tests leave their error code here, 0 means everything passed */
const ResultAddress = 0x02

type Expected struct {
    Line int
    PC uint16
    A byte
    X byte
    Y byte
    P byte
    SP byte
    Cycle uint64
    Text string
}

func (expected Expected) String() string {
    return fmt.Sprintf("%04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%v", expected.PC, expected.A, expected.X, expected.Y, expected.P, expected.SP, expected.Cycle)
}

/* C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7 */
func parseLine(line string) (Expected, error) {
    var expected Expected
    expected.Text = line

    if len(line) < 4 {
        return expected, fmt.Errorf("line too short: '%v'", line)
    }

    pc, err := strconv.ParseUint(line[0:4], 16, 16)
    if err != nil {
        return expected, fmt.Errorf("bad PC in '%v': %w", line, err)
    }
    expected.PC = uint16(pc)

    registers := map[string]*byte{
        "A:": &expected.A,
        "X:": &expected.X,
        "Y:": &expected.Y,
        "P:": &expected.P,
        "SP:": &expected.SP,
    }

    found := 0
    for _, field := range strings.Fields(line) {
        for prefix, register := range registers {
            if strings.HasPrefix(field, prefix) {
                value, err := strconv.ParseUint(field[len(prefix):], 16, 8)
                if err != nil {
                    return expected, fmt.Errorf("bad %v in '%v': %w", prefix, line, err)
                }
                *register = byte(value)
                found += 1
            }
        }

        if strings.HasPrefix(field, "CYC:") {
            cycle, err := strconv.ParseUint(field[4:], 10, 64)
            if err != nil {
                return expected, fmt.Errorf("bad cycle in '%v': %w", line, err)
            }
            expected.Cycle = cycle
            found += 1
        }
    }

    if found != len(registers) + 1 {
        return expected, fmt.Errorf("missing registers in '%v'", line)
    }

    return expected, nil
}

func parseLog(path string) ([]Expected, error) {
    file, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer file.Close()

    var out []Expected
    scanner := bufio.NewScanner(file)
    lineNumber := 0
    for scanner.Scan() {
        lineNumber += 1
        line := strings.TrimRight(scanner.Text(), "\r")
        if line == "" {
            continue
        }
        expected, err := parseLine(line)
        if err != nil {
            return nil, err
        }
        expected.Line = lineNumber
        out = append(out, expected)
    }

    return out, scanner.Err()
}

/* the break and unused bits are not part of the real register */
func statusMatches(actual byte, expected byte) bool {
    return actual &^ 0x30 == expected &^ 0x30
}

func matches(cpu *nes.CPUState, expected Expected) bool {
    return cpu.PC == expected.PC &&
           cpu.A == expected.A &&
           cpu.X == expected.X &&
           cpu.Y == expected.Y &&
           cpu.SP == expected.SP &&
           statusMatches(cpu.P.Byte(), expected.P) &&
           cpu.Cycle == expected.Cycle
}

func setup(cpu *nes.CPUState) {
    cpu.Accurate = true
    cpu.PC = 0xc000
    cpu.SP = 0xfd
    cpu.P.SetByte(0x24)
    cpu.Cycle = 7
}

/* step through the golden log until the first divergence or the first
 * opcode the cpu does not know, which is where the unofficial tests start
 */
func compare(cpu *nes.CPUState, golden []Expected, debug bool) (int, error) {
    for i, expected := range golden {
        if !matches(cpu, expected) {
            text, _ := nes.Disassemble(cpu, cpu.PC)
            return i, fmt.Errorf("line %v: expected %v\n  got %04X A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%v  %v", expected.Line, expected, cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.P.Byte(), cpu.SP, cpu.Cycle, text)
        }

        if _, ok := nes.Instructions.Lookup(nes.InstructionType(cpu.LoadMemory(cpu.PC))); !ok {
            if debug {
                log.Printf("Stopping at unmapped opcode 0x%02x: %v", cpu.LoadMemory(cpu.PC), expected.Text)
            }
            return i, nil
        }

        cpu.Step()
    }

    return len(golden), nil
}

func Run(debug bool) (test_utils.Result, error) {
    result := test_utils.Result{Name: "nestest"}

    if !test_utils.HaveRom(Rom) || !test_utils.HaveRom(Log) {
        log.Print(test_utils.Skipped(Rom))
        result.Skipped += 1
        return result, nil
    }

    golden, err := parseLog(Log)
    if err != nil {
        return result, err
    }

    cpu := nes.NewCPU()
    _, err = nes.LoadNesFile(cpu, Rom)
    if err != nil {
        return result, err
    }
    setup(cpu)

    count, err := compare(cpu, golden, debug)
    if err != nil {
        log.Printf("%v after %v instructions: %v", test_utils.Failure("nestest"), count, err)
        result.Failed += 1
        return result, nil
    }

    code := cpu.LoadMemory(ResultAddress)
    if code != 0 {
        log.Printf("%v: official opcode test reported 0x%02x", test_utils.Failure("nestest"), code)
        result.Failed += 1
        return result, nil
    }

    log.Printf("%v: %v instructions matched", test_utils.Success("nestest"), count)
    result.Passed += 1
    return result, nil
}
