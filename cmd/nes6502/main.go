package main

import (
    "context"
    "errors"
    "fmt"
    "log"
    "os"
    "strconv"
    "strings"

    nes "github.com/kazzmir/nes6502/lib"
    "github.com/kazzmir/nes6502/cmd/nes6502/common"
    "github.com/kazzmir/nes6502/cmd/nes6502/debug"
    "github.com/kazzmir/nes6502/cmd/nes6502/display"
    "github.com/kazzmir/nes6502/data"

    "github.com/fatih/color"
    "golang.org/x/term"
)

type DumpRange struct {
    Address uint16
    Length int
}

type Arguments struct {
    NesPath string
    BinaryPath string
    Sample string
    LoadAddress uint16
    Entry uint16
    HasEntry bool
    Cycles int
    Accurate bool
    Trace bool
    Debug bool
    Display bool
    Test bool
    Dumps []DumpRange
    LoadState string
    SaveState string
    SaveConfig bool
    DisplayScale int
    DisplayCycles int
}

/* numbers can be given as 0x1234, $1234 or plain decimal */
func parseNumber(value string, bits int) (uint64, error) {
    if strings.HasPrefix(value, "$") {
        return strconv.ParseUint(value[1:], 16, bits)
    }
    return strconv.ParseUint(value, 0, bits)
}

func parseAddress(value string) (uint16, error) {
    address, err := parseNumber(value, 16)
    return uint16(address), err
}

/* addr:len */
func parseDump(value string) (DumpRange, error) {
    parts := strings.SplitN(value, ":", 2)
    if len(parts) != 2 {
        return DumpRange{}, fmt.Errorf("expected address:length but got '%v'", value)
    }

    address, err := parseAddress(parts[0])
    if err != nil {
        return DumpRange{}, err
    }

    length, err := parseNumber(parts[1], 32)
    if err != nil {
        return DumpRange{}, err
    }

    return DumpRange{Address: address, Length: int(length)}, nil
}

func parseArguments(args []string, config common.ConfigData) (Arguments, error) {
    arguments := Arguments{
        LoadAddress: 0x600,
        Cycles: config.Cycles,
        Accurate: config.Accurate,
        Trace: config.Trace,
        DisplayScale: config.DisplayScale,
        DisplayCycles: config.DisplayCycles,
    }

    argIndex := 0
    next := func(name string) (string, error) {
        argIndex += 1
        if argIndex >= len(args) {
            return "", fmt.Errorf("expected an argument for %v", name)
        }
        return args[argIndex], nil
    }

    for argIndex < len(args) {
        arg := args[argIndex]
        switch arg {
            case "-bin", "--bin":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                arguments.BinaryPath = value
            case "-sample", "--sample":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                arguments.Sample = value
                arguments.LoadAddress = data.ProgramAddress
            case "-load", "--load":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                arguments.LoadAddress, err = parseAddress(value)
                if err != nil {
                    return arguments, fmt.Errorf("bad load address: %w", err)
                }
            case "-entry", "--entry":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                arguments.Entry, err = parseAddress(value)
                if err != nil {
                    return arguments, fmt.Errorf("bad entry address: %w", err)
                }
                arguments.HasEntry = true
            case "-cycles", "--cycles":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                cycles, err := parseNumber(value, 63)
                if err != nil {
                    return arguments, fmt.Errorf("bad cycle count: %w", err)
                }
                arguments.Cycles = int(cycles)
            case "-dump", "--dump":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                dump, err := parseDump(value)
                if err != nil {
                    return arguments, err
                }
                arguments.Dumps = append(arguments.Dumps, dump)
            case "-load-state", "--load-state":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                arguments.LoadState = value
            case "-save-state", "--save-state":
                value, err := next(arg)
                if err != nil {
                    return arguments, err
                }
                arguments.SaveState = value
            case "-accurate", "--accurate":
                arguments.Accurate = true
            case "-trace", "--trace":
                arguments.Trace = true
            case "-debug", "--debug":
                arguments.Debug = true
            case "-display", "--display":
                arguments.Display = true
            case "-test", "--test":
                arguments.Test = true
            case "-save-config", "--save-config":
                arguments.SaveConfig = true
            default:
                if strings.HasPrefix(arg, "-") {
                    return arguments, fmt.Errorf("unknown option %v", arg)
                }
                arguments.NesPath = arg
        }

        argIndex += 1
    }

    if arguments.NesPath == "" && arguments.BinaryPath == "" && arguments.Sample == "" && arguments.LoadState == "" {
        return arguments, fmt.Errorf("give a .nes file, -bin file, -sample name or -load-state file")
    }

    return arguments, nil
}

/* put the program into memory and power on the cpu */
func loadProgram(cpu *nes.CPUState, arguments Arguments) error {
    if arguments.LoadState != "" {
        file, err := os.Open(arguments.LoadState)
        if err != nil {
            return err
        }
        defer file.Close()
        return cpu.LoadState(file)
    }

    if arguments.NesPath != "" {
        nesFile, err := nes.LoadNesFile(cpu, arguments.NesPath)
        if err != nil {
            return err
        }
        log.Printf("Loaded %v: mapper %v, PRG 0x%x bytes, reset vector 0x%04x", arguments.NesPath, nesFile.Mapper, len(nesFile.ProgramRom), nesFile.ResetVector())
    } else {
        var program []byte
        var err error
        if arguments.Sample != "" {
            program, err = data.ReadProgram(arguments.Sample)
            if err != nil {
                return fmt.Errorf("no sample program '%v', choose one of %v", arguments.Sample, data.Programs())
            }
        } else {
            program, err = os.ReadFile(arguments.BinaryPath)
            if err != nil {
                return err
            }
        }
        err = cpu.MapMemory(arguments.LoadAddress, program)
        if err != nil {
            return err
        }

        entry := arguments.LoadAddress
        if arguments.HasEntry {
            entry = arguments.Entry
        }
        cpu.PowerOnAt(entry)
    }

    if arguments.HasEntry && arguments.NesPath != "" {
        cpu.PC = arguments.Entry
    }

    return nil
}

func saveState(cpu *nes.CPUState, path string) error {
    file, err := os.Create(path)
    if err != nil {
        return err
    }
    defer file.Close()
    return cpu.Serialize(file)
}

func report(cpu *nes.CPUState, arguments Arguments) {
    options := nes.DumpOptions{Color: term.IsTerminal(int(os.Stdout.Fd()))}
    cpu.DumpRegisters(os.Stdout, options)
    for _, dump := range arguments.Dumps {
        err := cpu.DumpMemory(os.Stdout, dump.Address, dump.Length, options)
        if err != nil {
            log.Printf("Could not dump memory: %v", err)
        }
    }
}

func runTest(cpu *nes.CPUState, arguments Arguments) bool {
    options := nes.DefaultTestRomOptions()
    /* the test roms run for many millions of cycles, so a small budget only extends the limit */
    if uint64(arguments.Cycles) > options.MaxCycles {
        options.MaxCycles = uint64(arguments.Cycles)
    }
    status, err := nes.RunTestRom(cpu, options)
    if err != nil {
        fmt.Printf("%v %v\n", color.RedString("Failure"), err)
        return false
    }

    if status.Passed() {
        fmt.Printf("%v %v\n", color.GreenString("Success"), strings.TrimSpace(status.Message))
        return true
    }

    fmt.Printf("%v %v\n", color.RedString("Failure"), status)
    return false
}

func run(arguments Arguments) bool {
    cpu := nes.NewCPU()
    err := loadProgram(cpu, arguments)
    if err != nil {
        log.Printf("Could not load program: %v", err)
        return false
    }

    /* after loading, a saved state carries its own settings */
    cpu.Accurate = cpu.Accurate || arguments.Accurate
    if arguments.Trace {
        cpu.Debug = 1
    }

    ok := true

    switch {
        case arguments.Test:
            ok = runTest(cpu, arguments)
        case arguments.Debug && debug.CanRun(os.Stdout):
            err = debug.MakeMonitor(cpu).Run(context.Background())
            if err != nil {
                log.Printf("Debugger failed: %v", err)
                ok = false
            }
        case arguments.Display && display.CanOpen():
            err = display.Run(cpu, arguments.DisplayScale, arguments.DisplayCycles)
            if err != nil {
                log.Printf("Display failed: %v", err)
                ok = false
            }
        default:
            if arguments.Debug {
                log.Printf("Not a terminal, tracing instead of starting the debugger")
                cpu.Debug = 1
            }
            if arguments.Display {
                log.Printf("No display available, running without a window")
            }
            cpu.Execute(arguments.Cycles)
    }

    if arguments.SaveState != "" {
        err := saveState(cpu, arguments.SaveState)
        if err != nil {
            log.Printf("Could not save state: %v", err)
        }
    }

    report(cpu, arguments)

    if cpu.Halted {
        var opcodeError *nes.UnknownOpcodeError
        if errors.As(cpu.Err(), &opcodeError) {
            log.Printf("Halted on opcode 0x%02x at 0x%04x", opcodeError.Opcode, opcodeError.PC)
        }
        return false
    }

    return ok
}

func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    config, err := common.LoadConfigData()
    if err != nil {
        config = common.DefaultConfigData()
    }

    arguments, err := parseArguments(os.Args[1:], config)
    if err != nil {
        fmt.Printf("%v\n", err)
        fmt.Printf("Usage: nes6502 [file.nes] [-bin file [-load addr]] [-sample name] [-entry addr] [-cycles n] [-accurate] [-trace] [-debug] [-display] [-test] [-dump addr:len] [-load-state file] [-save-state file] [-save-config]\n")
        os.Exit(1)
    }

    if arguments.SaveConfig {
        config.Cycles = arguments.Cycles
        config.Accurate = arguments.Accurate
        config.Trace = arguments.Trace
        err = common.SaveConfigData(config)
        if err != nil {
            log.Printf("Could not save config: %v", err)
        }
    }

    if !run(arguments) {
        os.Exit(1)
    }
}
