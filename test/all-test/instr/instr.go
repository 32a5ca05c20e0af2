package instr

import (
    "errors"
    "log"
    "path/filepath"
    "sort"

    nes "github.com/kazzmir/nes6502/lib"
    test_utils "github.com/kazzmir/nes6502/test/all-test/utils"
)

/* Run blargg's instr_test-v5 singles. Unzip them into 'test-roms' such that
 * 'test-roms/instr_test-v5/rom_singles' exists. Each rom reports through
 * the status block at 0x6000.
 */

const RomDirectory = "test-roms/instr_test-v5/rom_singles"

func doTest(rom string, debug bool) (nes.TestStatus, error) {
    cpu := nes.NewCPU()
    if debug {
        cpu.Debug = 1
    }

    _, err := nes.LoadNesFile(cpu, rom)
    if err != nil {
        return nes.TestStatus{}, err
    }

    return nes.RunTestRom(cpu, nes.DefaultTestRomOptions())
}

func Run(debug bool) (test_utils.Result, error) {
    result := test_utils.Result{Name: "instr_test-v5"}

    roms, err := filepath.Glob(filepath.Join(RomDirectory, "*.nes"))
    if err != nil {
        return result, err
    }
    sort.Strings(roms)

    if len(roms) == 0 {
        log.Print(test_utils.Skipped(RomDirectory))
        result.Skipped += 1
        return result, nil
    }

    for _, rom := range roms {
        status, err := doTest(rom, debug)

        var mapperError *nes.UnsupportedMapperError
        if errors.As(err, &mapperError) {
            log.Printf("%v: %v", test_utils.Skipped(rom), err)
            result.Skipped += 1
            continue
        }

        if err != nil {
            log.Printf("%v: %v", test_utils.Failure(rom), err)
            result.Failed += 1
            continue
        }

        if status.Passed() {
            log.Print(test_utils.Success(rom))
            result.Passed += 1
        } else {
            log.Printf("%v: %v", test_utils.Failure(rom), status)
            result.Failed += 1
        }
    }

    return result, nil
}
