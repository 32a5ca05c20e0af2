package branch

import (
    "log"

    nes "github.com/kazzmir/nes6502/lib"
    test_utils "github.com/kazzmir/nes6502/test/all-test/utils"
)

/* Run blargg's branch timing tests. Unzip them into 'test-roms' such that 'test-roms/branch_timing_tests' exists.
 * This test will run
 *   1.Branch_Basics.nes
 *   2.Backward_Branch.nes
 *   3.Forward_Branch.nes
 * And expects a passing value (1) to be written to address 0xf8
 */

const ResultAddress = 0xf8

var Roms = []string{
    "test-roms/branch_timing_tests/1.Branch_Basics.nes",
    "test-roms/branch_timing_tests/2.Backward_Branch.nes",
    "test-roms/branch_timing_tests/3.Forward_Branch.nes",
}

/* For each test, run the rom for 150k cycles and check whats written to 0xf8 */
func doTest(rom string, debug bool) (bool, error) {
    cpu := nes.NewCPU()
    if debug {
        cpu.Debug = 1
    }

    _, err := nes.LoadNesFile(cpu, rom)
    if err != nil {
        return false, err
    }

    result, err := nes.RunForResult(cpu, ResultAddress, 150000)
    if err != nil {
        return false, err
    }

    return result == 1, nil
}

func Run(debug bool) (test_utils.Result, error) {
    result := test_utils.Result{Name: "branch"}

    for _, rom := range Roms {
        if !test_utils.HaveRom(rom) {
            log.Print(test_utils.Skipped(rom))
            result.Skipped += 1
            continue
        }

        ok, err := doTest(rom, debug)
        if err != nil {
            log.Printf("%v: %v", test_utils.Failure(rom), err)
            result.Failed += 1
            continue
        }

        if ok {
            log.Print(test_utils.Success(rom))
            result.Passed += 1
        } else {
            log.Print(test_utils.Failure(rom))
            result.Failed += 1
        }
    }

    return result, nil
}
