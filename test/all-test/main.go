package main

import (
    "log"
    "os"

    "github.com/kazzmir/nes6502/test/all-test/nestest"
    branch "github.com/kazzmir/nes6502/test/all-test/branch"
    instr "github.com/kazzmir/nes6502/test/all-test/instr"
    test_utils "github.com/kazzmir/nes6502/test/all-test/utils"

    "golang.org/x/sync/errgroup"
)

/* run from the root of the repo so that test-roms/ is found */
func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    debug := len(os.Args) > 1 && os.Args[1] == "-debug"

    suites := []func(bool) (test_utils.Result, error){
        nestest.Run,
        branch.Run,
        instr.Run,
    }

    /* every suite works on its own cpu so they can all run at once */
    results := make([]test_utils.Result, len(suites))
    var group errgroup.Group
    for i, suite := range suites {
        i, suite := i, suite
        group.Go(func() error {
            result, err := suite(debug)
            results[i] = result
            return err
        })
    }

    err := group.Wait()
    if err != nil {
        log.Printf("Error: %v", err)
    }

    ok := err == nil
    for _, result := range results {
        log.Print(result.String())
        ok = ok && result.Ok()
    }

    if !ok {
        os.Exit(1)
    }
}
