package utils

import (
    "errors"
    "fmt"
    "os"

    "github.com/fatih/color"
)

func Failure(message string) string {
    red := color.New(color.FgRed).SprintFunc()
    return fmt.Sprintf("%v %v", message, red("failed"))
}

func Success(message string) string {
    green := color.New(color.FgGreen).SprintFunc()
    return fmt.Sprintf("%v %v", message, green("passed"))
}

func Skipped(message string) string {
    yellow := color.New(color.FgYellow).SprintFunc()
    return fmt.Sprintf("%v %v", message, yellow("skipped"))
}

/* true if the rom exists, the roms are not part of the repo */
func HaveRom(path string) bool {
    _, err := os.Stat(path)
    return !errors.Is(err, os.ErrNotExist)
}

/* the outcome of one suite */
type Result struct {
    Name string
    Passed int
    Failed int
    Skipped int
}

func (result Result) Ok() bool {
    return result.Failed == 0
}

func (result Result) String() string {
    text := fmt.Sprintf("%v: %v passed, %v failed, %v skipped", result.Name, result.Passed, result.Failed, result.Skipped)
    if result.Failed > 0 {
        return Failure(text)
    }
    if result.Passed == 0 {
        return Skipped(text)
    }
    return Success(text)
}
