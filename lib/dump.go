package lib

import (
    "fmt"
    "io"
    "strings"

    "github.com/fatih/color"
)

/* read-only views of the cpu for failure reports and the debugger */

type DumpOptions struct {
    /* highlight the byte at PC and the set flags */
    Color bool
    /* bytes per row, 16 if zero */
    Width int
}

func (options DumpOptions) width() int {
    if options.Width <= 0 {
        return 16
    }
    return options.Width
}

func (options DumpOptions) highlight(text string) string {
    if !options.Color {
        return text
    }
    return color.New(color.FgYellow, color.Bold).Sprint(text)
}

/* hex dump of length bytes starting at address, wrapping at 0xffff */
func (cpu *CPUState) DumpMemory(writer io.Writer, address uint16, length int, options DumpOptions) error {
    width := options.width()
    data := cpu.MemoryRange(address, length)

    for row := 0; row < len(data); row += width {
        var line strings.Builder
        line.WriteString(fmt.Sprintf("%04X:", address + uint16(row)))
        for i := row; i < row + width && i < len(data); i++ {
            where := address + uint16(i)
            value := fmt.Sprintf("%02X", data[i])
            if where == cpu.PC {
                value = options.highlight(value)
            }
            line.WriteString(" ")
            line.WriteString(value)
        }
        _, err := fmt.Fprintln(writer, line.String())
        if err != nil {
            return err
        }
    }

    return nil
}

/* memory on both sides of PC, aligned to a row */
func (cpu *CPUState) DumpAroundPC(writer io.Writer, radius int, options DumpOptions) error {
    width := options.width()
    start := int(cpu.PC) - radius
    start -= start % width
    if start < 0 {
        start = 0
    }
    length := radius * 2 + width
    if start + length > MemorySize {
        length = MemorySize - start
    }
    return cpu.DumpMemory(writer, uint16(start), length, options)
}

/* the used part of the stack, from the top of page 1 down to SP */
func (cpu *CPUState) DumpStack(writer io.Writer) error {
    fmt.Fprintf(writer, "SP: 0x%02X\n", cpu.SP)
    for where := 0xff; where > int(cpu.SP); where-- {
        _, err := fmt.Fprintf(writer, "%04X: %02X\n", StackBase + uint16(where), cpu.LoadStack(byte(where)))
        if err != nil {
            return err
        }
    }
    return nil
}

func (cpu *CPUState) DumpRegisters(writer io.Writer, options DumpOptions) error {
    flags := cpu.P.String()
    if options.Color {
        var out strings.Builder
        for _, letter := range flags {
            if letter >= 'A' && letter <= 'Z' {
                out.WriteString(color.New(color.FgGreen).Sprint(string(letter)))
            } else {
                out.WriteRune(letter)
            }
        }
        flags = out.String()
    }

    _, err := fmt.Fprintf(writer, "A:%02X X:%02X Y:%02X SP:%02X PC:%04X P:%02X %v cycles:%v\n", cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.PC, cpu.P.Byte(), flags, cpu.Cycle)
    if err != nil {
        return err
    }

    if cpu.Halted {
        _, err = fmt.Fprintf(writer, "halted: %v\n", cpu.Err())
    }
    return err
}
