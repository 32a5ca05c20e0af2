package lib

import (
    "fmt"
    "strings"
)

/* render the instruction at address in assembler syntax. returns the text
 * and the address of the following instruction. Memory is only read.
 */
func Disassemble(cpu *CPUState, address uint16) (string, uint16) {
    opcode := cpu.LoadMemory(address)
    description := cpu.instructions()[opcode]
    if description == nil {
        return fmt.Sprintf(".byte $%02X", opcode), address + 1
    }

    name := strings.ToUpper(description.Name)
    low := cpu.LoadMemory(address + 1)
    word := cpu.LoadWord(address + 1)
    next := address + 1 + uint16(description.Operands)

    switch description.Mode {
        case ModeImplied: return name, next
        case ModeAccumulator: return name + " A", next
        case ModeImmediate: return fmt.Sprintf("%v #$%02X", name, low), next
        case ModeZeroPage: return fmt.Sprintf("%v $%02X", name, low), next
        case ModeZeroPageX: return fmt.Sprintf("%v $%02X,X", name, low), next
        case ModeZeroPageY: return fmt.Sprintf("%v $%02X,Y", name, low), next
        case ModeAbsolute: return fmt.Sprintf("%v $%04X", name, word), next
        case ModeAbsoluteX: return fmt.Sprintf("%v $%04X,X", name, word), next
        case ModeAbsoluteY: return fmt.Sprintf("%v $%04X,Y", name, word), next
        case ModeIndirect: return fmt.Sprintf("%v ($%04X)", name, word), next
        case ModeIndexedIndirect: return fmt.Sprintf("%v ($%02X,X)", name, low), next
        case ModeIndirectIndexed: return fmt.Sprintf("%v ($%02X),Y", name, low), next
        case ModeRelative:
            target := next + uint16(int16(int8(low)))
            return fmt.Sprintf("%v $%04X", name, target), next
    }

    return name, next
}

/* count instructions starting at address */
func DisassembleRange(cpu *CPUState, address uint16, count int) []string {
    var out []string
    for i := 0; i < count; i++ {
        text, next := Disassemble(cpu, address)
        out = append(out, fmt.Sprintf("%04X  %v", address, text))
        address = next
    }
    return out
}
