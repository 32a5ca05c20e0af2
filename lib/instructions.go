package lib

import (
    "bytes"
    "fmt"
    "io"
)

type Operation int

const (
    OpADC Operation = iota
    OpAND
    OpASL
    OpBCC
    OpBCS
    OpBEQ
    OpBIT
    OpBMI
    OpBNE
    OpBPL
    OpBRK
    OpBVC
    OpBVS
    OpCLC
    OpCLD
    OpCLI
    OpCLV
    OpCMP
    OpCPX
    OpCPY
    OpDEC
    OpDEX
    OpDEY
    OpEOR
    OpINC
    OpINX
    OpINY
    OpJMP
    OpJSR
    OpLDA
    OpLDX
    OpLDY
    OpLSR
    OpNOP
    OpORA
    OpPHA
    OpPHP
    OpPLA
    OpPLP
    OpROL
    OpROR
    OpRTI
    OpRTS
    OpSBC
    OpSEC
    OpSED
    OpSEI
    OpSTA
    OpSTX
    OpSTY
    OpTAX
    OpTAY
    OpTSX
    OpTXA
    OpTXS
    OpTYA
)

var operationNames = [...]string{
    OpADC: "adc", OpAND: "and", OpASL: "asl", OpBCC: "bcc", OpBCS: "bcs",
    OpBEQ: "beq", OpBIT: "bit", OpBMI: "bmi", OpBNE: "bne", OpBPL: "bpl",
    OpBRK: "brk", OpBVC: "bvc", OpBVS: "bvs", OpCLC: "clc", OpCLD: "cld",
    OpCLI: "cli", OpCLV: "clv", OpCMP: "cmp", OpCPX: "cpx", OpCPY: "cpy",
    OpDEC: "dec", OpDEX: "dex", OpDEY: "dey", OpEOR: "eor", OpINC: "inc",
    OpINX: "inx", OpINY: "iny", OpJMP: "jmp", OpJSR: "jsr", OpLDA: "lda",
    OpLDX: "ldx", OpLDY: "ldy", OpLSR: "lsr", OpNOP: "nop", OpORA: "ora",
    OpPHA: "pha", OpPHP: "php", OpPLA: "pla", OpPLP: "plp", OpROL: "rol",
    OpROR: "ror", OpRTI: "rti", OpRTS: "rts", OpSBC: "sbc", OpSEC: "sec",
    OpSED: "sed", OpSEI: "sei", OpSTA: "sta", OpSTX: "stx", OpSTY: "sty",
    OpTAX: "tax", OpTAY: "tay", OpTSX: "tsx", OpTXA: "txa", OpTXS: "txs",
    OpTYA: "tya",
}

func (operation Operation) String() string {
    if operation < 0 || int(operation) >= len(operationNames) {
        return "???"
    }
    return operationNames[operation]
}

/* how an operation touches its operand, which decides the page cross rules */
type AccessKind int

const (
    AccessNone AccessKind = iota
    AccessRead
    AccessWrite
    AccessReadModifyWrite
)

func (operation Operation) Access() AccessKind {
    switch operation {
        case OpADC, OpAND, OpBIT, OpCMP, OpCPX, OpCPY, OpEOR,
             OpLDA, OpLDX, OpLDY, OpORA, OpSBC, OpNOP:
            return AccessRead
        case OpSTA, OpSTX, OpSTY:
            return AccessWrite
        case OpASL, OpLSR, OpROL, OpROR, OpINC, OpDEC:
            return AccessReadModifyWrite
    }
    return AccessNone
}

type InstructionType byte

/* every opcode the cpu knows about. Anything not listed here halts the cpu. */
const (
    Instruction_BRK InstructionType = 0x00
    Instruction_ORA_indirect_x InstructionType = 0x01
    Instruction_NOP_zero_1 InstructionType = 0x04
    Instruction_ORA_zero InstructionType = 0x05
    Instruction_ASL_zero InstructionType = 0x06
    Instruction_PHP InstructionType = 0x08
    Instruction_ORA_immediate InstructionType = 0x09
    Instruction_ASL_accumulator InstructionType = 0x0a
    Instruction_NOP_absolute InstructionType = 0x0c
    Instruction_ORA_absolute InstructionType = 0x0d
    Instruction_ASL_absolute InstructionType = 0x0e
    Instruction_BPL InstructionType = 0x10
    Instruction_ORA_indirect_y InstructionType = 0x11
    Instruction_NOP_zero_x_1 InstructionType = 0x14
    Instruction_ORA_zero_x InstructionType = 0x15
    Instruction_ASL_zero_x InstructionType = 0x16
    Instruction_CLC InstructionType = 0x18
    Instruction_ORA_absolute_y InstructionType = 0x19
    Instruction_NOP_1 InstructionType = 0x1a
    Instruction_NOP_absolute_x_1 InstructionType = 0x1c
    Instruction_ORA_absolute_x InstructionType = 0x1d
    Instruction_ASL_absolute_x InstructionType = 0x1e
    Instruction_JSR InstructionType = 0x20
    Instruction_AND_indirect_x InstructionType = 0x21
    Instruction_BIT_zero InstructionType = 0x24
    Instruction_AND_zero InstructionType = 0x25
    Instruction_ROL_zero InstructionType = 0x26
    Instruction_PLP InstructionType = 0x28
    Instruction_AND_immediate InstructionType = 0x29
    Instruction_ROL_accumulator InstructionType = 0x2a
    Instruction_BIT_absolute InstructionType = 0x2c
    Instruction_AND_absolute InstructionType = 0x2d
    Instruction_ROL_absolute InstructionType = 0x2e
    Instruction_BMI InstructionType = 0x30
    Instruction_AND_indirect_y InstructionType = 0x31
    Instruction_NOP_zero_x_2 InstructionType = 0x34
    Instruction_AND_zero_x InstructionType = 0x35
    Instruction_ROL_zero_x InstructionType = 0x36
    Instruction_SEC InstructionType = 0x38
    Instruction_AND_absolute_y InstructionType = 0x39
    Instruction_NOP_2 InstructionType = 0x3a
    Instruction_NOP_absolute_x_2 InstructionType = 0x3c
    Instruction_AND_absolute_x InstructionType = 0x3d
    Instruction_ROL_absolute_x InstructionType = 0x3e
    Instruction_RTI InstructionType = 0x40
    Instruction_EOR_indirect_x InstructionType = 0x41
    Instruction_NOP_zero_2 InstructionType = 0x44
    Instruction_EOR_zero InstructionType = 0x45
    Instruction_LSR_zero InstructionType = 0x46
    Instruction_PHA InstructionType = 0x48
    Instruction_EOR_immediate InstructionType = 0x49
    Instruction_LSR_accumulator InstructionType = 0x4a
    Instruction_JMP_absolute InstructionType = 0x4c
    Instruction_EOR_absolute InstructionType = 0x4d
    Instruction_LSR_absolute InstructionType = 0x4e
    Instruction_BVC InstructionType = 0x50
    Instruction_EOR_indirect_y InstructionType = 0x51
    Instruction_NOP_zero_x_3 InstructionType = 0x54
    Instruction_EOR_zero_x InstructionType = 0x55
    Instruction_LSR_zero_x InstructionType = 0x56
    Instruction_CLI InstructionType = 0x58
    Instruction_EOR_absolute_y InstructionType = 0x59
    Instruction_NOP_3 InstructionType = 0x5a
    Instruction_NOP_absolute_x_3 InstructionType = 0x5c
    Instruction_EOR_absolute_x InstructionType = 0x5d
    Instruction_LSR_absolute_x InstructionType = 0x5e
    Instruction_RTS InstructionType = 0x60
    Instruction_ADC_indirect_x InstructionType = 0x61
    Instruction_NOP_zero_3 InstructionType = 0x64
    Instruction_ADC_zero InstructionType = 0x65
    Instruction_ROR_zero InstructionType = 0x66
    Instruction_PLA InstructionType = 0x68
    Instruction_ADC_immediate InstructionType = 0x69
    Instruction_ROR_accumulator InstructionType = 0x6a
    Instruction_JMP_indirect InstructionType = 0x6c
    Instruction_ADC_absolute InstructionType = 0x6d
    Instruction_ROR_absolute InstructionType = 0x6e
    Instruction_BVS InstructionType = 0x70
    Instruction_ADC_indirect_y InstructionType = 0x71
    Instruction_NOP_zero_x_4 InstructionType = 0x74
    Instruction_ADC_zero_x InstructionType = 0x75
    Instruction_ROR_zero_x InstructionType = 0x76
    Instruction_SEI InstructionType = 0x78
    Instruction_ADC_absolute_y InstructionType = 0x79
    Instruction_NOP_4 InstructionType = 0x7a
    Instruction_NOP_absolute_x_4 InstructionType = 0x7c
    Instruction_ADC_absolute_x InstructionType = 0x7d
    Instruction_ROR_absolute_x InstructionType = 0x7e
    Instruction_NOP_immediate_1 InstructionType = 0x80
    Instruction_STA_indirect_x InstructionType = 0x81
    Instruction_NOP_immediate_2 InstructionType = 0x82
    Instruction_STY_zero InstructionType = 0x84
    Instruction_STA_zero InstructionType = 0x85
    Instruction_STX_zero InstructionType = 0x86
    Instruction_DEY InstructionType = 0x88
    Instruction_NOP_immediate_3 InstructionType = 0x89
    Instruction_TXA InstructionType = 0x8a
    Instruction_STY_absolute InstructionType = 0x8c
    Instruction_STA_absolute InstructionType = 0x8d
    Instruction_STX_absolute InstructionType = 0x8e
    Instruction_BCC InstructionType = 0x90
    Instruction_STA_indirect_y InstructionType = 0x91
    Instruction_STY_zero_x InstructionType = 0x94
    Instruction_STA_zero_x InstructionType = 0x95
    Instruction_STX_zero_y InstructionType = 0x96
    Instruction_TYA InstructionType = 0x98
    Instruction_STA_absolute_y InstructionType = 0x99
    Instruction_TXS InstructionType = 0x9a
    Instruction_STA_absolute_x InstructionType = 0x9d
    Instruction_LDY_immediate InstructionType = 0xa0
    Instruction_LDA_indirect_x InstructionType = 0xa1
    Instruction_LDX_immediate InstructionType = 0xa2
    Instruction_LDY_zero InstructionType = 0xa4
    Instruction_LDA_zero InstructionType = 0xa5
    Instruction_LDX_zero InstructionType = 0xa6
    Instruction_TAY InstructionType = 0xa8
    Instruction_LDA_immediate InstructionType = 0xa9
    Instruction_TAX InstructionType = 0xaa
    Instruction_LDY_absolute InstructionType = 0xac
    Instruction_LDA_absolute InstructionType = 0xad
    Instruction_LDX_absolute InstructionType = 0xae
    Instruction_BCS InstructionType = 0xb0
    Instruction_LDA_indirect_y InstructionType = 0xb1
    Instruction_LDY_zero_x InstructionType = 0xb4
    Instruction_LDA_zero_x InstructionType = 0xb5
    Instruction_LDX_zero_y InstructionType = 0xb6
    Instruction_CLV InstructionType = 0xb8
    Instruction_LDA_absolute_y InstructionType = 0xb9
    Instruction_TSX InstructionType = 0xba
    Instruction_LDY_absolute_x InstructionType = 0xbc
    Instruction_LDA_absolute_x InstructionType = 0xbd
    Instruction_LDX_absolute_y InstructionType = 0xbe
    Instruction_CPY_immediate InstructionType = 0xc0
    Instruction_CMP_indirect_x InstructionType = 0xc1
    Instruction_NOP_immediate_4 InstructionType = 0xc2
    Instruction_CPY_zero InstructionType = 0xc4
    Instruction_CMP_zero InstructionType = 0xc5
    Instruction_DEC_zero InstructionType = 0xc6
    Instruction_INY InstructionType = 0xc8
    Instruction_CMP_immediate InstructionType = 0xc9
    Instruction_DEX InstructionType = 0xca
    Instruction_CPY_absolute InstructionType = 0xcc
    Instruction_CMP_absolute InstructionType = 0xcd
    Instruction_DEC_absolute InstructionType = 0xce
    Instruction_BNE InstructionType = 0xd0
    Instruction_CMP_indirect_y InstructionType = 0xd1
    Instruction_NOP_zero_x_5 InstructionType = 0xd4
    Instruction_CMP_zero_x InstructionType = 0xd5
    Instruction_DEC_zero_x InstructionType = 0xd6
    Instruction_CLD InstructionType = 0xd8
    Instruction_CMP_absolute_y InstructionType = 0xd9
    Instruction_NOP_5 InstructionType = 0xda
    Instruction_NOP_absolute_x_5 InstructionType = 0xdc
    Instruction_CMP_absolute_x InstructionType = 0xdd
    Instruction_DEC_absolute_x InstructionType = 0xde
    Instruction_CPX_immediate InstructionType = 0xe0
    Instruction_SBC_indirect_x InstructionType = 0xe1
    Instruction_NOP_immediate_5 InstructionType = 0xe2
    Instruction_CPX_zero InstructionType = 0xe4
    Instruction_SBC_zero InstructionType = 0xe5
    Instruction_INC_zero InstructionType = 0xe6
    Instruction_INX InstructionType = 0xe8
    Instruction_SBC_immediate InstructionType = 0xe9
    Instruction_NOP InstructionType = 0xea
    Instruction_CPX_absolute InstructionType = 0xec
    Instruction_SBC_absolute InstructionType = 0xed
    Instruction_INC_absolute InstructionType = 0xee
    Instruction_BEQ InstructionType = 0xf0
    Instruction_SBC_indirect_y InstructionType = 0xf1
    Instruction_NOP_zero_x_6 InstructionType = 0xf4
    Instruction_SBC_zero_x InstructionType = 0xf5
    Instruction_INC_zero_x InstructionType = 0xf6
    Instruction_SED InstructionType = 0xf8
    Instruction_SBC_absolute_y InstructionType = 0xf9
    Instruction_NOP_6 InstructionType = 0xfa
    Instruction_NOP_absolute_x_6 InstructionType = 0xfc
    Instruction_SBC_absolute_x InstructionType = 0xfd
    Instruction_INC_absolute_x InstructionType = 0xfe
)

type InstructionDescription struct {
    Name string
    Operation Operation
    Mode AddressingMode
    Operands byte
    /* cycles on real hardware without any page crossing or taken branch */
    Cycles byte
}

/* indexed by opcode, a nil entry is an opcode the cpu cannot execute */
type InstructionTable [256]*InstructionDescription

func (table *InstructionTable) add(kind InstructionType, operation Operation, mode AddressingMode, cycles byte){
    if table[kind] != nil {
        panic(fmt.Sprintf("internal error: opcode 0x%02x defined twice", byte(kind)))
    }
    table[kind] = &InstructionDescription{
        Name: operation.String(),
        Operation: operation,
        Mode: mode,
        Operands: mode.Operands(),
        Cycles: cycles,
    }
}

func (table *InstructionTable) Lookup(kind InstructionType) (*InstructionDescription, bool) {
    description := table[kind]
    return description, description != nil
}

/* the decoding rules of the cpu, one entry per opcode */
func MakeInstructionTable() InstructionTable {
    var table InstructionTable

    table.add(Instruction_ADC_immediate, OpADC, ModeImmediate, 2)
    table.add(Instruction_ADC_zero, OpADC, ModeZeroPage, 3)
    table.add(Instruction_ADC_zero_x, OpADC, ModeZeroPageX, 4)
    table.add(Instruction_ADC_absolute, OpADC, ModeAbsolute, 4)
    table.add(Instruction_ADC_absolute_x, OpADC, ModeAbsoluteX, 4)
    table.add(Instruction_ADC_absolute_y, OpADC, ModeAbsoluteY, 4)
    table.add(Instruction_ADC_indirect_x, OpADC, ModeIndexedIndirect, 6)
    table.add(Instruction_ADC_indirect_y, OpADC, ModeIndirectIndexed, 5)

    table.add(Instruction_AND_immediate, OpAND, ModeImmediate, 2)
    table.add(Instruction_AND_zero, OpAND, ModeZeroPage, 3)
    table.add(Instruction_AND_zero_x, OpAND, ModeZeroPageX, 4)
    table.add(Instruction_AND_absolute, OpAND, ModeAbsolute, 4)
    table.add(Instruction_AND_absolute_x, OpAND, ModeAbsoluteX, 4)
    table.add(Instruction_AND_absolute_y, OpAND, ModeAbsoluteY, 4)
    table.add(Instruction_AND_indirect_x, OpAND, ModeIndexedIndirect, 6)
    table.add(Instruction_AND_indirect_y, OpAND, ModeIndirectIndexed, 5)

    table.add(Instruction_ASL_accumulator, OpASL, ModeAccumulator, 2)
    table.add(Instruction_ASL_zero, OpASL, ModeZeroPage, 5)
    table.add(Instruction_ASL_zero_x, OpASL, ModeZeroPageX, 6)
    table.add(Instruction_ASL_absolute, OpASL, ModeAbsolute, 6)
    table.add(Instruction_ASL_absolute_x, OpASL, ModeAbsoluteX, 7)

    table.add(Instruction_BCC, OpBCC, ModeRelative, 2)
    table.add(Instruction_BCS, OpBCS, ModeRelative, 2)
    table.add(Instruction_BEQ, OpBEQ, ModeRelative, 2)
    table.add(Instruction_BMI, OpBMI, ModeRelative, 2)
    table.add(Instruction_BNE, OpBNE, ModeRelative, 2)
    table.add(Instruction_BPL, OpBPL, ModeRelative, 2)
    table.add(Instruction_BVC, OpBVC, ModeRelative, 2)
    table.add(Instruction_BVS, OpBVS, ModeRelative, 2)

    table.add(Instruction_BIT_zero, OpBIT, ModeZeroPage, 3)
    table.add(Instruction_BIT_absolute, OpBIT, ModeAbsolute, 4)

    table.add(Instruction_BRK, OpBRK, ModeImplied, 7)

    table.add(Instruction_CLC, OpCLC, ModeImplied, 2)
    table.add(Instruction_CLD, OpCLD, ModeImplied, 2)
    table.add(Instruction_CLI, OpCLI, ModeImplied, 2)
    table.add(Instruction_CLV, OpCLV, ModeImplied, 2)

    table.add(Instruction_CMP_immediate, OpCMP, ModeImmediate, 2)
    table.add(Instruction_CMP_zero, OpCMP, ModeZeroPage, 3)
    table.add(Instruction_CMP_zero_x, OpCMP, ModeZeroPageX, 4)
    table.add(Instruction_CMP_absolute, OpCMP, ModeAbsolute, 4)
    table.add(Instruction_CMP_absolute_x, OpCMP, ModeAbsoluteX, 4)
    table.add(Instruction_CMP_absolute_y, OpCMP, ModeAbsoluteY, 4)
    table.add(Instruction_CMP_indirect_x, OpCMP, ModeIndexedIndirect, 6)
    table.add(Instruction_CMP_indirect_y, OpCMP, ModeIndirectIndexed, 5)

    table.add(Instruction_CPX_immediate, OpCPX, ModeImmediate, 2)
    table.add(Instruction_CPX_zero, OpCPX, ModeZeroPage, 3)
    table.add(Instruction_CPX_absolute, OpCPX, ModeAbsolute, 4)

    table.add(Instruction_CPY_immediate, OpCPY, ModeImmediate, 2)
    table.add(Instruction_CPY_zero, OpCPY, ModeZeroPage, 3)
    table.add(Instruction_CPY_absolute, OpCPY, ModeAbsolute, 4)

    table.add(Instruction_DEC_zero, OpDEC, ModeZeroPage, 5)
    table.add(Instruction_DEC_zero_x, OpDEC, ModeZeroPageX, 6)
    table.add(Instruction_DEC_absolute, OpDEC, ModeAbsolute, 6)
    table.add(Instruction_DEC_absolute_x, OpDEC, ModeAbsoluteX, 7)

    table.add(Instruction_DEX, OpDEX, ModeImplied, 2)
    table.add(Instruction_DEY, OpDEY, ModeImplied, 2)

    table.add(Instruction_EOR_immediate, OpEOR, ModeImmediate, 2)
    table.add(Instruction_EOR_zero, OpEOR, ModeZeroPage, 3)
    table.add(Instruction_EOR_zero_x, OpEOR, ModeZeroPageX, 4)
    table.add(Instruction_EOR_absolute, OpEOR, ModeAbsolute, 4)
    table.add(Instruction_EOR_absolute_x, OpEOR, ModeAbsoluteX, 4)
    table.add(Instruction_EOR_absolute_y, OpEOR, ModeAbsoluteY, 4)
    table.add(Instruction_EOR_indirect_x, OpEOR, ModeIndexedIndirect, 6)
    table.add(Instruction_EOR_indirect_y, OpEOR, ModeIndirectIndexed, 5)

    table.add(Instruction_INC_zero, OpINC, ModeZeroPage, 5)
    table.add(Instruction_INC_zero_x, OpINC, ModeZeroPageX, 6)
    table.add(Instruction_INC_absolute, OpINC, ModeAbsolute, 6)
    table.add(Instruction_INC_absolute_x, OpINC, ModeAbsoluteX, 7)

    table.add(Instruction_INX, OpINX, ModeImplied, 2)
    table.add(Instruction_INY, OpINY, ModeImplied, 2)

    table.add(Instruction_JMP_absolute, OpJMP, ModeAbsolute, 3)
    table.add(Instruction_JMP_indirect, OpJMP, ModeIndirect, 5)
    table.add(Instruction_JSR, OpJSR, ModeAbsolute, 6)

    table.add(Instruction_LDA_immediate, OpLDA, ModeImmediate, 2)
    table.add(Instruction_LDA_zero, OpLDA, ModeZeroPage, 3)
    table.add(Instruction_LDA_zero_x, OpLDA, ModeZeroPageX, 4)
    table.add(Instruction_LDA_absolute, OpLDA, ModeAbsolute, 4)
    table.add(Instruction_LDA_absolute_x, OpLDA, ModeAbsoluteX, 4)
    table.add(Instruction_LDA_absolute_y, OpLDA, ModeAbsoluteY, 4)
    table.add(Instruction_LDA_indirect_x, OpLDA, ModeIndexedIndirect, 6)
    table.add(Instruction_LDA_indirect_y, OpLDA, ModeIndirectIndexed, 5)

    table.add(Instruction_LDX_immediate, OpLDX, ModeImmediate, 2)
    table.add(Instruction_LDX_zero, OpLDX, ModeZeroPage, 3)
    table.add(Instruction_LDX_zero_y, OpLDX, ModeZeroPageY, 4)
    table.add(Instruction_LDX_absolute, OpLDX, ModeAbsolute, 4)
    table.add(Instruction_LDX_absolute_y, OpLDX, ModeAbsoluteY, 4)

    table.add(Instruction_LDY_immediate, OpLDY, ModeImmediate, 2)
    table.add(Instruction_LDY_zero, OpLDY, ModeZeroPage, 3)
    table.add(Instruction_LDY_zero_x, OpLDY, ModeZeroPageX, 4)
    table.add(Instruction_LDY_absolute, OpLDY, ModeAbsolute, 4)
    table.add(Instruction_LDY_absolute_x, OpLDY, ModeAbsoluteX, 4)

    table.add(Instruction_LSR_accumulator, OpLSR, ModeAccumulator, 2)
    table.add(Instruction_LSR_zero, OpLSR, ModeZeroPage, 5)
    table.add(Instruction_LSR_zero_x, OpLSR, ModeZeroPageX, 6)
    table.add(Instruction_LSR_absolute, OpLSR, ModeAbsolute, 6)
    table.add(Instruction_LSR_absolute_x, OpLSR, ModeAbsoluteX, 7)

    table.add(Instruction_ORA_immediate, OpORA, ModeImmediate, 2)
    table.add(Instruction_ORA_zero, OpORA, ModeZeroPage, 3)
    table.add(Instruction_ORA_zero_x, OpORA, ModeZeroPageX, 4)
    table.add(Instruction_ORA_absolute, OpORA, ModeAbsolute, 4)
    table.add(Instruction_ORA_absolute_x, OpORA, ModeAbsoluteX, 4)
    table.add(Instruction_ORA_absolute_y, OpORA, ModeAbsoluteY, 4)
    table.add(Instruction_ORA_indirect_x, OpORA, ModeIndexedIndirect, 6)
    table.add(Instruction_ORA_indirect_y, OpORA, ModeIndirectIndexed, 5)

    table.add(Instruction_PHA, OpPHA, ModeImplied, 3)
    table.add(Instruction_PHP, OpPHP, ModeImplied, 3)
    table.add(Instruction_PLA, OpPLA, ModeImplied, 4)
    table.add(Instruction_PLP, OpPLP, ModeImplied, 4)

    table.add(Instruction_ROL_accumulator, OpROL, ModeAccumulator, 2)
    table.add(Instruction_ROL_zero, OpROL, ModeZeroPage, 5)
    table.add(Instruction_ROL_zero_x, OpROL, ModeZeroPageX, 6)
    table.add(Instruction_ROL_absolute, OpROL, ModeAbsolute, 6)
    table.add(Instruction_ROL_absolute_x, OpROL, ModeAbsoluteX, 7)

    table.add(Instruction_ROR_accumulator, OpROR, ModeAccumulator, 2)
    table.add(Instruction_ROR_zero, OpROR, ModeZeroPage, 5)
    table.add(Instruction_ROR_zero_x, OpROR, ModeZeroPageX, 6)
    table.add(Instruction_ROR_absolute, OpROR, ModeAbsolute, 6)
    table.add(Instruction_ROR_absolute_x, OpROR, ModeAbsoluteX, 7)

    table.add(Instruction_RTI, OpRTI, ModeImplied, 6)
    table.add(Instruction_RTS, OpRTS, ModeImplied, 6)

    table.add(Instruction_SBC_immediate, OpSBC, ModeImmediate, 2)
    table.add(Instruction_SBC_zero, OpSBC, ModeZeroPage, 3)
    table.add(Instruction_SBC_zero_x, OpSBC, ModeZeroPageX, 4)
    table.add(Instruction_SBC_absolute, OpSBC, ModeAbsolute, 4)
    table.add(Instruction_SBC_absolute_x, OpSBC, ModeAbsoluteX, 4)
    table.add(Instruction_SBC_absolute_y, OpSBC, ModeAbsoluteY, 4)
    table.add(Instruction_SBC_indirect_x, OpSBC, ModeIndexedIndirect, 6)
    table.add(Instruction_SBC_indirect_y, OpSBC, ModeIndirectIndexed, 5)

    table.add(Instruction_SEC, OpSEC, ModeImplied, 2)
    table.add(Instruction_SED, OpSED, ModeImplied, 2)
    table.add(Instruction_SEI, OpSEI, ModeImplied, 2)

    /* indexed stores list the cycle count that includes the page cross fixup */
    table.add(Instruction_STA_zero, OpSTA, ModeZeroPage, 3)
    table.add(Instruction_STA_zero_x, OpSTA, ModeZeroPageX, 4)
    table.add(Instruction_STA_absolute, OpSTA, ModeAbsolute, 4)
    table.add(Instruction_STA_absolute_x, OpSTA, ModeAbsoluteX, 5)
    table.add(Instruction_STA_absolute_y, OpSTA, ModeAbsoluteY, 5)
    table.add(Instruction_STA_indirect_x, OpSTA, ModeIndexedIndirect, 6)
    table.add(Instruction_STA_indirect_y, OpSTA, ModeIndirectIndexed, 6)

    table.add(Instruction_STX_zero, OpSTX, ModeZeroPage, 3)
    table.add(Instruction_STX_zero_y, OpSTX, ModeZeroPageY, 4)
    table.add(Instruction_STX_absolute, OpSTX, ModeAbsolute, 4)

    table.add(Instruction_STY_zero, OpSTY, ModeZeroPage, 3)
    table.add(Instruction_STY_zero_x, OpSTY, ModeZeroPageX, 4)
    table.add(Instruction_STY_absolute, OpSTY, ModeAbsolute, 4)

    table.add(Instruction_TAX, OpTAX, ModeImplied, 2)
    table.add(Instruction_TAY, OpTAY, ModeImplied, 2)
    table.add(Instruction_TSX, OpTSX, ModeImplied, 2)
    table.add(Instruction_TXA, OpTXA, ModeImplied, 2)
    table.add(Instruction_TXS, OpTXS, ModeImplied, 2)
    table.add(Instruction_TYA, OpTYA, ModeImplied, 2)

    table.add(Instruction_NOP, OpNOP, ModeImplied, 2)

    /* undocumented nops that do nothing at all */
    table.add(Instruction_NOP_1, OpNOP, ModeImplied, 2)
    table.add(Instruction_NOP_2, OpNOP, ModeImplied, 2)
    table.add(Instruction_NOP_3, OpNOP, ModeImplied, 2)
    table.add(Instruction_NOP_4, OpNOP, ModeImplied, 2)
    table.add(Instruction_NOP_5, OpNOP, ModeImplied, 2)
    table.add(Instruction_NOP_6, OpNOP, ModeImplied, 2)

    /* undocumented nops that skip a byte */
    table.add(Instruction_NOP_immediate_1, OpNOP, ModeImmediate, 2)
    table.add(Instruction_NOP_immediate_2, OpNOP, ModeImmediate, 2)
    table.add(Instruction_NOP_immediate_3, OpNOP, ModeImmediate, 2)
    table.add(Instruction_NOP_immediate_4, OpNOP, ModeImmediate, 2)
    table.add(Instruction_NOP_immediate_5, OpNOP, ModeImmediate, 2)
    table.add(Instruction_NOP_zero_1, OpNOP, ModeZeroPage, 3)
    table.add(Instruction_NOP_zero_2, OpNOP, ModeZeroPage, 3)
    table.add(Instruction_NOP_zero_3, OpNOP, ModeZeroPage, 3)
    table.add(Instruction_NOP_zero_x_1, OpNOP, ModeZeroPageX, 4)
    table.add(Instruction_NOP_zero_x_2, OpNOP, ModeZeroPageX, 4)
    table.add(Instruction_NOP_zero_x_3, OpNOP, ModeZeroPageX, 4)
    table.add(Instruction_NOP_zero_x_4, OpNOP, ModeZeroPageX, 4)
    table.add(Instruction_NOP_zero_x_5, OpNOP, ModeZeroPageX, 4)
    table.add(Instruction_NOP_zero_x_6, OpNOP, ModeZeroPageX, 4)

    /* undocumented nops that skip an absolute address */
    table.add(Instruction_NOP_absolute, OpNOP, ModeAbsolute, 4)
    table.add(Instruction_NOP_absolute_x_1, OpNOP, ModeAbsoluteX, 4)
    table.add(Instruction_NOP_absolute_x_2, OpNOP, ModeAbsoluteX, 4)
    table.add(Instruction_NOP_absolute_x_3, OpNOP, ModeAbsoluteX, 4)
    table.add(Instruction_NOP_absolute_x_4, OpNOP, ModeAbsoluteX, 4)
    table.add(Instruction_NOP_absolute_x_5, OpNOP, ModeAbsoluteX, 4)
    table.add(Instruction_NOP_absolute_x_6, OpNOP, ModeAbsoluteX, 4)

    return table
}

var Instructions InstructionTable = MakeInstructionTable()

type Instruction struct {
    Name string
    Kind InstructionType
    Mode AddressingMode
    Operands []byte
}

func (instruction *Instruction) Equals(other Instruction) bool {
    return instruction.Name == other.Name &&
           instruction.Kind == other.Kind &&
           bytes.Equal(instruction.Operands, other.Operands)
}

func (instruction *Instruction) Length() uint16 {
    return 1 + uint16(len(instruction.Operands))
}

func (instruction *Instruction) OperandByte() (byte, error) {
    if len(instruction.Operands) != 1 {
        return 0, fmt.Errorf("dont have one operand for %v, only have %v", instruction.Name, len(instruction.Operands))
    }
    return instruction.Operands[0], nil
}

func (instruction *Instruction) OperandWord() (uint16, error) {
    if len(instruction.Operands) != 2 {
        return 0, fmt.Errorf("dont have two operands for %v, only have %v", instruction.Name, len(instruction.Operands))
    }
    high := instruction.Operands[1]
    low := instruction.Operands[0]
    return (uint16(high) << 8) | uint16(low), nil
}

func (instruction *Instruction) String() string {
    var out bytes.Buffer
    out.WriteString(fmt.Sprintf("%02X ", byte(instruction.Kind)))
    out.WriteString(instruction.Name)
    for _, operand := range instruction.Operands {
        out.WriteRune(' ')
        out.WriteString(fmt.Sprintf("0x%x", operand))
    }
    return out.String()
}

/* decodes a stream of bytes into instructions without running them */
type InstructionReader struct {
    data io.Reader
    table *InstructionTable
}

func NewInstructionReader(data []byte) *InstructionReader {
    return &InstructionReader{
        data: bytes.NewReader(data),
        table: &Instructions,
    }
}

/* instructions can vary in their size */
func (reader *InstructionReader) ReadInstruction() (Instruction, error) {
    first := make([]byte, 1)
    _, err := io.ReadFull(reader.data, first)
    if err != nil {
        return Instruction{}, err
    }

    kind := InstructionType(first[0])

    description, ok := reader.table.Lookup(kind)
    if !ok {
        return Instruction{}, fmt.Errorf("unknown instruction: 0x%x", first[0])
    }

    operands := make([]byte, description.Operands)
    _, err = io.ReadFull(reader.data, operands)
    if err != nil {
        return Instruction{}, fmt.Errorf("unable to read %v operands for instruction %v", description.Operands, description.Name)
    }

    return Instruction{
        Name: description.Name,
        Kind: kind,
        Mode: description.Mode,
        Operands: operands,
    }, nil
}
