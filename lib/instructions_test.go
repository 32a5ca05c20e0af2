package lib

import (
    "io"
    "testing"
)

func readAllInstructions(reader *InstructionReader) ([]Instruction, error) {
    var out []Instruction

    for {
        instruction, err := reader.ReadInstruction()
        if err != nil {
            return out, err
        }

        out = append(out, instruction)
    }
}

func checkInstructions(test *testing.T, instructions []Instruction, kinds []InstructionType) {
    if len(kinds) != len(instructions) {
        test.Fatalf("unequal number of instructions %v vs expected %v", len(instructions), len(kinds))
    }

    for i := 0; i < len(instructions); i++ {
        if instructions[i].Kind != kinds[i] {
            test.Fatalf("invalid instruction %v: %v vs %v\n", i, instructions[i].String(), kinds[i])
        }
    }
}

func TestCPUDecode(test *testing.T){
    bytes := []byte{0xa9, 0x01, 0x8d, 0x00, 0x02, 0xa9, 0x05, 0x8d, 0x01, 0x02, 0xa9, 0x08, 0x8d, 0x02, 0x02}

    reader := NewInstructionReader(bytes)
    instructions, err := readAllInstructions(reader)

    if err != io.EOF {
        test.Fatalf("could not read instructions: %v", err)
    }

    checkInstructions(test, instructions, []InstructionType{
        Instruction_LDA_immediate,
        Instruction_STA_absolute,
        Instruction_LDA_immediate,
        Instruction_STA_absolute,
        Instruction_LDA_immediate,
        Instruction_STA_absolute,
    })

    word, err := instructions[1].OperandWord()
    if err != nil || word != 0x200 {
        test.Fatalf("expected operand 0x200 but got 0x%x: %v", word, err)
    }

    if instructions[1].Length() != 3 {
        test.Fatalf("expected sta absolute to be 3 bytes but was %v", instructions[1].Length())
    }
}

func TestDecodeUnknown(test *testing.T){
    reader := NewInstructionReader([]byte{0xea, 0x02})
    _, err := reader.ReadInstruction()
    if err != nil {
        test.Fatalf("could not read nop: %v", err)
    }
    _, err = reader.ReadInstruction()
    if err == nil {
        test.Fatalf("expected an error for opcode 0x02")
    }

    reader = NewInstructionReader([]byte{0xad, 0x00})
    _, err = reader.ReadInstruction()
    if err == nil {
        test.Fatalf("expected an error for a truncated instruction")
    }
}

func TestInstructionEquals(test *testing.T){
    instructions, err := readAllInstructions(NewInstructionReader([]byte{0xad, 0x00, 0x02, 0xad, 0x00, 0x02, 0xad, 0x01, 0x02}))
    if err != io.EOF {
        test.Fatalf("could not read instructions: %v", err)
    }

    if len(instructions) != 3 {
        test.Fatalf("expected 3 instructions but got %v", len(instructions))
    }

    if !instructions[0].Equals(instructions[1]) {
        test.Fatalf("expected lda $0200 to equal itself")
    }

    if instructions[0].Equals(instructions[2]) {
        test.Fatalf("lda $0200 should not equal lda $0201")
    }
}

func TestInstructionTable(test *testing.T){
    count := 0
    for opcode, description := range Instructions {
        if description == nil {
            continue
        }
        count += 1

        if description.Operands != description.Mode.Operands() {
            test.Fatalf("0x%x: operands %v do not match mode %v", opcode, description.Operands, description.Mode)
        }

        if description.Cycles < 2 || description.Cycles > 7 {
            test.Fatalf("0x%x: strange cycle count %v", opcode, description.Cycles)
        }
    }

    /* 151 documented opcodes and 27 undocumented nops */
    if count != 178 {
        test.Fatalf("expected 178 opcodes but found %v", count)
    }

    /* a few that must stay unmapped */
    for _, opcode := range []byte{0x02, 0xa7, 0x87, 0xeb} {
        if Instructions[opcode] != nil {
            test.Fatalf("0x%x should not be mapped", opcode)
        }
    }
}

func TestDisassemble(test *testing.T){
    cpu := NewCPU()
    cpu.MapMemory(0x1000, []byte{
        0xa9, 0x01, // lda #$01
        0x9d, 0x00, 0x02, // sta $0200,x
        0x6c, 0xff, 0x10, // jmp ($10ff)
        0xd0, 0xf6, // bne $1000
        0x0a, // asl a
        0xb1, 0x10, // lda ($10),y
        0x02, // unknown
    })

    expected := []string{
        "LDA #$01",
        "STA $0200,X",
        "JMP ($10FF)",
        "BNE $1000",
        "ASL A",
        "LDA ($10),Y",
        ".byte $02",
    }

    address := uint16(0x1000)
    for _, text := range expected {
        got, next := Disassemble(cpu, address)
        if got != text {
            test.Fatalf("0x%x: expected '%v' but got '%v'", address, text, got)
        }
        address = next
    }

    lines := DisassembleRange(cpu, 0x1000, 2)
    if len(lines) != 2 || lines[1] != "1002  STA $0200,X" {
        test.Fatalf("unexpected disassembly %v", lines)
    }
}
