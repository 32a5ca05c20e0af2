package lib

type AddressingMode int

const (
    ModeImplied AddressingMode = iota
    ModeAccumulator
    ModeImmediate
    ModeZeroPage
    ModeZeroPageX
    ModeZeroPageY
    ModeAbsolute
    ModeAbsoluteX
    ModeAbsoluteY
    ModeIndirect
    ModeIndexedIndirect // (zp,x)
    ModeIndirectIndexed // (zp),y
    ModeRelative
)

/* number of operand bytes that follow the opcode */
func (mode AddressingMode) Operands() byte {
    switch mode {
        case ModeImplied, ModeAccumulator:
            return 0
        case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
            return 2
    }
    return 1
}

func (mode AddressingMode) String() string {
    switch mode {
        case ModeImplied: return "implied"
        case ModeAccumulator: return "accumulator"
        case ModeImmediate: return "immediate"
        case ModeZeroPage: return "zero"
        case ModeZeroPageX: return "zero_x"
        case ModeZeroPageY: return "zero_y"
        case ModeAbsolute: return "absolute"
        case ModeAbsoluteX: return "absolute_x"
        case ModeAbsoluteY: return "absolute_y"
        case ModeIndirect: return "indirect"
        case ModeIndexedIndirect: return "indirect_x"
        case ModeIndirectIndexed: return "indirect_y"
        case ModeRelative: return "relative"
    }
    return "unknown"
}

/* what an instruction operates on once its operand bytes are consumed */
type Operand struct {
    /* effective address, unused for implied/accumulator/immediate */
    Address uint16
    /* the byte itself for immediate mode, the signed displacement for relative */
    Value byte
    /* indexing carried out of the low byte of the base address */
    PageCrossed bool
}

func samePage(a uint16, b uint16) bool {
    return (a & 0xff00) == (b & 0xff00)
}

/* index a 16-bit base. The extra cycle on a carry is decided by the caller,
 * only the carry is reported here.
 */
func indexAddress(base uint16, index byte) (uint16, bool) {
    out := base + uint16(index)
    return out, uint16(base & 0xff) + uint16(index) > 0xff
}

/* consume the operand bytes for the given mode and compute where the
 * instruction reads from or writes to
 */
func (cpu *CPUState) resolve(mode AddressingMode) Operand {
    switch mode {
        case ModeImplied, ModeAccumulator:
            return Operand{}

        case ModeImmediate:
            value := cpu.fetch()
            return Operand{Value: value}

        case ModeZeroPage:
            return Operand{Address: uint16(cpu.fetch())}

        case ModeZeroPageX, ModeZeroPageY:
            index := cpu.X
            if mode == ModeZeroPageY {
                index = cpu.Y
            }
            zero := cpu.fetch()
            /* the addition happens in an 8-bit register so it never leaves page 0 */
            cpu.tick(1)
            return Operand{Address: uint16(zero + index)}

        case ModeAbsolute:
            return Operand{Address: cpu.fetchWord()}

        case ModeAbsoluteX, ModeAbsoluteY:
            index := cpu.X
            if mode == ModeAbsoluteY {
                index = cpu.Y
            }
            base := cpu.fetchWord()
            address, crossed := indexAddress(base, index)
            return Operand{Address: address, PageCrossed: crossed}

        case ModeIndirect:
            pointer := cpu.fetchWord()
            low := uint16(cpu.LoadMemory(pointer))
            /* the chip never carries into the high byte of the pointer, so
             * jmp ($10ff) reads its high byte from $1000 and not $1100
             */
            highAddress := (pointer & 0xff00) | uint16(byte(pointer) + 1)
            high := uint16(cpu.LoadMemory(highAddress))
            return Operand{Address: (high << 8) | low}

        case ModeIndexedIndirect:
            zero := cpu.fetch() + cpu.X
            cpu.tick(1)
            low := uint16(cpu.LoadMemory(uint16(zero)))
            /* keeping zero as a byte makes the high byte wrap inside page 0 */
            high := uint16(cpu.LoadMemory(uint16(zero + 1)))
            return Operand{Address: (high << 8) | low}

        case ModeIndirectIndexed:
            zero := cpu.fetch()
            low := uint16(cpu.LoadMemory(uint16(zero)))
            high := uint16(cpu.LoadMemory(uint16(zero + 1)))
            /* Y is added to the full pointer, which may move to the next page */
            address, crossed := indexAddress((high << 8) | low, cpu.Y)
            return Operand{Address: address, PageCrossed: crossed}

        case ModeRelative:
            displacement := cpu.fetch()
            target := cpu.PC + uint16(int16(int8(displacement)))
            return Operand{Address: target, Value: displacement, PageCrossed: !samePage(cpu.PC, target)}
    }

    return Operand{}
}

/* read the byte an instruction operates on */
func (cpu *CPUState) operandValue(mode AddressingMode, operand Operand) byte {
    switch mode {
        case ModeImmediate:
            return operand.Value
        case ModeAccumulator:
            return cpu.A
    }
    return cpu.LoadMemory(operand.Address)
}
