package lib

/* the stack lives in page 1. SP points at the next free slot and simply
 * wraps around, there is no overflow detection on the real chip either.
 */

func (cpu *CPUState) LoadStack(where byte) byte {
    return cpu.LoadMemory(StackBase + uint16(where))
}

func (cpu *CPUState) StoreStack(where byte, value byte) {
    cpu.StoreMemory(StackBase + uint16(where), value)
}

func (cpu *CPUState) PushStack(value byte) {
    cpu.StoreStack(cpu.SP, value)
    cpu.SP -= 1
}

func (cpu *CPUState) PopStack() byte {
    cpu.SP += 1
    return cpu.LoadStack(cpu.SP)
}

/* high byte goes first so the low byte ends up at the lower address */
func (cpu *CPUState) pushWord(value uint16) {
    cpu.PushStack(byte(value >> 8))
    cpu.PushStack(byte(value & 0xff))
}

func (cpu *CPUState) popWord() uint16 {
    low := uint16(cpu.PopStack())
    high := uint16(cpu.PopStack())
    return (high << 8) | low
}
