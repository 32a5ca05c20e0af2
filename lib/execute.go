package lib

/* whether an indexed mode may pay an extra cycle when the index carries
 * into the high byte
 */
func pageCrossMode(mode AddressingMode) bool {
    switch mode {
        case ModeAbsoluteX, ModeAbsoluteY, ModeIndirectIndexed:
            return true
    }
    return false
}

/* The table lists indexed stores with the page cross fixup included since
 * real hardware always does the extra read. Unless the cpu is accurate the
 * cycle is only charged when the page is actually crossed.
 */
func (cpu *CPUState) storePageCrossRefund(description *InstructionDescription, operand Operand) bool {
    if cpu.Accurate || description.Operation.Access() != AccessWrite {
        return false
    }
    switch description.Mode {
        case ModeAbsoluteX, ModeAbsoluteY:
            return !operand.PageCrossed
    }
    return false
}

/* extra cycle for reads that cross a page */
func (cpu *CPUState) readPageCross(description *InstructionDescription, operand Operand) int {
    if description.Operation.Access() != AccessRead || !operand.PageCrossed || !pageCrossMode(description.Mode) {
        return 0
    }
    /* the nop abs,x family ignores the penalty unless accurate */
    if description.Operation == OpNOP && !cpu.Accurate {
        return 0
    }
    return 1
}

/* taken branches cost one more cycle, and another when the target is on a
 * different page
 */
func (cpu *CPUState) branch(condition bool, operand Operand) int {
    if !condition {
        return 0
    }
    cpu.PC = operand.Address
    if operand.PageCrossed {
        return 2
    }
    return 1
}

/* write back the result of a shift or rotate */
func (cpu *CPUState) storeResult(mode AddressingMode, operand Operand, value byte){
    if mode == ModeAccumulator {
        cpu.A = value
    } else {
        cpu.StoreMemory(operand.Address, value)
    }
}

/* carry out one instruction whose operand has already been resolved.
 * returns the cycles the instruction costs on top of its base cycles
 */
func (cpu *CPUState) perform(description *InstructionDescription, operand Operand) int {
    mode := description.Mode

    switch description.Operation {
        case OpADC:
            cpu.adc(cpu.operandValue(mode, operand))
        case OpSBC:
            cpu.sbc(cpu.operandValue(mode, operand))
        case OpAND:
            cpu.A = cpu.A & cpu.operandValue(mode, operand)
            cpu.P.setZN(cpu.A)
        case OpORA:
            cpu.A = cpu.A | cpu.operandValue(mode, operand)
            cpu.P.setZN(cpu.A)
        case OpEOR:
            cpu.A = cpu.A ^ cpu.operandValue(mode, operand)
            cpu.P.setZN(cpu.A)

        case OpCMP:
            cpu.compare(cpu.A, cpu.operandValue(mode, operand))
        case OpCPX:
            cpu.compare(cpu.X, cpu.operandValue(mode, operand))
        case OpCPY:
            cpu.compare(cpu.Y, cpu.operandValue(mode, operand))

        case OpBIT:
            cpu.bit(cpu.operandValue(mode, operand))

        case OpASL:
            cpu.storeResult(mode, operand, cpu.asl(cpu.operandValue(mode, operand)))
        case OpLSR:
            cpu.storeResult(mode, operand, cpu.lsr(cpu.operandValue(mode, operand)))
        case OpROL:
            cpu.storeResult(mode, operand, cpu.rol(cpu.operandValue(mode, operand)))
        case OpROR:
            cpu.storeResult(mode, operand, cpu.ror(cpu.operandValue(mode, operand)))

        case OpLDA:
            cpu.A = cpu.operandValue(mode, operand)
            cpu.P.setZN(cpu.A)
        case OpLDX:
            cpu.X = cpu.operandValue(mode, operand)
            cpu.P.setZN(cpu.X)
        case OpLDY:
            cpu.Y = cpu.operandValue(mode, operand)
            cpu.P.setZN(cpu.Y)

        case OpSTA:
            cpu.StoreMemory(operand.Address, cpu.A)
        case OpSTX:
            cpu.StoreMemory(operand.Address, cpu.X)
        case OpSTY:
            cpu.StoreMemory(operand.Address, cpu.Y)

        case OpINC:
            value := cpu.LoadMemory(operand.Address) + 1
            cpu.StoreMemory(operand.Address, value)
            cpu.P.setZN(value)
        case OpDEC:
            value := cpu.LoadMemory(operand.Address) - 1
            cpu.StoreMemory(operand.Address, value)
            cpu.P.setZN(value)
        case OpINX:
            cpu.X += 1
            cpu.P.setZN(cpu.X)
        case OpINY:
            cpu.Y += 1
            cpu.P.setZN(cpu.Y)
        case OpDEX:
            cpu.X -= 1
            cpu.P.setZN(cpu.X)
        case OpDEY:
            cpu.Y -= 1
            cpu.P.setZN(cpu.Y)

        case OpTAX:
            cpu.X = cpu.A
            cpu.P.setZN(cpu.X)
        case OpTAY:
            cpu.Y = cpu.A
            cpu.P.setZN(cpu.Y)
        case OpTXA:
            cpu.A = cpu.X
            cpu.P.setZN(cpu.A)
        case OpTYA:
            cpu.A = cpu.Y
            cpu.P.setZN(cpu.A)
        case OpTSX:
            cpu.X = cpu.SP
            cpu.P.setZN(cpu.X)
        /* the only transfer that leaves the flags alone */
        case OpTXS:
            cpu.SP = cpu.X

        case OpJMP:
            cpu.PC = operand.Address
        case OpJSR:
            /* PC is already past the operand, push the address of its last byte */
            cpu.pushWord(cpu.PC - 1)
            cpu.PC = operand.Address
        case OpRTS:
            cpu.PC = cpu.popWord() + 1

        case OpBCC:
            return cpu.branch(!cpu.P.Carry, operand)
        case OpBCS:
            return cpu.branch(cpu.P.Carry, operand)
        case OpBEQ:
            return cpu.branch(cpu.P.Zero, operand)
        case OpBNE:
            return cpu.branch(!cpu.P.Zero, operand)
        case OpBMI:
            return cpu.branch(cpu.P.Negative, operand)
        case OpBPL:
            return cpu.branch(!cpu.P.Negative, operand)
        case OpBVC:
            return cpu.branch(!cpu.P.Overflow, operand)
        case OpBVS:
            return cpu.branch(cpu.P.Overflow, operand)

        case OpBRK:
            cpu.brk()
        case OpRTI:
            cpu.rti()

        case OpPHA:
            cpu.PushStack(cpu.A)
        case OpPHP:
            cpu.PushStack(cpu.P.Byte() | FlagBreak | FlagUnused)
        case OpPLA:
            cpu.A = cpu.PopStack()
            cpu.P.setZN(cpu.A)
        case OpPLP:
            cpu.P.SetByte(cpu.PopStack())

        case OpCLC:
            cpu.P.Carry = false
        case OpSEC:
            cpu.P.Carry = true
        case OpCLI:
            cpu.P.InterruptDisable = false
        case OpSEI:
            cpu.P.InterruptDisable = true
        case OpCLD:
            cpu.P.Decimal = false
        case OpSED:
            cpu.P.Decimal = true
        case OpCLV:
            cpu.P.Overflow = false

        case OpNOP:
            /* nothing beyond consuming the operand */
    }

    return cpu.readPageCross(description, operand)
}
