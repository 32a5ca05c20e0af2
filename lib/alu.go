package lib

/* arithmetic and flag computations shared by the operations in execute.go */

func (cpu *CPUState) adc(value byte){
    carry := uint16(0)
    if cpu.P.Carry {
        carry = 1
    }

    full := uint16(cpu.A) + uint16(value) + carry
    result := byte(full)

    if cpu.Accurate {
        /* overflow when both inputs have the same sign and the result does not */
        cpu.P.Overflow = (^(cpu.A ^ value) & (cpu.A ^ result) & 0x80) != 0
    }

    cpu.P.Carry = full > 0xff
    cpu.A = result
    cpu.P.setZN(cpu.A)
}

func (cpu *CPUState) sbc(value byte){
    if cpu.Accurate {
        /* a - b - borrow is the same as a + ~b + carry */
        cpu.adc(^value)
        return
    }

    borrow := byte(1)
    if cpu.P.Carry {
        borrow = 0
    }

    old := cpu.A
    cpu.A = old - value - borrow
    cpu.P.Carry = old >= cpu.A
    cpu.P.setZN(cpu.A)
}

func (cpu *CPUState) compare(register byte, value byte){
    cpu.P.Carry = register >= value
    cpu.P.Zero = register == value
    if cpu.Accurate {
        cpu.P.Negative = (register - value) & 0x80 == 0x80
    }
}

func (cpu *CPUState) bit(value byte){
    cpu.P.Zero = cpu.A & value == 0
    cpu.P.Overflow = value & 0x40 == 0x40
    cpu.P.Negative = value & 0x80 == 0x80
}

func (cpu *CPUState) asl(value byte) byte {
    cpu.P.Carry = value & 0x80 == 0x80
    out := value << 1
    cpu.P.setZN(out)
    return out
}

func (cpu *CPUState) lsr(value byte) byte {
    cpu.P.Carry = value & 0x1 == 0x1
    out := value >> 1
    cpu.P.setZN(out)
    return out
}

func (cpu *CPUState) rol(value byte) byte {
    carryIn := byte(0)
    if cpu.P.Carry {
        carryIn = 1
    }
    cpu.P.Carry = value & 0x80 == 0x80
    out := (value << 1) | carryIn
    cpu.P.setZN(out)
    return out
}

func (cpu *CPUState) ror(value byte) byte {
    carryIn := byte(0)
    if cpu.P.Carry {
        carryIn = 0x80
    }
    cpu.P.Carry = value & 0x1 == 0x1
    out := (value >> 1) | carryIn
    cpu.P.setZN(out)
    return out
}
