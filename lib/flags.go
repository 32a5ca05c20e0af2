package lib

import (
    "bytes"
)

/* bit positions of the status register when packed into a byte */
const (
    FlagCarry byte = 1 << 0
    FlagZero byte = 1 << 1
    FlagInterruptDisable byte = 1 << 2
    FlagDecimal byte = 1 << 3
    FlagBreak byte = 1 << 4
    FlagUnused byte = 1 << 5
    FlagOverflow byte = 1 << 6
    FlagNegative byte = 1 << 7
)

/* the processor status register. each flag is kept on its own and only
 * packed into a byte when something needs to see the byte (PHP, BRK, dumps)
 */
type Flags struct {
    Carry bool `json:"c"`
    Zero bool `json:"z"`
    InterruptDisable bool `json:"i"`
    Decimal bool `json:"d"`
    Break bool `json:"b"`
    Unused bool `json:"u"`
    Overflow bool `json:"v"`
    Negative bool `json:"n"`
}

func packBit(set bool, bit byte) byte {
    if set {
        return bit
    }
    return 0
}

func (flags *Flags) Byte() byte {
    return packBit(flags.Carry, FlagCarry) |
           packBit(flags.Zero, FlagZero) |
           packBit(flags.InterruptDisable, FlagInterruptDisable) |
           packBit(flags.Decimal, FlagDecimal) |
           packBit(flags.Break, FlagBreak) |
           packBit(flags.Unused, FlagUnused) |
           packBit(flags.Overflow, FlagOverflow) |
           packBit(flags.Negative, FlagNegative)
}

func (flags *Flags) SetByte(value byte){
    flags.Carry = value & FlagCarry != 0
    flags.Zero = value & FlagZero != 0
    flags.InterruptDisable = value & FlagInterruptDisable != 0
    flags.Decimal = value & FlagDecimal != 0
    flags.Break = value & FlagBreak != 0
    flags.Unused = value & FlagUnused != 0
    flags.Overflow = value & FlagOverflow != 0
    flags.Negative = value & FlagNegative != 0
}

/* NV-BDIZC, upper case when the flag is set */
func (flags *Flags) String() string {
    var out bytes.Buffer
    names := "nv-bdizc"
    value := flags.Byte()
    for i := 0; i < 8; i++ {
        name := names[i]
        if name != '-' && value & (1 << (7 - i)) != 0 {
            name = name - 'a' + 'A'
        }
        out.WriteByte(name)
    }
    return out.String()
}

/* zero and negative are recomputed from nearly every result */
func (flags *Flags) setZN(value byte){
    flags.Zero = value == 0
    flags.Negative = value & 0x80 != 0
}
