package lib

import (
    "fmt"
)

func (cpu *CPUState) LoadMemory(address uint16) byte {
    return cpu.Memory[address]
}

func (cpu *CPUState) StoreMemory(address uint16, value byte) {
    cpu.Memory[address] = value
}

/* little endian, the high byte comes from address+1 which wraps at 0xffff */
func (cpu *CPUState) LoadWord(address uint16) uint16 {
    low := uint16(cpu.LoadMemory(address))
    high := uint16(cpu.LoadMemory(address + 1))
    return (high << 8) | low
}

/* copy a block of bytes into the address space. This is all a loader
 * needs from the cpu.
 */
func (cpu *CPUState) MapMemory(location uint16, memory []byte) error {
    if int(location) + len(memory) > MemorySize {
        return fmt.Errorf("mapping 0x%x bytes at 0x%x runs past the end of memory", len(memory), location)
    }

    copy(cpu.Memory[location:], memory)
    return nil
}

/* copy length bytes from source to destination, used for rom mirrors */
func (cpu *CPUState) MirrorMemory(source uint16, destination uint16, length int) error {
    if int(source) + length > MemorySize || int(destination) + length > MemorySize {
        return fmt.Errorf("cannot mirror 0x%x bytes from 0x%x to 0x%x", length, source, destination)
    }

    copy(cpu.Memory[destination:int(destination) + length], cpu.Memory[source:int(source) + length])
    return nil
}

func (cpu *CPUState) SetResetVector(address uint16){
    cpu.StoreMemory(ResetVector, byte(address & 0xff))
    cpu.StoreMemory(ResetVector + 1, byte(address >> 8))
}

/* length bytes starting at start, wrapping around at 0xffff */
func (cpu *CPUState) MemoryRange(start uint16, length int) []byte {
    out := make([]byte, length)
    for i := 0; i < length; i++ {
        out[i] = cpu.LoadMemory(start + uint16(i))
    }
    return out
}
