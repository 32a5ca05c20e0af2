package lib

import (
    "testing"
)

func TestPowerOn(test *testing.T){
    cpu := NewCPU()
    cpu.A = 0x12
    cpu.X = 0x34
    cpu.Y = 0x56
    cpu.SP = 0x10
    cpu.StoreMemory(0x8000, 0xea)
    cpu.PowerOnAt(0x8000)

    if cpu.A != 0 || cpu.X != 0 || cpu.Y != 0 {
        test.Fatalf("expected registers to be cleared: %v", cpu.String())
    }

    if cpu.SP != 0xfd {
        test.Fatalf("expected SP to be 0xfd but was 0x%x", cpu.SP)
    }

    if cpu.P.Byte() != 0x34 {
        test.Fatalf("expected status 0x34 but was 0x%x", cpu.P.Byte())
    }

    if cpu.PC != 0x8000 {
        test.Fatalf("expected PC 0x8000 but was 0x%x", cpu.PC)
    }

    if cpu.LoadMemory(ResetVector) != 0x00 || cpu.LoadMemory(ResetVector + 1) != 0x80 {
        test.Fatalf("expected the reset vector to be written")
    }

    if cpu.LoadMemory(0x8000) != 0xea {
        test.Fatalf("power on should not touch memory")
    }
}

func TestPowerOnIdempotent(test *testing.T){
    cpu := makeCPU(test, 0x1000, []byte{0xa9, 0x01, 0xe8})
    cpu.Execute(4)

    cpu.PowerOnAt(0x1000)
    first := cpu.Copy()
    cpu.PowerOnAt(0x1000)

    if !cpu.Equals(first) {
        test.Fatalf("power on twice gave different states: %v vs %v", first.String(), cpu.String())
    }

    if cpu.Cycle != 0 {
        test.Fatalf("expected the cycle counter to be reset but was %v", cpu.Cycle)
    }
}

func TestPowerOnUsesLoadedVector(test *testing.T){
    cpu := NewCPU()
    cpu.SetResetVector(0xc123)
    cpu.PowerOn()
    if cpu.PC != 0xc123 {
        test.Fatalf("expected PC 0xc123 but was 0x%x", cpu.PC)
    }
}

func TestReset(test *testing.T){
    cpu := makeCPU(test, 0x1000, []byte{0x58, 0xa9, 0x07}) // cli, lda #$07
    cpu.Execute(4)
    cpu.StoreMemory(0x1fd, 0xaa)

    cpu.Reset()

    if cpu.SP != 0xfa {
        test.Fatalf("expected SP to be 0xfa but was 0x%x", cpu.SP)
    }
    if !cpu.P.InterruptDisable {
        test.Fatalf("expected interrupts to be disabled after reset")
    }
    if cpu.PC != 0x1000 {
        test.Fatalf("expected PC to be reloaded to 0x1000 but was 0x%x", cpu.PC)
    }
    /* A is not part of the reset sequence */
    if cpu.A != 0x07 {
        test.Fatalf("expected A to be kept but was 0x%x", cpu.A)
    }
    if cpu.LoadMemory(0x1fd) != 0xaa {
        test.Fatalf("reset should not write to the stack")
    }
}

func TestBrk(test *testing.T){
    cpu := makeCPU(test, 0x1000, []byte{0x00}) // brk
    cpu.StoreMemory(IRQVector, 0x00)
    cpu.StoreMemory(IRQVector + 1, 0x20)
    cpu.StoreMemory(0x2000, 0x40) // rti
    cpu.P.SetByte(FlagCarry | FlagUnused)

    cycles := cpu.Step()
    if cycles != 7 {
        test.Fatalf("expected brk to take 7 cycles but took %v", cycles)
    }

    if cpu.PC != 0x2000 {
        test.Fatalf("expected PC 0x2000 but was 0x%x", cpu.PC)
    }

    if cpu.SP != 0xfa {
        test.Fatalf("expected SP 0xfa but was 0x%x", cpu.SP)
    }

    /* PCH, PCL, status with bits 4 and 5 set */
    if cpu.LoadMemory(0x1fd) != 0x10 || cpu.LoadMemory(0x1fc) != 0x01 || cpu.LoadMemory(0x1fb) != 0x31 {
        test.Fatalf("unexpected stack contents 0x%x 0x%x 0x%x", cpu.LoadMemory(0x1fd), cpu.LoadMemory(0x1fc), cpu.LoadMemory(0x1fb))
    }

    if !cpu.P.Break {
        test.Fatalf("expected the break flag to be set")
    }

    cycles = cpu.Step()
    if cycles != 6 {
        test.Fatalf("expected rti to take 6 cycles but took %v", cycles)
    }

    if cpu.PC != 0x1001 || cpu.SP != 0xfd {
        test.Fatalf("expected to return to 0x1001 with SP 0xfd but PC 0x%x SP 0x%x", cpu.PC, cpu.SP)
    }

    if cpu.P.Byte() != 0x31 {
        test.Fatalf("expected rti to restore 0x31 but status is 0x%x", cpu.P.Byte())
    }
}

func TestBrkAccurate(test *testing.T){
    cpu := makeCPU(test, 0x1000, []byte{0x00, 0xff}) // brk with a padding byte
    cpu.Accurate = true
    cpu.StoreMemory(IRQVector, 0x00)
    cpu.StoreMemory(IRQVector + 1, 0x20)
    cpu.P.InterruptDisable = false

    cpu.Step()

    if cpu.LoadMemory(0x1fd) != 0x10 || cpu.LoadMemory(0x1fc) != 0x02 {
        test.Fatalf("expected 0x1002 to be pushed but found 0x%x%02x", cpu.LoadMemory(0x1fd), cpu.LoadMemory(0x1fc))
    }

    if !cpu.P.InterruptDisable {
        test.Fatalf("expected brk to disable interrupts")
    }
}

func TestRtiPopOrder(test *testing.T){
    cpu := makeCPU(test, 0x1000, []byte{0x40}) // rti
    cpu.PushStack(0x12) // PCH
    cpu.PushStack(0x34) // PCL
    cpu.PushStack(0xc3) // status

    cpu.Step()

    if cpu.PC != 0x1234 {
        test.Fatalf("expected PC 0x1234 but was 0x%x", cpu.PC)
    }
    if cpu.P.Byte() != 0xc3 {
        test.Fatalf("expected status 0xc3 but was 0x%x", cpu.P.Byte())
    }
}

func TestHardwareInterrupts(test *testing.T){
    cpu := makeCPU(test, 0x1000, []byte{0xea})
    cpu.StoreMemory(NMIVector, 0x00)
    cpu.StoreMemory(NMIVector + 1, 0x30)
    cpu.StoreMemory(IRQVector, 0x00)
    cpu.StoreMemory(IRQVector + 1, 0x40)

    /* I is set after power on */
    if cpu.IRQ() {
        test.Fatalf("irq should be masked")
    }
    if cpu.PC != 0x1000 {
        test.Fatalf("masked irq moved PC to 0x%x", cpu.PC)
    }

    cpu.NMI()
    if cpu.PC != 0x3000 {
        test.Fatalf("expected nmi to jump to 0x3000 but PC is 0x%x", cpu.PC)
    }

    /* break clear, unused set */
    status := cpu.LoadMemory(0x1fb)
    if status & FlagBreak != 0 || status & FlagUnused == 0 {
        test.Fatalf("unexpected status pushed by nmi 0x%x", status)
    }

    if cpu.Cycle != 7 {
        test.Fatalf("expected nmi to take 7 cycles but took %v", cpu.Cycle)
    }

    cpu.P.InterruptDisable = false
    if !cpu.IRQ() {
        test.Fatalf("irq should be taken")
    }
    if cpu.PC != 0x4000 || !cpu.P.InterruptDisable {
        test.Fatalf("expected irq to jump to 0x4000 with I set but PC is 0x%x", cpu.PC)
    }
}
