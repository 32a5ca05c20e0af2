package lib

/* http://wiki.nesdev.com/w/index.php/CPU_power_up_state
 * memory is left alone, the loader may already have filled it in
 */
func (cpu *CPUState) PowerOn() {
    cpu.A = 0
    cpu.X = 0
    cpu.Y = 0
    cpu.SP = 0xfd
    cpu.P = Flags{}
    cpu.P.SetByte(0x34) // 110100
    cpu.Cycles = 0
    cpu.Cycle = 0
    cpu.Halted = false
    cpu.FailedOpcode = 0
    cpu.FailedPC = 0
    cpu.PC = cpu.LoadWord(ResetVector)
}

/* point the reset vector at entry and then power on */
func (cpu *CPUState) PowerOnAt(entry uint16) {
    cpu.SetResetVector(entry)
    cpu.PowerOn()
}

/* https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
 *
 * http://users.telenet.be/kim1-6502/6502/proman.html#90
 * Cycles   Address Bus   Data Bus    External Operation     Internal Operation
 *
 * 1           ?           ?        Don't Care             Hold During Reset
 * 2         ? + 1         ?        Don't Care             First Start State
 * 3        0100 + SP      ?        Don't Care             Second Start State
 * 4        0100 + SP-1    ?        Don't Care             Third Start State
 * 5        0100 + SP-2    ?        Don't Care             Fourth Start State
 * 6        FFFC        Start PCL   Fetch First Vector
 * 7        FFFD        Start PCH   Fetch Second Vector    Hold PCL
 * 8        PCH PCL     First       Load First OP CODE
 *                      OP CODE
 *
 * the three stack cycles are reads, so only SP moves
 */
func (cpu *CPUState) Reset() {
    cpu.SP -= 3
    cpu.P.InterruptDisable = true
    cpu.Halted = false
    cpu.PC = cpu.LoadWord(ResetVector)
}

func (cpu *CPUState) brk() {
    if cpu.Accurate {
        /* brk is really a two byte instruction, the second byte is padding */
        cpu.PC += 1
    }

    cpu.pushWord(cpu.PC)
    cpu.PushStack(cpu.P.Byte() | FlagBreak | FlagUnused)
    cpu.P.Break = true
    if cpu.Accurate {
        cpu.P.InterruptDisable = true
    }

    cpu.PC = cpu.LoadWord(IRQVector)
}

func (cpu *CPUState) rti() {
    cpu.P.SetByte(cpu.PopStack())
    cpu.PC = cpu.popWord()
}

/* hardware interrupts push the status with the break bit clear */
func (cpu *CPUState) interrupt(vector uint16) {
    cpu.pushWord(cpu.PC)
    cpu.PushStack((cpu.P.Byte() &^ FlagBreak) | FlagUnused)
    cpu.P.InterruptDisable = true
    cpu.PC = cpu.LoadWord(vector)
    cpu.tick(7)
}

/* NMI was raised, so jump to the NMI routine */
func (cpu *CPUState) NMI() {
    cpu.interrupt(NMIVector)
}

/* returns false if the interrupt was masked by the I flag */
func (cpu *CPUState) IRQ() bool {
    if cpu.P.InterruptDisable {
        return false
    }
    cpu.interrupt(IRQVector)
    return true
}
