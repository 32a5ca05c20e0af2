package lib

import (
    "fmt"
    "log"
)

/* opcode references
 * http://wiki.nesdev.com/w/index.php/CPU_unofficial_opcodes -- nice table of opcodes
 * https://www.masswerk.at/6502/6502_instruction_set.html
 * http://www.6502.org/tutorials/6502opcodes.html
 */

const NMIVector uint16 = 0xfffa
const ResetVector uint16 = 0xfffc
const IRQVector uint16 = 0xfffe

const StackBase uint16 = 0x100

/* the whole address space the cpu can see */
const MemorySize = 0x10000

/* http://wiki.nesdev.com/w/index.php/Cycle_reference_chart#Clock_rates
 * NTSC 2c0c clock speed is 21.47~ MHz ÷ 12 = 1.789773 MHz
 */
const CPUSpeed float64 = 1.789773e6

type UnknownOpcodeError struct {
    Opcode byte
    PC uint16
}

func (err *UnknownOpcodeError) Error() string {
    return fmt.Sprintf("unknown instruction 0x%02x at PC 0x%04x", err.Opcode, err.PC)
}

type CPUState struct {
    A byte `json:"a"`
    X byte `json:"x"`
    Y byte `json:"y"`
    SP byte `json:"sp"`
    PC uint16 `json:"pc"`
    P Flags `json:"p"`

    /* remaining budget of the current Execute call. It can end up below
     * zero when the last instruction costs more than what was left.
     */
    Cycles int `json:"cycles"`
    /* every cycle spent since power on */
    Cycle uint64 `json:"cycle"`

    /* set when an opcode that is not in the instruction table is fetched.
     * only PowerOn and Reset clear it
     */
    Halted bool `json:"halted"`
    FailedOpcode byte `json:"failedopcode"`
    FailedPC uint16 `json:"failedpc"`

    /* false keeps the known deviations from real hardware:
     *  - adc/sbc leave the overflow flag alone
     *  - cmp/cpx/cpy leave the negative flag alone
     *  - the abs,x nop family never pays for a page cross
     *  - indexed stores only pay for a page cross when one happens
     *  - brk pushes the address right after the opcode
     * true behaves like the real chip for all of those.
     */
    Accurate bool `json:"accurate"`

    Debug uint `json:"debug,omitempty"`

    Memory [MemorySize]byte `json:"-"`

    table *InstructionTable
}

func NewCPU() *CPUState {
    return &CPUState{
        SP: 0xfd,
        P: Flags{InterruptDisable: true, Break: true, Unused: true},
        table: &Instructions,
    }
}

func (cpu *CPUState) instructions() *InstructionTable {
    if cpu.table == nil {
        cpu.table = &Instructions
    }
    return cpu.table
}

func (cpu *CPUState) String() string {
    return fmt.Sprintf("A:0x%X X:0x%X Y:0x%X SP:0x%X P:0x%X PC:0x%X Cycle:%v", cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.P.Byte(), cpu.PC, cpu.Cycle)
}

/* returns the reason the cpu stopped, if it did */
func (cpu *CPUState) Err() error {
    if !cpu.Halted {
        return nil
    }
    return &UnknownOpcodeError{Opcode: cpu.FailedOpcode, PC: cpu.FailedPC}
}

/* spend cycles from the budget and add them to the running total */
func (cpu *CPUState) tick(cycles int){
    cpu.Cycles -= cycles
    cpu.Cycle += uint64(cycles)
}

/* read the byte at PC and move past it, costs one cycle */
func (cpu *CPUState) fetch() byte {
    value := cpu.Memory[cpu.PC]
    cpu.PC += 1
    cpu.tick(1)
    return value
}

func (cpu *CPUState) fetchWord() uint16 {
    low := uint16(cpu.fetch())
    high := uint16(cpu.fetch())
    return (high << 8) | low
}

/* Run instructions until the budget is used up or the cpu halts. Execute can
 * be called again to continue where the previous call stopped.
 */
func (cpu *CPUState) Execute(budget int){
    cpu.Cycles = budget
    for cpu.Cycles > 0 && !cpu.Halted {
        cpu.Step()
    }
}

/* Execute exactly one instruction, regardless of the budget. Returns the
 * number of cycles it took.
 */
func (cpu *CPUState) Step() int {
    if cpu.Halted {
        return 0
    }

    start := cpu.Cycle
    pc := cpu.PC
    opcode := cpu.fetch()

    description := cpu.instructions()[opcode]
    if description == nil {
        /* the fetch already happened, so its cycle stays spent and PC stays past the opcode */
        cpu.Halted = true
        cpu.FailedOpcode = opcode
        cpu.FailedPC = pc
        log.Printf("Unhandled instruction: 0x%02x at 0x%04x", opcode, pc)
        return int(cpu.Cycle - start)
    }

    if cpu.Debug > 0 {
        text, _ := Disassemble(cpu, pc)
        log.Printf("PC: 0x%04x %-16v A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%v", pc, text, cpu.A, cpu.X, cpu.Y, cpu.P.Byte(), cpu.SP, cpu.Cycle)
    }

    operand := cpu.resolve(description.Mode)
    extra := cpu.perform(description, operand)

    /* the fetches above already paid for some of the cycles, the rest
     * are internal cycles of the instruction
     */
    used := int(cpu.Cycle - start)
    base := int(description.Cycles)
    if cpu.storePageCrossRefund(description, operand) {
        base -= 1
    }
    if used < base {
        cpu.tick(base - used)
    }
    cpu.tick(extra)

    return int(cpu.Cycle - start)
}
