package lib

import (
    "encoding/json"
    "fmt"
    "io"
)

/* a snapshot of everything the cpu owns, memory included */
type savedState struct {
    CPU *CPUState `json:"cpu"`
    Memory []byte `json:"memory"`
}

func (cpu *CPUState) Serialize(writer io.Writer) error {
    encoder := json.NewEncoder(writer)
    return encoder.Encode(savedState{CPU: cpu, Memory: cpu.Memory[:]})
}

func (cpu *CPUState) LoadState(reader io.Reader) error {
    var loaded CPUState
    state := savedState{CPU: &loaded}

    decoder := json.NewDecoder(reader)
    err := decoder.Decode(&state)
    if err != nil {
        return fmt.Errorf("unable to read cpu state: %w", err)
    }

    if len(state.Memory) != MemorySize {
        return fmt.Errorf("cpu state has 0x%x bytes of memory, expected 0x%x", len(state.Memory), MemorySize)
    }

    copy(loaded.Memory[:], state.Memory)
    loaded.table = cpu.table
    *cpu = loaded
    return nil
}

func (cpu *CPUState) Copy() CPUState {
    out := *cpu
    return out
}

/* registers, flags and the cycle counter. memory is not compared */
func (cpu *CPUState) Equals(other CPUState) bool {
    return cpu.A == other.A &&
           cpu.X == other.X &&
           cpu.Y == other.Y &&
           cpu.SP == other.SP &&
           cpu.PC == other.PC &&
           cpu.Cycle == other.Cycle &&
           cpu.P == other.P &&
           cpu.Halted == other.Halted
}
