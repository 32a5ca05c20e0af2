package lib

import (
    "fmt"
)

type UnsupportedMapperError struct {
    Mapper uint32
}

func (err *UnsupportedMapperError) Error() string {
    return fmt.Sprintf("unimplemented mapper %v", err.Mapper)
}

/* places program rom into the cpu's address space */
type Mapper interface {
    Initialize(cpu *CPUState) error
}

func MakeMapper(mapper uint32, bankMemory []byte) (Mapper, error) {
    switch mapper {
        case 0: return MakeMapper0(bankMemory)
        default: return nil, &UnsupportedMapperError{Mapper: mapper}
    }
}

/* http://wiki.nesdev.com/w/index.php/NROM */
type Mapper0 struct {
    BankMemory []byte
}

func (mapper *Mapper0) Initialize(cpu *CPUState) error {
    /* http://wiki.nesdev.com/w/index.php/Programming_NROM */
    err := cpu.MapMemory(0x8000, mapper.BankMemory)
    if err != nil {
        return err
    }

    /* NROM-128 shows up at both 0x8000 and 0xc000 */
    if len(mapper.BankMemory) == 16 * 1024 {
        return cpu.MirrorMemory(0x8000, 0xc000, len(mapper.BankMemory))
    }

    return nil
}

func MakeMapper0(bankMemory []byte) (Mapper, error) {
    if len(bankMemory) != 16 * 1024 && len(bankMemory) != 32 * 1024 {
        return nil, fmt.Errorf("mapper0 needs 16k or 32k of program rom but got 0x%x bytes", len(bankMemory))
    }

    return &Mapper0{
        BankMemory: bankMemory,
    }, nil
}
