package lib

import (
    "bytes"
    "errors"
    "fmt"
    "io"
    "log"
    "os"
)

/* https://www.nesdev.org/wiki/INES
 * https://www.nesdev.org/wiki/NES_2.0
 */

var ErrNotINes = errors.New("not an nes file")

const inesHeaderSize = 16
const trainerSize = 512

func isINes(check []byte) bool {
    if len(check) != 4 {
        return false
    }

    return bytes.Equal(check, []byte{'N', 'E', 'S', 0x1a})
}

func isNes2(nesHeader []byte) bool {
    if len(nesHeader) < 8 {
        return false
    }

    /* looks at bits 2 and 3 of byte 7, bit 3 must be 1 and bit 2 must be 0 */
    return nesHeader[7] & 0xc == 0x8
}

/* NES 2.0 can express a size as 2^exponent * (multiplier*2+1) */
func exponentSize(lsb byte) uint64 {
    multiplier := uint64(lsb & 3)
    exponent := lsb >> 2
    return (uint64(1) << exponent) * (multiplier * 2 + 1)
}

/* largest rom area we are willing to allocate */
const maxRomSize = 64 * 1024 * 1024

func readPRG(header []byte, nes2 bool) uint64 {
    lsb := header[4]
    if !nes2 {
        return uint64(lsb) << 14
    }

    /* only use the lowest 4 bits of byte 9 in the header */
    msb := header[9] & 0xf
    if msb == 0xf {
        return exponentSize(lsb)
    }
    return ((uint64(msb) << 8) | uint64(lsb)) << 14
}

func readCHR(header []byte, nes2 bool) uint64 {
    lsb := header[5]
    if !nes2 {
        return uint64(lsb) << 13
    }

    msb := (header[9] >> 4) & 0xf
    if msb == 0xf {
        return exponentSize(lsb)
    }
    return ((uint64(msb) << 8) | uint64(lsb)) << 13
}

/* low nibble from byte 6, high nibble from byte 7 */
func readMapper(header []byte) uint32 {
    return uint32(header[6] >> 4) | uint32(header[7] & 0xf0)
}

type NESFile struct {
    ProgramRom []byte
    CharacterRom []byte
    Mapper uint32
    HorizontalMirror bool
    VerticalMirror bool
    FourScreen bool
    HasTrainer bool
    Nes2 bool
}

func ParseNesFile(path string) (NESFile, error) {
    file, err := os.Open(path)
    if err != nil {
        return NESFile{}, err
    }

    defer file.Close()

    nesFile, err := ParseNes(file)
    if err != nil {
        return NESFile{}, fmt.Errorf("%v: %w", path, err)
    }
    return nesFile, nil
}

func ParseNes(reader io.Reader) (NESFile, error) {
    header := make([]byte, inesHeaderSize)
    _, err := io.ReadFull(reader, header)
    if err != nil {
        if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
            return NESFile{}, ErrNotINes
        }
        return NESFile{}, err
    }

    if !isINes(header[0:4]) {
        return NESFile{}, ErrNotINes
    }

    nes2 := isNes2(header)
    prgRomSize := readPRG(header, nes2)
    chrRomSize := readCHR(header, nes2)
    mapper := readMapper(header)
    hasTrainer := (header[6] & 4) == 4

    if prgRomSize == 0 {
        return NESFile{}, fmt.Errorf("nes file has no program rom")
    }

    if prgRomSize > maxRomSize {
        return NESFile{}, fmt.Errorf("program rom size 0x%x is too large", prgRomSize)
    }

    if chrRomSize > maxRomSize {
        return NESFile{}, fmt.Errorf("character rom size 0x%x is too large", chrRomSize)
    }

    if hasTrainer {
        trainer := make([]byte, trainerSize)
        _, err = io.ReadFull(reader, trainer)
        if err != nil {
            return NESFile{}, fmt.Errorf("unable to read trainer area: %w", err)
        }
    }

    programRom := make([]byte, prgRomSize)
    _, err = io.ReadFull(reader, programRom)
    if err != nil {
        return NESFile{}, fmt.Errorf("program rom truncated, expected 0x%x bytes: %w", prgRomSize, err)
    }

    characterRom := make([]byte, chrRomSize)
    _, err = io.ReadFull(reader, characterRom)
    if err != nil {
        return NESFile{}, fmt.Errorf("character rom truncated, expected 0x%x bytes: %w", chrRomSize, err)
    }

    return NESFile{
        ProgramRom: programRom,
        CharacterRom: characterRom,
        Mapper: mapper,
        VerticalMirror: header[6] & 1 == 1,
        HorizontalMirror: header[6] & 1 == 0,
        FourScreen: header[6] & 8 == 8,
        HasTrainer: hasTrainer,
        Nes2: nes2,
    }, nil
}

/* the reset vector as it will appear once the program rom is mapped */
func (nesFile *NESFile) ResetVector() uint16 {
    size := len(nesFile.ProgramRom)
    if size < 4 {
        return 0
    }
    low := uint16(nesFile.ProgramRom[size - 4])
    high := uint16(nesFile.ProgramRom[size - 3])
    return (high << 8) | low
}

/* put the program rom of a cartridge into memory and power on the cpu */
func LoadNesFile(cpu *CPUState, path string) (NESFile, error) {
    nesFile, err := ParseNesFile(path)
    if err != nil {
        return NESFile{}, err
    }

    err = LoadNes(cpu, nesFile)
    if err != nil {
        return NESFile{}, err
    }

    return nesFile, nil
}

func LoadNes(cpu *CPUState, nesFile NESFile) error {
    mapper, err := MakeMapper(nesFile.Mapper, nesFile.ProgramRom)
    if err != nil {
        return err
    }

    err = mapper.Initialize(cpu)
    if err != nil {
        return err
    }

    if cpu.Debug > 0 {
        log.Printf("Loaded mapper %v with 0x%x bytes of program rom, reset vector 0x%x", nesFile.Mapper, len(nesFile.ProgramRom), nesFile.ResetVector())
    }

    cpu.PowerOn()
    return nil
}
