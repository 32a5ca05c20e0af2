package lib

import (
    "bytes"
    "errors"
    "os"
    "path/filepath"
    "testing"
)

/* an ines image with the given number of 16k program banks. the program
 * starts at 0x8000 with a nop
 */
func makeNesImage(banks byte, flags6 byte) []byte {
    header := []byte{'N', 'E', 'S', 0x1a, banks, 1, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}
    program := make([]byte, int(banks) * 16 * 1024)
    if len(program) > 0 {
        program[0] = 0xea
        /* reset vector */
        program[len(program) - 4] = 0x00
        program[len(program) - 3] = 0x80
    }
    character := make([]byte, 8 * 1024)

    var out bytes.Buffer
    out.Write(header)
    out.Write(program)
    out.Write(character)
    return out.Bytes()
}

func TestParseNes(test *testing.T){
    nesFile, err := ParseNes(bytes.NewReader(makeNesImage(1, 0x01)))
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }

    if len(nesFile.ProgramRom) != 16 * 1024 {
        test.Fatalf("expected 16k of program rom but got 0x%x", len(nesFile.ProgramRom))
    }

    if len(nesFile.CharacterRom) != 8 * 1024 {
        test.Fatalf("expected 8k of character rom but got 0x%x", len(nesFile.CharacterRom))
    }

    if nesFile.Mapper != 0 {
        test.Fatalf("expected mapper 0 but got %v", nesFile.Mapper)
    }

    if !nesFile.VerticalMirror || nesFile.HorizontalMirror {
        test.Fatalf("expected vertical mirroring")
    }

    if nesFile.ResetVector() != 0x8000 {
        test.Fatalf("expected reset vector 0x8000 but got 0x%x", nesFile.ResetVector())
    }
}

func TestParseNesMapperNumber(test *testing.T){
    image := makeNesImage(1, 0x10)
    image[7] = 0x40
    nesFile, err := ParseNes(bytes.NewReader(image))
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }
    if nesFile.Mapper != 0x41 {
        test.Fatalf("expected mapper 0x41 but got 0x%x", nesFile.Mapper)
    }
}

func TestParseNesErrors(test *testing.T){
    _, err := ParseNes(bytes.NewReader([]byte("hello world, this is not a rom")))
    if !errors.Is(err, ErrNotINes) {
        test.Fatalf("expected ErrNotINes but got %v", err)
    }

    _, err = ParseNes(bytes.NewReader([]byte("NES")))
    if !errors.Is(err, ErrNotINes) {
        test.Fatalf("expected ErrNotINes for a short file but got %v", err)
    }

    image := makeNesImage(2, 0)
    _, err = ParseNes(bytes.NewReader(image[:16 + 1000]))
    if err == nil {
        test.Fatalf("expected an error for a truncated program rom")
    }

    /* nes 2.0 exponent form claiming 2^62 bytes of program rom */
    huge := []byte{'N', 'E', 'S', 0x1a, 0xf8, 0, 0, 0x08, 0, 0x0f, 0, 0, 0, 0, 0, 0}
    _, err = ParseNes(bytes.NewReader(huge))
    if err == nil {
        test.Fatalf("expected an error for an oversized program rom")
    }

    /* same for character rom, program rom is a normal 16k bank */
    huge = []byte{'N', 'E', 'S', 0x1a, 1, 0xf8, 0, 0x08, 0, 0xf0, 0, 0, 0, 0, 0, 0}
    _, err = ParseNes(bytes.NewReader(append(huge, make([]byte, 16 * 1024)...)))
    if err == nil {
        test.Fatalf("expected an error for an oversized character rom")
    }
}

func TestParseNesTrainer(test *testing.T){
    image := makeNesImage(1, 0x04)
    trainer := make([]byte, trainerSize)
    withTrainer := append(append(append([]byte{}, image[:16]...), trainer...), image[16:]...)

    nesFile, err := ParseNes(bytes.NewReader(withTrainer))
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }
    if !nesFile.HasTrainer || nesFile.ProgramRom[0] != 0xea {
        test.Fatalf("trainer was not skipped")
    }
}

func TestLoadNesMirror(test *testing.T){
    nesFile, err := ParseNes(bytes.NewReader(makeNesImage(1, 0)))
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }

    cpu := NewCPU()
    err = LoadNes(cpu, nesFile)
    if err != nil {
        test.Fatalf("could not load: %v", err)
    }

    if cpu.PC != 0x8000 {
        test.Fatalf("expected PC 0x8000 but was 0x%x", cpu.PC)
    }

    if cpu.LoadMemory(0xc000) != 0xea {
        test.Fatalf("expected the 16k bank to be mirrored at 0xc000")
    }
}

func TestLoadNesUnsupportedMapper(test *testing.T){
    nesFile, err := ParseNes(bytes.NewReader(makeNesImage(1, 0x10)))
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }

    err = LoadNes(NewCPU(), nesFile)
    var mapperError *UnsupportedMapperError
    if !errors.As(err, &mapperError) || mapperError.Mapper != 1 {
        test.Fatalf("expected an unsupported mapper error but got %v", err)
    }
}

func TestLoadNesFile(test *testing.T){
    path := filepath.Join(test.TempDir(), "test.nes")
    err := os.WriteFile(path, makeNesImage(2, 0), 0644)
    if err != nil {
        test.Fatalf("could not write rom: %v", err)
    }

    cpu := NewCPU()
    nesFile, err := LoadNesFile(cpu, path)
    if err != nil {
        test.Fatalf("could not load %v: %v", path, err)
    }

    if len(nesFile.ProgramRom) != 32 * 1024 {
        test.Fatalf("expected 32k of program rom")
    }

    /* nop at 0x8000 */
    cpu.Execute(2)
    if cpu.PC != 0x8001 || cpu.Halted {
        test.Fatalf("expected to run the nop at 0x8000, PC is 0x%x", cpu.PC)
    }
}
