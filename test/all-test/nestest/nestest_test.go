package nestest

import (
    "strings"
    "testing"

    nes "github.com/kazzmir/nes6502/lib"
)

func TestParseLine(test *testing.T){
    line := "C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7"
    expected, err := parseLine(line)
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }

    if expected.PC != 0xc000 || expected.P != 0x24 || expected.SP != 0xfd || expected.Cycle != 7 {
        test.Fatalf("wrong values %v", expected)
    }

    expected, err = parseLine("C72C  A9 40     LDA #$40                        A:F9 X:0A Y:6B P:A5 SP:FB PPU: 30,  5 CYC:125")
    if err != nil {
        test.Fatalf("could not parse: %v", err)
    }
    if expected.A != 0xf9 || expected.X != 0x0a || expected.Y != 0x6b || expected.P != 0xa5 || expected.SP != 0xfb || expected.Cycle != 125 {
        test.Fatalf("wrong values %v", expected)
    }

    _, err = parseLine("C000  4C F5 C5  JMP $C5F5")
    if err == nil {
        test.Fatalf("expected an error for a line without registers")
    }
}

func TestCompare(test *testing.T){
    cpu := nes.NewCPU()
    // jmp $c005, (padding), ldx #$01, then an unmapped opcode
    cpu.MapMemory(0xc000, []byte{0x4c, 0x05, 0xc0, 0xea, 0xea, 0xa2, 0x01, 0x02})
    setup(cpu)

    var golden []Expected
    for _, line := range []string{
        "C000  4C 05 C0  JMP $C005                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7",
        "C005  A2 01     LDX #$01                        A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 30 CYC:10",
        "C007  02        *KIL                            A:00 X:01 Y:00 P:24 SP:FD PPU:  0, 36 CYC:12",
    } {
        expected, err := parseLine(line)
        if err != nil {
            test.Fatalf("could not parse: %v", err)
        }
        golden = append(golden, expected)
    }

    count, err := compare(cpu, golden, false)
    if err != nil {
        test.Fatalf("unexpected mismatch: %v", err)
    }
    if count != 2 {
        test.Fatalf("expected to stop after 2 instructions but got %v", count)
    }

    /* a wrong cycle count is reported */
    cpu = nes.NewCPU()
    cpu.MapMemory(0xc000, []byte{0x4c, 0x05, 0xc0, 0xea, 0xea, 0xa2, 0x01, 0x02})
    setup(cpu)
    golden[1].Cycle = 11
    _, err = compare(cpu, golden, false)
    if err == nil || !strings.Contains(err.Error(), "CYC:11") {
        test.Fatalf("expected a cycle mismatch but got %v", err)
    }
}

func TestStatusMatches(test *testing.T){
    if !statusMatches(0x34, 0x24) {
        test.Fatalf("break bit should be ignored")
    }
    if statusMatches(0x25, 0x24) {
        test.Fatalf("carry should not be ignored")
    }
}
