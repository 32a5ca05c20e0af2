package lib

import (
    "testing"
)

func TestFlagsRoundTrip(test *testing.T){
    for value := 0; value < 256; value++ {
        var flags Flags
        flags.SetByte(byte(value))
        if flags.Byte() != byte(value) {
            test.Fatalf("0x%x came back as 0x%x", value, flags.Byte())
        }
    }
}

func TestFlagPositions(test *testing.T){
    type flagCase struct {
        Flags Flags
        Value byte
    }

    cases := []flagCase{
        flagCase{Flags{Carry: true}, 0x01},
        flagCase{Flags{Zero: true}, 0x02},
        flagCase{Flags{InterruptDisable: true}, 0x04},
        flagCase{Flags{Decimal: true}, 0x08},
        flagCase{Flags{Break: true}, 0x10},
        flagCase{Flags{Unused: true}, 0x20},
        flagCase{Flags{Overflow: true}, 0x40},
        flagCase{Flags{Negative: true}, 0x80},
    }

    for _, check := range cases {
        if check.Flags.Byte() != check.Value {
            test.Fatalf("expected 0x%x but got 0x%x", check.Value, check.Flags.Byte())
        }
    }
}

func TestFlagsString(test *testing.T){
    var flags Flags
    flags.SetByte(0x34)
    if flags.String() != "nv-BdIzc" {
        test.Fatalf("unexpected flag string %v", flags.String())
    }

    /* the unused bit always prints as a dash */
    flags.SetByte(0xff)
    if flags.String() != "NV-BDIZC" {
        test.Fatalf("unexpected flag string %v", flags.String())
    }

    flags.SetByte(0x00)
    if flags.String() != "nv-bdizc" {
        test.Fatalf("unexpected flag string %v", flags.String())
    }
}
