package lib

import (
    "testing"
)

type aluCase struct {
    Name string
    Code []byte
    Accurate bool
    A byte
    Carry bool
    Negative bool

    ExpectA byte
    ExpectCarry bool
    ExpectZero bool
    ExpectNegative bool
    ExpectOverflow bool
}

func runAluCases(test *testing.T, cases []aluCase){
    for _, check := range cases {
        cpu := makeCPU(test, 0x1000, check.Code)
        cpu.Accurate = check.Accurate
        cpu.A = check.A
        cpu.P.Carry = check.Carry
        cpu.P.Negative = check.Negative
        cpu.Step()

        if cpu.A != check.ExpectA {
            test.Fatalf("%v: expected A to be 0x%x but was 0x%x", check.Name, check.ExpectA, cpu.A)
        }
        if cpu.P.Carry != check.ExpectCarry {
            test.Fatalf("%v: expected carry %v but flags are %v", check.Name, check.ExpectCarry, cpu.P.String())
        }
        if cpu.P.Zero != check.ExpectZero {
            test.Fatalf("%v: expected zero %v but flags are %v", check.Name, check.ExpectZero, cpu.P.String())
        }
        if cpu.P.Negative != check.ExpectNegative {
            test.Fatalf("%v: expected negative %v but flags are %v", check.Name, check.ExpectNegative, cpu.P.String())
        }
        if cpu.P.Overflow != check.ExpectOverflow {
            test.Fatalf("%v: expected overflow %v but flags are %v", check.Name, check.ExpectOverflow, cpu.P.String())
        }
    }
}

func TestAdc(test *testing.T){
    runAluCases(test, []aluCase{
        aluCase{Name: "simple", Code: []byte{0x69, 0x02}, A: 0x03, ExpectA: 0x05},
        aluCase{Name: "carry in", Code: []byte{0x69, 0x02}, A: 0x03, Carry: true, ExpectA: 0x06},
        aluCase{Name: "carry out", Code: []byte{0x69, 0x01}, A: 0xff, ExpectA: 0x00, ExpectCarry: true, ExpectZero: true},
        /* the overflow flag is only computed by the accurate cpu */
        aluCase{Name: "signed overflow", Code: []byte{0x69, 0x01}, A: 0x7f, ExpectA: 0x80, ExpectNegative: true},
        aluCase{Name: "signed overflow accurate", Code: []byte{0x69, 0x01}, Accurate: true, A: 0x7f, ExpectA: 0x80, ExpectNegative: true, ExpectOverflow: true},
        aluCase{Name: "negative overflow accurate", Code: []byte{0x69, 0x80}, Accurate: true, A: 0x80, ExpectA: 0x00, ExpectCarry: true, ExpectZero: true, ExpectOverflow: true},
        aluCase{Name: "no overflow accurate", Code: []byte{0x69, 0xff}, Accurate: true, A: 0x01, ExpectA: 0x00, ExpectCarry: true, ExpectZero: true},
    })
}

func TestSbc(test *testing.T){
    runAluCases(test, []aluCase{
        aluCase{Name: "simple", Code: []byte{0xe9, 0x03}, A: 0x05, Carry: true, ExpectA: 0x02, ExpectCarry: true},
        aluCase{Name: "borrow in", Code: []byte{0xe9, 0x03}, A: 0x05, Carry: false, ExpectA: 0x01, ExpectCarry: true},
        aluCase{Name: "borrow out", Code: []byte{0xe9, 0x05}, A: 0x03, Carry: true, ExpectA: 0xfe, ExpectNegative: true},
        aluCase{Name: "equal", Code: []byte{0xe9, 0x05}, A: 0x05, Carry: true, ExpectA: 0x00, ExpectCarry: true, ExpectZero: true},
        /* the carry is old A >= new A, which differs from hardware when the
         * whole subtraction wraps around to the same value
         */
        aluCase{Name: "wrap", Code: []byte{0xe9, 0xff}, A: 0x00, Carry: false, ExpectA: 0x00, ExpectCarry: true, ExpectZero: true},
        aluCase{Name: "wrap accurate", Code: []byte{0xe9, 0xff}, Accurate: true, A: 0x00, Carry: false, ExpectA: 0x00, ExpectZero: true},
        aluCase{Name: "overflow", Code: []byte{0xe9, 0x01}, A: 0x80, Carry: true, ExpectA: 0x7f, ExpectCarry: true},
        aluCase{Name: "overflow accurate", Code: []byte{0xe9, 0x01}, Accurate: true, A: 0x80, Carry: true, ExpectA: 0x7f, ExpectCarry: true, ExpectOverflow: true},
    })
}

func TestLogic(test *testing.T){
    runAluCases(test, []aluCase{
        aluCase{Name: "and", Code: []byte{0x29, 0x0f}, A: 0xf3, ExpectA: 0x03},
        aluCase{Name: "and zero", Code: []byte{0x29, 0x0f}, A: 0xf0, ExpectA: 0x00, ExpectZero: true},
        aluCase{Name: "ora", Code: []byte{0x09, 0x80}, A: 0x01, ExpectA: 0x81, ExpectNegative: true},
        aluCase{Name: "eor", Code: []byte{0x49, 0xff}, A: 0xff, ExpectA: 0x00, ExpectZero: true},
    })
}

func TestCompare(test *testing.T){
    /* the negative flag is left alone unless the cpu is accurate */
    runAluCases(test, []aluCase{
        aluCase{Name: "greater", Code: []byte{0xc9, 0x01}, A: 0x05, Negative: true, ExpectA: 0x05, ExpectCarry: true, ExpectNegative: true},
        aluCase{Name: "greater accurate", Code: []byte{0xc9, 0x01}, Accurate: true, A: 0x05, Negative: true, ExpectA: 0x05, ExpectCarry: true},
        aluCase{Name: "equal", Code: []byte{0xc9, 0x05}, A: 0x05, ExpectA: 0x05, ExpectCarry: true, ExpectZero: true},
        aluCase{Name: "less", Code: []byte{0xc9, 0x06}, A: 0x05, ExpectA: 0x05},
        aluCase{Name: "less accurate", Code: []byte{0xc9, 0x06}, Accurate: true, A: 0x05, ExpectA: 0x05, ExpectNegative: true},
    })

    cpu := makeCPU(test, 0x1000, []byte{0xe0, 0x03, 0xc0, 0x04}) // cpx #$03, cpy #$04
    cpu.X = 0x03
    cpu.Y = 0x02
    cpu.Step()
    if !cpu.P.Zero || !cpu.P.Carry {
        test.Fatalf("cpx: expected zero and carry: %v", cpu.P.String())
    }
    cpu.Step()
    if cpu.P.Zero || cpu.P.Carry {
        test.Fatalf("cpy: expected zero and carry to be clear: %v", cpu.P.String())
    }
}
