package data

import (
    "embed"
    "io/fs"
    "path"
    "strings"
)

/* small programs in the easy6502 style, they load at 0x600 and draw into 0x200-0x5ff */
//go:embed programs/*
var programsFS embed.FS

const ProgramAddress uint16 = 0x600

func ReadProgram(name string) ([]byte, error) {
    return fs.ReadFile(programsFS, path.Join("programs", name + ".bin"))
}

func Programs() []string {
    entries, err := fs.ReadDir(programsFS, "programs")
    if err != nil {
        return nil
    }

    var out []string
    for _, entry := range entries {
        out = append(out, strings.TrimSuffix(entry.Name(), ".bin"))
    }
    return out
}
