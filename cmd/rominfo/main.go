package main

/* CLI utility that prints the header of NES files and finds ROMs for specific mappers */

import (
    "fmt"
    "flag"
    "io"
    "log"
    "os"
    "strings"
    "path/filepath"

    nes "github.com/kazzmir/nes6502/lib"
)

func getRoms(root string, mapper uint32) []string {
    /* walk filesystem looking for .nes files and return those that use the given mapper */

    var out []string

    filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
        if err != nil {
            return err
        }

        if strings.ToLower(filepath.Ext(path)) == ".nes" {
            nesFile, err := nes.ParseNesFile(path)
            if err == nil {
                if nesFile.Mapper == mapper {
                    out = append(out, path)
                }
            }
        }

        return nil
    })

    return out
}

func displayRoms(root string, mapper uint32) {
    roms := getRoms(root, mapper)
    fmt.Printf("Found %d ROMs for mapper %d\n", len(roms), mapper)
    for _, rom := range roms {
        fmt.Printf("%s\n", rom)
    }
}

func mirroring(nesFile nes.NESFile) string {
    switch {
        case nesFile.FourScreen: return "four screen"
        case nesFile.VerticalMirror: return "vertical"
        default: return "horizontal"
    }
}

func describe(writer io.Writer, path string, nesFile nes.NESFile) {
    format := "iNES"
    if nesFile.Nes2 {
        format = "NES 2.0"
    }

    fmt.Fprintf(writer, "%v\n", path)
    fmt.Fprintf(writer, "  format: %v\n", format)
    fmt.Fprintf(writer, "  program rom: %v bytes (%vK)\n", len(nesFile.ProgramRom), len(nesFile.ProgramRom) / 1024)
    fmt.Fprintf(writer, "  character rom: %v bytes (%vK)\n", len(nesFile.CharacterRom), len(nesFile.CharacterRom) / 1024)
    fmt.Fprintf(writer, "  mapper: %v\n", nesFile.Mapper)
    fmt.Fprintf(writer, "  mirroring: %v\n", mirroring(nesFile))
    fmt.Fprintf(writer, "  trainer: %v\n", nesFile.HasTrainer)

    _, err := nes.MakeMapper(nesFile.Mapper, nesFile.ProgramRom)
    if err != nil {
        fmt.Fprintf(writer, "  loadable: no (%v)\n", err)
    } else {
        fmt.Fprintf(writer, "  loadable: yes, reset vector 0x%04x\n", nesFile.ResetVector())
    }
}

func main(){
    log.SetFlags(log.Lshortfile | log.Lmicroseconds)

    findMapper := flag.Int("find", -1, "Find all ROMs with a specific mapper")
    root := flag.String("root", ".", "Directory to search with -find")

    flag.Parse()

    if *findMapper != -1 {
        displayRoms(*root, uint32(*findMapper))
        return
    }

    if flag.NArg() == 0 {
        fmt.Printf("Give a .nes file or -find <mapper>\n")
        os.Exit(1)
    }

    failed := false
    for _, path := range flag.Args() {
        nesFile, err := nes.ParseNesFile(path)
        if err != nil {
            log.Printf("Could not parse %v: %v", path, err)
            failed = true
            continue
        }
        describe(os.Stdout, path, nesFile)
    }

    if failed {
        os.Exit(1)
    }
}
