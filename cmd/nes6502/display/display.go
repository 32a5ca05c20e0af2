package display

/* shows a program the way the easy6502 style examples expect: the 32x32
 * screen is the memory at 0x200-0x5ff with one byte per pixel, 0xfe holds a
 * new random byte before each instruction and 0xff holds the last key typed
 */

import (
    "fmt"
    "image/color"
    "math/rand"

    nes "github.com/kazzmir/nes6502/lib"

    "github.com/hajimehoshi/ebiten/v2"
    "github.com/hajimehoshi/ebiten/v2/inpututil"
    "github.com/hajimehoshi/ebiten/v2/text/v2"
    "github.com/hajimehoshi/ebiten/v2/vector"
    "golang.org/x/image/font/basicfont"
)

const ScreenAddress uint16 = 0x200
const ScreenWidth = 32
const ScreenHeight = 32
const RandomAddress uint16 = 0xfe
const KeyAddress uint16 = 0xff

const statusHeight = 16

var Palette = [16]color.RGBA{
    color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
    color.RGBA{R: 0x88, G: 0x00, B: 0x00, A: 0xff},
    color.RGBA{R: 0xaa, G: 0xff, B: 0xee, A: 0xff},
    color.RGBA{R: 0xcc, G: 0x44, B: 0xcc, A: 0xff},
    color.RGBA{R: 0x00, G: 0xcc, B: 0x55, A: 0xff},
    color.RGBA{R: 0x00, G: 0x00, B: 0xaa, A: 0xff},
    color.RGBA{R: 0xee, G: 0xee, B: 0x77, A: 0xff},
    color.RGBA{R: 0xdd, G: 0x88, B: 0x55, A: 0xff},
    color.RGBA{R: 0x66, G: 0x44, B: 0x00, A: 0xff},
    color.RGBA{R: 0xff, G: 0x77, B: 0x77, A: 0xff},
    color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
    color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff},
    color.RGBA{R: 0xaa, G: 0xff, B: 0x66, A: 0xff},
    color.RGBA{R: 0x00, G: 0x88, B: 0xff, A: 0xff},
    color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff},
}

/* convert the screen memory into RGBA pixels, only the low nibble of each byte picks the color */
func ScreenPixels(cpu *nes.CPUState, pixels []byte) []byte {
    size := ScreenWidth * ScreenHeight * 4
    if len(pixels) != size {
        pixels = make([]byte, size)
    }

    for i := 0; i < ScreenWidth * ScreenHeight; i++ {
        value := cpu.LoadMemory(ScreenAddress + uint16(i))
        pixel := Palette[value & 0xf]
        pixels[i*4+0] = pixel.R
        pixels[i*4+1] = pixel.G
        pixels[i*4+2] = pixel.B
        pixels[i*4+3] = pixel.A
    }

    return pixels
}

/* run about cycles worth of instructions, feeding a random byte in before each one */
func RunFrame(cpu *nes.CPUState, cycles int, random func() byte){
    for cycles > 0 && !cpu.Halted {
        cpu.StoreMemory(RandomAddress, random())
        cycles -= cpu.Step()
    }
}

type Game struct {
    cpu *nes.CPUState
    cycles int
    scale int
    screen *ebiten.Image
    pixels []byte
    font text.Face
    paused bool
}

func MakeGame(cpu *nes.CPUState, scale int, cycles int) *Game {
    return &Game{
        cpu: cpu,
        cycles: cycles,
        scale: scale,
        font: text.NewGoXFace(basicfont.Face7x13),
    }
}

func (game *Game) Update() error {
    if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
        return ebiten.Termination
    }

    if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
        game.paused = !game.paused
    }

    for _, key := range ebiten.AppendInputChars(nil) {
        game.cpu.StoreMemory(KeyAddress, byte(key))
    }

    /* the usual direction keys of the snake style programs */
    arrows := map[ebiten.Key]byte{
        ebiten.KeyArrowUp: 'w',
        ebiten.KeyArrowLeft: 'a',
        ebiten.KeyArrowDown: 's',
        ebiten.KeyArrowRight: 'd',
    }
    for key, value := range arrows {
        if inpututil.IsKeyJustPressed(key) {
            game.cpu.StoreMemory(KeyAddress, value)
        }
    }

    if !game.paused {
        RunFrame(game.cpu, game.cycles, func() byte {
            return byte(rand.Intn(256))
        })
    }

    return nil
}

func (game *Game) status() string {
    if game.cpu.Halted {
        return fmt.Sprintf("halted: %v", game.cpu.Err())
    }
    state := ""
    if game.paused {
        state = " paused"
    }
    return fmt.Sprintf("PC:%04X cycle:%v%v", game.cpu.PC, game.cpu.Cycle, state)
}

func (game *Game) Draw(screen *ebiten.Image) {
    if game.screen == nil {
        game.screen = ebiten.NewImage(ScreenWidth, ScreenHeight)
    }

    game.pixels = ScreenPixels(game.cpu, game.pixels)
    game.screen.WritePixels(game.pixels)

    var options ebiten.DrawImageOptions
    options.GeoM.Scale(float64(game.scale), float64(game.scale))
    screen.DrawImage(game.screen, &options)

    top := float32(ScreenHeight * game.scale)
    vector.FillRect(screen, 0, top, float32(screen.Bounds().Dx()), statusHeight, color.NRGBA{R: 32, G: 32, B: 64, A: 255}, false)

    _, fontHeight := text.Measure("A", game.font, 1)
    var textOptions text.DrawOptions
    textOptions.GeoM.Translate(2, float64(top) + (statusHeight - fontHeight) / 2)
    text.Draw(screen, game.status(), game.font, &textOptions)
}

func (game *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
    return ScreenWidth * game.scale, ScreenHeight * game.scale + statusHeight
}

/* open a window and run the cpu until the window is closed or escape is pressed */
func Run(cpu *nes.CPUState, scale int, cycles int) error {
    game := MakeGame(cpu, scale, cycles)
    width, height := game.Layout(0, 0)
    ebiten.SetWindowSize(width, height)
    ebiten.SetWindowTitle("nes6502")
    ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

    err := ebiten.RunGame(game)
    if err == ebiten.Termination {
        return nil
    }
    return err
}
