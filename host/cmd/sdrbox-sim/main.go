package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sdrbox/config"
	"sdrbox/core"
	"sdrbox/display"
	"sdrbox/game"
	"sdrbox/hiscore"
	"sdrbox/host/sim"
)

var (
	configPath  = flag.String("config", "", "JSON configuration file")
	scale       = flag.Int("scale", 6, "Window scale factor")
	seed        = flag.Uint("seed", 0, "Random seed (0 uses the board setting)")
	wavPath     = flag.String("wav", "", "Record the beeper to this WAV file")
	hiscorePath = flag.String("hiscore", "sdrbox-hiscore.json", "High score file")
	debug       = flag.Bool("debug", false, "Print the device debug log")
)

// ledBar is the strip under the display holding the status LED
const ledBar = 4

var (
	ledOn  = color.RGBA{R: 0xFF, G: 0x30, B: 0x30, A: 0xFF}
	ledOff = color.RGBA{R: 0x30, G: 0x08, B: 0x08, A: 0xFF}
)

// window shows the simulated device. The firmware loop runs on its own
// goroutine; the window only reads the presented frame and the LED.
type window struct {
	dev    *sim.Device
	pixels []byte
	panel  *ebiten.Image
}

func (w *window) Update() error {
	w.dev.Keys.Set(
		ebiten.IsKeyPressed(ebiten.KeySpace),
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyR),
	)
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.dev.Machine.RequestAdvance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(w.dev.Text()); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	frame := w.dev.Frame.Snapshot()
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			v := byte(0)
			if frame[x+(y/8)*display.Width]&(1<<(y%8)) != 0 {
				v = 0xFF
			}
			i := 4 * (y*display.Width + x)
			w.pixels[i], w.pixels[i+1], w.pixels[i+2], w.pixels[i+3] = v, v, v, 0xFF
		}
	}
	w.panel.WritePixels(w.pixels)
	screen.DrawImage(w.panel, nil)

	c := ledOff
	if w.dev.LED.On() {
		c = ledOn
	}
	for y := display.Height + 1; y < display.Height+ledBar; y++ {
		for x := display.Width - 6; x < display.Width-2; x++ {
			screen.Set(x, y, c)
		}
	}
}

func (w *window) Layout(_, _ int) (int, int) {
	return display.Width, display.Height + ledBar
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	if *debug {
		core.SetDebugWriter(func(msg string) { log.Println(msg) })
		core.SetDebugEnabled(true)
	}

	var rec *sim.Recorder
	if *wavPath != "" {
		rec = sim.NewRecorder(22050)
	}
	var store game.ScoreStore = &hiscore.Volatile{}
	if *hiscorePath != "" {
		store = &hiscore.File{Path: *hiscorePath}
	}

	dev := sim.New(sim.Options{
		Config:   cfg,
		Seed:     uint16(*seed),
		Store:    store,
		Recorder: rec,
		Realtime: true,
	})

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		dev.Run(stop)
	}()

	w := &window{
		dev:    dev,
		pixels: make([]byte, 4*display.Width*display.Height),
		panel:  ebiten.NewImage(display.Width, display.Height),
	}
	ebiten.SetWindowTitle("sdrbox " + cfg.Board.Callsign)
	ebiten.SetWindowSize(display.Width*(*scale), (display.Height+ledBar)*(*scale))
	if err := ebiten.RunGame(w); err != nil {
		log.Print(err)
	}

	close(stop)
	<-done
	core.DumpEvents()
	if rec != nil {
		if err := rec.Save(*wavPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *wavPath)
	}
}
