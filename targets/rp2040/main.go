//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"sdrbox/config"
	"sdrbox/core"
	"sdrbox/device"
	"sdrbox/display"
	"sdrbox/game"
	"sdrbox/hiscore"
	"sdrbox/radio"
	"sdrbox/targets/pio"
)

// oledPanel lets the screenshot read back what was last sent to the panel
type oledPanel struct {
	*ssd1306.Device
}

func (p oledPanel) Snapshot() []byte {
	buf := p.GetBuffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

func main() {
	// Clear any watchdog state left over from before the reset
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitUSB()
	InitClock()
	core.InitCoreCommands()

	cfg := config.Default()
	board := cfg.Board

	gpioDriver := NewRPGPIODriver()
	i2cDriver := NewRPI2CDriver()

	// Display
	displayBus, err := core.NewI2CBus(i2cDriver, core.I2CBusID(board.DisplayBus), board.DisplayHz)
	if err != nil {
		core.DebugPrintln("[DISPLAY] bus: " + err.Error())
		failLoop(machine.Pin(board.LEDPin))
	}
	oled := ssd1306.NewI2C(displayBus)
	oled.Configure(ssd1306.Config{
		Width:    game.ScreenWidth,
		Height:   game.ScreenHeight,
		Address:  uint16(board.DisplayAddress),
		VccState: ssd1306.SWITCHCAPVCC,
	})
	panel := oledPanel{Device: &oled}
	screen := display.NewSurface(panel)
	screen.Label(board.Callsign)

	// Synthesizer; the device stays usable without it
	synthBus, err := core.NewI2CBus(i2cDriver, core.I2CBusID(board.SynthBus), board.SynthHz)
	if err == nil {
		err = radio.NewSynth(synthBus, board.SynthAddress).Init()
	}
	if err != nil {
		core.DebugPrintln("[SYNTH] 0x" + core.Hex8(board.SynthAddress) + ": " + err.Error())
	}

	beeper := pio.NewBeeper(0, 0)
	if err := beeper.Init(board.BeeperPin); err != nil {
		core.DebugPrintln("[BEEP] " + err.Error())
	}

	clock := pumpClock{service: func() {
		serviceConsole()
		beeper.Update(core.GetTime())
	}}

	led, err := device.NewPinLED(gpioDriver, core.GPIOPin(board.LEDPin))
	if err != nil {
		core.DebugPrintln("[LED] " + err.Error())
	}
	fire, err := device.NewFireButton(gpioDriver, core.GPIOPin(board.FirePin))
	if err != nil {
		core.DebugPrintln("[KEY] " + err.Error())
	}

	g := game.New(cfg.Game, game.Peripherals{
		Display: screen,
		Input:   fire,
		Random:  newHardwareRandom(board.RandomSeed),
		Clock:   clock,
		Store:   &hiscore.Volatile{},
		Sound:   beeper,
	})

	m := device.NewMachine(device.Config{
		Timing: cfg.Modes,
		Screen: screen,
		LED:    led,
		Game:   g,
		Clock:  clock,
		Sound:  beeper,
	})

	device.InitCommands(m, g, device.NewScreenshot(panel))
	initConsole()

	// Reset through the watchdog, which also re-enumerates USB cleanly
	core.SetResetHandler(func() {
		if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1}); err != nil {
			return
		}
		if err := machine.Watchdog.Start(); err != nil {
			return
		}
		for {
			time.Sleep(1 * time.Millisecond)
		}
	})

	if err := gpioDriver.OnFallingEdge(core.GPIOPin(board.ModePin), m.RequestAdvance); err != nil {
		core.DebugPrintln("[MODE] button: " + err.Error())
	}

	core.RecordEvent(core.EvtBoot, 0, 0)

	for {
		func() {
			defer func() {
				if r := recover(); r != nil {
					msgerrors++
					core.RecordEvent(core.EvtPanic, msgerrors, 0)
					inputBuffer.Reset()
					outputBuffer.Reset()
				}
			}()
			m.Step()
		}()
	}
}

// failLoop signals a boot failure the device cannot run without by
// flashing the LED
func failLoop(led machine.Pin) {
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(100 * time.Millisecond)
		led.High()
		time.Sleep(100 * time.Millisecond)
	}
}
