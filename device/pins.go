package device

import "sdrbox/core"

// PinLED drives the status LED through the GPIO driver
type PinLED struct {
	Pin    core.GPIOPin
	Driver core.GPIODriver
}

// NewPinLED configures the pin as an output, LED off
func NewPinLED(d core.GPIODriver, pin core.GPIOPin) (*PinLED, error) {
	if err := d.ConfigureOutput(pin); err != nil {
		return nil, err
	}
	l := &PinLED{Pin: pin, Driver: d}
	l.Set(false)
	return l, nil
}

func (l *PinLED) Set(on bool) {
	if err := l.Driver.SetPin(l.Pin, on); err != nil {
		core.DebugPrintln("[LED] " + err.Error())
	}
}

// FireButton samples the PTT key, which doubles as the fire button. It
// is wired to ground with a pull-up, so pressed reads low.
type FireButton struct {
	Pin    core.GPIOPin
	Driver core.GPIODriver
}

// NewFireButton configures the pin as a pulled-up input
func NewFireButton(d core.GPIODriver, pin core.GPIOPin) (*FireButton, error) {
	if err := d.ConfigureInputPullUp(pin); err != nil {
		return nil, err
	}
	return &FireButton{Pin: pin, Driver: d}, nil
}

func (b *FireButton) FirePressed() bool {
	return !b.Driver.ReadPin(b.Pin)
}
