//go:build rp2040 || rp2350

package main

import (
	"machine"

	"sdrbox/core"
)

// RPGPIODriver implements core.GPIODriver on the RP2040 pads
type RPGPIODriver struct {
	configuredPins map[core.GPIOPin]machine.Pin
}

// NewRPGPIODriver creates the driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
	}
}

// ConfigureOutput configures a pin as a push-pull output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		return nil
	}
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configuredPins[pin] = p
	return nil
}

// ConfigureInputPullUp configures a pin as an input with pull-up
func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		return nil
	}
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.configuredPins[pin] = p
	return nil
}

// SetPin drives an output, configuring it first if needed
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	p, exists := d.configuredPins[pin]
	if !exists {
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		p = d.configuredPins[pin]
	}
	p.Set(value)
	return nil
}

// ReadPin returns the pin level; unconfigured pins read low
func (d *RPGPIODriver) ReadPin(pin core.GPIOPin) bool {
	p, exists := d.configuredPins[pin]
	if !exists {
		return false
	}
	return p.Get()
}

// OnFallingEdge attaches an interrupt handler to an input pin
func (d *RPGPIODriver) OnFallingEdge(pin core.GPIOPin, handler func()) error {
	if err := d.ConfigureInputPullUp(pin); err != nil {
		return err
	}
	return d.configuredPins[pin].SetInterrupt(machine.PinFalling, func(machine.Pin) {
		handler()
	})
}
