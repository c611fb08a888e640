//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"
	"sync"

	"sdrbox/core"
)

var (
	errI2CBusID         = errors.New("unsupported I2C bus ID")
	errI2CNotConfigured = errors.New("I2C bus not configured")
)

// RPI2CDriver is the core.I2CDriver on the two RP2040 controllers.
// Default pins: I2C0 SDA=GP4 SCL=GP5 (synthesizer), I2C1 SDA=GP6 SCL=GP7
// (OLED).
type RPI2CDriver struct {
	mu    sync.Mutex
	buses [2]*machine.I2C // nil until configured
}

func NewRPI2CDriver() *RPI2CDriver {
	return &RPI2CDriver{}
}

// ConfigureBus sets up a controller, or only changes its rate when it
// is already running
func (d *RPI2CDriver) ConfigureBus(bus core.I2CBusID, frequencyHz uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if int(bus) >= len(d.buses) {
		return errI2CBusID
	}
	if i2c := d.buses[bus]; i2c != nil {
		return i2c.SetBaudRate(frequencyHz)
	}

	i2c := machine.I2C0
	if bus == 1 {
		i2c = machine.I2C1
	}
	if err := i2c.Configure(machine.I2CConfig{Frequency: frequencyHz}); err != nil {
		return err
	}
	d.buses[bus] = i2c
	return nil
}

func (d *RPI2CDriver) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i2c, err := d.bus(bus)
	if err != nil {
		return err
	}
	return i2c.Tx(uint16(addr), data, nil)
}

func (d *RPI2CDriver) Read(bus core.I2CBusID, addr core.I2CAddress, regData []byte, readLen uint8) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i2c, err := d.bus(bus)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, readLen)
	if err := i2c.Tx(uint16(addr), regData, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (d *RPI2CDriver) bus(bus core.I2CBusID) (*machine.I2C, error) {
	if int(bus) >= len(d.buses) || d.buses[bus] == nil {
		return nil, errI2CNotConfigured
	}
	return d.buses[bus], nil
}
