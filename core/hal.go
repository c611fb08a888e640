package core

// GPIOPin is a pad number on the target
type GPIOPin uint32

// GPIODriver is implemented by each target. Inputs are only ever
// configured with a pull-up: every button on the board switches to
// ground.
type GPIODriver interface {
	ConfigureOutput(pin GPIOPin) error
	ConfigureInputPullUp(pin GPIOPin) error
	SetPin(pin GPIOPin, value bool) error
	ReadPin(pin GPIOPin) bool
}

// I2CBusID selects a hardware I2C controller
type I2CBusID uint8

// I2CAddress is a 7-bit device address
type I2CAddress uint8

// I2CDriver is implemented by each target. The display and the
// synthesizer reach it through an I2CBus.
type I2CDriver interface {
	ConfigureBus(bus I2CBusID, frequencyHz uint32) error
	Write(bus I2CBusID, addr I2CAddress, data []byte) error

	// Read writes regData, if any, then reads readLen bytes after a
	// repeated start
	Read(bus I2CBusID, addr I2CAddress, regData []byte, readLen uint8) ([]byte, error)
}
