package core

// I2CBus binds one bus of the I2C HAL to the tinygo.org/x/drivers I2C
// interface, so display and radio drivers can share the HAL.
type I2CBus struct {
	Driver I2CDriver
	Bus    I2CBusID
}

// NewI2CBus configures the bus at the given rate and returns the adapter.
func NewI2CBus(d I2CDriver, bus I2CBusID, frequencyHz uint32) (*I2CBus, error) {
	if err := d.ConfigureBus(bus, frequencyHz); err != nil {
		return nil, err
	}
	return &I2CBus{Driver: d, Bus: bus}, nil
}

// Tx performs a write, a read, or a write followed by a read.
// Matches the drivers.I2C signature.
func (b *I2CBus) Tx(addr uint16, w, r []byte) error {
	a := I2CAddress(addr & 0x7F)
	if len(r) == 0 {
		return b.Driver.Write(b.Bus, a, w)
	}
	data, err := b.Driver.Read(b.Bus, a, w, uint8(len(r)))
	if err != nil {
		return err
	}
	copy(r, data)
	return nil
}

// WriteRegister writes a single register value on the given device
func (b *I2CBus) WriteRegister(addr uint8, reg uint8, value uint8) error {
	return b.Driver.Write(b.Bus, I2CAddress(addr), []byte{reg, value})
}
