//go:build rp2040 || rp2350

package main

import (
	"machine"
)

// InitUSB configures the USB CDC serial port the console runs on
func InitUSB() {
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}
}

// USBAvailable returns the number of bytes waiting on USB
func USBAvailable() int {
	return machine.Serial.Buffered()
}

// USBRead reads a single byte from USB
func USBRead() (byte, error) {
	return machine.Serial.ReadByte()
}

// USBWriteBytes writes as much of data as the endpoint accepts
func USBWriteBytes(data []byte) (int, error) {
	return machine.Serial.Write(data)
}
