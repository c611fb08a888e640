//go:build rp2040 || rp2350

package main

import (
	"time"

	"sdrbox/core"
	"sdrbox/protocol"
)

var (
	inputBuffer  *protocol.FifoBuffer
	outputBuffer *protocol.ScratchOutput
	transport    *protocol.Transport

	// Debug counters
	messagesReceived uint32
	messagesSent     uint32
	msgerrors        uint32

	usbWasDisconnected       bool
	consecutiveWriteFailures uint32
)

// initConsole builds the dictionary and the transport. Every command
// must be registered before this runs.
func initConsole() {
	core.GetGlobalDictionary().BuildDictionary()

	inputBuffer = protocol.NewFifoBuffer(256)
	outputBuffer = protocol.NewScratchOutput()

	transport = protocol.NewTransport(outputBuffer, handleCommand)
	transport.SetResetCallback(func() {
		inputBuffer.Reset()
		outputBuffer.Reset()
	})
	// ACKs go out before the response they acknowledge
	transport.SetFlushCallback(writeUSB)
	core.SetGlobalTransport(transport)

	core.SetDebugWriter(core.SendLog)

	go usbReaderLoop()
}

// serviceConsole handles received frames and flushes pending output
func serviceConsole() {
	if inputBuffer.Available() > 0 {
		data := inputBuffer.Data()
		originalLen := len(data)
		inputBuf := protocol.NewSliceInputBuffer(data)

		transport.Receive(inputBuf)
		messagesReceived++

		consumed := originalLen - inputBuf.Available()
		if consumed > 0 {
			inputBuffer.Pop(consumed)
		}
	}

	if len(outputBuffer.Result()) > 0 {
		writeUSB()
		messagesSent++
	}

	// Only after the ACK for the reset command has been written
	core.CheckPendingReset()
}

// usbReaderLoop moves bytes from USB into the input FIFO
func usbReaderLoop() {
	defer func() {
		if r := recover(); r != nil {
			msgerrors++
			time.Sleep(100 * time.Millisecond)
			go usbReaderLoop()
		}
	}()

	for {
		if USBAvailable() > 0 {
			data, err := USBRead()
			if err != nil {
				msgerrors++
				time.Sleep(1 * time.Millisecond)
				continue
			}

			// A fresh connection starts from a clean link state
			if usbWasDisconnected {
				usbWasDisconnected = false
				inputBuffer.Reset()
				outputBuffer.Reset()
				transport.Reset()
				messagesReceived = 0
				messagesSent = 0
				consecutiveWriteFailures = 0
			}

			if inputBuffer.Write([]byte{data}) == 0 {
				msgerrors++
				time.Sleep(10 * time.Millisecond)
			}
		}
		time.Sleep(100 * time.Microsecond)
	}
}

func handleCommand(cmdID uint16, data *[]byte) error {
	return core.DispatchCommand(cmdID, data)
}

// writeUSB drains the output buffer. Repeated failures mean the host is
// gone, so stale output is dropped instead of retried forever.
func writeUSB() {
	result := outputBuffer.Result()
	written := 0
	for written < len(result) {
		n, err := USBWriteBytes(result[written:])
		if err != nil || n == 0 {
			consecutiveWriteFailures++
			if consecutiveWriteFailures > 10 {
				usbWasDisconnected = true
				consecutiveWriteFailures = 0
				outputBuffer.Reset()
				inputBuffer.Reset()
			}
			return
		}
		written += n
	}
	consecutiveWriteFailures = 0
	outputBuffer.Reset()
}
