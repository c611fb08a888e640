package core

import (
	"sync/atomic"

	"sdrbox/protocol"
)

// Global transport for sending responses (set by main)
var globalTransport *protocol.Transport

// resetPending is set by the reset command; the main loop performs the
// reset after the ACK has gone out
var resetPending uint32

var globalResetHandler func()

// InitCoreCommands registers the console bootstrap and housekeeping
// messages. Order matters: the host assumes identify_response is ID 0
// and identify is ID 1 before it has read the dictionary.
func InitCoreCommands() {
	RegisterResponse("identify_response", "offset=%u data=%*s") // ID 0
	RegisterCommand("identify", "offset=%u count=%c", handleIdentify) // ID 1

	RegisterCommand("get_clock", "", handleGetClock)
	RegisterCommand("reset", "", handleReset)

	RegisterResponse("clock", "clock=%u")
	RegisterResponse("log", "msg=%*s")

	RegisterConstant("CLOCK_FREQ", uint32(TimerFreq))
}

// handleIdentify returns chunks of the data dictionary
// Format: identify offset=%u count=%c
func handleIdentify(data *[]byte) error {
	offset, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}
	count, err := protocol.DecodeVLQUint(data)
	if err != nil {
		return err
	}

	chunk := GetGlobalDictionary().GetChunk(offset, uint8(count))

	SendResponse("identify_response", func(output protocol.OutputBuffer) {
		protocol.EncodeVLQUint(output, offset)
		protocol.EncodeVLQBytes(output, chunk)
	})
	return nil
}

func handleGetClock(data *[]byte) error {
	clock := GetTime()
	SendResponse("clock", func(output protocol.OutputBuffer) {
		protocol.EncodeVLQUint(output, clock)
	})
	return nil
}

// handleReset defers the reset until after the ACK is sent
func handleReset(_ *[]byte) error {
	atomic.StoreUint32(&resetPending, 1)
	return nil
}

// SetResetHandler sets the platform-specific reset handler
func SetResetHandler(handler func()) {
	globalResetHandler = handler
}

// CheckPendingReset runs the reset handler if a reset was requested.
// Call from the main loop once pending output has been flushed.
func CheckPendingReset() {
	if atomic.LoadUint32(&resetPending) != 0 && globalResetHandler != nil {
		globalResetHandler()
	}
}

// SetGlobalTransport sets the transport used by SendResponse
func SetGlobalTransport(transport *protocol.Transport) {
	globalTransport = transport
}

// SendResponse encodes a registered response on the global transport.
// Without a transport (console not connected) it does nothing.
func SendResponse(responseName string, args func(output protocol.OutputBuffer)) {
	if globalTransport == nil {
		return
	}
	cmd, ok := globalRegistry.GetCommandByName(responseName)
	if !ok {
		panic("response not registered: " + responseName)
	}
	globalTransport.SendCommand(cmd.ID, args)
}

// SendLog sends a text line to the console as a log response.
// Long lines are truncated to fit one frame.
func SendLog(msg string) {
	if len(msg) > maxLogLen {
		msg = msg[:maxLogLen]
	}
	SendResponse("log", func(output protocol.OutputBuffer) {
		protocol.EncodeVLQString(output, msg)
	})
}

// Frame budget: 64 bytes minus header, trailer, ID and length prefix
const maxLogLen = protocol.MessageLengthMax - protocol.MessageHeaderSize -
	protocol.MessageTrailerSize - 2 - 2
