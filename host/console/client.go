// Package console is the host side of the device console link. It
// downloads the dictionary, then drives the device by command name.
package console

import (
	"bytes"
	"compress/zlib"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"sdrbox/host/serial"
	"sdrbox/protocol"
)

// Bootstrap IDs, fixed before the dictionary is known
const (
	identifyResponseID = 0
	identifyID         = 1
	identifyChunk      = 40
)

// ErrNoDictionary is returned when a command is sent before Identify
var ErrNoDictionary = errors.New("dictionary not loaded")

// Dictionary is the parsed device self-description
type Dictionary struct {
	Version   string            `json:"version"`
	Config    map[string]string `json:"config"`
	Commands  map[string]int    `json:"commands"`
	Responses map[string]int    `json:"responses"`
}

// Status is the decoded status response
type Status struct {
	Mode      uint32
	Commits   uint32
	InPlay    bool
	Score     uint32
	HighScore uint32
	Lives     uint32
	Level     uint32
}

// Client is a connection to one device
type Client struct {
	transport *protocol.HostTransport
	timeout   time.Duration

	dictionary *Dictionary
	commands   map[string]uint16

	// responses and onLog are read by the transport goroutine
	mu        sync.Mutex
	responses map[uint16]string
	onLog     func(string)
}

// Dial opens the serial device and starts the link
func Dial(device string) (*Client, error) {
	port, err := serial.Open(serial.DefaultConfig(device))
	if err != nil {
		return nil, err
	}
	return New(port), nil
}

// New runs the console over an already open port
func New(port io.ReadWriteCloser) *Client {
	c := &Client{
		transport: protocol.NewHostTransport(port),
		timeout:   time.Second,
	}
	c.transport.SetResponseHandler(c.handleResponse)
	return c
}

// Close stops the link and closes the port
func (c *Client) Close() error {
	return c.transport.Close()
}

// OnLog installs the handler for log lines; they arrive on the read
// goroutine at any time
func (c *Client) OnLog(handler func(string)) {
	c.mu.Lock()
	c.onLog = handler
	c.mu.Unlock()
}

func (c *Client) handleResponse(cmdID uint16, data *[]byte) error {
	c.mu.Lock()
	isLog := c.responses[cmdID] == "log"
	handler := c.onLog
	c.mu.Unlock()
	if !isLog || handler == nil {
		return nil
	}
	msg, err := protocol.DecodeVLQBytes(data)
	if err != nil {
		return err
	}
	handler(string(msg))
	return nil
}

// Identify downloads, inflates and parses the dictionary
func (c *Client) Identify() (*Dictionary, error) {
	var raw bytes.Buffer
	for offset := uint32(0); ; {
		chunk, err := c.identifyChunk(offset)
		if err != nil {
			return nil, fmt.Errorf("dictionary at offset %d: %w", offset, err)
		}
		raw.Write(chunk)
		offset += uint32(len(chunk))
		if len(chunk) < identifyChunk {
			break
		}
	}

	data, err := inflate(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("inflate dictionary: %w", err)
	}
	dict := &Dictionary{}
	if err := json.Unmarshal(data, dict); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}

	// Keys are "name format"
	commands := make(map[string]uint16, len(dict.Commands))
	for format, id := range dict.Commands {
		commands[messageName(format)] = uint16(id)
	}
	responses := make(map[uint16]string, len(dict.Responses))
	for format, id := range dict.Responses {
		responses[uint16(id)] = messageName(format)
	}

	c.dictionary = dict
	c.commands = commands
	c.mu.Lock()
	c.responses = responses
	c.mu.Unlock()
	return dict, nil
}

func (c *Client) identifyChunk(offset uint32) ([]byte, error) {
	err := c.transport.SendCommand(identifyID, func(output protocol.OutputBuffer) {
		protocol.EncodeVLQUint(output, offset)
		protocol.EncodeVLQUint(output, identifyChunk)
	})
	if err != nil {
		return nil, err
	}
	payload, err := c.awaitID(identifyResponseID)
	if err != nil {
		return nil, err
	}
	respOffset, err := protocol.DecodeVLQUint(&payload)
	if err != nil {
		return nil, err
	}
	if respOffset != offset {
		return nil, fmt.Errorf("offset mismatch: expected %d, got %d", offset, respOffset)
	}
	return protocol.DecodeVLQBytes(&payload)
}

func messageName(format string) string {
	if i := strings.IndexByte(format, ' '); i >= 0 {
		return format[:i]
	}
	return format
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Dictionary returns the parsed dictionary, nil before Identify
func (c *Client) Dictionary() *Dictionary {
	return c.dictionary
}

// Send sends a command by name with VLQ arguments
func (c *Client) Send(name string, args ...uint32) error {
	if c.dictionary == nil {
		return ErrNoDictionary
	}
	id, ok := c.commands[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	return c.transport.SendCommand(id, func(output protocol.OutputBuffer) {
		for _, a := range args {
			protocol.EncodeVLQUint(output, a)
		}
	})
}

// await returns the arguments of the next response with the given name
func (c *Client) await(name string) ([]byte, error) {
	c.mu.Lock()
	var (
		id    uint16
		found bool
	)
	for rid, n := range c.responses {
		if n == name {
			id, found = rid, true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return nil, fmt.Errorf("unknown response: %s", name)
	}
	return c.awaitID(id)
}

// awaitID skips other queued responses until cmdID arrives
func (c *Client) awaitID(cmdID uint16) ([]byte, error) {
	deadline := time.Now().Add(c.timeout)
	for {
		left := time.Until(deadline)
		if left <= 0 {
			return nil, fmt.Errorf("timeout waiting for response %d", cmdID)
		}
		msg, err := c.transport.ReceiveResponse(left)
		if err != nil {
			return nil, err
		}
		payload := msg.Payload
		id, err := protocol.DecodeVLQUint(&payload)
		if err != nil {
			continue
		}
		if uint16(id) == cmdID {
			return payload, nil
		}
	}
}

// AdvanceMode presses the mode button remotely
func (c *Client) AdvanceMode() error {
	return c.Send("mode_advance")
}

// ResetHighScore clears the stored high score
func (c *Client) ResetHighScore() error {
	return c.Send("hiscore_reset")
}

// DumpEvents asks for the event ring; it arrives as log lines
func (c *Client) DumpEvents() error {
	return c.Send("dump_events")
}

// SetDebug switches the device debug log
func (c *Client) SetDebug(on bool) error {
	v := uint32(0)
	if on {
		v = 1
	}
	return c.Send("set_debug", v)
}

// Reboot resets the device
func (c *Client) Reboot() error {
	return c.Send("reset")
}

// Status reads the mode and game state
func (c *Client) Status() (Status, error) {
	if err := c.Send("get_status"); err != nil {
		return Status{}, err
	}
	payload, err := c.await("status")
	if err != nil {
		return Status{}, err
	}
	var fields [7]uint32
	for i := range fields {
		if fields[i], err = protocol.DecodeVLQUint(&payload); err != nil {
			return Status{}, fmt.Errorf("status field %d: %w", i, err)
		}
	}
	return Status{
		Mode:      fields[0],
		Commits:   fields[1],
		InPlay:    fields[2] != 0,
		Score:     fields[3],
		HighScore: fields[4],
		Lives:     fields[5],
		Level:     fields[6],
	}, nil
}

// Screenshot captures the screen and returns the raw frame in SSD1306
// page order
func (c *Client) Screenshot() ([]byte, error) {
	var stream bytes.Buffer
	for {
		offset := uint32(stream.Len())
		if err := c.Send("screenshot", offset, identifyChunk); err != nil {
			return nil, err
		}
		payload, err := c.await("screenshot_data")
		if err != nil {
			return nil, err
		}
		respOffset, err := protocol.DecodeVLQUint(&payload)
		if err != nil {
			return nil, err
		}
		total, err := protocol.DecodeVLQUint(&payload)
		if err != nil {
			return nil, err
		}
		chunk, err := protocol.DecodeVLQBytes(&payload)
		if err != nil {
			return nil, err
		}
		if respOffset != offset {
			return nil, fmt.Errorf("offset mismatch: expected %d, got %d", offset, respOffset)
		}
		stream.Write(chunk)
		if uint32(stream.Len()) >= total || len(chunk) == 0 {
			break
		}
	}
	return inflate(stream.Bytes())
}
