package protocol

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// ErrTransportClosed is returned by waits interrupted by Close
var ErrTransportClosed = errors.New("transport stopped")

// ResponseHandler is called from the read goroutine for every response
type ResponseHandler func(cmdID uint16, data *[]byte) error

// Message is one received frame
type Message struct {
	Length   uint8
	Sequence uint8
	Payload  []byte // without header and trailer
	CRC      uint16
}

// HostTransport is the console side of the link. It stamps outgoing
// frames with its sequence, waits for the device ACK, and queues
// responses read by a background goroutine.
type HostTransport struct {
	// AckTimeout bounds the wait in SendCommand
	AckTimeout time.Duration

	port io.ReadWriteCloser

	currentSeq     uint32 // atomic; 0x10-0x1F
	isSynchronized uint32 // atomic bool

	inputBuffer *FifoBuffer

	ackChan      chan *Message
	responseChan chan *Message

	handlerMu       sync.RWMutex
	responseHandler ResponseHandler

	writeMutex sync.Mutex

	stopOnce sync.Once
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewHostTransport starts reading from port immediately
func NewHostTransport(port io.ReadWriteCloser) *HostTransport {
	t := &HostTransport{
		AckTimeout:     2 * time.Second,
		port:           port,
		currentSeq:     MessageDest,
		isSynchronized: 1,
		inputBuffer:    NewFifoBuffer(1024),
		ackChan:        make(chan *Message, 1),
		responseChan:   make(chan *Message, 32),
		stopChan:       make(chan struct{}),
		doneChan:       make(chan struct{}),
	}

	go t.readLoop()

	return t
}

// SendCommand sends a command and waits for the device ACK
func (t *HostTransport) SendCommand(cmdID uint16, args func(output OutputBuffer)) error {
	msg, err := t.buildCommandMessage(cmdID, args)
	if err != nil {
		return fmt.Errorf("failed to build command: %w", err)
	}

	if err := t.writeMessage(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := t.waitForAck(t.AckTimeout); err != nil {
		return fmt.Errorf("no ACK: %w", err)
	}
	return nil
}

// buildCommandMessage frames cmdID and its arguments
func (t *HostTransport) buildCommandMessage(cmdID uint16, args func(output OutputBuffer)) ([]byte, error) {
	scratch := NewScratchOutput()
	EncodeVLQUint(scratch, uint32(cmdID))
	if args != nil {
		args(scratch)
	}
	payload := scratch.Result()

	msgLen := MessageHeaderSize + len(payload) + MessageTrailerSize
	if msgLen > MessageLengthMax {
		return nil, fmt.Errorf("message too long: %d bytes (max %d)", msgLen, MessageLengthMax)
	}

	seq := uint8(atomic.LoadUint32(&t.currentSeq))
	msg := make([]byte, 0, msgLen)
	msg = append(msg, uint8(msgLen), seq)
	msg = append(msg, payload...)
	return appendTrailer(msg), nil
}

func (t *HostTransport) writeMessage(msg []byte) error {
	t.writeMutex.Lock()
	defer t.writeMutex.Unlock()

	n, err := t.port.Write(msg)
	if err != nil {
		return err
	}
	if n != len(msg) {
		return fmt.Errorf("incomplete write: %d/%d bytes", n, len(msg))
	}
	return nil
}

// waitForAck waits for the ACK of the frame just sent and advances the
// sequence. ACKs still naming the sent sequence are NAKs or leftovers
// from a resync and are skipped.
func (t *HostTransport) waitForAck(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	sent := uint8(atomic.LoadUint32(&t.currentSeq))
	for {
		select {
		case ack := <-t.ackChan:
			if ack.Sequence != nextSeq(sent) {
				continue
			}
			atomic.StoreUint32(&t.currentSeq, uint32(ack.Sequence))
			return nil

		case <-timer.C:
			return fmt.Errorf("ACK timeout after %v (seq 0x%02x)", timeout, sent)

		case <-t.stopChan:
			return ErrTransportClosed
		}
	}
}

// ReceiveResponse returns the next queued response
func (t *HostTransport) ReceiveResponse(timeout time.Duration) (*Message, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case resp := <-t.responseChan:
		return resp, nil

	case <-timer.C:
		return nil, fmt.Errorf("response timeout after %v", timeout)

	case <-t.stopChan:
		return nil, ErrTransportClosed
	}
}

// SetResponseHandler installs a callback for every response. Responses
// are still queued for ReceiveResponse.
func (t *HostTransport) SetResponseHandler(handler ResponseHandler) {
	t.handlerMu.Lock()
	t.responseHandler = handler
	t.handlerMu.Unlock()
}

func (t *HostTransport) readLoop() {
	defer close(t.doneChan)

	buffer := make([]byte, 256)

	for {
		select {
		case <-t.stopChan:
			return
		default:
		}

		n, err := t.port.Read(buffer)
		if err != nil {
			if err == io.EOF {
				return
			}
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if n > 0 {
			t.inputBuffer.Write(buffer[:n])
			t.processMessages()
		}
	}
}

// processMessages parses complete frames out of the input buffer
func (t *HostTransport) processMessages() {
	data := t.inputBuffer.Data()

	for len(data) > 0 {
		if !t.getSynchronized() {
			var found bool
			data, found = skipToSync(data)
			if found {
				t.setSynchronized(true)
			}
			continue
		}

		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}

		msgLen, res := scanFrame(data, false)
		if res == scanNeedMore {
			break
		}
		if res == scanBad {
			t.setSynchronized(false)
			continue
		}

		payload := make([]byte, msgLen-MessageHeaderSize-MessageTrailerSize)
		copy(payload, data[MessageHeaderSize:msgLen-MessageTrailerSize])

		msg := &Message{
			Length:   data[MessagePositionLen],
			Sequence: data[MessagePositionSeq],
			Payload:  payload,
			CRC:      uint16(data[msgLen-MessageTrailerCRC])<<8 | uint16(data[msgLen-MessageTrailerCRC+1]),
		}
		data = data[msgLen:]

		t.dispatchMessage(msg)
	}

	consumed := t.inputBuffer.Available() - len(data)
	if consumed > 0 {
		t.inputBuffer.Pop(consumed)
	}
}

// dispatchMessage routes empty frames to the ACK channel and everything
// else to the handler and the response queue
func (t *HostTransport) dispatchMessage(msg *Message) {
	if len(msg.Payload) == 0 {
		select {
		case t.ackChan <- msg:
		default:
		}
		return
	}

	t.handlerMu.RLock()
	handler := t.responseHandler
	t.handlerMu.RUnlock()
	if handler != nil {
		payload := msg.Payload
		if cmdID, err := DecodeVLQUint(&payload); err == nil {
			_ = handler(uint16(cmdID), &payload)
		}
	}

	select {
	case t.responseChan <- msg:
	default:
		// Queue full: drop the oldest
		select {
		case <-t.responseChan:
		default:
		}
		t.responseChan <- msg
	}
}

// Close stops the read loop and closes the port
func (t *HostTransport) Close() error {
	var err error
	t.stopOnce.Do(func() {
		close(t.stopChan)
		if t.port != nil {
			// Closing unblocks a pending Read
			err = t.port.Close()
		}
		<-t.doneChan
	})
	return err
}

func (t *HostTransport) getSynchronized() bool {
	return atomic.LoadUint32(&t.isSynchronized) != 0
}

func (t *HostTransport) setSynchronized(val bool) {
	if val {
		atomic.StoreUint32(&t.isSynchronized, 1)
	} else {
		atomic.StoreUint32(&t.isSynchronized, 0)
	}
}

// GetCurrentSequence returns the sequence the next command will carry
func (t *HostTransport) GetCurrentSequence() uint8 {
	return uint8(atomic.LoadUint32(&t.currentSeq))
}
