// Package protocol implements the framed serial link between the device
// and the host console: VLQ-encoded messages inside length-prefixed,
// CRC-protected frames that end with a sync byte.
package protocol

// Frame layout: len, seq, payload..., crc_hi, crc_lo, sync
const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10
	MessageSeqMask     = 0x0F

	// MessageMax is the size of one output scratch buffer; several frames
	// are batched into it between USB flushes.
	MessageMax = 512
)

type scanResult uint8

const (
	scanNeedMore scanResult = iota // partial frame, wait for more bytes
	scanOK                         // complete, valid frame of msgLen bytes
	scanBad                        // corrupt; caller must resynchronize
)

// scanFrame checks whether data starts with a complete, valid frame.
// Leading sync bytes must already have been skipped. With checkDest set,
// the sequence byte must carry the host destination bits.
func scanFrame(data []byte, checkDest bool) (msgLen int, res scanResult) {
	if len(data) < MessageLengthMin {
		return 0, scanNeedMore
	}

	msgLen = int(data[MessagePositionLen])
	if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
		return 0, scanBad
	}
	if checkDest && data[MessagePositionSeq]&^MessageSeqMask != MessageDest {
		return 0, scanBad
	}
	if len(data) < msgLen {
		return 0, scanNeedMore
	}
	if data[msgLen-MessageTrailerSync] != MessageValueSync {
		return 0, scanBad
	}

	frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
		uint16(data[msgLen-MessageTrailerCRC+1])
	if frameCRC != CRC16(data[:msgLen-MessageTrailerSize]) {
		return 0, scanBad
	}
	return msgLen, scanOK
}

// skipToSync drops everything up to and including the next sync byte.
// Reports false when no sync byte was found.
func skipToSync(data []byte) ([]byte, bool) {
	for i, b := range data {
		if b == MessageValueSync {
			return data[i+1:], true
		}
	}
	return nil, false
}

// nextSeq advances a sequence byte within the destination range
func nextSeq(seq uint8) uint8 {
	return ((seq + 1) & MessageSeqMask) | MessageDest
}

// appendTrailer computes the CRC over frame and appends the trailer
func appendTrailer(frame []byte) []byte {
	crc := CRC16(frame)
	return append(frame, uint8(crc>>8), uint8(crc), MessageValueSync)
}
