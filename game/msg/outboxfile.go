package msg

import (
	"encoding/binary"
	"fmt"
)

// hostReceiverBit is the bit value (in Decoded.Receivers) representing
// "sent to host", used both by the v3 "to" field's sentinel value and by
// the v3.5 receiver-flags string's last position.
const hostReceiverBit = 1

// v3HostToValue is the v3 format's "to" sentinel meaning "to host".
const v3HostToValue = 12

// Decoded is one message extracted from a v3 or v3.5 outbox file, with its
// body already charset-decoded and its receivers collapsed to a single
// bitmask (bit 1<<p for player p, bit 1 for "to host").
type Decoded struct {
	Body      string
	Receivers int
}

// rot13 applies the classic VGAP data-file letter rotation; non-letters
// pass through unchanged, and the 0x1A control byte is translated to a
// newline (the format's inline line-break marker).
func rot13(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch {
		case b == 0x1A:
			out = append(out, '\n')
		case b >= 'a' && b <= 'z':
			out = append(out, 'a'+(b-'a'+13)%26)
		case b >= 'A' && b <= 'Z':
			out = append(out, 'A'+(b-'A'+13)%26)
		default:
			out = append(out, b)
		}
	}
	return string(out)
}

// winplanFixup drops a legacy Winplan writer's trailing fill: any run of
// '-' bytes at the end of the record, then one 0x1A byte if it is the last
// byte left. An 0x1A elsewhere in the body is a genuine embedded line
// break and is left alone.
func winplanFixup(raw []byte) []byte {
	end := len(raw)
	for end > 0 && raw[end-1] == '-' {
		end--
	}
	if end > 0 && raw[end-1] == 0x1A {
		end--
	}
	return raw[:end]
}

// DecodeV3 decodes a v3-format outbox file: a count header followed by
// fixed (address, length, from, to) records, each record's body found by
// seeking to address-1 (the format's 1-based file offset).
func DecodeV3(data []byte) ([]Decoded, error) {
	if len(data) < 2 {
		return nil, nil
	}
	count := int(binary.LittleEndian.Uint16(data[0:2]))
	pos := 2
	var out []Decoded
	for i := 0; i < count; i++ {
		if pos+10 > len(data) {
			return nil, fmt.Errorf("msg: truncated v3 outbox header at record %d", i)
		}
		address := int(binary.LittleEndian.Uint32(data[pos : pos+4]))
		length := int(binary.LittleEndian.Uint16(data[pos+4 : pos+6]))
		// from is stored but unused by addMessage.
		to := int(binary.LittleEndian.Uint16(data[pos+8 : pos+10]))
		pos += 10

		if length == 0 {
			continue
		}
		start := address - 1
		if start < 0 || start+length > len(data) {
			return nil, fmt.Errorf("msg: v3 outbox record %d body out of range", i)
		}
		out = append(out, Decoded{
			Body:      rot13(winplanFixup(data[start : start+length])),
			Receivers: v3Receiver(to),
		})
	}
	return out, nil
}

func v3Receiver(to int) int {
	if to == v3HostToValue {
		return hostReceiverBit
	}
	return 1 << uint(to)
}

// v35HeaderPad is the fixed-size reserved block between the count and the
// first record, present even in an empty file.
const v35HeaderPad = 17

// DecodeV35 decodes a v3.5-format outbox file: a count header, a fixed
// reserved block, then per message a 1-byte pad, a validity byte, 12
// ASCII '0'/'1' receiver flags (players 1-11 plus a trailing "to host"
// flag), and a length-prefixed body of exactly the stated length (any '-'
// fill is counted in that length and removed by winplanFixup).
func DecodeV35(data []byte) ([]Decoded, error) {
	if len(data) < 2 {
		return nil, nil
	}
	count := int(binary.LittleEndian.Uint16(data[0:2]))
	pos := 2 + v35HeaderPad
	if pos > len(data) {
		return nil, nil
	}
	var out []Decoded
	for i := 0; i < count; i++ {
		if pos+2 > len(data) {
			return nil, fmt.Errorf("msg: truncated v3.5 outbox at record %d", i)
		}
		pos++ // per-record pad byte
		valid := data[pos] == '1'
		pos++
		if pos+12 > len(data) {
			return nil, fmt.Errorf("msg: truncated v3.5 receiver flags at record %d", i)
		}
		flags := data[pos : pos+12]
		pos += 12
		if pos+2 > len(data) {
			return nil, fmt.Errorf("msg: truncated v3.5 length at record %d", i)
		}
		length := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
		pos += 2
		if pos+length > len(data) {
			return nil, fmt.Errorf("msg: v3.5 body out of range at record %d", i)
		}
		body := data[pos : pos+length]
		pos += length

		if !valid || length == 0 {
			continue
		}
		out = append(out, Decoded{
			Body:      rot13(winplanFixup(body)),
			Receivers: v35Receivers(flags),
		})
	}
	return out, nil
}

func v35Receivers(flags []byte) int {
	receivers := 0
	for i, c := range flags {
		if c != '1' {
			continue
		}
		if i == len(flags)-1 {
			receivers |= hostReceiverBit
		} else {
			receivers |= 1 << uint(i+1)
		}
	}
	return receivers
}

