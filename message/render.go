package message

import (
	"github.com/ausocean/av/callsign"
	"github.com/ausocean/av/field"
)

// WriteString renders m as WSJT-X style text into out, consulting
// lookup (which may be nil) to resolve any callsign hash references.
// It returns the number of bytes written and true, or false if out is
// too small.
func (m *Message) WriteString(out []byte, lookup callsign.Lookup) (int, bool) {
	switch m.Kind {
	case KindFreeText:
		return m.FreeText.WriteString(out)
	case KindDXpedition:
		return writeStr(out, "DXpedition")
	case KindFieldDay0:
		return writeStr(out, "FieldDay0")
	case KindFieldDay1:
		return writeStr(out, "FieldDay1")
	case KindTelemetry:
		return writeStr(out, m.Telemetry.HexString())
	case KindStdMsg:
		return writeCallExchange(out, lookup, m.Call1, m.Call1Flag, m.Call2, m.Call2Flag, m.R, m.Grid, "/R")
	case KindEuVhf:
		return writeCallExchange(out, lookup, m.Call1, m.Call1Flag, m.Call2, m.Call2Flag, m.R, m.Grid, "/P")
	case KindRttyRu:
		return writeStr(out, "RttyRu")
	case KindNonStdCall:
		return writeNonStdCall(out, lookup, m)
	case KindEuVhfHash:
		return writeStr(out, "EuVhfHash")
	default:
		return 0, false
	}
}

func writeCallExchange(out []byte, lookup callsign.Lookup, call1 callsign.C28, flag1 bool, call2 callsign.C28, flag2 bool, r bool, grid field.G15, suffix string) (int, bool) {
	pos := 0
	n, ok := call1.WriteString(out[pos:], lookup)
	if !ok {
		return 0, false
	}
	pos += n
	if flag1 {
		n, ok = writeStr(out[pos:], suffix)
		if !ok {
			return 0, false
		}
		pos += n
	}
	n, ok = writeStr(out[pos:], " ")
	if !ok {
		return 0, false
	}
	pos += n

	n, ok = call2.WriteString(out[pos:], lookup)
	if !ok {
		return 0, false
	}
	pos += n
	if flag2 {
		n, ok = writeStr(out[pos:], suffix)
		if !ok {
			return 0, false
		}
		pos += n
	}
	n, ok = writeStr(out[pos:], " ")
	if !ok {
		return 0, false
	}
	pos += n

	if r {
		n, ok = writeStr(out[pos:], "R ")
		if !ok {
			return 0, false
		}
		pos += n
	}

	n, ok = grid.WriteString(out[pos:])
	if !ok {
		return 0, false
	}
	pos += n
	return pos, true
}

func writeNonStdCall(out []byte, lookup callsign.Lookup, m *Message) (int, bool) {
	pos := 0
	put := func(n int, ok bool) bool {
		if !ok {
			return false
		}
		pos += n
		return true
	}

	switch {
	case m.CQ:
		if !put(writeStr(out[pos:], "CQ ")) {
			return 0, false
		}
		n, ok := out2string(m.Call, out[pos:])
		if !put(n, ok) {
			return 0, false
		}
	case m.HashIsSecond:
		n, ok := out2string(m.Call, out[pos:])
		if !put(n, ok) {
			return 0, false
		}
		if !put(writeStr(out[pos:], " ")) {
			return 0, false
		}
		if !put(m.Hash.WriteString(out[pos:], lookup)) {
			return 0, false
		}
		if !put(writeStr(out[pos:], " ")) {
			return 0, false
		}
		if !put(m.Roger.WriteString(out[pos:])) {
			return 0, false
		}
	default:
		if !put(m.Hash.WriteString(out[pos:], lookup)) {
			return 0, false
		}
		if !put(writeStr(out[pos:], " ")) {
			return 0, false
		}
		n, ok := out2string(m.Call, out[pos:])
		if !put(n, ok) {
			return 0, false
		}
		if !put(writeStr(out[pos:], " ")) {
			return 0, false
		}
		if !put(m.Roger.WriteString(out[pos:])) {
			return 0, false
		}
	}
	return pos, true
}

func out2string(c callsign.C58, out []byte) (int, bool) {
	return writeStr(out, c.String())
}

func writeStr(out []byte, s string) (int, bool) {
	if len(out) < len(s) {
		return 0, false
	}
	copy(out, s)
	return len(s), true
}
