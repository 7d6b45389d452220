/*
NAME
  message.go

DESCRIPTION
  message.go decodes and encodes the 77-bit FT8 message body into and
  out of the ten payload variants the protocol defines, and renders a
  decoded message back into the human-readable text WSJT-X style
  clients display.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package message decodes and encodes FT8 message bodies. A Message
// is represented as a flat struct carrying a Kind discriminator
// alongside every variant's fields, rather than as a Go interface
// with one implementation per variant: the set of variants is fixed
// by the wire protocol and will not grow, so a tagged struct keeps
// decode/encode/render as plain, branch-free-per-field switches.
package message

import (
	"github.com/ausocean/av/bits"
	"github.com/ausocean/av/callsign"
	"github.com/ausocean/av/field"
)

// Kind identifies which of the ten FT8 message payload variants a
// Message holds.
type Kind int

const (
	KindFreeText Kind = iota
	KindDXpedition
	KindFieldDay0
	KindFieldDay1
	KindTelemetry
	KindStdMsg
	KindEuVhf
	KindRttyRu
	KindNonStdCall
	KindEuVhfHash
)

// Message is a decoded FT8 message body. Only the fields relevant to
// Kind are meaningful; the rest are zero.
type Message struct {
	Kind Kind

	FreeText  field.F71
	Telemetry field.T71

	// StdMsg / EuVhf
	Call1     callsign.C28
	Call1Flag bool // call1_r for StdMsg, call1_p for EuVhf
	Call2     callsign.C28
	Call2Flag bool // call2_r for StdMsg, call2_p for EuVhf
	R         bool
	Grid      field.G15

	// NonStdCall
	Hash         callsign.CallsignHash
	Call         callsign.C58
	HashIsSecond bool
	Roger        field.R2
	CQ           bool
}

// Decode interprets body's 77 bits as a Message. It reports false
// only for tag values that are not assigned a variant: type 6 or 7,
// or type 0 with sub-type 5, 6 or 7.
func Decode(body *bits.Buffer77) (Message, bool) {
	i3 := body.Read(74, 3)
	switch i3 {
	case 0:
		n3 := body.Read(71, 3)
		switch n3 {
		case 0:
			return Message{Kind: KindFreeText, FreeText: field.ReadF71(body, 0)}, true
		case 1:
			return Message{Kind: KindDXpedition}, true
		case 2:
			return Message{Kind: KindFieldDay0}, true
		case 3:
			return Message{Kind: KindFieldDay1}, true
		case 4:
			return Message{Kind: KindTelemetry, Telemetry: field.ReadT71(body, 0)}, true
		default:
			return Message{}, false
		}
	case 1:
		return Message{
			Kind:      KindStdMsg,
			Call1:     callsign.C28{Value: uint32(body.Read(0, 28))},
			Call1Flag: body.Get(28),
			Call2:     callsign.C28{Value: uint32(body.Read(29, 28))},
			Call2Flag: body.Get(57),
			R:         body.Get(58),
			Grid:      field.G15{Value: uint16(body.Read(59, 15))},
		}, true
	case 2:
		return Message{
			Kind:      KindEuVhf,
			Call1:     callsign.C28{Value: uint32(body.Read(0, 28))},
			Call1Flag: body.Get(28),
			Call2:     callsign.C28{Value: uint32(body.Read(29, 28))},
			Call2Flag: body.Get(57),
			R:         body.Get(58),
			Grid:      field.G15{Value: uint16(body.Read(59, 15))},
		}, true
	case 3:
		return Message{Kind: KindRttyRu}, true
	case 4:
		call := body.Read(12, 20)<<38 | body.Read(32, 32)<<6 | body.Read(64, 6)
		return Message{
			Kind:         KindNonStdCall,
			Hash:         callsign.H12(uint32(body.Read(0, 12))),
			Call:         callsign.C58{Value: call},
			HashIsSecond: body.Get(70),
			Roger:        field.FromValue(uint8(body.Read(71, 2))),
			CQ:           body.Get(73),
		}, true
	case 5:
		return Message{Kind: KindEuVhfHash}, true
	default:
		return Message{}, false
	}
}

// Encode packs m into a 77-bit message body. Variants the protocol
// reserves but this codec does not yet assign a wire layout to
// (DXpedition, FieldDay0, FieldDay1, RttyRu, EuVhfHash) encode as an
// all-zero body with just the type tag set, matching how an
// unimplemented variant is represented on the wire today.
func (m *Message) Encode() bits.Buffer77 {
	var body bits.Buffer77

	switch m.Kind {
	case KindFreeText:
		m.FreeText.WriteTo(&body, 0)
		body.Write(71, 3, 0)
	case KindTelemetry:
		m.Telemetry.WriteTo(&body, 0)
		body.Write(71, 3, 4)
	case KindDXpedition:
		body.Write(71, 3, 1)
	case KindFieldDay0:
		body.Write(71, 3, 2)
	case KindFieldDay1:
		body.Write(71, 3, 3)
	case KindStdMsg:
		body.Write(0, 28, uint64(m.Call1.Value))
		body.Set(28, m.Call1Flag)
		body.Write(29, 28, uint64(m.Call2.Value))
		body.Set(57, m.Call2Flag)
		body.Set(58, m.R)
		body.Write(59, 15, uint64(m.Grid.Value))
		body.Write(74, 3, 1)
	case KindEuVhf:
		body.Write(0, 28, uint64(m.Call1.Value))
		body.Set(28, m.Call1Flag)
		body.Write(29, 28, uint64(m.Call2.Value))
		body.Set(57, m.Call2Flag)
		body.Set(58, m.R)
		body.Write(59, 15, uint64(m.Grid.Value))
		body.Write(74, 3, 2)
	case KindRttyRu:
		body.Write(74, 3, 3)
	case KindNonStdCall:
		body.Write(0, 12, uint64(m.Hash.AsH12()))
		body.Write(12, 20, m.Call.Value>>38)
		body.Write(32, 32, (m.Call.Value>>6)&0xFFFFFFFF)
		body.Write(64, 6, m.Call.Value&0x3F)
		body.Set(70, m.HashIsSecond)
		body.Write(71, 2, uint64(m.Roger.Value()))
		body.Set(73, m.CQ)
		body.Write(74, 3, 4)
	case KindEuVhfHash:
		body.Write(74, 3, 5)
	}
	return body
}

// RegisterCallsigns records every normalized callsign carried by m
// (as opposed to a hash reference or special token) into reg, so a
// later message referencing the same callsign by hash can be resolved
// back to text.
func (m *Message) RegisterCallsigns(reg *callsign.Register) {
	switch m.Kind {
	case KindStdMsg, KindEuVhf:
		registerC28(reg, m.Call1)
		registerC28(reg, m.Call2)
	case KindNonStdCall:
		reg.Add(m.Call.String())
	}
}

func registerC28(reg *callsign.Register, c callsign.C28) {
	// Special tokens (DE, QRZ, CQ and its variants) lie below the hash
	// range.
	if c.IsHash() || c.Value < callsign.FromHash(0).Value {
		return
	}
	var out [6]byte
	n, ok := c.WriteString(out[:], nil)
	if !ok || n == 0 {
		return
	}
	reg.Add(string(out[:n]))
}
