package message

import (
	"testing"

	"github.com/ausocean/av/callsign"
	"github.com/ausocean/av/field"
)

func TestStdMsgEncodeDecodeRoundTrip(t *testing.T) {
	call1, ok := callsign.FromCall("JA1ZLO")
	if !ok {
		t.Fatal("FromCall(JA1ZLO) failed")
	}
	call2, ok := callsign.FromCall("JA1YWX")
	if !ok {
		t.Fatal("FromCall(JA1YWX) failed")
	}
	grid := field.FromGridString("PM95")

	m := Message{
		Kind:  KindStdMsg,
		Call1: call1,
		Call2: call2,
		R:     true,
		Grid:  grid,
	}

	body := m.Encode()
	got, ok := Decode(&body)
	if !ok {
		t.Fatal("Decode failed")
	}
	if got.Kind != KindStdMsg || got.Call1 != call1 || got.Call2 != call2 || !got.R || got.Grid != grid {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestStdMsgRendersExpectedText(t *testing.T) {
	call1, _ := callsign.FromCall("JA1ZLO")
	call2, _ := callsign.FromCall("JA1YWX")
	grid := field.FromGridString("PM95")

	m := Message{
		Kind:  KindStdMsg,
		Call1: call1,
		Call2: call2,
		R:     true,
		Grid:  grid,
	}

	out := make([]byte, 32)
	n, ok := m.WriteString(out, nil)
	if !ok {
		t.Fatal("WriteString failed")
	}
	want := "JA1ZLO JA1YWX R PM95"
	if got := string(out[:n]); got != want {
		t.Fatalf("WriteString() = %q, want %q", got, want)
	}
}

func TestFreeTextRoundTrip(t *testing.T) {
	f, ok := field.FromString("HELLO WORLD  ")
	if !ok {
		t.Fatal("FromString failed")
	}
	m := Message{Kind: KindFreeText, FreeText: f}
	body := m.Encode()

	got, ok := Decode(&body)
	if !ok {
		t.Fatal("Decode failed")
	}
	if got.Kind != KindFreeText {
		t.Fatalf("Kind = %v, want KindFreeText", got.Kind)
	}

	out := make([]byte, 13)
	n, ok := got.WriteString(out, nil)
	if !ok || n != 13 {
		t.Fatal("WriteString failed")
	}
	if got := string(out[:n]); got != "HELLO WORLD  " {
		t.Fatalf("WriteString() = %q, want %q", got, "HELLO WORLD  ")
	}
}

func TestNonStdCallWithCQ(t *testing.T) {
	c58, ok := callsign.C58FromCall("W9XYZ")
	if !ok {
		t.Fatal("C58FromCall failed")
	}

	m := Message{
		Kind: KindNonStdCall,
		Call: c58,
		CQ:   true,
	}
	body := m.Encode()
	got, ok := Decode(&body)
	if !ok {
		t.Fatal("Decode failed")
	}
	if !got.CQ || got.Kind != KindNonStdCall {
		t.Fatalf("decoded message mismatch: %+v", got)
	}

	out := make([]byte, 32)
	n, ok := got.WriteString(out, nil)
	if !ok {
		t.Fatal("WriteString failed")
	}
	want := "CQ " + c58.String()
	if string(out[:n]) != want {
		t.Fatalf("WriteString() = %q, want %q", out[:n], want)
	}
}

