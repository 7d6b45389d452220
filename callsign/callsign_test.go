package callsign

import "testing"

func TestFromCallValues(t *testing.T) {
	cases := []struct {
		call string
		want uint32
	}{
		{"JA1ZLO", 149982772},
		{"JJ1FYD", 151740002},
		{"8N1N", 74587795},
		{"K1ABC", 10214965},
	}
	for _, c := range cases {
		got, ok := FromCall(c.call)
		if !ok {
			t.Fatalf("FromCall(%q) failed", c.call)
		}
		if got.Value != c.want {
			t.Errorf("FromCall(%q) = %d, want %d", c.call, got.Value, c.want)
		}
	}
}

func TestFromCallThenWriteStringRoundTrip(t *testing.T) {
	for _, call := range []string{"JA1ZLO", "JJ1FYD", "8N1N", "K1ABC"} {
		c, ok := FromCall(call)
		if !ok {
			t.Fatalf("FromCall(%q) failed", call)
		}
		var out [6]byte
		n, ok := c.WriteString(out[:], nil)
		if !ok {
			t.Fatalf("WriteString for %q failed", call)
		}
		if trimSpace(string(out[:n])) != call {
			t.Errorf("round trip %q -> %q", call, trimSpace(string(out[:n])))
		}
	}
}

func TestWriteStringSpecialTokens(t *testing.T) {
	cases := []struct {
		c    C28
		want string
	}{
		{DE, "DE"},
		{QRZ, "QRZ"},
		{CQ, "CQ"},
		{C28{c28CQNumStart}, "CQ 000"},
		{C28{1004}, "CQ A"},
		{C28{1031}, "CQ AA"},
		{C28{1760}, "CQ AAA"},
		{C28{21443}, "CQ AAAA"},
		{C28{532443}, "CQ ZZZZ"},
	}
	for _, c := range cases {
		out := make([]byte, 16)
		n, ok := c.c.WriteString(out, nil)
		if !ok {
			t.Fatalf("WriteString(%d) failed", c.c.Value)
		}
		if got := string(out[:n]); got != c.want {
			t.Errorf("WriteString(%d) = %q, want %q", c.c.Value, got, c.want)
		}
	}
}

func TestHashCallsign(t *testing.T) {
	cases := []struct {
		call string
		want uint32
	}{
		{"JA1ZLO", 3380585},
		{"JA1ZLO/1", 12904},
		{"JJ1FYD", 2882573},
	}
	for _, c := range cases {
		got, ok := HashCallsign(c.call)
		if !ok {
			t.Fatalf("HashCallsign(%q) failed", c.call)
		}
		if got.AsH22() != c.want {
			t.Errorf("HashCallsign(%q) = %d, want %d", c.call, got.AsH22(), c.want)
		}
	}
}

func TestCallsignHashMatches(t *testing.T) {
	if !H22(0).Matches(H22(0)) {
		t.Error("H22(0) should match H22(0)")
	}
	if H22(1).Matches(H22(0)) {
		t.Error("H22(1) should not match H22(0)")
	}
	if !H22(1).Matches(H12(0)) {
		t.Error("H22(1) should match H12(0)")
	}
	if !H22(0x400).Matches(H12(1)) {
		t.Error("H22(0x400) should match H12(1)")
	}
	if !H22(0x7ff).Matches(H12(1)) {
		t.Error("H22(0x7ff) should match H12(1)")
	}
	if H22(0x800).Matches(H12(1)) {
		t.Error("H22(0x800) should not match H12(1)")
	}
	if !H12(4).Matches(H10(1)) {
		t.Error("H12(4) should match H10(1)")
	}
	if H12(8).Matches(H10(1)) {
		t.Error("H12(8) should not match H10(1)")
	}
}

func TestRegisterAddAndFind(t *testing.T) {
	r := NewRegister(2, 4)
	if !r.Add("JA1ZLO") {
		t.Fatal("Add(JA1ZLO) failed")
	}
	h, _ := HashCallsign("JA1ZLO")
	got, ok := r.FindHash(h)
	if !ok || got != "JA1ZLO" {
		t.Fatalf("FindHash returned (%q, %v), want (JA1ZLO, true)", got, ok)
	}
}

func TestTableEvictsLeastRecentlySet(t *testing.T) {
	table := NewTable[int](1, 2)
	base := table.idx(0)
	_ = base
	table.Set(0, 1)
	table.Set(1, 2) // same bucket as key 0 (idx keeps only bits above 12)
	table.Set(2, 3) // should evict the oldest of the two above

	if _, ok := table.Get(0); ok {
		t.Error("expected key 0 to have been evicted")
	}
	if v, ok := table.Get(2); !ok || v != 3 {
		t.Errorf("expected newest key to remain, got ok=%v v=%v", ok, v)
	}
}
