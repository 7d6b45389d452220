package callsign

// Register is a Table specialised to the common case of remembering
// full callsigns by their 22-bit hash, implementing Lookup so it can
// be handed straight to C28.WriteString and CallsignHash.WriteString.
type Register struct {
	table *Table[string]
}

// NewRegister creates a Register with n*1024 slots and probe depth m.
func NewRegister(n, m int) *Register {
	return &Register{table: NewTable[string](n, m)}
}

// Add hashes call and stores it, reporting false if call cannot be
// hashed (too long, or contains characters outside the AlnumSs
// alphabet).
func (r *Register) Add(call string) bool {
	h, ok := HashCallsign(call)
	if !ok {
		return false
	}
	r.table.Set(h.AsH22(), call)
	return true
}

// FindHash returns the first registered callsign whose hash matches
// hash at hash's own depth.
func (r *Register) FindHash(hash CallsignHash) (string, bool) {
	for _, e := range r.table.GetPartial(hash.AsH22()) {
		if H22(e.Key).Matches(hash) {
			return e.Value, true
		}
	}
	return "", false
}

// Count returns the number of distinct callsigns currently stored.
func (r *Register) Count() int { return r.table.Count() }
