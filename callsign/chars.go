/*
NAME
  chars.go

DESCRIPTION
  chars.go defines the small fixed character sets the FT8 message
  codec uses to pack callsigns, grid locators and free text into a
  handful of bits per character.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package callsign implements the FT8 compact callsign encodings C28
// and C58, the 22-bit callsign hash used when a full callsign cannot
// be packed into a message, and a bounded lookup table mapping hashes
// back to the callsigns that produced them.
package callsign

// Chars identifies one of the small fixed alphabets used by the
// compact field codecs.
type Chars int

const (
	AlnumSpc Chars = iota
	Alnum
	Numeric
	AlphaSpc
	AlnumSs
	Full
)

const (
	alnumSpc = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnum    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numeric  = "0123456789"
	alphaSpc = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnumSs  = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ/"
	full     = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ+-./?"
)

// str returns the alphabet string for the given character set.
func (c Chars) str() string {
	switch c {
	case AlnumSpc:
		return alnumSpc
	case Alnum:
		return alnum
	case Numeric:
		return numeric
	case AlphaSpc:
		return alphaSpc
	case AlnumSs:
		return alnumSs
	case Full:
		return full
	default:
		return ""
	}
}

// Size returns the number of characters in the alphabet.
func (c Chars) Size() int { return len(c.str()) }

// Get returns the character at idx. idx must be < Size().
func (c Chars) Get(idx uint8) byte { return c.str()[idx] }

// Find returns the index of b within the alphabet, case-insensitively
// for letters, and false if b is not a member.
func (c Chars) Find(b byte) (uint8, bool) {
	switch c {
	case AlnumSs:
		if b == '/' {
			return uint8(len(alnumSs) - 1), true
		}
		return AlnumSpc.Find(b)
	case Full:
		switch b {
		case '+':
			return uint8(len(alnumSpc)), true
		case '-':
			return uint8(len(alnumSpc) + 1), true
		case '.':
			return uint8(len(alnumSpc) + 2), true
		case '/':
			return uint8(len(alnumSpc) + 3), true
		case '?':
			return uint8(len(alnumSpc) + 4), true
		default:
			return AlnumSpc.Find(b)
		}
	}

	upper := toUpper(b)
	s := c.str()
	for i := 0; i < len(s); i++ {
		if s[i] == upper {
			return uint8(i), true
		}
	}
	return 0, false
}

// toUpper folds ASCII lowercase letters to uppercase; every other
// byte passes through unchanged.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// trimSpace strips leading and trailing ASCII spaces, mirroring the
// bare trim used throughout the message codec (unlike strings.TrimSpace
// it never touches other whitespace, since FT8 text fields only ever
// pad with 0x20).
func trimSpace(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
