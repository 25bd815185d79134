// Package escape implements the byte-escaping scheme that keeps the
// format.Delimiter byte out of user-controlled row-key content.
//
// The scheme is a conventional two-byte escape: Delimiter (0x00) becomes
// {Esc, 0x01} and Esc (0xFF) becomes {Esc, 0x02}. All other bytes pass
// through unchanged. The scheme is prefix-safe: an escaped buffer never
// contains a literal Delimiter, so appending Delimiter after it is always
// unambiguous to a reader scanning for the first Delimiter byte.
package escape

import "github.com/corvidgraph/gelcodec/errs"

// esc is the escape marker byte. It is chosen as 0xFF, the byte least
// likely to collide with typical identifier content, and is itself escaped
// when it appears literally in the input.
const esc byte = 0xFF

const (
	escDelimiter byte = 0x01 // follows esc to mean "a literal Delimiter byte"
	escEsc       byte = 0x02 // follows esc to mean "a literal Esc byte"
)

// Escape transforms buf into a buffer that contains no format.Delimiter
// byte. The transform is self-inverse through Unescape and leaves every
// byte other than Delimiter and esc unchanged.
func Escape(buf []byte) []byte {
	n := 0
	for _, b := range buf {
		if b == 0x00 || b == esc {
			n += 2
		} else {
			n++
		}
	}
	if n == len(buf) {
		// Fast path: nothing needs escaping, return a copy so callers can't
		// mutate the input through the result.
		out := make([]byte, len(buf))
		copy(out, buf)
		return out
	}

	out := make([]byte, 0, n)
	for _, b := range buf {
		switch b {
		case 0x00:
			out = append(out, esc, escDelimiter)
		case esc:
			out = append(out, esc, escEsc)
		default:
			out = append(out, b)
		}
	}

	return out
}

// Unescape reverses Escape. It fails with errs.ErrMalformedEscape if buf
// ends mid-escape-sequence or contains an esc byte followed by anything
// other than escDelimiter or escEsc.
func Unescape(buf []byte) ([]byte, error) {
	out := make([]byte, 0, len(buf))
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != esc {
			out = append(out, b)
			continue
		}

		i++
		if i >= len(buf) {
			return nil, errs.ErrMalformedEscape
		}

		switch buf[i] {
		case escDelimiter:
			out = append(out, 0x00)
		case escEsc:
			out = append(out, esc)
		default:
			return nil, errs.ErrMalformedEscape
		}
	}

	return out, nil
}
