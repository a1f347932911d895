package base58

import (
	"fmt"

	"github.com/lbryio/base58.go/extras/errors"
)

// Decode error sentinels. DecodeAlphabet itself reports bad symbols with
// InvalidCharacterError; these are for callers that put extra requirements
// on the input or the output size.
var (
	ErrEmptyInput = errors.Base("empty base58 input")
	ErrOverflow   = errors.Base("base58 value overflows buffer")
)

// InvalidCharacterError reports a symbol that is not part of the alphabet
// the text was decoded with.
type InvalidCharacterError struct {
	Char rune
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base58 character %q", e.Char)
}

// Decode decodes base58 text using the Bitcoin alphabet.
func Decode(s string) ([]byte, error) {
	return DecodeAlphabet(s, Bitcoin)
}

// DecodeAlphabet decodes base58 text using the given alphabet.
//
// Each leading zero symbol becomes one zero byte in front of the decoded
// value. Any symbol outside the alphabet, including any symbol beyond
// ASCII, fails the whole decode with an InvalidCharacterError. Empty input
// decodes to an empty slice.
func DecodeAlphabet(s string, alphabet Alphabet) ([]byte, error) {
	zeroSym := rune(alphabet.zero())

	// k digits always fit in k bytes. len(s) only overshoots that.
	n := newBigint(len(s))

	zeros := 0
	leading := true
	for _, c := range s {
		if c > 0xff {
			return nil, InvalidCharacterError{Char: c}
		}
		d := alphabet.digit(byte(c))
		if d == invalidDigit {
			return nil, InvalidCharacterError{Char: c}
		}

		if leading && c == zeroSym {
			zeros++
		} else {
			leading = false
		}

		n.mul58()
		n.addDigit(d)
	}

	sig := n.bytes()
	out := make([]byte, zeros+len(sig))
	copy(out[zeros:], sig)
	return out, nil
}
