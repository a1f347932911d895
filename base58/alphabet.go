// Package base58 implements binary-to-text encoding and decoding in the
// base58 format used by Bitcoin addresses, with selectable alphabets.
//
// Unlike base64, base58 has no padding and no fixed block size: the input is
// treated as one big-endian unsigned integer and re-expressed in base 58.
// Leading zero bytes carry no numeric value, so they are preserved
// explicitly as repeated zero symbols (see Alphabet).
package base58

import (
	"strings"

	"github.com/lbryio/base58.go/extras/errors"
)

// Alphabet selects one of the base58 symbol sets supported by this package.
// The set is closed; the zero value is Bitcoin.
type Alphabet int

const (
	// Bitcoin is the alphabet used by BTC and LBRY addresses, and the default:
	// 123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz
	Bitcoin Alphabet = iota
	// Ripple is the alphabet used by XRP addresses:
	// rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz
	Ripple
	// Flickr is the alphabet used by flic.kr short URLs:
	// 123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ
	Flickr
)

// radix is the number of symbols in every alphabet.
const radix = 58

// invalidDigit marks symbol codes that are not part of an alphabet.
const invalidDigit = 0xff

var alphabets = [...]string{
	Bitcoin: "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz",
	Ripple:  "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz",
	Flickr:  "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ",
}

// decodeTables maps, per alphabet, every possible symbol code to its digit
// value, or to invalidDigit. Built once, read-only afterwards.
var decodeTables = buildDecodeTables()

func buildDecodeTables() [len(alphabets)][256]byte {
	var tables [len(alphabets)][256]byte
	for a, symbols := range alphabets {
		for i := range tables[a] {
			tables[a][i] = invalidDigit
		}
		for i := 0; i < len(symbols); i++ {
			tables[a][symbols[i]] = byte(i)
		}
	}
	return tables
}

// ParseAlphabet returns the alphabet with the given name. Names are
// case-insensitive; "bitcoin" and "btc" select Bitcoin, "ripple" and "xrp"
// select Ripple, and "flickr" selects Flickr.
func ParseAlphabet(name string) (Alphabet, error) {
	switch strings.ToLower(name) {
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "ripple", "xrp":
		return Ripple, nil
	case "flickr":
		return Flickr, nil
	}
	return Bitcoin, errors.Err("unknown alphabet %q (valid options: bitcoin, ripple, flickr)", name)
}

// Symbols returns the ordered 58-symbol sequence of the alphabet. The symbol
// at index i encodes the digit value i.
func (a Alphabet) Symbols() string {
	return alphabets[a]
}

func (a Alphabet) String() string {
	switch a {
	case Bitcoin:
		return "bitcoin"
	case Ripple:
		return "ripple"
	case Flickr:
		return "flickr"
	}
	return "unknown"
}

// zero returns the symbol for the digit value 0. Runs of it at the front of
// an encoded string stand for leading zero bytes.
func (a Alphabet) zero() byte {
	return alphabets[a][0]
}

// digit returns the value of symbol c, or invalidDigit if c is not in the
// alphabet.
func (a Alphabet) digit(c byte) byte {
	return decodeTables[a][c]
}
