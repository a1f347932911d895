package base58

import (
	"bytes"
	"math/rand"
	"testing"

	btcbase58 "github.com/btcsuite/btcutil/base58"
	"github.com/davecgh/go-spew/spew"
	"gotest.tools/assert"
)

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, a := range []Alphabet{Bitcoin, Ripple, Flickr} {
		for i := 0; i < 200; i++ {
			input := make([]byte, r.Intn(256))
			r.Read(input)
			zeros := r.Intn(4)
			for j := 0; j < zeros && j < len(input); j++ {
				input[j] = 0
			}

			decoded, err := DecodeAlphabet(EncodeAlphabet(input, a), a)
			assert.NilError(t, err)
			if !bytes.Equal(input, decoded) {
				t.Fatalf("%s round trip mismatch:\n%s", a, spew.Sdump(input, decoded))
			}
		}
	}
}

func TestRoundTripVectors(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	tt := [][]byte{
		{},
		{0},
		{0, 0, 0},
		{1, 2, 3, 4, 5},
		{255, 254, 253},
		[]byte("The quick brown fox jumps over the lazy dog"),
		allBytes,
		bytes.Repeat([]byte{0xff}, 16),
	}

	for _, input := range tt {
		for _, a := range []Alphabet{Bitcoin, Ripple, Flickr} {
			decoded, err := DecodeAlphabet(EncodeAlphabet(input, a), a)
			assert.NilError(t, err)
			if !bytes.Equal(input, decoded) {
				t.Errorf("%s: %x came back as %x", a, input, decoded)
			}
		}
	}
}

// All alphabets produce the same digit sequence for the same bytes. Only the
// symbol for each digit differs.
func TestAlphabetsAgreeOnDigits(t *testing.T) {
	translate := func(s string, from, to Alphabet) string {
		out := []byte(s)
		for i := range out {
			out[i] = to.Symbols()[from.digit(out[i])]
		}
		return string(out)
	}

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		input := make([]byte, r.Intn(100))
		r.Read(input)

		btc := EncodeAlphabet(input, Bitcoin)
		for _, a := range []Alphabet{Ripple, Flickr} {
			actual := EncodeAlphabet(input, a)
			expected := translate(btc, Bitcoin, a)
			if actual != expected {
				t.Errorf("%s: expected %s, got %s", a, expected, actual)
			}
		}
	}
}

// The alphabets share the same 58 symbols in different orders, so the same
// bytes encode to three different strings, and text encoded with one
// alphabet decodes cleanly under another, to different bytes.
func TestCrossAlphabetDecodeDiffers(t *testing.T) {
	input := []byte("Hello, World!")
	btc := EncodeAlphabet(input, Bitcoin)
	xrp := EncodeAlphabet(input, Ripple)
	flickr := EncodeAlphabet(input, Flickr)
	if btc == xrp || btc == flickr || xrp == flickr {
		t.Errorf("expected three distinct encodings, got %s / %s / %s", btc, xrp, flickr)
	}

	for _, a := range []Alphabet{Ripple, Flickr} {
		decoded, err := DecodeAlphabet(btc, a)
		assert.NilError(t, err)
		if bytes.Equal(decoded, input) {
			t.Errorf("%s decode of bitcoin text returned the original bytes", a)
		}
	}
}

func TestMatchesBtcutil(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		input := make([]byte, r.Intn(100))
		r.Read(input)

		expected := btcbase58.Encode(input)
		actual := Encode(input)
		if actual != expected {
			t.Errorf("%x: btcutil encodes %s, got %s", input, expected, actual)
		}

		decoded, err := Decode(expected)
		assert.NilError(t, err)
		if !bytes.Equal(decoded, input) {
			t.Errorf("%s: expected %x, got %x", expected, input, decoded)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	r := rand.New(rand.NewSource(4))
	input := make([]byte, 256)
	r.Read(input)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Encode(input)
	}
}

func BenchmarkDecode(b *testing.B) {
	r := rand.New(rand.NewSource(5))
	input := make([]byte, 256)
	r.Read(input)
	encoded := Encode(input)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
