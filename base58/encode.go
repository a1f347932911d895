package base58

// Encode encodes b as base58 text using the Bitcoin alphabet.
func Encode(b []byte) string {
	return EncodeAlphabet(b, Bitcoin)
}

// EncodeAlphabet encodes b as base58 text using the given alphabet.
//
// The input is read as one big-endian unsigned integer. Leading zero bytes
// have no numeric value, so each one is emitted as a literal zero symbol in
// front of the digits. Encoding cannot fail; empty input yields "".
func EncodeAlphabet(b []byte, alphabet Alphabet) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	symbols := alphabet.Symbols()
	n := bigintFromBytes(b)

	// One byte becomes log(256)/log(58) symbols, just under 1.37.
	out := make([]byte, 0, len(b)*137/100+1)
	for !n.isZero() {
		out = append(out, symbols[n.divmod58()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, symbols[0])
	}

	// Digits came out least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
