package base58

// bigint is an arbitrary-precision unsigned integer stored as a big-endian
// byte buffer. buf[start:] holds the significant bytes; start == len(buf)
// means zero.
//
// All arithmetic happens in place. When a value grows it claims bytes
// leftward by decrementing start instead of reallocating, so the buffer must
// be big enough for the final value up front: k base58 digits always fit in
// k bytes, because 58^k < 256^k.
type bigint struct {
	buf   []byte
	start int
}

// bigintFromBytes copies b into a fresh buffer, skipping leading zero bytes.
func bigintFromBytes(b []byte) *bigint {
	n := &bigint{buf: make([]byte, len(b))}
	copy(n.buf, b)
	for n.start < len(n.buf) && n.buf[n.start] == 0 {
		n.start++
	}
	return n
}

// newBigint returns a zero value with room to grow to size bytes.
func newBigint(size int) *bigint {
	return &bigint{buf: make([]byte, size), start: size}
}

func (n *bigint) isZero() bool {
	return n.start == len(n.buf)
}

// divmod58 divides the value by 58 in place and returns the remainder.
// Long division runs from the most significant byte down, carrying the
// running remainder into the next byte.
func (n *bigint) divmod58() byte {
	var rem uint
	for i := n.start; i < len(n.buf); i++ {
		acc := rem<<8 | uint(n.buf[i])
		n.buf[i] = byte(acc / radix)
		rem = acc % radix
	}
	for n.start < len(n.buf) && n.buf[n.start] == 0 {
		n.start++
	}
	return byte(rem)
}

// mul58 multiplies the value by 58 in place. The final carry is at most 57,
// so growth claims at most one extra byte at the front.
func (n *bigint) mul58() {
	var carry uint
	for i := len(n.buf) - 1; i >= n.start; i-- {
		acc := uint(n.buf[i])*radix + carry
		n.buf[i] = byte(acc)
		carry = acc >> 8
	}
	if carry > 0 {
		n.start--
		n.buf[n.start] = byte(carry)
	}
}

// addDigit adds a single digit value to the least significant byte,
// propagating the carry left. Each byte carries out at most 1, so the walk
// stops at the first byte that does not overflow.
func (n *bigint) addDigit(d byte) {
	carry := uint(d)
	for i := len(n.buf) - 1; i >= n.start && carry > 0; i-- {
		acc := uint(n.buf[i]) + carry
		n.buf[i] = byte(acc)
		carry = acc >> 8
	}
	if carry > 0 {
		n.start--
		n.buf[n.start] = byte(carry)
	}
}

// bytes returns the significant big-endian bytes. The slice aliases the
// internal buffer.
func (n *bigint) bytes() []byte {
	return n.buf[n.start:]
}
