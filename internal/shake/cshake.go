package shake

// leftEncode implements the SP 800-185 left_encode(x) primitive: the
// big-endian byte representation of x, preceded by a single byte giving its
// length in octets.
func leftEncode(x uint64) []byte {
	if x == 0 {
		return []byte{1, 0}
	}
	n := 0
	for v := x; v > 0; v >>= 8 {
		n++
	}
	out := make([]byte, n+1)
	out[0] = byte(n)
	for i := 0; i < n; i++ {
		out[n-i] = byte(x >> (8 * i))
	}
	return out
}

// encodeString implements SP 800-185 encode_string(S) = left_encode(|S| in
// bits) || S.
func encodeString(s []byte) []byte {
	return append(leftEncode(uint64(len(s))*8), s...)
}

// bytepad implements SP 800-185 bytepad(X, w): prepend left_encode(w) to X
// and pad with zero bytes to a multiple of w.
func bytepad(x []byte, w int) []byte {
	buf := append(leftEncode(uint64(w)), x...)
	for len(buf)%w != 0 {
		buf = append(buf, 0)
	}
	return buf
}
