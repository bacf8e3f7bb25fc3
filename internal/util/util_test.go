package util

import (
	"bytes"
	"testing"
)

func TestCTCompareEqual(t *testing.T) {
	a := []byte("identical-payload")
	b := []byte("identical-payload")
	if CTCompare(a, b) != 0 {
		t.Fatal("CTCompare of equal slices should be 0")
	}
}

func TestCTCompareDiffersAtEveryPosition(t *testing.T) {
	base := []byte("0123456789abcdef")
	for i := range base {
		other := append([]byte(nil), base...)
		other[i] ^= 0x01
		if CTCompare(base, other) == 0 {
			t.Fatalf("CTCompare should detect mismatch at position %d", i)
		}
	}
}

func TestCTCompareLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	CTCompare([]byte("ab"), []byte("abc"))
}

func TestCTSelect(t *testing.T) {
	dst := []byte{1, 2, 3, 4}
	src := []byte{9, 9, 9, 9}

	CTSelect(dst, src, 0)
	if !bytes.Equal(dst, []byte{1, 2, 3, 4}) {
		t.Errorf("condition=0 should leave dst unchanged, got %v", dst)
	}

	CTSelect(dst, src, 1)
	if !bytes.Equal(dst, []byte{9, 9, 9, 9}) {
		t.Errorf("condition!=0 should overwrite dst, got %v", dst)
	}
}

func TestZeroize(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Zeroize(buf)
	for i, b := range buf {
		if b != 0 {
			t.Errorf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestZeroizeMultiple(t *testing.T) {
	a := []byte{1, 2}
	b := []byte{3, 4}
	ZeroizeMultiple(a, b)
	if a[0] != 0 || a[1] != 0 || b[0] != 0 || b[1] != 0 {
		t.Fatal("all buffers should be zeroized")
	}
}

func TestUint16LERoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	PutUint16LE(buf, 0xabcd)
	if got := Uint16LE(buf); got != 0xabcd {
		t.Errorf("Uint16LE() = %#x, want %#x", got, 0xabcd)
	}
}

func TestUint32LERoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32LE(buf, 0xdeadbeef)
	if got := Uint32LE(buf); got != 0xdeadbeef {
		t.Errorf("Uint32LE() = %#x, want %#x", got, 0xdeadbeef)
	}
}

func TestPackBitsRoundTrip(t *testing.T) {
	for _, bits := range []int{3, 11, 13, 14} {
		coeffs := make([]uint16, 32)
		mask := uint16(1)<<uint(bits) - 1
		for i := range coeffs {
			coeffs[i] = uint16(i*37+i) & mask
		}
		packed := PackBits(coeffs, bits)
		got := UnpackBits(packed, bits, len(coeffs))
		for i := range coeffs {
			if got[i] != coeffs[i] {
				t.Fatalf("bits=%d: got[%d] = %d, want %d", bits, i, got[i], coeffs[i])
			}
		}
	}
}

func TestPackBitsSize(t *testing.T) {
	coeffs := make([]uint16, 1024)
	packed := PackBits(coeffs, 14)
	if len(packed) != 14*1024/8 {
		t.Errorf("len(packed) = %d, want %d", len(packed), 14*1024/8)
	}
}

func TestUint64LERoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	PutUint64LE(buf, 0x0123456789abcdef)
	if got := Uint64LE(buf); got != 0x0123456789abcdef {
		t.Errorf("Uint64LE() = %#x, want %#x", got, 0x0123456789abcdef)
	}
}
