package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLRCKnownValue(t *testing.T) {
	// "0" + "BR" XORed together (SOH excluded), the kind of short
	// accumulation the envelope builder performs over frame[1:size-3].
	data := []byte("0BR")
	var want byte
	for _, b := range data {
		want ^= b
	}
	assert.Equal(t, want, LRC(data))
}

func TestLRCHexIsUppercase(t *testing.T) {
	hex := LRCHex([]byte("0BR1"))
	for _, c := range hex {
		assert.True(t, IsHexDigit(c), "expected uppercase hex digit, got %q", c)
		assert.False(t, c >= 'a' && c <= 'f', "LRCHex must not emit lowercase hex")
	}
}

func TestDigit2RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint8Range(0, 99).Draw(t, "v")
		d := Digit2(v)
		require.True(t, IsDigit(d[0]) && IsDigit(d[1]))
		got := ParseDigit2(d[:], 0)
		assert.Equal(t, v, got)
	})
}

func TestDigit3RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint16Range(0, 999).Draw(t, "v")
		d := Digit3(v)
		got := ParseDigit3(d[:], 0)
		assert.Equal(t, v, got)
	})
}

func TestHexNibbleRoundTrip(t *testing.T) {
	for v := uint8(0); v < 16; v++ {
		b := HexNibble(v)
		assert.True(t, IsHexDigit(b))
		assert.Equal(t, v, HexNibbleValue(b))
	}
}

func TestBuilderAssemblesInOrder(t *testing.T) {
	b := NewBuilder(8)
	b.Byte(SOH).Digit(3).Bytes([]byte("BR")).Digit2(7).HexNibble(10)
	assert.Equal(t, []byte{SOH, '3', 'B', 'R', '0', '7', 'A'}, b.Built())
	assert.Equal(t, 7, b.Len())
}
