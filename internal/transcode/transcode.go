package transcode

import (
	"fmt"
	"math/bits"
	"strconv"
)

// ErrInvalidLength indicates a packed code representation that is not exactly
// 8 hex digits. It signals a broken pipeline invariant, not bad user input.
var ErrInvalidLength = fmt.Errorf("transcode: code must be 8 hex digits")

// Code is the 32-bit transcoded value, most-significant byte first:
// reversed address, reversed address', reversed command, complemented
// reversed command.
type Code uint32

// Transform converts a capture triple into the playback code. Each input
// byte is bit-reversed independently; the fourth output byte is the
// one's-complement of the reversed third byte. Pure and total over all
// byte values.
func Transform(triple [3]byte) Code {
	r1 := bits.Reverse8(triple[0])
	r2 := bits.Reverse8(triple[1])
	r3 := bits.Reverse8(triple[2])
	r4 := ^r3
	return Code(uint32(r1)<<24 | uint32(r2)<<16 | uint32(r3)<<8 | uint32(r4))
}

// High returns the upper 16 bits of the code.
func (c Code) High() uint16 {
	return uint16(c >> 16)
}

// Low returns the lower 16 bits of the code.
func (c Code) Low() uint16 {
	return uint16(c)
}

// Hex renders the code as 8 uppercase hex digits.
func (c Code) Hex() string {
	return fmt.Sprintf("%08X", uint32(c))
}

// String renders the two halves the way irplus button bodies expect,
// e.g. "0x20DE 0x50AF".
func (c Code) String() string {
	return fmt.Sprintf("0x%04X 0x%04X", c.High(), c.Low())
}

// Pack splits an 8-hex-digit code representation into its prefixed 16-bit
// halves. Anything other than exactly 8 hex digits returns ErrInvalidLength:
// the transform always emits 8 digits, so a violation means an upstream bug.
func Pack(code string) (high, low string, err error) {
	if len(code) != 8 {
		return "", "", fmt.Errorf("%w: got %d characters in %q", ErrInvalidLength, len(code), code)
	}
	value, parseErr := strconv.ParseUint(code, 16, 32)
	if parseErr != nil {
		return "", "", fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidLength, code)
	}
	c := Code(value)
	return fmt.Sprintf("0x%04X", c.High()), fmt.Sprintf("0x%04X", c.Low()), nil
}
