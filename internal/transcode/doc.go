// Package transcode converts 3-byte capture codes into the 32-bit
// representation expected by irplus WINLIRC_NEC1 devices.
//
// The capture format stores each code most-significant-bit first with a
// plain check byte; the playback format wants every byte bit-reversed and
// the check byte complemented. Transform performs that conversion, and
// Pack splits the result into the two 16-bit halves irplus renders as
// pre-bits and bits.
package transcode
