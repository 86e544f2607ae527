// Package util holds small standalone helpers shared by the logging engine
// and its host process: string/number conversion, endian conversion,
// four-character codes, bit packing and external process launch.
package util

import (
	"encoding/binary"
	"math/bits"
	"os/exec"
	"strconv"
)

// Numeric is the set of built-in integer and floating point types.
type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Unsigned is the set of fixed-size unsigned integer types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// ToNum converts a string to a number. Invalid or out-of-range input yields
// the zero value (forgiving semantics: conversion helpers never fail, they
// produce zero). Base is unused for floating point.
func ToNum[T Numeric](s string, base int) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		v, _ := strconv.ParseFloat(s, 32)
		return T(v)
	case float64:
		v, _ := strconv.ParseFloat(s, 64)
		return T(v)
	case uint, uint8, uint16, uint32, uint64:
		v, _ := strconv.ParseUint(s, base, 64)
		return T(v)
	default:
		v, _ := strconv.ParseInt(s, base, 64)
		return T(v)
	}
}

// ToStr converts a number to its string representation. Base is unused for
// floating point.
func ToStr[T Numeric](n T, base int) string {
	switch v := any(n).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(uint64(n), base)
	default:
		return strconv.FormatInt(int64(n), base)
	}
}

/////////////////////////////////////////////////////////////////////////////////////////

// IsBigEndian reports the native byte order of the host.
func IsBigEndian() bool {
	return binary.NativeEndian.Uint16([]byte{0xAA, 0xBB}) == 0xAABB
}

// ReverseBytes flips the byte order of u; useful for endian conversions.
func ReverseBytes[T Unsigned](u T) T {
	switch v := any(u).(type) {
	case uint16:
		return T(bits.ReverseBytes16(v))
	case uint32:
		return T(bits.ReverseBytes32(v))
	case uint64:
		return T(bits.ReverseBytes64(v))
	default: // uint8 has nothing to flip
		return u
	}
}

// ToBigEndian converts the incoming native-order value to big endian.
func ToBigEndian[T Unsigned](u T) T {
	if IsBigEndian() {
		return u
	}
	return ReverseBytes(u)
}

// ToLittleEndian converts the incoming native-order value to little endian.
func ToLittleEndian[T Unsigned](u T) T {
	if IsBigEndian() {
		return ReverseBytes(u)
	}
	return u
}

/////////////////////////////////////////////////////////////////////////////////////////

// FourCC builds a four-character code from the first four bytes of code.
// The first character lands in the low byte.
func FourCC(code string) uint32 {
	return uint32(code[3])<<24 | uint32(code[2])<<16 | uint32(code[1])<<8 | uint32(code[0])
}

const byteBits = 8

// sizeOf returns the width of an Unsigned value in bytes.
func sizeOf[T Unsigned](v T) uint {
	switch any(v).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// PackBits takes the bitsPerByte low bits from each byte of the source and
// packs them into a contiguous value. For instance, converting an ID3
// synchsafe integer from an MP3 file to a real value is PackBits(7, v).
//
// For a uint32 source and bitsPerByte == 7 this is equivalent to:
//
//	((v & 0x7F000000) >> 3) |
//	((v & 0x007F0000) >> 2) |
//	((v & 0x00007F00) >> 1) |
//	((v & 0x0000007F) >> 0)
//
// The "empty" high bits of each source byte must be zero; a source with any
// of them set is returned unchanged.
//
// For details on synchsafe ints see id3 6.2, https://handwiki.org/wiki/Synchsafe
func PackBits[T Unsigned](bitsPerByte uint, source T) T {
	if bitsPerByte == 0 || bitsPerByte >= byteBits {
		return source
	}
	size := sizeOf(source)
	if size == 1 {
		return source
	}
	highBits := byteBits - bitsPerByte
	src := uint64(source)

	// Reject sources whose "empty" high bits are not actually empty. A 7-bit
	// per-byte mask looks like 0b10000000 repeated over the value width.
	highMask := uint64(0xFF) &^ (1<<bitsPerByte - 1)
	var highBitsSet uint64
	for i := uint(0); i < size; i++ {
		highBitsSet |= highMask << (i * byteBits)
	}
	if src&highBitsSet != 0 {
		return source
	}

	// Pack each bitsPerByte group into the result. A 7-bit low mask looks
	// like 0b1111111.
	lowMask := uint64(1<<bitsPerByte - 1)
	var result uint64
	for i := uint(0); i < size; i++ {
		result |= (src & lowMask) >> (i * highBits)
		lowMask <<= byteBits
	}
	return T(result)
}

// UnpackBits takes each bitsPerByte group from the source and spreads the
// groups into individual bytes, the inverse of PackBits. For instance,
// converting an integer to an ID3 synchsafe integer that can be saved to an
// MP3 file is UnpackBits(7, v).
//
// For a uint32 source and bitsPerByte == 7 this is equivalent to:
//
//	((v & 0b00001111111000000000000000000000) << 3) |
//	((v & 0b00000000000111111100000000000000) << 2) |
//	((v & 0b00000000000000000011111110000000) << 1) |
//	((v & 0b00000000000000000000000001111111) << 0)
func UnpackBits[T Unsigned](bitsPerByte uint, source T) T {
	if bitsPerByte == 0 || bitsPerByte >= byteBits {
		return source
	}
	size := sizeOf(source)
	if size == 1 {
		return source
	}
	highBits := byteBits - bitsPerByte
	src := uint64(source)
	mask := uint64(1<<bitsPerByte - 1)
	var result uint64
	for i := uint(0); i < size; i++ {
		result |= (src & mask) << (i * highBits)
		mask <<= bitsPerByte
	}
	return T(result)
}

/////////////////////////////////////////////////////////////////////////////////////////

// StartProcess launches an external process and neither waits for it nor
// captures its output. The process handle is released immediately so the
// child runs detached from the caller.
func StartProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
