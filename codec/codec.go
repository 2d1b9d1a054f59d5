// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package codec packs memory images into the compact binary format, ten bits
// per word, and unpacks them again.
package codec

import (
	"io"

	"github.com/ezrec/lminc/cpu"
)

// MaxPackedSize is the size in bytes of a fully packed memory image.
// Ten bits for each of the hundred words.
const MaxPackedSize = 10 * cpu.MemorySize / 8

// Pack packs a memory image into a buffer, trimmed of trailing zero bytes.
// An all-zero image packs to an empty buffer.
func Pack(memory cpu.Memory) []byte {
	var buffer [MaxPackedSize]byte

	// Word n occupies the ten bits starting at bit 10n, most significant
	// bits first.
	for n, num := range memory {
		word := uint16(num)
		first := (10 * n) / 8
		shift := ((10 * n) % 8) + 2

		buffer[first] |= byte(word >> shift)
		buffer[first+1] |= byte(word << (8 - shift))
	}

	end := len(buffer)
	for end > 0 && buffer[end-1] == 0 {
		end -= 1
	}

	return append([]byte{}, buffer[:end]...)
}

// Unpack unpacks a packed buffer into a memory image. Words beyond the end of
// the buffer are zero.
func Unpack(buffer []byte) (memory cpu.Memory, err error) {
	if len(buffer) > MaxPackedSize {
		err = ErrBufferTooLarge(len(buffer))
		return
	}

	at := func(index int) uint16 {
		if index < len(buffer) {
			return uint16(buffer[index])
		}
		return 0
	}

	for n := range memory {
		first := (10 * n) / 8
		if first >= len(buffer) {
			break
		}
		shift := ((10 * n) % 8) + 2

		word := (at(first)<<shift | at(first+1)>>(8-shift)) & 0x3ff
		if word >= cpu.NumLimit {
			err = ErrInvalidNumber{Address: n, Value: word}
			return
		}

		memory[n] = cpu.Num(word)
	}

	return
}

// Save writes a packed memory image to the output.
func Save(output io.Writer, memory cpu.Memory) (err error) {
	_, err = output.Write(Pack(memory))
	return
}

// Load reads a packed memory image from the input, to its end.
func Load(input io.Reader) (memory cpu.Memory, err error) {
	buffer, err := io.ReadAll(input)
	if err != nil {
		return
	}

	memory, err = Unpack(buffer)
	return
}
