package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lminc/cpu"
)

func FuzzUnpack(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xff, 0xc0})
	f.Add(Pack(cpu.Memory{512, 113, 902, 314}))
	f.Add(make([]byte, MaxPackedSize))

	f.Fuzz(func(t *testing.T, buffer []byte) {
		assert := assert.New(t)

		memory, err := Unpack(buffer)
		if err != nil {
			return
		}

		for _, word := range memory {
			assert.Less(uint16(word), uint16(cpu.NumLimit))
		}

		// Repacking an accepted buffer reproduces it, minus trailing
		// zero bytes.
		trimmed := buffer
		for len(trimmed) > 0 && trimmed[len(trimmed)-1] == 0 {
			trimmed = trimmed[:len(trimmed)-1]
		}
		assert.Equal(trimmed, Pack(memory))
	})
}
