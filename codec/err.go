package codec

import (
	"github.com/ezrec/lminc/translate"
)

var f = translate.From

// ErrBufferTooLarge is a packed buffer longer than MaxPackedSize bytes.
type ErrBufferTooLarge int

func (err ErrBufferTooLarge) Error() string {
	return f("buffer of %v bytes is too large (> %v bytes)", int(err), MaxPackedSize)
}

// ErrInvalidNumber is an unpacked word too large to be a three-digit number.
type ErrInvalidNumber struct {
	Address int
	Value   uint16
}

func (err ErrInvalidNumber) Error() string {
	return f("number %v at address %v is too large (> 999)", err.Value, err.Address)
}
