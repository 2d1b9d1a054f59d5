package cpu

// NumLimit is the exclusive upper bound of a three-digit number.
const NumLimit = 1000

// Num is a three-digit decimal number in 0..=999, the only value the LMinC
// machine knows. Arithmetic wraps at 1000; only construction from an
// out-of-range literal is an error.
type Num uint16

// NumFromByte makes a Num from a byte. Every byte is a valid Num.
func NumFromByte(value uint8) Num {
	return Num(value)
}

// NumFrom makes a Num from an unsigned 16-bit value.
func NumFrom(value uint16) (num Num, err error) {
	if value >= NumLimit {
		err = ErrNum{Value: value}
		return
	}

	num = Num(value)
	return
}

// IsAddress reports whether the number is also a valid two-digit memory
// address.
func (num Num) IsAddress() bool {
	return num < 100
}

// Add returns the modular sum of two numbers. Overflow wraps silently.
func (num Num) Add(other Num) Num {
	return (num + other) % NumLimit
}

// Sub returns the modular difference of two numbers, and whether the true
// result would have been negative.
func (num Num) Sub(other Num) (diff Num, negative bool) {
	diff = (num + NumLimit - other) % NumLimit
	negative = num < other
	return
}
