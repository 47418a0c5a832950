package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// SetFlag sets a flag to the given value. Only the flag's bit in the
// F register changes.
func (r *Registers) SetFlag(flag Flag, value bool) {
	r.AF.SetLow(bits.Assign(r.AF.Low(), flag, value))
}

// ClearFlag clears a flag from the F register.
func (r *Registers) ClearFlag(flag Flag) {
	r.SetFlag(flag, false)
}

// IsFlagSet returns true if the given flag is set.
func (r *Registers) IsFlagSet(flag Flag) bool {
	return bits.Test(r.AF.Low(), flag)
}

// IsFlagsSet returns true if all the given flags are set.
func (r *Registers) IsFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !r.IsFlagSet(flag) {
			return false
		}
	}
	return true
}
