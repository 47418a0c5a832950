// Package cpu provides the register file of the Game Boy CPU.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

var (
	_ types.Stater     = (*Registers)(nil)
	_ types.Resettable = (*Registers)(nil)
)

// RegisterPair represents a pair of GB Registers which is used to hold a
// 16-bit value. The CPU has 4 register pairs: AF, BC, DE, and HL.
//
// A pair is a single 16-bit cell. The high register is bits 15-8 and the
// low register is bits 7-0; both are derived from the cell on every
// access, so a write through any view is visible through the others.
type RegisterPair struct {
	value uint16
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return r.value
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	r.value = value
}

// High returns the high register of the pair.
func (r *RegisterPair) High() uint8 {
	return bits.Hi(r.value)
}

// SetHigh sets the high register, leaving the low register untouched.
func (r *RegisterPair) SetHigh(v uint8) {
	r.value = bits.WithHi(r.value, v)
}

// Low returns the low register of the pair.
func (r *RegisterPair) Low() uint8 {
	return bits.Lo(r.value)
}

// SetLow sets the low register, leaving the high register untouched.
func (r *RegisterPair) SetLow(v uint8) {
	r.value = bits.WithLo(r.value, v)
}

// HighLane returns an 8-bit view of the high register.
func (r *RegisterPair) HighLane() Lane {
	return Lane{pair: r, high: true}
}

// LowLane returns an 8-bit view of the low register.
func (r *RegisterPair) LowLane() Lane {
	return Lane{pair: r}
}

// Lane is a mutable 8-bit view onto one half of a RegisterPair. It
// holds no value of its own.
type Lane struct {
	pair *RegisterPair
	high bool
}

// Get returns the current value of the register.
func (l Lane) Get() uint8 {
	if l.high {
		return l.pair.High()
	}
	return l.pair.Low()
}

// Set replaces the value of the register.
func (l Lane) Set(v uint8) {
	if l.high {
		l.pair.SetHigh(v)
	} else {
		l.pair.SetLow(v)
	}
}

// Registers represents the GB CPU registers. The 8-bit registers A, F,
// B, C, D, E, H and L only exist as halves of the pairs; F is the low
// half of AF and holds the flags.
type Registers struct {
	AF RegisterPair
	BC RegisterPair
	DE RegisterPair
	HL RegisterPair

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// NewRegisters returns a zeroed register file.
func NewRegisters() *Registers {
	return &Registers{}
}

// A, F, B, C, D, E, H and L return 8-bit views of the named registers,
// each bound to the high or low half of its pair.
func (r *Registers) A() Lane { return r.AF.HighLane() }
func (r *Registers) F() Lane { return r.AF.LowLane() }
func (r *Registers) B() Lane { return r.BC.HighLane() }
func (r *Registers) C() Lane { return r.BC.LowLane() }
func (r *Registers) D() Lane { return r.DE.HighLane() }
func (r *Registers) E() Lane { return r.DE.LowLane() }
func (r *Registers) H() Lane { return r.HL.HighLane() }
func (r *Registers) L() Lane { return r.HL.LowLane() }

// Lane returns the register for the given instruction encoding index,
// as found in the low 3 bits of most opcodes. Index 6 encodes the
// memory operand (HL) and is not a register, so it panics along with
// any index above 7.
func (r *Registers) Lane(index uint8) Lane {
	switch index {
	case 0:
		return r.B()
	case 1:
		return r.C()
	case 2:
		return r.D()
	case 3:
		return r.E()
	case 4:
		return r.H()
	case 5:
		return r.L()
	case 7:
		return r.A()
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// ResetTo loads the register values the given model's boot ROM
// leaves behind when it hands control to the cartridge.
func (r *Registers) ResetTo(model types.Model) {
	v, ok := types.ModelRegisters[model]
	if !ok {
		v = types.ModelRegisters[types.Unset]
	}
	r.AF.SetUint16(bits.Join(v[0], v[1]))
	r.BC.SetUint16(bits.Join(v[2], v[3]))
	r.DE.SetUint16(bits.Join(v[4], v[5]))
	r.HL.SetUint16(bits.Join(v[6], v[7]))
	r.SP = 0xFFFE
	r.PC = 0x0100
}

// Save writes the registers to the given state.
func (r *Registers) Save(s *types.State) {
	s.Write16(r.AF.Uint16())
	s.Write16(r.BC.Uint16())
	s.Write16(r.DE.Uint16())
	s.Write16(r.HL.Uint16())
	s.Write16(r.SP)
	s.Write16(r.PC)
}

// Load reads the registers from the given state.
func (r *Registers) Load(s *types.State) {
	r.AF.SetUint16(s.Read16())
	r.BC.SetUint16(s.Read16())
	r.DE.SetUint16(s.Read16())
	r.HL.SetUint16(s.Read16())
	r.SP = s.Read16()
	r.PC = s.Read16()
}

func (r *Registers) String() string {
	flags := []byte("----")
	for i, f := range []struct {
		flag Flag
		name byte
	}{{FlagZero, 'Z'}, {FlagSubtract, 'N'}, {FlagHalfCarry, 'H'}, {FlagCarry, 'C'}} {
		if r.IsFlagSet(f.flag) {
			flags[i] = f.name
		}
	}
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X [%s]",
		r.AF.Uint16(), r.BC.Uint16(), r.DE.Uint16(), r.HL.Uint16(), r.SP, r.PC, flags)
}
