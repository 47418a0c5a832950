package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/types"
)

func pairs(r *Registers) map[string]*RegisterPair {
	return map[string]*RegisterPair{"AF": &r.AF, "BC": &r.BC, "DE": &r.DE, "HL": &r.HL}
}

func TestRegisterPair_WholeToLanes(t *testing.T) {
	r := NewRegisters()
	for name, p := range pairs(r) {
		t.Run(name, func(t *testing.T) {
			for v := 0; v <= 0xFFFF; v++ {
				p.SetUint16(uint16(v))
				if p.High() != uint8(v>>8) || p.Low() != uint8(v&0xFF) {
					t.Fatalf("0x%04X: got high 0x%02X low 0x%02X", v, p.High(), p.Low())
				}
				if p.HighLane().Get() != p.High() || p.LowLane().Get() != p.Low() {
					t.Fatalf("0x%04X: lane views disagree with pair", v)
				}
			}
		})
	}
}

func TestRegisterPair_LanesToWhole(t *testing.T) {
	var p RegisterPair
	for hi := 0; hi <= 0xFF; hi++ {
		for lo := 0; lo <= 0xFF; lo++ {
			want := uint16(hi)<<8 | uint16(lo)

			p.SetUint16(0)
			p.SetHigh(uint8(hi))
			p.SetLow(uint8(lo))
			if p.Uint16() != want {
				t.Fatalf("high then low: expected 0x%04X, got 0x%04X", want, p.Uint16())
			}

			p.SetUint16(0xFFFF)
			p.LowLane().Set(uint8(lo))
			p.HighLane().Set(uint8(hi))
			if p.Uint16() != want {
				t.Fatalf("low then high: expected 0x%04X, got 0x%04X", want, p.Uint16())
			}
		}
	}
}

func TestRegisterPair_LaneIsolation(t *testing.T) {
	var p RegisterPair
	p.SetUint16(0x1234)
	p.SetHigh(0xAB)
	assert.Equal(t, uint8(0x34), p.Low())
	p.SetLow(0xCD)
	assert.Equal(t, uint8(0xAB), p.High())
	assert.Equal(t, uint16(0xABCD), p.Uint16())
}

func TestRegisters_Lanes(t *testing.T) {
	r := NewRegisters()
	tests := []struct {
		name string
		lane Lane
		pair *RegisterPair
		high bool
	}{
		{"A", r.A(), &r.AF, true},
		{"F", r.F(), &r.AF, false},
		{"B", r.B(), &r.BC, true},
		{"C", r.C(), &r.BC, false},
		{"D", r.D(), &r.DE, true},
		{"E", r.E(), &r.DE, false},
		{"H", r.H(), &r.HL, true},
		{"L", r.L(), &r.HL, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.pair.SetUint16(0x0000)
			tt.lane.Set(0x5A)
			if tt.high {
				assert.Equal(t, uint16(0x5A00), tt.pair.Uint16())
			} else {
				assert.Equal(t, uint16(0x005A), tt.pair.Uint16())
			}

			// lanes taken before a whole write observe it
			tt.pair.SetUint16(0xC3E1)
			if tt.high {
				assert.Equal(t, uint8(0xC3), tt.lane.Get())
			} else {
				assert.Equal(t, uint8(0xE1), tt.lane.Get())
			}
		})
	}
}

func TestRegisters_Lane(t *testing.T) {
	r := NewRegisters()
	r.BC.SetUint16(0x0102)
	r.DE.SetUint16(0x0304)
	r.HL.SetUint16(0x0506)
	r.AF.SetUint16(0x0780)

	for index, want := range map[uint8]uint8{0: 1, 1: 2, 2: 3, 3: 4, 4: 5, 5: 6, 7: 7} {
		assert.Equal(t, want, r.Lane(index).Get(), "index %d", index)
	}

	assert.Panics(t, func() { r.Lane(6) })
	assert.Panics(t, func() { r.Lane(8) })
}

func TestRegisters_Reset(t *testing.T) {
	r := NewRegisters()
	assert.Equal(t, Registers{}, *r)

	r.ResetTo(types.DMGABC)
	assert.Equal(t, uint16(0x01B0), r.AF.Uint16())
	assert.Equal(t, uint16(0x0013), r.BC.Uint16())
	assert.Equal(t, uint16(0x00D8), r.DE.Uint16())
	assert.Equal(t, uint16(0x014D), r.HL.Uint16())
	assert.Equal(t, uint16(0xFFFE), r.SP)
	assert.Equal(t, uint16(0x0100), r.PC)
	assert.True(t, r.IsFlagsSet(FlagZero, FlagHalfCarry, FlagCarry))

	r.ResetTo(types.CGBABC)
	assert.Equal(t, uint8(0x11), r.A().Get())

	r.Reset()
	assert.Equal(t, Registers{}, *r)
}

func TestRegisters_State(t *testing.T) {
	r := NewRegisters()
	r.AF.SetUint16(0x12F0)
	r.BC.SetUint16(0x3456)
	r.DE.SetUint16(0x789A)
	r.HL.SetUint16(0xBCDE)
	r.SP = 0xFFFE
	r.PC = 0x0150

	s := types.NewState()
	r.Save(s)

	loaded := NewRegisters()
	loaded.Load(s)
	require.NoError(t, s.Err())
	assert.Equal(t, *r, *loaded)
}

func TestRegisters_String(t *testing.T) {
	r := NewRegisters()
	r.AF.SetUint16(0x01A0)
	r.PC = 0x0100
	assert.Equal(t, "AF=01A0 BC=0000 DE=0000 HL=0000 SP=0000 PC=0100 [Z-H-]", r.String())
}

func BenchmarkRegisterPair(b *testing.B) {
	var p RegisterPair
	b.Run("SetHigh", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p.SetHigh(uint8(i))
		}
	})
	b.Run("Lane", func(b *testing.B) {
		l := p.LowLane()
		for i := 0; i < b.N; i++ {
			l.Set(l.Get() + 1)
		}
	})
}
