package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardwareRegisters(t *testing.T) {
	var h HardwareRegisters
	var v uint8

	t.Run("unmapped", func(t *testing.T) {
		assert.False(t, h.Has(SVBK))
		assert.Equal(t, uint8(0xFF), h.Read(SVBK))
		assert.NotPanics(t, func() { h.Write(SVBK, 0x12) })
		assert.Equal(t, uint8(0xFF), h.Read(IE))
	})
	t.Run("mapped", func(t *testing.T) {
		h.Register(SVBK, func(b uint8) { v = b }, func() uint8 { return v | 0xF0 })
		assert.True(t, h.Has(SVBK))
		h.Write(SVBK, 0x03)
		assert.Equal(t, uint8(0x03), v)
		assert.Equal(t, uint8(0xF3), h.Read(SVBK))
	})
	t.Run("IE does not alias 0xFF7F", func(t *testing.T) {
		h.Register(IE, NoWrite, func() uint8 { return 0x1F })
		assert.Equal(t, uint8(0x1F), h.Read(IE))
		assert.Equal(t, uint8(0xFF), h.Read(0xFF7F))
		assert.False(t, h.Has(0xFF7F))
	})
	t.Run("missing handlers panic", func(t *testing.T) {
		h.Register(0xFF50, nil, nil)
		assert.Panics(t, func() { h.Read(0xFF50) })
		assert.Panics(t, func() { h.Write(0xFF50, 1) })
	})
	t.Run("outside IO range", func(t *testing.T) {
		assert.Panics(t, func() { h.Register(0xC000, NoWrite, NoRead) })
	})
	t.Run("unregister", func(t *testing.T) {
		h.Unregister(SVBK)
		assert.False(t, h.Has(SVBK))
		assert.Equal(t, uint8(0xFF), h.Read(SVBK))
	})
}

func BenchmarkHardwareRegisters_Read(b *testing.B) {
	var h HardwareRegisters
	h.Register(SVBK, NoWrite, func() uint8 { return 0xF9 })

	for i := 0; i < b.N; i++ {
		if h.Read(SVBK) != 0xF9 {
			b.Fatal("unexpected value")
		}
	}
}
