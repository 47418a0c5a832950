// Package mmu provides the work RAM of the Game Boy, along with a
// memory management unit that decodes addresses into it. WRAM knows
// nothing about the hardware model; the MMU owns that decision and
// only exposes SVBK on colour hardware.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

var (
	_ types.Stater     = (*MMU)(nil)
	_ types.Stater     = (*WRAM)(nil)
	_ types.Resettable = (*MMU)(nil)
	_ types.Resettable = (*WRAM)(nil)
)

// MMU is the memory management unit for the Game Boy. It routes reads
// and writes for work RAM, its echo, high RAM and the hardware IO
// registers. Any other address is left to the caller's own decoding;
// the MMU reads it as 0xFF and drops writes to it.
type MMU struct {
	// 64kB address space
	raw [65536]*types.Address

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFF00 - 0xFF7F - I/O Registers
	// (0xFFFF) - interrupt enable register
	registers types.HardwareRegisters

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	model types.Model

	Log log.Logger
}

// Opt is a function that modifies an MMU instance.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = log.WithComponent(l, "mmu")
	}
}

// NewMMU returns a new MMU for the given model.
func NewMMU(model types.Model, opts ...Opt) *MMU {
	m := &MMU{
		wRAM: NewWRAM(),
		zRAM: ram.NewRAM(0x7F), // 127 bytes
		Log:  log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.init()
	m.SetModel(model)

	return m
}

func (m *MMU) init() {
	addresses := []types.Address{
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: readOffset(m.wRAM.Read, types.EchoStart-types.WRAMStart), Write: writeOffset(m.wRAM.Write, types.EchoStart-types.WRAMStart)},
		{Read: m.registers.Read, Write: m.registers.Write},
		{Read: readOffset(m.zRAM.Read, types.HRAMStart), Write: writeOffset(m.zRAM.Write, types.HRAMStart)},
		{Read: m.unmappedRead, Write: m.unmappedWrite},
	}

	for i := range m.raw {
		m.raw[i] = &addresses[4]
	}

	// 0xC000 - 0xDFFF - internal RAM (8kB)
	for i := int(types.WRAMStart); i <= int(types.WRAMEnd); i++ {
		m.raw[i] = &addresses[0]
	}

	// 0xE000 - 0xFDFF - echo RAM (7.5kB)
	for i := int(types.EchoStart); i <= int(types.EchoEnd); i++ {
		m.raw[i] = &addresses[1]
	}

	// 0xFF00 - 0xFF7F - I/O (128B)
	for i := int(types.IOStart); i <= int(types.IOEnd); i++ {
		m.raw[i] = &addresses[2]
	}
	m.raw[types.IE] = &addresses[2]

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	for i := int(types.HRAMStart); i <= int(types.HRAMEnd); i++ {
		m.raw[i] = &addresses[3]
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

func (m *MMU) unmappedRead(address uint16) uint8 {
	return 0xFF
}

func (m *MMU) unmappedWrite(address uint16, value uint8) {
	m.Log.Debugf("dropped write of 0x%02X to unmapped address 0x%04X", value, address)
}

// SetModel changes the emulated model. SVBK is only mapped on colour
// hardware; on other models it reads as 0xFF, ignores writes, and the
// switchable half of WRAM stays on bank 1.
func (m *MMU) SetModel(model types.Model) {
	m.model = model

	if model.IsCGB() {
		m.registers.Register(types.SVBK, m.wRAM.WriteSVBK, m.wRAM.ReadSVBK)
	} else {
		m.registers.Unregister(types.SVBK)
		m.wRAM.WriteSVBK(1)
	}

	m.Log.Debugf("model set to %s (banked wram: %t)", model, model.IsCGB())
}

// Model returns the emulated model.
func (m *MMU) Model() types.Model {
	return m.model
}

// IsGBC reports whether the MMU is decoding for colour hardware.
func (m *MMU) IsGBC() bool {
	return m.model.IsCGB()
}

// WRAM returns the work RAM behind the MMU.
func (m *MMU) WRAM() *WRAM {
	return m.wRAM
}

// Hardware returns the hardware register table, allowing other
// components to install their IO registers.
func (m *MMU) Hardware() *types.HardwareRegisters {
	return &m.registers
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

// Reset clears work RAM and high RAM. Installed hardware registers
// and the model are kept.
func (m *MMU) Reset() {
	m.wRAM.Reset()
	m.zRAM.Reset()
}

// Save writes the model, work RAM and high RAM to the given state.
func (m *MMU) Save(s *types.State) {
	s.Write32(uint32(m.model))
	m.wRAM.Save(s)
	m.zRAM.Save(s)
}

// Load restores the model and memory written by Save. Nothing is
// applied unless the whole snapshot could be read, so a short state
// leaves the MMU as it was.
func (m *MMU) Load(s *types.State) {
	model := types.Model(s.Read32())
	wRAM := NewWRAM()
	wRAM.Load(s)
	zRAM := ram.NewRAM(uint32(m.zRAM.Size()))
	zRAM.Load(s)
	if err := s.Err(); err != nil {
		m.Log.Warnf("loading state: %v", err)
		return
	}

	*m.wRAM = *wRAM
	*m.zRAM = *zRAM
	m.SetModel(model)
}
