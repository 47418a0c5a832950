package mmu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// WRAMBanks is the number of WRAM banks present on the CGB.
	WRAMBanks = 8
	// WRAMBankSize is the size of a single WRAM bank.
	WRAMBankSize = 0x1000
)

// ErrAddressOutOfRange is returned by the checked WRAM accessors when the
// address does not lie within 0xC000 - 0xDFFF.
var ErrAddressOutOfRange = errors.New("wram: address out of range")

// WRAM is the work RAM of the Game Boy: eight 4KiB banks, of which bank 0
// is fixed at 0xC000 - 0xCFFF and the bank selected through SVBK is
// mapped at 0xD000 - 0xDFFF.
//
// WRAM has no notion of the hardware model. On DMG hardware the caller
// must not touch SVBK, which leaves bank 1 selected.
type WRAM struct {
	bank uint8
	raw  [WRAMBanks][WRAMBankSize]uint8
}

// NewWRAM returns zeroed work RAM with bank 1 selected.
func NewWRAM() *WRAM {
	return &WRAM{
		bank: 1, // bank 1 is the default as the first bank is fixed
	}
}

// Bank returns the currently selected switchable bank (1-7).
func (w *WRAM) Bank() uint8 {
	return w.bank
}

// Read returns the byte at addr, which must lie within 0xC000 - 0xDFFF.
// An address outside of WRAM is a bug in the caller and panics.
func (w *WRAM) Read(addr uint16) uint8 {
	mustBeWRAM(addr)
	// are we reading from the fixed bank?
	if addr < types.WRAMBankStart {
		return w.raw[0][addr&0xFFF]
	}
	return w.raw[w.bank][addr&0xFFF]
}

// Write writes v to addr, which must lie within 0xC000 - 0xDFFF.
// An address outside of WRAM is a bug in the caller and panics.
func (w *WRAM) Write(addr uint16, v uint8) {
	mustBeWRAM(addr)
	// are we writing to the fixed bank?
	if addr < types.WRAMBankStart {
		w.raw[0][addr&0xFFF] = v
		return
	}
	w.raw[w.bank][addr&0xFFF] = v
}

// ReadChecked is Read returning ErrAddressOutOfRange instead of
// panicking.
func (w *WRAM) ReadChecked(addr uint16) (uint8, error) {
	if !isWRAM(addr) {
		return 0xFF, fmt.Errorf("%w: 0x%04X", ErrAddressOutOfRange, addr)
	}
	return w.Read(addr), nil
}

// WriteChecked is Write returning ErrAddressOutOfRange instead of
// panicking.
func (w *WRAM) WriteChecked(addr uint16, v uint8) error {
	if !isWRAM(addr) {
		return fmt.Errorf("%w: 0x%04X", ErrAddressOutOfRange, addr)
	}
	w.Write(addr, v)
	return nil
}

// ReadSVBK returns the SVBK register: the selected bank in bits 0-2,
// with the unused upper bits reading as 1.
func (w *WRAM) ReadSVBK() uint8 {
	return w.bank | 0xF8
}

// WriteSVBK selects the switchable bank. Only the lower 3 bits are
// used, and selecting bank 0 selects bank 1.
func (w *WRAM) WriteSVBK(v uint8) {
	v &= 0x07 // only 3 bits are used
	if v == 0 {
		v = 1
	}
	w.bank = v
}

// Reset zeroes every bank and selects bank 1.
func (w *WRAM) Reset() {
	*w = WRAM{bank: 1}
}

// Save writes the selected bank followed by the contents of every bank.
func (w *WRAM) Save(s *types.State) {
	s.Write8(w.bank)
	for i := range w.raw {
		s.WriteData(w.raw[i][:])
	}
}

// Load reads the state written by Save. The bank index goes through
// WriteSVBK, so a corrupt state can never select bank 0. If the state
// is short, w is left untouched and s.Err reports why.
func (w *WRAM) Load(s *types.State) {
	loaded := WRAM{}
	loaded.WriteSVBK(s.Read8())
	for i := range loaded.raw {
		s.ReadData(loaded.raw[i][:])
	}
	if s.Err() != nil {
		return
	}
	*w = loaded
}

func isWRAM(addr uint16) bool {
	return addr >= types.WRAMStart && addr <= types.WRAMEnd
}

func mustBeWRAM(addr uint16) {
	if !isWRAM(addr) {
		panic(fmt.Sprintf("wram: address 0x%04X out of range", addr))
	}
}
