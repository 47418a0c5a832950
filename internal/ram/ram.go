// Package ram provides a basic RAM implementation.
package ram

import "github.com/thelolagemann/gbcore/internal/types"

// RAM represents a flat block of RAM, addressed from 0.
type RAM struct {
	data []uint8
}

// NewRAM returns a new zeroed RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Size returns the number of bytes in the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Reset zeroes the RAM.
func (r *RAM) Reset() {
	clear(r.data)
}

func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data)
}

// Load reads the state written by Save. If the state is short, r is
// left untouched and s.Err reports why.
func (r *RAM) Load(s *types.State) {
	data := make([]uint8, len(r.data))
	s.ReadData(data)
	if s.Err() != nil {
		return
	}
	r.data = data
}
