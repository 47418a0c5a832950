package types

import "fmt"

// HardwareRegisters is a table of hardware IO, which can be read
// and written to. The table is indexed by the address of the
// hardware register ANDed with 0x007F, with the IE register
// (0xFFFF) occupying the otherwise unused 0xFF7F slot.
//
// Each address decoder owns its own table, so that multiple
// instances of the emulator never share hardware state.
type HardwareRegisters [0x80]*HardwareRegister

// Read returns the value of the hardware register for
// the given address. If the hardware register does not
// exist, it returns 0xFF.
func (h *HardwareRegisters) Read(address uint16) uint8 {
	// is the hardware register the IE register? as the table is
	// indexed by the address ANDed with 0x007F, the IE register
	// is at index 0x7F, so we need to check for it separately
	if address == IE {
		if h[0x7F] == nil {
			return 0xFF
		}
		return h[0x7F].Read()
	}
	// does the hardware register exist? if not, return 0xFF
	if h[address&0x007F] == nil || address == 0xFF7F {
		return 0xFF
	}
	return h[address&0x007F].Read()
}

// Write writes the given value to the hardware register
// for the given address. If the hardware register does not
// exist, it does nothing.
func (h *HardwareRegisters) Write(address uint16, value uint8) {
	if address == 0xFF7F {
		return
	}
	if h[address&0x007F] == nil {
		return
	}
	h[address&0x007F].Write(value)
}

// Has returns true if a hardware register is installed at the
// given address.
func (h *HardwareRegisters) Has(address HardwareAddress) bool {
	if address == 0xFF7F {
		return false
	}
	return h[address&0x007F] != nil
}

// Register installs a hardware register with the given address and
// read/write functions. The read and write functions may be nil, in
// which case the register panics when read or written respectively;
// use NoRead and NoWrite for registers that are silently write or
// read only.
func (h *HardwareRegisters) Register(address HardwareAddress, write func(v uint8), read func() uint8) {
	if (address < IOStart || address >= 0xFF7F) && address != IE {
		panic(fmt.Sprintf("hardware: address 0x%04X is outside of the IO range", address))
	}
	h[address&0x007F] = &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
}

// Unregister removes the hardware register at the given address, if any.
func (h *HardwareRegisters) Unregister(address HardwareAddress) {
	if address == 0xFF7F {
		return
	}
	h[address&0x007F] = nil
}

// HardwareRegister represents a hardware register of the Game
// Boy. The hardware IO are used to control and
// read the state of the hardware.
type HardwareRegister struct {
	address HardwareAddress
	write   func(v uint8)
	read    func() uint8
}

func (h *HardwareRegister) Read() uint8 {
	if h.read != nil {
		return h.read()
	}

	// the hardware register is not readable, a panic is thrown
	panic(fmt.Sprintf("hardware: no read function for address 0x%04X", h.address))
}

func (h *HardwareRegister) Write(value uint8) {
	if h.write != nil {
		h.write(value)
		return
	}

	panic(fmt.Sprintf("hardware: no write function for address 0x%04X", h.address))
}

// NoRead is a convenience function to return a read function that
// always returns 0xFF. This is useful for hardware IO that
// are not readable.
func NoRead() uint8 {
	return 0xFF
}

// NoWrite is a convenience function to return a write function that
// does nothing. This is useful for hardware IO that are not
// writable.
func NoWrite(v uint8) {
	// do nothing
}
