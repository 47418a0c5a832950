package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// WRAMStart is the first address of work RAM. 0xC000 - 0xCFFF
	// always maps to WRAM bank 0.
	WRAMStart uint16 = 0xC000
	// WRAMBankStart is the first address of the switchable half of
	// work RAM. 0xD000 - 0xDFFF maps to the bank selected by SVBK.
	WRAMBankStart uint16 = 0xD000
	// WRAMEnd is the last address of work RAM.
	WRAMEnd uint16 = 0xDFFF

	// EchoStart is the first address of echo RAM, which mirrors
	// 0xC000 - 0xDDFF.
	EchoStart uint16 = 0xE000
	// EchoEnd is the last address of echo RAM.
	EchoEnd uint16 = 0xFDFF

	// IOStart is the first address of the hardware IO registers.
	IOStart uint16 = 0xFF00
	// IOEnd is the last address of the hardware IO registers.
	IOEnd uint16 = 0xFF7F

	// HRAMStart is the first address of high RAM.
	HRAMStart uint16 = 0xFF80
	// HRAMEnd is the last address of high RAM.
	HRAMEnd uint16 = 0xFFFE
)

const (
	// SVBK is the address of the SVBK hardware register (CGB only).
	// The SVBK hardware register selects the WRAM bank mapped into
	// 0xD000 - 0xDFFF.
	//
	//  Bit 0-2: WRAM Bank (1-7, writing 0 selects bank 1)
	//  Bit 3-7: Unused (read as 1)
	SVBK HardwareAddress = 0xFF70
	// IE is the address of the IE hardware register. It lives outside
	// of the IO range, at the very top of the address space.
	IE HardwareAddress = 0xFFFF
)

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. It is used to abstract
// away the actual memory addresses, and instead use a more
// readable and understandable interface.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}
