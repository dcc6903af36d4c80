package engine

// Bus is the slice of Game Boy address space cheats can land in: ROM
// (0x0000-0x7FFF), VRAM, external/work RAM with the echo mirror, and HRAM.
// It is a patch target, not an executing machine.
type Bus struct {
	rom  []byte
	vram [0x2000]byte
	xram [0x2000]byte // external (cartridge) RAM, 0xA000-0xBFFF
	wram [0x2000]byte
	hram [0x7F]byte
}

func NewBus(rom []byte) *Bus {
	return &Bus{rom: rom}
}

func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x8000:
		if int(addr) < len(b.rom) {
			return b.rom[addr]
		}
		return 0xFF
	case addr < 0xA000:
		return b.vram[addr-0x8000]
	case addr < 0xC000:
		return b.xram[addr-0xA000]
	case addr < 0xE000:
		return b.wram[addr-0xC000]
	case addr < 0xFE00: // echo RAM mirrors 0xC000-0xDDFF
		return b.wram[addr-0xE000]
	case addr >= 0xFF80 && addr < 0xFFFF:
		return b.hram[addr-0xFF80]
	default:
		return 0xFF
	}
}

func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x8000:
		// ROM is read-only on the bus; patches go through PatchROM.
	case addr < 0xA000:
		b.vram[addr-0x8000] = value
	case addr < 0xC000:
		b.xram[addr-0xA000] = value
	case addr < 0xE000:
		b.wram[addr-0xC000] = value
	case addr < 0xFE00:
		b.wram[addr-0xE000] = value
	case addr >= 0xFF80 && addr < 0xFFFF:
		b.hram[addr-0xFF80] = value
	}
}

// PatchROM overwrites a ROM byte in place. Out-of-range addresses are
// ignored; the caller has already validated the patch target.
func (b *Bus) PatchROM(addr uint16, value byte) {
	if int(addr) < len(b.rom) {
		b.rom[addr] = value
	}
}
