package cheat

import (
	"fmt"
	"strings"
)

// PatchKind says where a decoded cheat lands.
type PatchKind int

const (
	// PatchRAM is a GameShark-style write into work/external RAM.
	PatchRAM PatchKind = iota
	// PatchROM is a Game Genie-style ROM patch, optionally guarded by a
	// compare byte.
	PatchROM
)

// Patch is a decoded cheat code.
type Patch struct {
	Kind       PatchKind
	Addr       uint16
	Value      byte
	Compare    byte
	HasCompare bool
}

// Parse decodes a cheat code string. Two formats are understood:
//
//	GameShark  TTVVLLHH   - 8 hex digits: type, value, little-endian address
//	Game Genie ABC-DEF    - ROM patch, value AB at address derived from CDEF
//	Game Genie ABC-DEF-GHI - same plus a compare byte from G and I
//
// The panel never calls this; codes flow through it opaquely and the engine
// decides what a malformed code means.
func Parse(code string) (Patch, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" {
		return Patch{}, fmt.Errorf("empty cheat code")
	}
	if strings.Contains(trimmed, "-") {
		return parseGameGenie(trimmed)
	}
	return parseGameShark(trimmed)
}

func parseGameShark(code string) (Patch, error) {
	if len(code) != 8 {
		return Patch{}, fmt.Errorf("gameshark code %q: want 8 hex digits, got %d", code, len(code))
	}
	var digits [8]byte
	for i := 0; i < 8; i++ {
		d, ok := hexDigit(code[i])
		if !ok {
			return Patch{}, fmt.Errorf("gameshark code %q: %q is not a hex digit", code, code[i])
		}
		digits[i] = d
	}
	typ := digits[0]<<4 | digits[1]
	if typ != 0x00 && typ != 0x01 {
		return Patch{}, fmt.Errorf("gameshark code %q: unsupported type %02X", code, typ)
	}
	value := digits[2]<<4 | digits[3]
	// Address bytes are little-endian on the wire.
	lo := uint16(digits[4])<<4 | uint16(digits[5])
	hi := uint16(digits[6])<<4 | uint16(digits[7])
	addr := hi<<8 | lo
	if addr < 0xA000 || addr > 0xDFFF {
		return Patch{}, fmt.Errorf("gameshark code %q: address %04X outside RAM", code, addr)
	}
	return Patch{Kind: PatchRAM, Addr: addr, Value: value}, nil
}

func parseGameGenie(code string) (Patch, error) {
	raw := strings.ReplaceAll(code, "-", "")
	if len(raw) != 6 && len(raw) != 9 {
		return Patch{}, fmt.Errorf("game genie code %q: want 6 or 9 digits, got %d", code, len(raw))
	}
	digits := make([]byte, len(raw))
	for i := 0; i < len(raw); i++ {
		d, ok := hexDigit(raw[i])
		if !ok {
			return Patch{}, fmt.Errorf("game genie code %q: %q is not a hex digit", code, raw[i])
		}
		digits[i] = d
	}
	value := digits[0]<<4 | digits[1]
	addr := uint16(digits[5])<<12 | uint16(digits[2])<<8 | uint16(digits[3])<<4 | uint16(digits[4])
	addr ^= 0xF000
	if addr >= 0x8000 {
		return Patch{}, fmt.Errorf("game genie code %q: address %04X outside ROM", code, addr)
	}
	p := Patch{Kind: PatchROM, Addr: addr, Value: value}
	if len(raw) == 9 {
		// Digit 7 is a dead digit; the compare byte is scrambled across
		// digits 6 and 8.
		c := digits[6]<<4 | digits[8]
		c ^= 0xBA
		c = c>>2 | c<<6
		p.Compare = c
		p.HasCompare = true
	}
	return p, nil
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
