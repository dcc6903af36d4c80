package engine

import (
	"go.uber.org/zap"

	"github.com/rivergale/cheatdeck/internal/cheat"
)

type applied struct {
	orig  byte
	value byte
}

// MemEngine applies decoded cheats to a Bus. It remembers the byte each
// patch replaced so that disabling a cheat restores the pre-cheat value,
// and it ignores re-application of an already active patch, which makes
// Notify idempotent the way the panel's rebuild requires.
type MemEngine struct {
	log     *zap.Logger
	bus     *Bus
	active  map[uint16]applied
	skipped map[uint16]bool // compare byte mismatched; nothing was written
}

func NewMemEngine(log *zap.Logger, bus *Bus) *MemEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemEngine{
		log:     log,
		bus:     bus,
		active:  make(map[uint16]applied),
		skipped: make(map[uint16]bool),
	}
}

func (e *MemEngine) Notify(active bool, code string, index int) error {
	p, err := cheat.Parse(code)
	if err != nil {
		e.log.Error("cheat code rejected",
			zap.Int("index", index),
			zap.String("code", code),
			zap.Error(err),
		)
		return err
	}
	if active {
		e.apply(p, code, index)
	} else {
		e.restore(p, code, index)
	}
	return nil
}

func (e *MemEngine) apply(p cheat.Patch, code string, index int) {
	if prev, ok := e.active[p.Addr]; ok {
		if prev.value == p.Value {
			return // already asserted
		}
		// A different patch owns this address; replace the value but keep
		// the original byte so a later restore lands on pre-cheat state.
		e.active[p.Addr] = applied{orig: prev.orig, value: p.Value}
		e.write(p, p.Value)
		return
	}
	if e.skipped[p.Addr] {
		return
	}
	cur := e.bus.Read(p.Addr)
	if p.HasCompare && cur != p.Compare {
		// Wrong ROM revision for this code; applying would corrupt an
		// unrelated byte.
		e.skipped[p.Addr] = true
		e.log.Warn("cheat compare byte mismatch, not applied",
			zap.Int("index", index),
			zap.String("code", code),
			zap.Uint16("addr", p.Addr),
		)
		return
	}
	e.active[p.Addr] = applied{orig: cur, value: p.Value}
	e.write(p, p.Value)
	e.log.Info("cheat applied",
		zap.Int("index", index),
		zap.String("code", code),
		zap.Uint16("addr", p.Addr),
	)
}

func (e *MemEngine) restore(p cheat.Patch, code string, index int) {
	delete(e.skipped, p.Addr)
	prev, ok := e.active[p.Addr]
	if !ok {
		return // never applied, nothing to undo
	}
	delete(e.active, p.Addr)
	e.write(p, prev.orig)
	e.log.Info("cheat removed",
		zap.Int("index", index),
		zap.String("code", code),
		zap.Uint16("addr", p.Addr),
	)
}

func (e *MemEngine) write(p cheat.Patch, value byte) {
	if p.Kind == cheat.PatchROM {
		e.bus.PatchROM(p.Addr, value)
		return
	}
	e.bus.Write(p.Addr, value)
}
