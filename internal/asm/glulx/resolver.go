package glulx

// Resolved is where a label landed: an absolute address in ROM, or an offset
// from the start of RAM.
type Resolved struct {
	RAM  bool
	Addr uint32
}

// Resolver maps labels to addresses. Assembly passes go through this
// interface so that operand encoding does not depend on how positions are
// stored.
type Resolver interface {
	// Resolve classifies the label as ROM or RAM.
	Resolve(l Label) (Resolved, error)
	// ResolveAbsolute returns the absolute address of l plus offset.
	ResolveAbsolute(l Label, offset int32) (uint32, error)
}

// labelTable is the Resolver used during assembly.
type labelTable struct {
	positions map[Label]uint32
	ramStart  uint32
}

func (t *labelTable) Resolve(l Label) (Resolved, error) {
	pos, ok := t.positions[l]
	if !ok {
		return Resolved{}, undefinedLabelError(l)
	}
	if pos >= t.ramStart {
		return Resolved{RAM: true, Addr: pos - t.ramStart}, nil
	}
	return Resolved{Addr: pos}, nil
}

func (t *labelTable) ResolveAbsolute(l Label, offset int32) (uint32, error) {
	pos, ok := t.positions[l]
	if !ok {
		return 0, undefinedLabelError(l)
	}
	return addOffset(pos, offset)
}

// resolveOffset resolves l+offset keeping the ROM/RAM classification of l.
func resolveOffset(r Resolver, l Label, offset int32) (Resolved, error) {
	res, err := r.Resolve(l)
	if err != nil {
		return Resolved{}, err
	}
	if res.Addr, err = addOffset(res.Addr, offset); err != nil {
		return Resolved{}, err
	}
	return res, nil
}
