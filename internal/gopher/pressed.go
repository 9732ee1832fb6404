package gopher

// pressedKeys remembers every output code currently held down by a
// mapping, in press order, so the disable guard can release them all even
// if the controller goes away mid-hold. A code appears at most once.
type pressedKeys struct {
	codes []uint16
}

// add records a code as held. No-op when already present.
func (p *pressedKeys) add(code uint16) {
	for _, c := range p.codes {
		if c == code {
			return
		}
	}
	p.codes = append(p.codes, code)
}

// remove forgets a held code and reports whether it was present.
func (p *pressedKeys) remove(code uint16) bool {
	for i, c := range p.codes {
		if c == code {
			p.codes = append(p.codes[:i], p.codes[i+1:]...)
			return true
		}
	}
	return false
}

// drain returns all held codes in press order and clears the set.
func (p *pressedKeys) drain() []uint16 {
	codes := p.codes
	p.codes = nil
	return codes
}
