package controller

// Latch returns true for one call when its input goes from false to true.
type Latch struct {
	val bool
}

func (l *Latch) Run(v bool) bool {
	r := v && !l.val
	l.val = v
	return r
}

// Edges latches every button.
type Edges struct {
	latches [numButtons]Latch
}

// Run returns the buttons in held which weren't held on the previous call.
func (e *Edges) Run(held Buttons) Buttons {
	var edges Buttons
	for b := Button(0); b < numButtons; b++ {
		if e.latches[b].Run(held.Has(b)) {
			edges |= ButtonsOf(b)
		}
	}
	return edges
}

// Reset forgets the previous state, e.g. after the controller reconnects.
func (e *Edges) Reset() {
	e.latches = [numButtons]Latch{}
}
