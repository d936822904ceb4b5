package world

// Layer counts the opaque blocks of one 16x16 slice of a section.
type Layer struct {
	solid int
}

// update adjusts the count for a write that replaced a block.
func (l *Layer) update(wasOpaque, isOpaque bool) {
	switch {
	case isOpaque && !wasOpaque:
		l.solid++
	case wasOpaque && !isOpaque:
		l.solid--
	}
}

// IsAllSolid reports whether every block in the slice is opaque.
func (l Layer) IsAllSolid() bool { return l.solid == ChunkArea }

// Solid returns the number of opaque blocks.
func (l Layer) Solid() int { return l.solid }
