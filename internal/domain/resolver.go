package domain

import (
	m "github.com/mouse-blink/dailyscale/internal/model"
)

// Resolve maps a scale pattern onto a root note. The result keeps the
// pattern's order, so the root is always first.
func Resolve(root m.Note, pattern []int) m.ResolvedScale {
	resolved := make(m.ResolvedScale, 0, len(pattern))
	for _, degree := range pattern {
		resolved = append(resolved, m.ScaleNote{
			Note:   root.Transpose(degree),
			Degree: degree,
		})
	}

	return resolved
}

// ResolveScale resolves a catalog scale for root.
func ResolveScale(root m.Note, scale m.Scale) m.ResolvedScale {
	return Resolve(root, scale.Steps())
}
