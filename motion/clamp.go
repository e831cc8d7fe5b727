package motion

// contactClamps are per-axis vetoes raised while the character overlaps a
// ceiling or wall surface. They zero movement into the blocked direction but
// do not correct overlap that already happened; only floor contact repositions
// the character.
type contactClamps struct {
	ceiling bool
	left    bool
	right   bool
}

func (cc contactClamps) apply(v Vec) Vec {
	if cc.ceiling && v.Y > 0 {
		v.Y = 0
	}
	if cc.left && v.X < 0 {
		v.X = 0
	}
	if cc.right && v.X > 0 {
		v.X = 0
	}
	return v
}
