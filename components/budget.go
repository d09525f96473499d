package components

// Budget is a per-round resource pair; Current depletes with use and refills to Max on recharge
type Budget struct {
	Current int
	Max     int
}

// Full returns a budget with Current == Max == n
func Full(n int) Budget {
	return Budget{Current: n, Max: n}
}

// Available reports whether at least one use remains
func (b Budget) Available() bool {
	return b.Current > 0
}

// Use spends one unit. It refuses at zero so Current never goes negative.
func (b *Budget) Use() bool {
	if b.Current <= 0 {
		return false
	}
	b.Current--
	return true
}

// Refill resets Current to Max
func (b *Budget) Refill() {
	b.Current = b.Max
}
