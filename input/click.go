package input

// ClickTracker turns raw button edges into completed click gestures.
// The first edge of a gesture sets pending; the next edge while pending
// reports a release and clears pending. Exactly one release fires per
// press-then-release pair.
type ClickTracker struct {
	pending bool
}

// Edge records one raw button edge and reports whether it completed a gesture
func (c *ClickTracker) Edge() bool {
	released := c.pending
	c.pending = !c.pending
	return released
}

// Pending reports whether a press is waiting for its release
func (c *ClickTracker) Pending() bool {
	return c.pending
}

// Reset drops any half-finished gesture
func (c *ClickTracker) Reset() {
	c.pending = false
}
