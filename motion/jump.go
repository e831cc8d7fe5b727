package motion

// JumpWindow is one authored segment of a jump: a constant velocity held for
// DurationFrames fixed ticks. An ordered sequence of windows defines the full
// trajectory; after the last window the jump ends and free fall takes over.
type JumpWindow struct {
	DurationFrames int
	Velocity       Vec
}

// jumpCursor tracks progress through the window table. The zero value is the
// start of a fresh jump.
type jumpCursor struct {
	frame  int
	window int
}

// advance moves the cursor one fixed tick and returns the window active for
// that tick. A window boundary is crossed when the frame counter exceeds the
// window's duration, so each window is held for exactly DurationFrames ticks;
// the advancing tick already consumes the first frame of the next window.
// Once every window is exhausted the cursor resets itself and ok is false.
func (c *jumpCursor) advance(windows []JumpWindow) (JumpWindow, bool) {
	if c.window >= len(windows) {
		*c = jumpCursor{}
		return JumpWindow{}, false
	}
	c.frame++
	if c.frame > windows[c.window].DurationFrames {
		c.window++
		c.frame = 1
	}
	if c.window >= len(windows) {
		*c = jumpCursor{}
		return JumpWindow{}, false
	}
	return windows[c.window], true
}
