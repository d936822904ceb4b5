package input

import "time"

// DefaultToggleDelay is the minimum time between two ToggleKey activations.
const DefaultToggleDelay = 200 * time.Millisecond

// ToggleKey turns a held action into single activations spaced at least
// delay apart.
type ToggleKey struct {
	input  *InputManager
	action Action
	delay  time.Duration
	last   time.Time
	now    func() time.Time
}

// NewToggleKey debounces action with DefaultToggleDelay.
func NewToggleKey(im *InputManager, action Action) *ToggleKey {
	return &ToggleKey{input: im, action: action, delay: DefaultToggleDelay, now: time.Now}
}

// Pressed reports whether the action is held and the delay has elapsed
// since the last activation.
func (k *ToggleKey) Pressed() bool {
	if !k.input.IsActive(k.action) {
		return false
	}
	n := k.now()
	if n.Sub(k.last) < k.delay {
		return false
	}
	k.last = n
	return true
}
