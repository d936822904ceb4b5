package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical game action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionFlyUp
	ActionFlyDown
	ActionSprint
	ActionReloadMeshes
	ActionRenderDistanceUp
	ActionRenderDistanceDown
	ActionPause
	ActionBreak
	ActionPlace
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to actions and tracks which
// actions are held and which went down this frame. GLFW callbacks write it;
// the frame loop reads it.
type InputManager struct {
	mu sync.RWMutex

	keys    map[glfw.Key][]Action
	buttons map[glfw.MouseButton][]Action

	held        [ActionCount]bool
	justPressed [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keys:    make(map[glfw.Key][]Action),
		buttons: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionFlyUp)
	im.BindKey(glfw.KeyLeftShift, ActionFlyDown)
	im.BindKey(glfw.KeyLeftControl, ActionSprint)
	im.BindKey(glfw.KeyR, ActionReloadMeshes)
	im.BindKey(glfw.KeyEqual, ActionRenderDistanceUp)
	im.BindKey(glfw.KeyKPAdd, ActionRenderDistanceUp)
	im.BindKey(glfw.KeyMinus, ActionRenderDistanceDown)
	im.BindKey(glfw.KeyKPSubtract, ActionRenderDistanceDown)
	im.BindKey(glfw.KeyEscape, ActionPause)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionBreak)
	im.BindMouseButton(glfw.MouseButtonRight, ActionPlace)

	return im
}

func valid(a Action) bool { return a >= 0 && a < ActionCount }

// BindKey adds a key binding. A key may drive several actions.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if !valid(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keys[key] = append(im.keys[key], action)
}

// BindMouseButton adds a mouse button binding.
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if !valid(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.buttons[button] = append(im.buttons[button], action)
}

// HandleKeyEvent records a key transition. Repeats count as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.set(im.keys[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent records a mouse button transition.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.set(im.buttons[button], action == glfw.Press)
}

func (im *InputManager) set(actions []Action, pressed bool) {
	for _, a := range actions {
		if pressed && !im.held[a] {
			im.justPressed[a] = true
		}
		im.held[a] = pressed
	}
}

// SetCallbacks routes the window's key and mouse button events here.
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate clears the per-frame edges. Call at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
}

// IsActive reports whether the action is held.
func (im *InputManager) IsActive(action Action) bool {
	if !valid(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.held[action]
}

// JustPressed reports whether the action went down this frame.
func (im *InputManager) JustPressed(action Action) bool {
	if !valid(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}
