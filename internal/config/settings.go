package config

import "sync"

// RenderSettings holds values that can change while the world is running.
// It is shared between the main loop and the streaming goroutines.
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int // in chunks
}

// NewRenderSettings returns settings with a clamped render distance.
func NewRenderSettings(distance int) *RenderSettings {
	s := &RenderSettings{}
	s.SetRenderDistance(distance)
	return s
}

// RenderDistance returns the current render distance in chunks.
func (s *RenderSettings) RenderDistance() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderDistance
}

// SetRenderDistance sets the render distance, clamped to the allowed range.
func (s *RenderSettings) SetRenderDistance(distance int) {
	distance = max(MinRenderDistance, min(distance, MaxRenderDistance))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderDistance = distance
}

// AdjustRenderDistance adds delta and returns the clamped result.
func (s *RenderSettings) AdjustRenderDistance(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderDistance = max(MinRenderDistance, min(s.renderDistance+delta, MaxRenderDistance))
	return s.renderDistance
}
