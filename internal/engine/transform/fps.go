package transform

// FPSMeter averages frame rate over roughly one-second windows.
type FPSMeter struct {
	elapsed float64
	frames  int
	fps     float64
}

// Add records one frame that took dt seconds. It reports true when a new
// average is available.
func (m *FPSMeter) Add(dt float64) bool {
	m.elapsed += dt
	m.frames++
	if m.elapsed < 1 {
		return false
	}
	m.fps = float64(m.frames) / m.elapsed
	m.elapsed = 0
	m.frames = 0
	return true
}

// FPS returns the last completed average.
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
