package mouse

import tea "github.com/charmbracelet/bubbletea"

// Capturer is implemented by models that track whether a gesture owns the
// pointer.
type Capturer interface {
	MouseCaptured() bool
}

// MotionFilter drops motion the model cannot use before it reaches Update.
// All-motion tracking reports every cell the pointer crosses; only motion
// during a press matters, and repeats of the same cell are discarded.
type MotionFilter struct {
	lastX int
	lastY int
}

func NewMotionFilter() *MotionFilter {
	return &MotionFilter{lastX: -1, lastY: -1}
}

// Filter is a tea.WithFilter callback.
func (f *MotionFilter) Filter(model tea.Model, msg tea.Msg) tea.Msg {
	if f == nil {
		return msg
	}
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return msg
	}
	if mouse.Action != tea.MouseActionMotion {
		f.reset()
		return msg
	}
	c, ok := model.(Capturer)
	if !ok || !c.MouseCaptured() {
		f.reset()
		return nil
	}
	if mouse.X == f.lastX && mouse.Y == f.lastY {
		return nil
	}
	f.lastX = mouse.X
	f.lastY = mouse.Y
	return msg
}

func (f *MotionFilter) reset() {
	f.lastX = -1
	f.lastY = -1
}
