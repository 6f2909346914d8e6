package app

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/regenrek/dragbox/internal/rect"
	"github.com/regenrek/dragbox/internal/tui/mouse"
)

var gridSteps = []float64{1, 2, 4}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.mouse.Update(msg, mouse.Callbacks{
		Document: m.doc,
		Targets:  m.targets,
		PointerDown: func(id string, ev rect.PointerEvent) {
			if sw := m.find(id); sw != nil {
				m.raise(sw)
				sw.w.PointerDown(ev)
			}
		},
		HandleDown: func(id string, h rect.Handle, ev rect.PointerEvent) {
			if sw := m.find(id); sw != nil {
				sw.w.HandleDown(h, ev)
			}
		},
		DoubleClick: func(id string) {
			if sw := m.find(id); sw != nil {
				m.toggleLock(sw)
			}
		},
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.toggleHelp) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.toggleHelp):
		m.showHelp = true
	case key.Matches(msg, m.keys.toggleLock):
		if sw := m.selected(); sw != nil {
			m.toggleLock(sw)
		} else {
			m.setToast("select a widget first", toastWarning)
		}
	case key.Matches(msg, m.keys.contain):
		next := !m.contained()
		m.contain = &next
		m.reconcileOverrides()
		m.setToast("containment "+onOff(next), toastInfo)
	case key.Matches(msg, m.keys.grid):
		m.gridStep = nextGridStep(m.grid().X)
		m.reconcileOverrides()
		m.setToast("grid "+strconv.FormatFloat(m.gridStep, 'f', -1, 64), toastInfo)
	case key.Matches(msg, m.keys.next):
		m.cycleSelection(1)
	case key.Matches(msg, m.keys.prev):
		m.cycleSelection(-1)
	case key.Matches(msg, m.keys.deselect):
		for _, sw := range m.widgets {
			sw.w.SetActive(false)
		}
	case key.Matches(msg, m.keys.save):
		if m.path == "" {
			m.setToast("no scene file to save to", toastWarning)
			return m, nil
		}
		return m, saveSceneCmd(m.path, m.snapshotScene())
	}
	return m, nil
}

func (m *Model) toggleLock(sw *sceneWidget) {
	lock := !sw.w.Props().LockAspectRatio
	if !sw.w.SetLockAspectRatio(lock) {
		m.setToast(sw.def.ID+" is busy", toastWarning)
		return
	}
	m.events.add(sw.def.ID, "lock "+onOff(lock))
}

// cycleSelection selects the widget dir steps away from the current one in
// scene order and deselects the rest.
func (m *Model) cycleSelection(dir int) {
	n := len(m.widgets)
	if n == 0 {
		return
	}
	idx := -1
	if sel := m.selected(); sel != nil {
		for i, sw := range m.widgets {
			if sw == sel {
				idx = i
				break
			}
		}
	}
	switch {
	case idx < 0 && dir < 0:
		idx = n - 1
	case idx < 0:
		idx = 0
	default:
		idx = ((idx+dir)%n + n) % n
	}
	for i, sw := range m.widgets {
		sw.w.SetActive(i == idx)
	}
	target := m.widgets[idx]
	m.raise(target)
	m.events.add(target.def.ID, "selected")
}

func nextGridStep(current float64) float64 {
	for _, step := range gridSteps {
		if step > current {
			return step
		}
	}
	return gridSteps[0]
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func formatRect(r rect.Rect) string {
	return fmt.Sprintf("%gx%g @ %g,%g", r.Width, r.Height, r.Left, r.Top)
}
