// Package app is the interactive canvas: every widget of a scene is a
// draggable, resizable box driven by the mouse.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/logging"
	"github.com/regenrek/dragbox/internal/rect"
	"github.com/regenrek/dragbox/internal/tui/mouse"
)

const (
	headerHeight = 1
	eventRows    = 3
	// status line, event rows, key hints
	footerHeight = 1 + eventRows + 1

	// Used until the first window size arrives.
	fallbackWidth  = 80
	fallbackHeight = 24

	gestureLogInterval = 250 * time.Millisecond
)

// Options configure a Model.
type Options struct {
	Scene config.Scene
	// Path is where the save key writes the scene. Saving is disabled when
	// empty.
	Path string
	// Updates delivers reloads of the scene file, typically from
	// config.Watch.
	Updates <-chan config.Update
	// Env is re-applied to every reloaded scene.
	Env    config.Env
	Logger *slog.Logger
}

// Model is the bubbletea model of the canvas.
type Model struct {
	ctx      context.Context
	log      *slog.Logger
	throttle *logging.Throttle
	now      func() time.Time

	keys     keyMap
	help     help.Model
	showHelp bool

	scene   config.Scene
	path    string
	env     config.Env
	updates <-chan config.Update

	doc     *rect.Document
	widgets []*sceneWidget
	raises  int
	mouse   mouse.Handler
	events  *eventLog
	toast   toastMessage

	width  int
	height int
	// gridStep and contain override the scene once the user cycles them.
	gridStep float64
	contain  *bool
}

// New builds the model and mounts every widget of opts.Scene.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := &Model{
		ctx:      ctx,
		log:      logger,
		throttle: logging.NewThrottle(logger, gestureLogInterval),
		now:      time.Now,
		keys:     newKeyMap(),
		help:     help.New(),
		scene:    opts.Scene,
		path:     opts.Path,
		env:      opts.Env,
		updates:  opts.Updates,
		doc:      rect.NewDocument(),
		width:    fallbackWidth,
		height:   fallbackHeight,
	}
	m.events = newEventLog(func() time.Time { return m.now() })
	m.mouse.OriginY = headerHeight
	m.mountScene(opts.Scene)
	return m
}

func (m *Model) Init() tea.Cmd {
	return waitConfigUpdate(m.updates)
}

// MouseCaptured reports whether a press is in progress, so motion between
// presses can be filtered out.
func (m *Model) MouseCaptured() bool {
	return m.mouse.Pressed()
}

// Close unmounts every widget.
func (m *Model) Close() {
	for _, sw := range m.widgets {
		sw.w.Close()
	}
	m.widgets = nil
}

// Update handles all incoming messages and returns the updated model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.applyWindowSize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case configUpdateMsg:
		m.handleConfigUpdate(msg.Update)
		return m, waitConfigUpdate(m.updates)
	case sceneSavedMsg:
		m.log.Info("app: scene saved", slog.String("path", msg.Path))
		m.setToast("saved "+msg.Path, toastSuccess)
		return m, nil
	case ErrorMsg:
		m.log.Warn("app: action failed", slog.String("context", msg.Context), slog.Any("err", msg.Err))
		m.setToast(msg.Error(), toastError)
		return m, nil
	}
	return m, nil
}

func (m *Model) applyWindowSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	parent := m.parentSize()
	for _, sw := range m.widgets {
		sw.w.SetParentSize(parent)
	}
}

// canvasSize is the area between header and footer, in cells.
func (m *Model) canvasSize() (int, int) {
	w := m.width
	h := m.height - headerHeight - footerHeight
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (m *Model) parentSize() rect.Size {
	w, h := m.canvasSize()
	return rect.Size{W: float64(w), H: float64(h)}
}

func (m *Model) handleConfigUpdate(update config.Update) {
	if update.Err != nil {
		m.setToast(update.Err.Error(), toastError)
		return
	}
	scene := update.Scene
	m.env.Apply(&scene)
	m.applyScene(scene)
	m.setToast("scene reloaded", toastInfo)
}
