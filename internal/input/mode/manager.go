package mode

import "fmt"

// Presenter applies a cursor presentation. The terminal layer implements it.
type Presenter interface {
	SetCursorStyle(style CursorStyle) error
}

// ModeChangeCallback is called after the mode changes.
type ModeChangeCallback func(from, to Mode)

// Manager holds the active mode and coordinates mode transitions.
type Manager struct {
	presenter Presenter

	// current is the active mode.
	current Mode

	// previous is the mode before the current one.
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback
}

// NewManager creates a mode manager whose initial mode is Insert.
func NewManager(p Presenter) *Manager {
	return &Manager{
		presenter: p,
		current:   Insert,
		previous:  Insert,
	}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Previous returns the mode that was active before the last transition.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Is returns true if the current mode is mode.
func (m *Manager) Is(mode Mode) bool {
	return m.current == mode
}

// Start applies the presentation of the initial mode without a transition.
func (m *Manager) Start() error {
	return m.present(m.current)
}

// Switch changes to target. Every transition between valid modes is legal,
// including a switch to the current mode, and every transition re-applies
// the cursor presentation. The mode changes even if the presenter fails;
// the presenter error is returned to the caller.
func (m *Manager) Switch(target Mode) error {
	if !target.Valid() {
		return fmt.Errorf("switch: %w: %d", ErrUnknownMode, target)
	}

	from := m.current
	m.previous = from
	m.current = target

	err := m.present(target)

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, target)
		}
	}

	return err
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ModeChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		// Preserve indices of later registrations.
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

func (m *Manager) present(mode Mode) error {
	if m.presenter == nil {
		return nil
	}
	if err := m.presenter.SetCursorStyle(mode.CursorStyle()); err != nil {
		return fmt.Errorf("set cursor style %s for %s mode: %w", mode.CursorStyle(), mode, err)
	}
	return nil
}
