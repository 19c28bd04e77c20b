package domain

import "time"

// Session holds one user's editing state: the configuration being edited and
// the last menu generated from it, if any. Transitions return new values.
type Session struct {
	ID        string         `json:"id"`
	Config    Configuration  `json:"config"`
	Menu      *GeneratedMenu `json:"menu"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewSession starts a session with the default configuration and no menu.
func NewSession(id string, now time.Time) Session {
	return Session{ID: id, Config: DefaultConfiguration(), UpdatedAt: now}
}

// WithConfig replaces the configuration. An existing menu is kept until the
// next generate or clear.
func (s Session) WithConfig(cfg Configuration, now time.Time) Session {
	s.Config = cfg
	s.UpdatedAt = now
	return s
}

// WithMenu replaces any previous menu with m.
func (s Session) WithMenu(m GeneratedMenu, now time.Time) Session {
	s.Menu = &m
	s.UpdatedAt = now
	return s
}

// Cleared drops the menu and keeps the configuration.
func (s Session) Cleared(now time.Time) Session {
	s.Menu = nil
	s.UpdatedAt = now
	return s
}

// HasMenu reports whether a menu has been generated since the last clear.
func (s Session) HasMenu() bool {
	return s.Menu != nil
}
