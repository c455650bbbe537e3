package theme

import (
	"sync"

	"github.com/tatakaukohdai/todotui/internal/logger"
)

// State is the snapshot published to consumers: the mode flag and the
// scheme derived from it.
type State struct {
	IsDarkMode bool
	Colors     ColorScheme
}

// Provider is the single source of truth for the application's
// presentation mode. It owns one boolean flag, derives the active
// ColorScheme from it, and keeps the persisted preference in sync.
//
// The flag defaults to light mode until LoadPreference has run.
type Provider struct {
	mu     sync.RWMutex
	isDark bool

	// overridden is set once the mode has been chosen explicitly
	// (toggle or CLI override). The startup preference read must not
	// adopt a stale disk value over an explicit choice whose save is
	// still in flight.
	overridden bool

	store Store
	log   *logger.Logger

	// persisting tracks in-flight saves so tests can wait for them.
	// Callers never join these; durability is eventual.
	persisting sync.WaitGroup
}

// NewProvider creates a Provider in light mode backed by the given
// store. log may be nil.
func NewProvider(store Store, log *logger.Logger) *Provider {
	return &Provider{store: store, log: log}
}

// IsDarkMode reports the current mode flag.
func (p *Provider) IsDarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isDark
}

// Colors returns the scheme for the current mode. Pure selection over
// the two static schemes; recomputed on every call.
func (p *Provider) Colors() ColorScheme {
	if p.IsDarkMode() {
		return DarkScheme()
	}
	return LightScheme()
}

// State returns the mode flag and its derived scheme as one snapshot.
func (p *Provider) State() State {
	dark := p.IsDarkMode()
	s := State{IsDarkMode: dark}
	if dark {
		s.Colors = DarkScheme()
	} else {
		s.Colors = LightScheme()
	}
	return s
}

// LoadPreference reads the persisted preference and adopts it,
// returning the resulting mode. A missing or unreadable value leaves
// the default in place; that path is silent by contract, not a
// failure. A mode that was already set explicitly is never
// overwritten: the disk value may predate an in-flight save. Callers
// run this off the render path, once per provider.
func (p *Provider) LoadPreference() bool {
	value, ok, err := p.store.DarkMode()
	if err != nil {
		p.log.WithFields(map[string]any{"component": "theme"}).Debug("preference unreadable, keeping default")
		return p.IsDarkMode()
	}
	if !ok {
		return p.IsDarkMode()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.overridden {
		p.isDark = value
	}
	return p.isDark
}

// SeedDefault applies a configured startup default. It only takes
// effect while no preference has ever been persisted, and it persists
// nothing itself: the default stays a default until the user toggles.
func (p *Provider) SeedDefault(dark bool) {
	if _, ok, err := p.store.DarkMode(); err != nil || ok {
		return
	}

	p.mu.Lock()
	p.isDark = dark
	p.mu.Unlock()
}

// ToggleDarkMode negates the mode flag and returns the new value. The
// in-memory change is immediate; persistence happens on a detached
// goroutine. A failed save is logged and the flag is not rolled back:
// the UI stays responsive and the next run simply reads the last value
// that did reach disk. Concurrent toggles each persist independently,
// last write wins.
func (p *Provider) ToggleDarkMode() bool {
	p.mu.Lock()
	p.isDark = !p.isDark
	p.overridden = true
	value := p.isDark
	p.mu.Unlock()

	p.persistAsync(value)
	return value
}

// SetDarkMode forces the mode flag to the given value and persists it.
// Used by CLI overrides; shares ToggleDarkMode's durability contract.
func (p *Provider) SetDarkMode(value bool) {
	p.mu.Lock()
	p.isDark = value
	p.overridden = true
	p.mu.Unlock()

	p.persistAsync(value)
}

func (p *Provider) persistAsync(value bool) {
	p.persisting.Add(1)
	go func() {
		defer p.persisting.Done()
		if err := p.store.SetDarkMode(value); err != nil {
			p.log.WarnErr(err, "failed to persist dark-mode preference")
		}
	}()
}
