package kdf

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher for key
// derivation.
//
// Register one or more named [Deriver] implementations, nominate a default
// driver, and then call [Manager.Derive] or [Manager.DeriveWith] for
// day-to-day derivation.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver)
// while allowing concurrent reads (Derive, Supports, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[Algorithm]Deriver
	def     Algorithm
}

// NewManager creates an empty Manager with the given default algorithm.
// Drivers must be registered with [Manager.RegisterDriver] before any
// derivation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant that registers
// all six built-in derivers with their recommended defaults.
func NewManager(defaultAlgorithm Algorithm) *Manager {
	return &Manager{
		drivers: make(map[Algorithm]Deriver),
		def:     defaultAlgorithm,
	}
}

// NewDefaultManager creates a Manager with every built-in deriver
// pre-registered using its recommended default options. The default
// algorithm is [Argon2id].
//
// This is the recommended starting point for most applications.
//
//	m, err := kdf.NewDefaultManager()
//	key, _ := m.Derive("correct horse battery staple", salt, 32)
func NewDefaultManager() (*Manager, error) {
	m := NewManager(Argon2id)

	for _, variant := range []Algorithm{PBKDF2SHA256, PBKDF2SHA512} {
		d, err := NewPBKDF2Deriver(variant, PBKDF2Options{})
		if err != nil {
			return nil, fmt.Errorf("kdf: failed to create default %s deriver: %w", variant, err)
		}
		_ = m.RegisterDriver(variant, d)
	}
	for _, variant := range []Algorithm{Argon2i, Argon2id} {
		d, err := NewArgon2Deriver(variant, Argon2Options{})
		if err != nil {
			return nil, fmt.Errorf("kdf: failed to create default %s deriver: %w", variant, err)
		}
		_ = m.RegisterDriver(variant, d)
	}
	scryptD, err := NewScryptDeriver(ScryptOptions{})
	if err != nil {
		return nil, fmt.Errorf("kdf: failed to create default scrypt deriver: %w", err)
	}
	_ = m.RegisterDriver(Scrypt, scryptD)

	hkdfD, err := NewHKDFDeriver(HKDFOptions{})
	if err != nil {
		return nil, fmt.Errorf("kdf: failed to create default hkdf deriver: %w", err)
	}
	_ = m.RegisterDriver(HKDFSHA256, hkdfD)

	return m, nil
}

// RegisterDriver adds or replaces a named deriver in the Manager.
// It is safe to call RegisterDriver while other goroutines are using the
// Manager.
//
// Custom drivers must implement the [Deriver] interface:
//
//	type MyDeriver struct{ ... }
//	func (d *MyDeriver) Derive(password string, salt []byte, length int) ([]byte, error) { ... }
//	func (d *MyDeriver) Algorithm() kdf.Algorithm                                        { ... }
//
//	m.RegisterDriver("my-kdf", &MyDeriver{})
func (m *Manager) RegisterDriver(name Algorithm, d Deriver) error {
	if name == "" {
		return ErrEmptyAlgorithm
	}
	if d == nil {
		return ErrNilDeriver
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = d
	return nil
}

// Driver returns the [Deriver] registered under name, or
// [ErrUnsupportedAlgorithm] if no such driver has been registered.
func (m *Manager) Driver(name Algorithm) (Deriver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return d, nil
}

// SetDefaultDriver changes the algorithm used by [Manager.Derive]. The named
// driver must already be registered.
func (m *Manager) SetDefaultDriver(name Algorithm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrUnsupportedAlgorithm, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default
// algorithm.
func (m *Manager) DefaultDriver() Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// Supports reports whether a deriver for the given algorithm is registered.
func (m *Manager) Supports(name Algorithm) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Algorithms returns the names of all registered derivers. Order is
// unspecified.
func (m *Manager) Algorithms() []Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Algorithm, 0, len(m.drivers))
	for name := range m.drivers {
		out = append(out, name)
	}
	return out
}

// Derive stretches password with salt into length bytes of key material
// using the default algorithm.
func (m *Manager) Derive(password string, salt []byte, length int) ([]byte, error) {
	d, err := m.resolveDefault()
	if err != nil {
		return nil, err
	}
	return d.Derive(password, salt, length)
}

// DeriveWith is like [Manager.Derive] but selects the algorithm explicitly.
func (m *Manager) DeriveWith(name Algorithm, password string, salt []byte, length int) ([]byte, error) {
	d, err := m.Driver(name)
	if err != nil {
		return nil, err
	}
	return d.Derive(password, salt, length)
}

func (m *Manager) resolveDefault() (Deriver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrUnsupportedAlgorithm, m.def)
	}
	return d, nil
}
