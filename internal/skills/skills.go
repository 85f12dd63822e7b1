// Package skills implements the install engine: resolving names through the
// registry, copying skill bundles into a scope root, and scanning what is
// already installed there.
package skills

import (
	"errors"

	"github.com/skilldex/skilldex-cli/internal/registry"
)

var (
	// ErrNotFound reports a name that resolves to no catalog entry.
	ErrNotFound = errors.New("skill not found")

	// ErrSourceMissing reports a catalog entry whose source directory is
	// absent from the registry root. That is a packaging defect in the
	// content checkout, not user error.
	ErrSourceMissing = errors.New("skill source missing")
)

// Outcome says how a mutating operation concluded. Cancelled and
// NotInstalled are ordinary outcomes, not errors; the command surface turns
// them into exit code 0.
type Outcome string

const (
	OutcomeInstalled    Outcome = "installed"
	OutcomeReplaced     Outcome = "replaced"
	OutcomeRemoved      Outcome = "removed"
	OutcomeNotInstalled Outcome = "not-installed"
	OutcomeCancelled    Outcome = "cancelled"
	OutcomeUpdated      Outcome = "updated"
)

// Options carries the per-invocation settings of a mutating operation.
type Options struct {
	Scope       Scope
	SkipConfirm bool
}

// Confirmer answers a yes/no question, honoring def when the user gives no
// explicit answer. Production wires a terminal prompt; tests wire a stub.
type Confirmer interface {
	Confirm(message string, def bool) (bool, error)
}

// Manager wires the registry, the path layout, and the confirmation
// capability behind the install, remove, update, and scan operations. It
// holds no mutable state of its own; the filesystem is the only store.
type Manager struct {
	reg      *registry.Registry
	paths    Paths
	confirm  Confirmer
	excludes []string
}

// New builds a Manager. excludes are glob patterns skipped during copies.
func New(reg *registry.Registry, paths Paths, confirm Confirmer, excludes []string) *Manager {
	return &Manager{reg: reg, paths: paths, confirm: confirm, excludes: excludes}
}

// Registry exposes the catalog the manager was built with.
func (m *Manager) Registry() *registry.Registry { return m.reg }

// Paths exposes the resolved path layout.
func (m *Manager) Paths() Paths { return m.paths }
