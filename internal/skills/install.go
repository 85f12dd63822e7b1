package skills

import (
	"fmt"
	"os"
)

// Install copies name's bundle from the registry root into the scope root.
// An existing install is replaced wholesale, never merged, once the user
// confirms (or when opts.SkipConfirm is set).
func (m *Manager) Install(name string, opts Options) (Outcome, error) {
	canonical := m.reg.Resolve(name)
	desc, ok := m.reg.Lookup(canonical)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	src := m.paths.SourcePath(desc)
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s (expected at %s)", ErrSourceMissing, canonical, src)
	}

	target := m.paths.TargetPath(canonical, opts.Scope)
	_, err := os.Lstat(target)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("cannot inspect %s: %w", target, err)
	}

	if exists && !opts.SkipConfirm {
		prompt := fmt.Sprintf("%q is already installed at %s. Overwrite it?", canonical, target)
		yes, err := m.confirm.Confirm(prompt, false)
		if err != nil {
			return "", fmt.Errorf("cannot confirm overwrite: %w", err)
		}
		if !yes {
			return OutcomeCancelled, nil
		}
	}

	if exists {
		if err := os.RemoveAll(target); err != nil {
			return "", fmt.Errorf("cannot remove existing install %s: %w", target, err)
		}
	}
	root := m.paths.TargetRoot(opts.Scope)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", root, err)
	}
	if err := copyTree(src, target, m.excludes); err != nil {
		return "", fmt.Errorf("cannot copy %s: %w", canonical, err)
	}

	if exists {
		return OutcomeReplaced, nil
	}
	return OutcomeInstalled, nil
}

// Remove deletes an installed skill's directory. An absent target is the
// NotInstalled outcome, not an error, and the name does not have to be in
// the catalog: any directory under the root can be removed by its literal
// name.
func (m *Manager) Remove(name string, opts Options) (Outcome, error) {
	canonical := m.reg.Resolve(name)
	target := m.paths.TargetPath(canonical, opts.Scope)

	if _, err := os.Lstat(target); os.IsNotExist(err) {
		return OutcomeNotInstalled, nil
	} else if err != nil {
		return "", fmt.Errorf("cannot inspect %s: %w", target, err)
	}

	if !opts.SkipConfirm {
		prompt := fmt.Sprintf("Remove %q from %s?", canonical, m.paths.TargetRoot(opts.Scope))
		yes, err := m.confirm.Confirm(prompt, false)
		if err != nil {
			return "", fmt.Errorf("cannot confirm removal: %w", err)
		}
		if !yes {
			return OutcomeCancelled, nil
		}
	}

	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("cannot remove %s: %w", target, err)
	}
	return OutcomeRemoved, nil
}

// Update reinstalls a skill from the registry root without prompting: remove
// then install, both with confirmation bypassed. The two phases are separate
// filesystem steps; dying between them leaves the skill uninstalled. The
// name is validated against the catalog before anything is deleted, so an
// unknown name cannot destroy a directory that happens to share it.
func (m *Manager) Update(name string, opts Options) (Outcome, error) {
	canonical := m.reg.Resolve(name)
	if _, ok := m.reg.Lookup(canonical); !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	opts.SkipConfirm = true
	if _, err := m.Remove(name, opts); err != nil {
		return "", err
	}
	if _, err := m.Install(name, opts); err != nil {
		return "", err
	}
	return OutcomeUpdated, nil
}
