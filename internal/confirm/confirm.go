// Package confirm provides yes/no prompt implementations. The install engine
// only sees an interface, so scripted callers and tests can answer without a
// terminal.
package confirm

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompt asks on the terminal. Outside a TTY it resolves to the default
// answer without blocking, so piped invocations never hang.
type Prompt struct{}

// Confirm shows a yes/no form for message. Aborting the form (ctrl-c) counts
// as declining.
func (Prompt) Confirm(message string, def bool) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return def, nil
	}

	answer := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}

// Static always answers the same way. Used with --yes style flags and in
// tests.
type Static bool

// Confirm returns the fixed answer.
func (s Static) Confirm(string, bool) (bool, error) { return bool(s), nil }
