package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Every command prints through these so icons, colors, and indentation stay
// consistent across skilldex output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   ○  skipped / cancelled
//   -  not found / missing
//   ~  neutral info / state change
//
// lipgloss drops the colors when stdout is not a terminal or NO_COLOR is set,
// so piped output stays clean.

var (
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	styleSection = lipgloss.NewStyle().Bold(true)
)

// printSection prints a top-level section header, e.g. "=== General ===".
func printSection(title string) {
	fmt.Printf("\n%s\n", styleSection.Render("=== "+title+" ==="))
}

// printBullet prints a grouped-section bullet, e.g. "● Unrecognized:".
func printBullet(title string) {
	fmt.Printf("\n● %s\n", title)
}

// iconLine formats one output line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func iconLine(icon string, style lipgloss.Style, name, msg string) string {
	if name == "" {
		return fmt.Sprintf("  %s  %s", style.Render(icon), msg)
	}
	return fmt.Sprintf("  %s  [%s] %s", style.Render(icon), name, msg)
}

// printOK prints a success line.
func printOK(name, msg string) {
	fmt.Println(iconLine("✓", styleOK, name, msg))
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	fmt.Fprintln(os.Stderr, iconLine("✗", styleErr, name, msg))
}

// printWarn prints a warning line.
func printWarn(name, msg string) {
	fmt.Println(iconLine("⚠", styleWarn, name, msg))
}

// printSkip prints a skipped / cancelled line.
func printSkip(name, msg string) {
	fmt.Println(iconLine("○", styleDim, name, msg))
}

// printMiss prints a not-found / missing line.
func printMiss(name, msg string) {
	fmt.Println(iconLine("-", styleDim, name, msg))
}

// printInfo prints a neutral informational / state-change line.
func printInfo(name, msg string) {
	fmt.Println(iconLine("~", styleInfo, name, msg))
}
