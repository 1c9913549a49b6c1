// Package ui holds terminal output helpers shared by the commands.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598")).Underline(true)
)

// ShowError displays an error message on stderr.
func ShowError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), msg)
}

// Warn displays a warning on stderr.
func Warn(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warningStyle.Render("Warning:"), msg)
}

// Success displays a confirmation line.
func Success(msg string) {
	fmt.Println(successStyle.Render(msg))
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// Link renders a URL.
func Link(url string) string {
	return linkStyle.Render(url)
}
