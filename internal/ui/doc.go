// Package ui provides theme and color support for the application's user interface.
// It defines color schemes and provides ANSI escape code functions for consistent
// styling across the CLI presentation layer, plus lipgloss rendering of the
// sweep summary table.
package ui
