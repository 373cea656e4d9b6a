// Package render formats problems, decompositions and plans for the
// terminal using lipgloss styles. Styling degrades to plain text when the
// output is not a colour terminal.
package render
