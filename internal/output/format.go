// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ltask/internal/task"
)

// Separator is the horizontal rule around the task list.
const Separator = "------------------------------------------------------------"

// Status glyphs for list entries.
const (
	GlyphOpen = "○"
	GlyphDone = "✓"
)

// FormatHeader writes the list header.
func FormatHeader(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "📋 To-Do List:")
	fmt.Fprintln(w, Separator)
}

// FormatFooter closes the task list.
func FormatFooter(w io.Writer) {
	fmt.Fprintln(w, Separator)
}

// FormatTask writes one task line and, when the task has a description,
// an indented sub-line below it.
// Format: "{GLYPH} [{ID}] {TITLE}\n" + optionally "    └─ {DESC}\n"
func FormatTask(w io.Writer, t task.Task) {
	glyph := GlyphOpen
	if t.Completed {
		glyph = GlyphDone
	}
	fmt.Fprintf(w, "%s [%d] %s\n", glyph, t.ID, normalizeTitle(t.Title))
	if t.Description != "" {
		fmt.Fprintf(w, "    └─ %s\n", t.Description)
	}
}

// FormatAdded writes the add confirmation with the assigned id.
func FormatAdded(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "✓ Task added [%d]: %s\n", t.ID, normalizeTitle(t.Title))
}

// FormatCompleted writes the complete confirmation.
func FormatCompleted(w io.Writer, id int) {
	fmt.Fprintf(w, "✓ Task %d marked as completed.\n", id)
}

// FormatDeleted writes the delete confirmation.
func FormatDeleted(w io.Writer, id int) {
	fmt.Fprintf(w, "✓ Task %d deleted.\n", id)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
