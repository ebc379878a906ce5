// Package renderer paints an editor state onto a backend: a line number
// gutter, the visible lines, a status line and the cursor.
//
// The editor reports margin-free positions and untruncated lines. The
// renderer adds the gutter offset, expands tabs and cuts lines at the
// screen edge.
package renderer
