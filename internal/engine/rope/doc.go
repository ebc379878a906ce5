// Package rope provides a persistent rope for document text.
//
// A rope is a balanced tree whose leaves hold short runs of text and whose
// internal nodes cache a summary (byte count and newline count) of their
// subtree. The summaries make every positional query a single root-to-leaf
// descent:
//   - Insert, Delete, Split and Concat are O(log n)
//   - LineOf and LineStart convert between byte offsets and line numbers in O(log n)
//   - LineCursor steps between line boundaries in O(log n) per step
//
// Ropes are values. Editing operations return a new Rope and never modify
// the receiver, so a Rope can be kept as a snapshot at no cost.
//
//	r := rope.FromString("ab\ncd\n")
//	r = r.Insert(2, "!")          // "ab!\ncd\n"
//	lc := r.LineCursor(0)
//	next, ok := lc.Next()         // 4, true
//
// Text is expected to be valid UTF-8. Leaves are only ever cut at rune
// boundaries; callers that edit at arbitrary offsets should check
// IsCharBoundary first.
package rope
