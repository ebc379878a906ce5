// Package buffer provides the editable document built on top of the rope
// data structure.
//
// A Document owns the current rope and replaces it on every edit. Edits are
// addressed by byte offset and validated first: an offset outside the
// document or inside a multi-byte character fails with ErrInvalidOffset,
// so the text is always valid UTF-8.
//
//	doc := buffer.New("hello\n")
//	doc.Insert(5, "!")                         // "hello!\n"
//	doc.Delete(buffer.NewRange(0, 1))          // "ello!\n"
//	_, err := buffer.New("é").Insert(1, "x")   // errors.Is(err, buffer.ErrInvalidOffset)
//
// Line endings are normalised to \n on the way in. The style found at load
// time is kept so it can be restored when saving.
package buffer
