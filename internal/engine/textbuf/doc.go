// Package textbuf provides the line-oriented text buffer at the heart of
// the editor. A Buffer owns an ordered sequence of lines plus the cursor
// position and exposes the editing primitives the command layer is built
// on: rune insertion, deletion, line split/join, duplication and removal.
//
// Capacity limits (maximum line length, maximum line count) are policy
// constants enforced at the API boundary; storage itself grows to fit the
// actual content. Operations that would exceed a limit are silent no-ops.
package textbuf
