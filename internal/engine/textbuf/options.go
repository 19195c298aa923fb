package textbuf

// Option configures a Buffer.
type Option func(*Buffer)

// WithMaxLineLen sets the maximum line length in runes.
// Values below 1 are ignored.
func WithMaxLineLen(n int) Option {
	return func(b *Buffer) {
		if n >= 1 {
			b.maxLineLen = n
		}
	}
}

// WithMaxLines sets the maximum number of lines.
// Values below 1 are ignored.
func WithMaxLines(n int) Option {
	return func(b *Buffer) {
		if n >= 1 {
			b.maxLines = n
		}
	}
}
