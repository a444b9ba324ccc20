package tokenizer

// byteStream is a forward cursor over a borrowed byte slice. It
// supports exactly one pending "reconsume" — the tokenizer's states
// use this to re-process the byte that caused a transition under a
// new state.
//
// Rather than decrementing a cursor (which needs an underflow guard
// at position 0), reconsume sets a sticky flag: the next current/
// advance call serves the same byte again before moving on.
type byteStream struct {
	buf []byte
	pos int

	// pending is true when the last-read byte should be served again
	// by the next call to current/advance.
	pending bool
}

const eof = -1

func newByteStream(buf []byte) *byteStream {
	return &byteStream{buf: buf}
}

// current returns the byte at the cursor, or eof at end of input. It
// does not move the cursor.
func (b *byteStream) current() int {
	if b.pending {
		return int(b.buf[b.pos-1])
	}
	if b.pos >= len(b.buf) {
		return eof
	}
	return int(b.buf[b.pos])
}

// advance consumes the current byte and moves the cursor forward. It
// saturates at len(buf); calling advance at EOF is a no-op.
func (b *byteStream) advance() {
	if b.pending {
		b.pending = false
		return
	}
	if b.pos < len(b.buf) {
		b.pos++
	}
}

// next returns the current byte and advances past it in one step;
// this is the common read-then-move pattern most states use.
func (b *byteStream) next() int {
	c := b.current()
	b.advance()
	return c
}

// reconsume arranges for the byte just consumed to be served again by
// the next current/advance/next call. Callable at most once between
// advances — a second call before an intervening advance is a no-op,
// matching "reconsume" never needing to back up more than one byte.
func (b *byteStream) reconsume() {
	if b.pos > 0 {
		b.pending = true
	}
}

func (b *byteStream) isEOF() bool {
	return !b.pending && b.pos >= len(b.buf)
}

// remaining returns the unconsumed input, including the pending byte
// (if any) as its first element. Used by text states to decode a full
// UTF-8 scalar value rather than a single byte.
func (b *byteStream) remaining() []byte {
	if b.pending {
		return b.buf[b.pos-1:]
	}
	return b.buf[b.pos:]
}

// advanceN consumes n bytes starting from the current logical
// position (as returned by remaining/current).
func (b *byteStream) advanceN(n int) {
	if b.pending {
		b.pending = false
		n--
	}
	b.pos += n
}

// matchLiteral reports whether the upcoming bytes equal prefix. On a
// match it advances the cursor past prefix and returns true; on a
// mismatch the cursor (and any pending reconsume) is left unchanged.
func (b *byteStream) matchLiteral(prefix string, caseInsensitive bool) bool {
	start := b.pos
	pending := b.pending
	for i := 0; i < len(prefix); i++ {
		c := b.current()
		if c == eof {
			b.pos, b.pending = start, pending
			return false
		}
		want := prefix[i]
		got := byte(c)
		if caseInsensitive {
			got = lowerASCII(got)
			want = lowerASCII(want)
		}
		if got != want {
			b.pos, b.pending = start, pending
			return false
		}
		b.advance()
	}
	return true
}

// sliceChecked returns the bytes in [off, off+n), or an empty slice if
// that range is out of bounds.
func (b *byteStream) sliceChecked(off, n int) []byte {
	if off < 0 || n < 0 || off+n > len(b.buf) {
		return nil
	}
	return b.buf[off : off+n]
}

// slice returns the bytes in [off, off+n) without bounds checking.
func (b *byteStream) slice(off, n int) []byte {
	return b.buf[off : off+n]
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
