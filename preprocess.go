package tokenizer

import "bytes"

// NormalizeNewlines rewrites CRLF pairs and lone CR bytes to a single
// LF, the newline normalization the input stream must undergo before
// tokenization. It returns src unchanged (no copy) when no CR is
// present, which is the common case for documents authored on
// anything but legacy Windows tooling.
func NormalizeNewlines(src []byte) []byte {
	if !bytes.ContainsRune(src, '\r') {
		return src
	}
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\r' {
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			c = '\n'
		}
		out = append(out, c)
	}
	return out
}
