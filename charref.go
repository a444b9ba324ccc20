package tokenizer

import (
	"strings"

	"github.com/go-html5/tokenizer/entity"
)

// windows1252 maps the C1 control byte values 0x80-0x9F to the
// Unicode codepoints the HTML Standard says numeric character
// references in that range should decode to, matching legacy
// Windows-1252 rather than literal C1 controls. A handful of bytes in
// that range (0x81, 0x8D, 0x8F, 0x90, 0x9D) have no Windows-1252
// mapping and are intentionally absent: they decode to themselves,
// flagged with the same parse error as the mapped ones.
var windows1252 = map[int64]rune{
	0x80: '€', 0x82: '‚', 0x83: 'ƒ', 0x84: '„',
	0x85: '…', 0x86: '†', 0x87: '‡', 0x88: 'ˆ',
	0x89: '‰', 0x8A: 'Š', 0x8B: '‹', 0x8C: 'Œ',
	0x8E: 'Ž', 0x91: '‘', 0x92: '’', 0x93: '“',
	0x94: '”', 0x95: '•', 0x96: '–', 0x97: '—',
	0x98: '˜', 0x99: '™', 0x9A: 'š', 0x9B: '›',
	0x9C: 'œ', 0x9E: 'ž', 0x9F: 'Ÿ',
}

func isSurrogate(code int64) bool {
	return 0xD800 <= code && code <= 0xDFFF
}

func isNoncharacter(code int64) bool {
	if 0xFDD0 <= code && code <= 0xFDEF {
		return true
	}
	switch code & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

// resolveNumericCharRef applies the numeric-character-reference-end
// mapping, returning the codepoint to emit and, if applicable, the
// parse error it raises.
func resolveNumericCharRef(code int64) (r rune, errCode string) {
	switch {
	case code == 0:
		return '�', errNullCharacterRef
	case code > 0x10FFFF:
		return '�', errCharRefOutsideRange
	case isSurrogate(code):
		return '�', errSurrogateCharacterRef
	}
	if mapped, ok := windows1252[code]; ok {
		return mapped, errControlCharacterRef
	}
	if isNoncharacter(code) {
		return rune(code), errNoncharacterCharacterRef
	}
	if (code <= 0x1F && code != 0x09 && code != 0x0A && code != 0x0C && code != 0x0D && code != 0x20) ||
		code == 0x7F || (0x80 <= code && code <= 0x9F) {
		return rune(code), errControlCharacterRef
	}
	return rune(code), ""
}

// enterCharacterReference begins consuming a character reference that
// will resume in returnState once finished.
func (z *Tokenizer) enterCharacterReference(returnState State) {
	z.returnState = returnState
	z.charRefInAttr = isAttrValueState(returnState)
	z.tempBuffer.Reset()
	z.tempBuffer.WriteByte('&')
	z.state = CharacterReferenceState
}

// flushAmpersandLiteral emits the "&" that a failed character
// reference attempt leaves behind, either into the attribute value
// under construction or as a Character token.
func (z *Tokenizer) flushAmpersandLiteral() {
	z.applyCharRefRune('&')
	z.tempBuffer.Reset()
}

// enterAmbiguousAmpersand is reached when a named-character-reference
// lookup fails outright, or succeeds but is rejected by the
// attribute-value compatibility rule. It flushes the
// "&" and switches to AmbiguousAmpersandState, which then copies any
// following ASCII alphanumerics one at a time without replacement.
func (z *Tokenizer) enterAmbiguousAmpersand() {
	z.flushAmpersandLiteral()
	z.state = AmbiguousAmpersandState
}

// flushTempBufferLiteral emits the scratch buffer's contents (used
// for the "&#" / "&#x" prefix when a numeric reference turns out to
// have no digits) the same way flushAmpersandLiteral does for "&".
func (z *Tokenizer) flushTempBufferLiteral() {
	for _, r := range z.tempBuffer.String() {
		z.applyCharRefRune(r)
	}
	z.tempBuffer.Reset()
}

// applyCharRefRune appends r to the attribute value under
// construction, or emits it as a Character token, depending on
// whether the character reference currently being consumed is inside
// an attribute value.
func (z *Tokenizer) applyCharRefRune(r rune) {
	if z.charRefInAttr {
		z.attrValue.WriteRune(r)
	} else {
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) applyCharRefString(s string) {
	for _, r := range s {
		z.applyCharRefRune(r)
	}
}

func isAttrValueState(s State) bool {
	switch s {
	case AttributeValueDoubleQuotedState, AttributeValueSingleQuotedState, AttributeValueUnquotedState:
		return true
	}
	return false
}

func isASCIIAlnum(c int) bool {
	return isASCIIAlpha(c) || isASCIIDigit(c)
}

func hexVal(c int) int64 {
	switch {
	case '0' <= c && c <= '9':
		return int64(c - '0')
	case 'a' <= c && c <= 'f':
		return int64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int64(c-'A') + 10
	}
	return 0
}

// UnescapeString decodes named and numeric character references in s,
// the way text content is decoded when emitted as Character tokens.
// It does not interpret s as markup: "<" is left untouched.
func UnescapeString(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	tbl, err := entity.Load()
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] != '&' || err != nil {
			b.WriteByte(s[i])
			i++
			continue
		}
		rest := s[i+1:]
		if strings.HasPrefix(rest, "#") {
			if n, r, ok := decodeNumericPrefix(rest[1:]); ok {
				b.WriteRune(r)
				i += 2 + n
				continue
			}
			b.WriteByte(s[i])
			i++
			continue
		}
		if n, e, ok := tbl.LongestMatch(rest); ok {
			b.WriteString(e.Characters)
			i += 1 + n
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// decodeNumericPrefix decodes a "x1F600;"-or-"128;"-shaped numeric
// character reference (the part after "&#"), returning the number of
// bytes of s it consumed and the decoded rune.
func decodeNumericPrefix(s string) (consumed int, r rune, ok bool) {
	i := 0
	hex := false
	if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
		hex = true
		i++
	}
	start := i
	var code int64
	for i < len(s) {
		c := int(s[i])
		if hex && isASCIIHexDigit(c) {
			code = code*16 + hexVal(c)
			i++
		} else if !hex && isASCIIDigit(c) {
			code = code*10 + int64(c-'0')
			i++
		} else {
			break
		}
	}
	if i == start {
		return 0, 0, false
	}
	if i < len(s) && s[i] == ';' {
		i++
	}
	decoded, _ := resolveNumericCharRef(code)
	return i, decoded, true
}

// EscapeString is the inverse of UnescapeString for the five
// characters that must never appear unescaped in HTML text or
// quoted-attribute content: '<', '>', '&', '"', '\''.
func EscapeString(s string) string {
	if !strings.ContainsAny(s, `<>&"'`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
