package tokenizer

import "strings"

// Options configures a Tokenizer at construction time. The zero value
// is a ready-to-use Options: tokenization starts in Data state, parse
// errors are discarded, and attribute counts are unbounded.
type Options struct {
	// InitialState overrides the state tokenization begins in. Leave
	// zero (Data) for document-level input; fragment parsing into a
	// RAWTEXT/RCDATA context element should set this directly rather
	// than emitting a synthetic start tag.
	InitialState State

	// OnParseError, if non-nil, is called for every parse error
	// encountered during tokenization. It must not
	// retain the ParseError's Pos across input mutation; the value is
	// otherwise immutable and safe to store.
	OnParseError func(ParseError)

	// MaxAttributes bounds the number of attributes accumulated onto
	// a single tag; 0 means unlimited. Attributes past the bound are
	// parsed (to keep the state machine on track) but dropped, each
	// raising a duplicate-attribute parse error. This guards
	// pathological input (e.g. a tag with millions of attributes)
	// without changing behavior for ordinary documents.
	MaxAttributes int

	// InForeignContent, if non-nil, is consulted when a
	// "<![CDATA[" markup declaration is encountered. It should report
	// whether the dispatcher's current insertion point is foreign
	// content (SVG/MathML); CDATA sections are only legal there. A nil
	// InForeignContent treats every CDATA declaration as bogus, which
	// is correct for a tokenizer run outside of an HTML tree
	// constructor altogether.
	InForeignContent func() bool
}

// Tokenizer turns a byte slice into a stream of Tokens per the HTML
// Standard's tokenization algorithm. A Tokenizer is not safe for
// concurrent use.
type Tokenizer struct {
	src   *byteStream
	state State
	// returnState is restored after a character reference finishes
	// being consumed; character references may be reached from Data,
	// RCDATA, or an attribute value state.
	returnState State
	opts        Options

	pending    []Token
	eofEmitted bool

	// current tag under construction.
	tagName        strings.Builder
	tagIsEnd       bool
	tagSelfClosing bool
	attrs          []Attribute
	attrName       strings.Builder
	attrValue      strings.Builder

	// current comment under construction.
	commentData strings.Builder

	// current doctype under construction.
	doctypeName        strings.Builder
	doctypeHasName     bool
	doctypePublicID    strings.Builder
	doctypeHasPublicID bool
	doctypeSystemID    strings.Builder
	doctypeHasSystemID bool
	doctypeForceQuirks bool

	// tempBuffer is the Standard's "temporary buffer": candidate
	// end-tag names during RCDATA/RAWTEXT/ScriptData, and the
	// candidate "script" word during script escape nesting.
	tempBuffer strings.Builder

	// lastStartTag is the name of the most recently emitted start
	// tag, used by the "appropriate end tag" check.
	lastStartTag string

	// charRefCode accumulates a numeric character reference's value.
	charRefCode int64
	// charRefInAttr is true when the character reference currently
	// being consumed should be appended to attrValue rather than
	// emitted as Character tokens.
	charRefInAttr bool
}

// NewTokenizer returns a Tokenizer over src. src is borrowed, not
// copied, and must not be mutated while the Tokenizer is in use.
// Construction cannot fail: the only fallible initialization in this
// package is the process-wide entity table load (see package entity),
// which is performed lazily and memoized, not repeated per Tokenizer.
func NewTokenizer(src []byte, opts Options) *Tokenizer {
	return &Tokenizer{
		src:   newByteStream(src),
		state: opts.InitialState,
		opts:  opts,
	}
}

// SetContentModel switches the tokenizer's content model. The tree
// constructor calls this after emitting start tags like <textarea>,
// <script>, <style>, etc.
func (z *Tokenizer) SetContentModel(m ContentModel) {
	z.state = State(m)
}

// AcknowledgeSelfClosing tells the tokenizer that the dispatcher
// honored the most recently emitted tag's self-closing flag. This
// package does not track un-acknowledged flags as a parse error
// itself; that bookkeeping belongs to the dispatcher, which knows
// which elements are void.
func (z *Tokenizer) AcknowledgeSelfClosing() {}

// Next returns the next token in the stream. After the stream is
// exhausted, Next returns an EndOfFile token on every subsequent call.
// EndOfFile is a token kind, not an error channel; parse errors are
// side-band, delivered via Options.OnParseError.
func (z *Tokenizer) Next() Token {
	for len(z.pending) == 0 {
		if z.eofEmitted {
			return Token{Type: EndOfFileTokenMarker}
		}
		z.step()
	}
	t := z.pending[0]
	z.pending = z.pending[1:]
	return t
}

func (z *Tokenizer) emit(t Token) {
	if t.Type == StartTagToken {
		z.lastStartTag = t.Data
	}
	z.pending = append(z.pending, t)
}

func (z *Tokenizer) emitEOF() {
	z.eofEmitted = true
	z.emit(Token{Type: EndOfFileTokenMarker})
}

func (z *Tokenizer) parseErrorAt(code string, pos int) {
	if z.opts.OnParseError != nil {
		z.opts.OnParseError(ParseError{Code: code, Pos: pos})
	}
}

func (z *Tokenizer) parseError(code string) {
	z.parseErrorAt(code, z.src.pos)
}

func isASCIIAlpha(c int) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func isASCIIUpper(c int) bool {
	return 'A' <= c && c <= 'Z'
}

func isASCIIDigit(c int) bool {
	return '0' <= c && c <= '9'
}

func isASCIIHexDigit(c int) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isASCIIWhitespace(c int) bool {
	switch c {
	case '\t', '\n', '\f', ' ', '\r':
		return true
	}
	return false
}

func toLowerRune(c int) int {
	if isASCIIUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// resetTag starts a new StartTag/EndTag token under construction.
func (z *Tokenizer) resetTag(isEnd bool) {
	z.tagName.Reset()
	z.tagIsEnd = isEnd
	z.tagSelfClosing = false
	z.attrs = nil
}

// finishAttribute commits the scratch attrName/attrValue onto the
// current tag's attribute list. Duplicate names are dropped, first
// write wins.
func (z *Tokenizer) finishAttribute() {
	name := z.attrName.String()
	if name == "" {
		return
	}
	if attrIndex(z.attrs, name) != -1 {
		z.parseError(errDuplicateAttribute)
		z.attrName.Reset()
		z.attrValue.Reset()
		return
	}
	if z.opts.MaxAttributes > 0 && len(z.attrs) >= z.opts.MaxAttributes {
		z.parseError(errDuplicateAttribute)
		z.attrName.Reset()
		z.attrValue.Reset()
		return
	}
	z.attrs = append(z.attrs, Attribute{Key: name, Val: z.attrValue.String()})
	z.attrName.Reset()
	z.attrValue.Reset()
}

// emitTag finalizes and emits the current tag token.
func (z *Tokenizer) emitTag() {
	z.finishAttribute()
	tt := StartTagToken
	if z.tagIsEnd {
		tt = EndTagToken
	}
	z.emit(Token{
		Type:        tt,
		Data:        z.tagName.String(),
		Attr:        z.attrs,
		SelfClosing: z.tagSelfClosing,
	})
	z.tagName.Reset()
	z.attrs = nil
	z.tagSelfClosing = false
}

func (z *Tokenizer) resetComment() {
	z.commentData.Reset()
}

func (z *Tokenizer) emitComment() {
	z.emit(Token{Type: CommentToken, Data: z.commentData.String()})
	z.commentData.Reset()
}

func (z *Tokenizer) resetDoctype() {
	z.doctypeName.Reset()
	z.doctypeHasName = false
	z.doctypePublicID.Reset()
	z.doctypeHasPublicID = false
	z.doctypeSystemID.Reset()
	z.doctypeHasSystemID = false
	z.doctypeForceQuirks = false
}

func (z *Tokenizer) emitDoctype() {
	z.emit(Token{
		Type:        DoctypeToken,
		Data:        z.doctypeName.String(),
		PublicID:    z.doctypePublicID.String(),
		SystemID:    z.doctypeSystemID.String(),
		HasPublicID: z.doctypeHasPublicID,
		HasSystemID: z.doctypeHasSystemID,
		ForceQuirks: z.doctypeForceQuirks,
	})
	z.resetDoctype()
}

// isAppropriateEndTag reports whether the tag currently under
// construction is an "appropriate end tag": its name
// equals the name of the most recently emitted start tag.
func (z *Tokenizer) isAppropriateEndTag() bool {
	return z.lastStartTag != "" && z.tagName.String() == z.lastStartTag
}

// emitTempBufferAsCharacters re-emits the temporary buffer's contents
// as individual character tokens, used when an RCDATA/RAWTEXT/
// ScriptData end-tag candidate turns out not to be appropriate.
func (z *Tokenizer) emitTempBufferAsCharacters() {
	for _, r := range z.tempBuffer.String() {
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
	z.tempBuffer.Reset()
}
