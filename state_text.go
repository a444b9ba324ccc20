package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// step advances the state machine by exactly one state transition,
// consuming and/or emitting whatever that transition calls for. Next
// calls step in a loop until it has something to return.
func (z *Tokenizer) step() {
	switch z.state {
	case DataState:
		z.stepData()
	case RCDATAState:
		z.stepRCDATA()
	case RAWTEXTState:
		z.stepRAWTEXT()
	case ScriptDataState:
		z.stepScriptData()
	case PLAINTEXTState:
		z.stepPLAINTEXT()
	case TagOpenState:
		z.stepTagOpen()
	case EndTagOpenState:
		z.stepEndTagOpen()
	case TagNameState:
		z.stepTagName()
	case RCDATALessThanSignState:
		z.lessThanSignState(RCDATAState, RCDATAEndTagOpenState)
	case RCDATAEndTagOpenState:
		z.endTagOpenState(RCDATAState, RCDATAEndTagNameState)
	case RCDATAEndTagNameState:
		z.endTagNameState(RCDATAState)
	case RAWTEXTLessThanSignState:
		z.lessThanSignState(RAWTEXTState, RAWTEXTEndTagOpenState)
	case RAWTEXTEndTagOpenState:
		z.endTagOpenState(RAWTEXTState, RAWTEXTEndTagNameState)
	case RAWTEXTEndTagNameState:
		z.endTagNameState(RAWTEXTState)
	case ScriptDataLessThanSignState:
		z.stepScriptDataLessThanSign()
	case ScriptDataEndTagOpenState:
		z.endTagOpenState(ScriptDataState, ScriptDataEndTagNameState)
	case ScriptDataEndTagNameState:
		z.endTagNameState(ScriptDataState)
	case ScriptDataEscapeStartState:
		z.stepScriptDataEscapeStart()
	case ScriptDataEscapeStartDashState:
		z.stepScriptDataEscapeStartDash()
	case ScriptDataEscapedState:
		z.stepScriptDataEscaped()
	case ScriptDataEscapedDashState:
		z.stepScriptDataEscapedDash()
	case ScriptDataEscapedDashDashState:
		z.stepScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSignState:
		z.stepScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpenState:
		z.endTagOpenState(ScriptDataEscapedState, ScriptDataEscapedEndTagNameState)
	case ScriptDataEscapedEndTagNameState:
		z.endTagNameState(ScriptDataEscapedState)
	case ScriptDataDoubleEscapeStartState:
		z.stepScriptDataDoubleEscape(ScriptDataEscapedState, ScriptDataDoubleEscapedState)
	case ScriptDataDoubleEscapedState:
		z.stepScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDashState:
		z.stepScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDashState:
		z.stepScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSignState:
		z.stepScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEndState:
		z.stepScriptDataDoubleEscape(ScriptDataDoubleEscapedState, ScriptDataEscapedState)
	case BeforeAttributeNameState:
		z.stepBeforeAttributeName()
	case AttributeNameState:
		z.stepAttributeName()
	case AfterAttributeNameState:
		z.stepAfterAttributeName()
	case BeforeAttributeValueState:
		z.stepBeforeAttributeValue()
	case AttributeValueDoubleQuotedState:
		z.stepAttributeValueQuoted('"', AttributeValueDoubleQuotedState)
	case AttributeValueSingleQuotedState:
		z.stepAttributeValueQuoted('\'', AttributeValueSingleQuotedState)
	case AttributeValueUnquotedState:
		z.stepAttributeValueUnquoted()
	case AfterAttributeValueQuotedState:
		z.stepAfterAttributeValueQuoted()
	case SelfClosingStartTagState:
		z.stepSelfClosingStartTag()
	case BogusCommentState:
		z.stepBogusComment()
	case MarkupDeclarationOpenState:
		z.stepMarkupDeclarationOpen()
	case CommentStartState:
		z.stepCommentStart()
	case CommentStartDashState:
		z.stepCommentStartDash()
	case CommentState:
		z.stepComment()
	case CommentLessThanSignState:
		z.stepCommentLessThanSign()
	case CommentLessThanSignBangState:
		z.stepCommentLessThanSignBang()
	case CommentLessThanSignBangDashState:
		z.stepCommentLessThanSignBangDash()
	case CommentLessThanSignBangDashDashState:
		z.stepCommentLessThanSignBangDashDash()
	case CommentEndDashState:
		z.stepCommentEndDash()
	case CommentEndState:
		z.stepCommentEnd()
	case CommentEndBangState:
		z.stepCommentEndBang()
	case DoctypeState:
		z.stepDoctype()
	case BeforeDoctypeNameState:
		z.stepBeforeDoctypeName()
	case DoctypeNameState:
		z.stepDoctypeName()
	case AfterDoctypeNameState:
		z.stepAfterDoctypeName()
	case AfterDoctypePublicKeywordState:
		z.stepAfterDoctypePublicKeyword()
	case BeforeDoctypePublicIdentifierState:
		z.stepBeforeDoctypePublicIdentifier()
	case DoctypePublicIdentifierDoubleQuotedState:
		z.stepDoctypePublicIdentifierQuoted('"')
	case DoctypePublicIdentifierSingleQuotedState:
		z.stepDoctypePublicIdentifierQuoted('\'')
	case AfterDoctypePublicIdentifierState:
		z.stepAfterDoctypePublicIdentifier()
	case BetweenDoctypePublicAndSystemIdentifiersState:
		z.stepBetweenDoctypePublicAndSystemIdentifiers()
	case AfterDoctypeSystemKeywordState:
		z.stepAfterDoctypeSystemKeyword()
	case BeforeDoctypeSystemIdentifierState:
		z.stepBeforeDoctypeSystemIdentifier()
	case DoctypeSystemIdentifierDoubleQuotedState:
		z.stepDoctypeSystemIdentifierQuoted('"')
	case DoctypeSystemIdentifierSingleQuotedState:
		z.stepDoctypeSystemIdentifierQuoted('\'')
	case AfterDoctypeSystemIdentifierState:
		z.stepAfterDoctypeSystemIdentifier()
	case BogusDoctypeState:
		z.stepBogusDoctype()
	case CDATASectionState:
		z.stepCDATASection()
	case CDATASectionBracketState:
		z.stepCDATASectionBracket()
	case CDATASectionEndState:
		z.stepCDATASectionEnd()
	case CharacterReferenceState:
		z.stepCharacterReference()
	case NamedCharacterReferenceState:
		z.stepNamedCharacterReference()
	case AmbiguousAmpersandState:
		z.stepAmbiguousAmpersand()
	case NumericCharacterReferenceState:
		z.stepNumericCharacterReference()
	case HexadecimalCharacterReferenceStartState:
		z.stepHexadecimalCharacterReferenceStart()
	case DecimalCharacterReferenceStartState:
		z.stepDecimalCharacterReferenceStart()
	case HexadecimalCharacterReferenceState:
		z.stepHexadecimalCharacterReference()
	case DecimalCharacterReferenceState:
		z.stepDecimalCharacterReference()
	case NumericCharacterReferenceEndState:
		z.stepNumericCharacterReferenceEnd()
	default:
		panic("tokenizer: unhandled state")
	}
}

// consumeRune decodes and consumes one Unicode scalar value starting
// at the cursor. Input is assumed to already be valid UTF-8 (the input
// stream is a sequence of scalar values, not bytes); a malformed byte
// is consumed as a single U+FFFD to keep the cursor moving.
func (z *Tokenizer) consumeRune() rune {
	b := z.src.remaining()
	r, size := utf8.DecodeRune(b)
	if size == 0 {
		size = 1
	}
	z.src.advanceN(size)
	return r
}

func (z *Tokenizer) stepData() {
	c := z.src.current()
	switch c {
	case '&':
		z.src.advance()
		z.enterCharacterReference(DataState)
	case '<':
		z.src.advance()
		z.state = TagOpenState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: 0})
	case eof:
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepRCDATA() {
	c := z.src.current()
	switch c {
	case '&':
		z.src.advance()
		z.enterCharacterReference(RCDATAState)
	case '<':
		z.src.advance()
		z.state = RCDATALessThanSignState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
	case eof:
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepRAWTEXT() {
	c := z.src.current()
	switch c {
	case '<':
		z.src.advance()
		z.state = RAWTEXTLessThanSignState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
	case eof:
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepScriptData() {
	c := z.src.current()
	switch c {
	case '<':
		z.src.advance()
		z.state = ScriptDataLessThanSignState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
	case eof:
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepPLAINTEXT() {
	c := z.src.current()
	switch c {
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
	case eof:
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepTagOpen() {
	c := z.src.current()
	switch {
	case c == '!':
		z.src.advance()
		z.state = MarkupDeclarationOpenState
	case c == '/':
		z.src.advance()
		z.state = EndTagOpenState
	case c == eof:
		z.parseError(errEOFBeforeTagName)
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.emitEOF()
	case isASCIIAlpha(c):
		z.resetTag(false)
		z.state = TagNameState
	default:
		z.parseError(errInvalidFirstCharOfTagName)
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.state = DataState
	}
}

func (z *Tokenizer) stepEndTagOpen() {
	c := z.src.current()
	switch {
	case isASCIIAlpha(c):
		z.resetTag(true)
		z.state = TagNameState
	case c == '>':
		z.src.advance()
		z.parseError(errMissingEndTagName)
		z.state = DataState
	case c == eof:
		z.parseError(errEOFBeforeTagName)
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.emit(Token{Type: CharacterToken, Rune: '/'})
		z.emitEOF()
	default:
		z.parseError(errInvalidFirstCharOfTagName)
		z.resetComment()
		z.state = BogusCommentState
	}
}

func (z *Tokenizer) stepTagName() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
		z.state = BeforeAttributeNameState
	case c == '/':
		z.src.advance()
		z.state = SelfClosingStartTagState
	case c == '>':
		z.src.advance()
		z.emitTag()
		z.state = DataState
	case isASCIIUpper(c):
		z.src.advance()
		z.tagName.WriteByte(byte(toLowerRune(c)))
	case c == 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.tagName.WriteRune('�')
	case c == eof:
		z.parseError(errEOFInTag)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.tagName.WriteRune(r)
	}
}

// lessThanSignState implements the shared shape of RCDATA/RAWTEXT's
// "less-than sign" states: a "/" begins a candidate end tag, anything
// else is a literal "<" and a fallback to the content state.
func (z *Tokenizer) lessThanSignState(contentState, endTagOpenState State) {
	if z.src.current() == '/' {
		z.src.advance()
		z.tempBuffer.Reset()
		z.state = endTagOpenState
		return
	}
	z.emit(Token{Type: CharacterToken, Rune: '<'})
	z.state = contentState
}

// endTagOpenState implements the shared shape of RCDATA/RAWTEXT/
// ScriptData's "end tag open" states.
func (z *Tokenizer) endTagOpenState(contentState, endTagNameState State) {
	c := z.src.current()
	if isASCIIAlpha(c) {
		z.resetTag(true)
		z.tempBuffer.Reset()
		z.state = endTagNameState
		return
	}
	z.emit(Token{Type: CharacterToken, Rune: '<'})
	z.emit(Token{Type: CharacterToken, Rune: '/'})
	z.state = contentState
}

// endTagNameState implements the shared shape of RCDATA/RAWTEXT/
// ScriptData's "end tag name" states: the candidate name is
// accumulated into both tagName and tempBuffer, and only actually
// ends the tag if it turns out to be an appropriate end tag.
func (z *Tokenizer) endTagNameState(contentState State) {
	c := z.src.current()
	if isASCIIAlpha(c) {
		if isASCIIUpper(c) {
			z.tagName.WriteByte(byte(toLowerRune(c)))
		} else {
			z.tagName.WriteByte(byte(c))
		}
		z.tempBuffer.WriteByte(byte(c))
		z.src.advance()
		return
	}
	if z.isAppropriateEndTag() {
		switch c {
		case '\t', '\n', '\f', ' ':
			z.src.advance()
			z.state = BeforeAttributeNameState
			return
		case '/':
			z.src.advance()
			z.state = SelfClosingStartTagState
			return
		case '>':
			z.src.advance()
			z.emitTag()
			z.state = DataState
			return
		}
	}
	z.emit(Token{Type: CharacterToken, Rune: '<'})
	z.emit(Token{Type: CharacterToken, Rune: '/'})
	z.emitTempBufferAsCharacters()
	z.state = contentState
}

func (z *Tokenizer) stepScriptDataLessThanSign() {
	c := z.src.current()
	switch c {
	case '/':
		z.src.advance()
		z.tempBuffer.Reset()
		z.state = ScriptDataEndTagOpenState
	case '!':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.emit(Token{Type: CharacterToken, Rune: '!'})
		z.state = ScriptDataEscapeStartState
	default:
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.state = ScriptDataState
	}
}

func (z *Tokenizer) stepScriptDataEscapeStart() {
	if z.src.current() == '-' {
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
		z.state = ScriptDataEscapeStartDashState
		return
	}
	z.state = ScriptDataState
}

func (z *Tokenizer) stepScriptDataEscapeStartDash() {
	if z.src.current() == '-' {
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
		z.state = ScriptDataEscapedDashDashState
		return
	}
	z.state = ScriptDataState
}

func (z *Tokenizer) stepScriptDataEscaped() {
	c := z.src.current()
	switch c {
	case '-':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
		z.state = ScriptDataEscapedDashState
	case '<':
		z.src.advance()
		z.state = ScriptDataEscapedLessThanSignState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
	case eof:
		z.parseError(errEOFInScriptHTMLComment)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepScriptDataEscapedDash() {
	c := z.src.current()
	switch c {
	case '-':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
		z.state = ScriptDataEscapedDashDashState
	case '<':
		z.src.advance()
		z.state = ScriptDataEscapedLessThanSignState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
		z.state = ScriptDataEscapedState
	case eof:
		z.parseError(errEOFInScriptHTMLComment)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
		z.state = ScriptDataEscapedState
	}
}

func (z *Tokenizer) stepScriptDataEscapedDashDash() {
	c := z.src.current()
	switch c {
	case '-':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
	case '<':
		z.src.advance()
		z.state = ScriptDataEscapedLessThanSignState
	case '>':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '>'})
		z.state = ScriptDataState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
		z.state = ScriptDataEscapedState
	case eof:
		z.parseError(errEOFInScriptHTMLComment)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
		z.state = ScriptDataEscapedState
	}
}

func (z *Tokenizer) stepScriptDataEscapedLessThanSign() {
	c := z.src.current()
	if c == '/' {
		z.src.advance()
		z.tempBuffer.Reset()
		z.state = ScriptDataEscapedEndTagOpenState
		return
	}
	if isASCIIAlpha(c) {
		z.tempBuffer.Reset()
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.state = ScriptDataDoubleEscapeStartState
		return
	}
	z.emit(Token{Type: CharacterToken, Rune: '<'})
	z.state = ScriptDataEscapedState
}

// stepScriptDataDoubleEscape implements the shared shape of the
// double-escape start/end states, which differ only in which state
// they fall back to / advance into once "script" is matched.
func (z *Tokenizer) stepScriptDataDoubleEscape(fallback, matched State) {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c) || c == '/' || c == '>':
		z.src.advance()
		if strings.EqualFold(z.tempBuffer.String(), "script") {
			z.state = matched
		} else {
			z.state = fallback
		}
		z.emit(Token{Type: CharacterToken, Rune: rune(c)})
	case isASCIIAlpha(c):
		lower := byte(toLowerRune(c))
		z.tempBuffer.WriteByte(lower)
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	default:
		z.state = fallback
	}
}

func (z *Tokenizer) stepScriptDataDoubleEscaped() {
	c := z.src.current()
	switch c {
	case '-':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
		z.state = ScriptDataDoubleEscapedDashState
	case '<':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
	case eof:
		z.parseError(errEOFInScriptHTMLComment)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepScriptDataDoubleEscapedDash() {
	c := z.src.current()
	switch c {
	case '-':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
		z.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
		z.state = ScriptDataDoubleEscapedState
	case eof:
		z.parseError(errEOFInScriptHTMLComment)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
		z.state = ScriptDataDoubleEscapedState
	}
}

func (z *Tokenizer) stepScriptDataDoubleEscapedDashDash() {
	c := z.src.current()
	switch c {
	case '-':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '-'})
	case '<':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '<'})
		z.state = ScriptDataDoubleEscapedLessThanSignState
	case '>':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: '>'})
		z.state = ScriptDataState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.emit(Token{Type: CharacterToken, Rune: '�'})
		z.state = ScriptDataDoubleEscapedState
	case eof:
		z.parseError(errEOFInScriptHTMLComment)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
		z.state = ScriptDataDoubleEscapedState
	}
}

func (z *Tokenizer) stepScriptDataDoubleEscapedLessThanSign() {
	if z.src.current() == '/' {
		z.src.advance()
		z.tempBuffer.Reset()
		z.emit(Token{Type: CharacterToken, Rune: '/'})
		z.state = ScriptDataDoubleEscapeEndState
		return
	}
	z.state = ScriptDataDoubleEscapedState
}
