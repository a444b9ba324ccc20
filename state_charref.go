package tokenizer

import "github.com/go-html5/tokenizer/entity"

func (z *Tokenizer) stepCDATASection() {
	c := z.src.current()
	switch c {
	case ']':
		z.src.advance()
		z.state = CDATASectionBracketState
	case eof:
		z.parseError(errEOFInCDATA)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.emit(Token{Type: CharacterToken, Rune: r})
	}
}

func (z *Tokenizer) stepCDATASectionBracket() {
	if z.src.current() == ']' {
		z.src.advance()
		z.state = CDATASectionEndState
		return
	}
	z.emit(Token{Type: CharacterToken, Rune: ']'})
	z.state = CDATASectionState
}

func (z *Tokenizer) stepCDATASectionEnd() {
	c := z.src.current()
	switch c {
	case ']':
		z.src.advance()
		z.emit(Token{Type: CharacterToken, Rune: ']'})
	case '>':
		z.src.advance()
		z.state = DataState
	default:
		z.emit(Token{Type: CharacterToken, Rune: ']'})
		z.emit(Token{Type: CharacterToken, Rune: ']'})
		z.state = CDATASectionState
	}
}

func (z *Tokenizer) stepCharacterReference() {
	c := z.src.current()
	switch {
	case isASCIIAlnum(c):
		z.state = NamedCharacterReferenceState
	case c == '#':
		z.src.advance()
		z.tempBuffer.WriteByte('#')
		z.state = NumericCharacterReferenceState
	default:
		z.flushAmpersandLiteral()
		z.state = z.returnState
	}
}

func (z *Tokenizer) stepNamedCharacterReference() {
	tbl, err := entity.Load()
	if err != nil {
		z.parseError(errEntityTableUnavailable)
		z.flushAmpersandLiteral()
		z.state = z.returnState
		return
	}
	window := z.src.remaining()
	n, entry, ok := tbl.LongestMatch(string(window))
	if !ok {
		z.enterAmbiguousAmpersand()
		return
	}
	matched := window[:n]
	endsSemi := matched[len(matched)-1] == ';'
	after := eof
	if n < len(window) {
		after = int(window[n])
	}
	if z.charRefInAttr && !endsSemi && (after == '=' || isASCIIAlnum(after)) {
		z.enterAmbiguousAmpersand()
		return
	}
	if !endsSemi {
		z.parseError(errMissingSemicolonRef)
	}
	z.src.advanceN(n)
	z.applyCharRefString(entry.Characters)
	z.tempBuffer.Reset()
	z.state = z.returnState
}

func (z *Tokenizer) stepAmbiguousAmpersand() {
	c := z.src.current()
	if isASCIIAlnum(c) {
		z.src.advance()
		z.applyCharRefRune(rune(c))
		return
	}
	if c == ';' {
		z.parseError(errUnknownNamedReference)
	}
	z.state = z.returnState
}

func (z *Tokenizer) stepNumericCharacterReference() {
	z.charRefCode = 0
	c := z.src.current()
	if c == 'x' || c == 'X' {
		z.src.advance()
		z.tempBuffer.WriteByte(byte(c))
		z.state = HexadecimalCharacterReferenceStartState
		return
	}
	z.state = DecimalCharacterReferenceStartState
}

func (z *Tokenizer) stepHexadecimalCharacterReferenceStart() {
	if isASCIIHexDigit(z.src.current()) {
		z.state = HexadecimalCharacterReferenceState
		return
	}
	z.parseError(errAbsenceOfDigitsInNumeric)
	z.flushTempBufferLiteral()
	z.state = z.returnState
}

func (z *Tokenizer) stepDecimalCharacterReferenceStart() {
	if isASCIIDigit(z.src.current()) {
		z.state = DecimalCharacterReferenceState
		return
	}
	z.parseError(errAbsenceOfDigitsInNumeric)
	z.flushTempBufferLiteral()
	z.state = z.returnState
}

func (z *Tokenizer) stepHexadecimalCharacterReference() {
	c := z.src.current()
	switch {
	case isASCIIHexDigit(c):
		z.src.advance()
		z.charRefCode = z.charRefCode*16 + hexVal(c)
	case c == ';':
		z.src.advance()
		z.state = NumericCharacterReferenceEndState
	default:
		z.parseError(errMissingSemicolonRef)
		z.state = NumericCharacterReferenceEndState
	}
}

func (z *Tokenizer) stepDecimalCharacterReference() {
	c := z.src.current()
	switch {
	case isASCIIDigit(c):
		z.src.advance()
		z.charRefCode = z.charRefCode*10 + int64(c-'0')
	case c == ';':
		z.src.advance()
		z.state = NumericCharacterReferenceEndState
	default:
		z.parseError(errMissingSemicolonRef)
		z.state = NumericCharacterReferenceEndState
	}
}

func (z *Tokenizer) stepNumericCharacterReferenceEnd() {
	r, errCode := resolveNumericCharRef(z.charRefCode)
	if errCode != "" {
		z.parseError(errCode)
	}
	z.tempBuffer.Reset()
	z.applyCharRefRune(r)
	z.state = z.returnState
}
