package tokenizer

func (z *Tokenizer) emitDoctypeForcedQuirks(err string) {
	z.parseError(err)
	z.doctypeForceQuirks = true
	z.emitDoctype()
}

func (z *Tokenizer) stepDoctype() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
		z.state = BeforeDoctypeNameState
	case c == '>':
		z.state = BeforeDoctypeNameState
	case c == eof:
		z.resetDoctype()
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errMissingWhitespaceDoctype)
		z.state = BeforeDoctypeNameState
	}
}

func (z *Tokenizer) stepBeforeDoctypeName() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
	case isASCIIUpper(c):
		z.resetDoctype()
		z.doctypeHasName = true
		z.doctypeName.WriteByte(byte(toLowerRune(c)))
		z.src.advance()
		z.state = DoctypeNameState
	case c == 0:
		z.resetDoctype()
		z.doctypeHasName = true
		z.doctypeName.WriteRune('�')
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.state = DoctypeNameState
	case c == '>':
		z.src.advance()
		z.resetDoctype()
		z.emitDoctypeForcedQuirks(errMissingDoctypeName)
		z.state = DataState
	case c == eof:
		z.resetDoctype()
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.resetDoctype()
		z.doctypeHasName = true
		r := z.consumeRune()
		z.doctypeName.WriteRune(r)
		z.state = DoctypeNameState
	}
}

func (z *Tokenizer) stepDoctypeName() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
		z.state = AfterDoctypeNameState
	case c == '>':
		z.src.advance()
		z.emitDoctype()
		z.state = DataState
	case isASCIIUpper(c):
		z.src.advance()
		z.doctypeName.WriteByte(byte(toLowerRune(c)))
	case c == 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.doctypeName.WriteRune('�')
	case c == eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.doctypeName.WriteRune(r)
	}
}

func (z *Tokenizer) stepAfterDoctypeName() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
	case c == '>':
		z.src.advance()
		z.emitDoctype()
		z.state = DataState
	case c == eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		if z.src.matchLiteral("PUBLIC", true) {
			z.state = AfterDoctypePublicKeywordState
			return
		}
		if z.src.matchLiteral("SYSTEM", true) {
			z.state = AfterDoctypeSystemKeywordState
			return
		}
		z.parseError(errInvalidCharAfterDoctype)
		z.doctypeForceQuirks = true
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepAfterDoctypePublicKeyword() {
	c := z.src.current()
	switch c {
	case '\t', '\n', '\f', ' ':
		z.src.advance()
		z.state = BeforeDoctypePublicIdentifierState
	case '"':
		z.src.advance()
		z.parseError(errMissingWhitespaceAfterKw)
		z.doctypeHasPublicID = true
		z.doctypePublicID.Reset()
		z.state = DoctypePublicIdentifierDoubleQuotedState
	case '\'':
		z.src.advance()
		z.parseError(errMissingWhitespaceAfterKw)
		z.doctypeHasPublicID = true
		z.doctypePublicID.Reset()
		z.state = DoctypePublicIdentifierSingleQuotedState
	case '>':
		z.src.advance()
		z.emitDoctypeForcedQuirks(errMissingDoctypePublicID)
		z.state = DataState
	case eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errMissingQuoteBeforeDTID)
		z.doctypeForceQuirks = true
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepBeforeDoctypePublicIdentifier() {
	c := z.src.current()
	switch c {
	case '\t', '\n', '\f', ' ':
		z.src.advance()
	case '"':
		z.src.advance()
		z.doctypeHasPublicID = true
		z.doctypePublicID.Reset()
		z.state = DoctypePublicIdentifierDoubleQuotedState
	case '\'':
		z.src.advance()
		z.doctypeHasPublicID = true
		z.doctypePublicID.Reset()
		z.state = DoctypePublicIdentifierSingleQuotedState
	case '>':
		z.src.advance()
		z.emitDoctypeForcedQuirks(errMissingDoctypePublicID)
		z.state = DataState
	case eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errMissingQuoteBeforeDTID)
		z.doctypeForceQuirks = true
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepDoctypePublicIdentifierQuoted(quote byte) {
	c := z.src.current()
	switch {
	case c == int(quote):
		z.src.advance()
		z.state = AfterDoctypePublicIdentifierState
	case c == 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.doctypePublicID.WriteRune('�')
	case c == '>':
		z.src.advance()
		z.emitDoctypeForcedQuirks(errAbruptDTPublicID)
		z.state = DataState
	case c == eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.doctypePublicID.WriteRune(r)
	}
}

func (z *Tokenizer) stepAfterDoctypePublicIdentifier() {
	c := z.src.current()
	switch c {
	case '\t', '\n', '\f', ' ':
		z.src.advance()
		z.state = BetweenDoctypePublicAndSystemIdentifiersState
	case '>':
		z.src.advance()
		z.emitDoctype()
		z.state = DataState
	case '"':
		z.src.advance()
		z.parseError(errMissingWhitespaceBetween)
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.src.advance()
		z.parseError(errMissingWhitespaceBetween)
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierSingleQuotedState
	case eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errMissingQuoteBeforeDTSysID)
		z.doctypeForceQuirks = true
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepBetweenDoctypePublicAndSystemIdentifiers() {
	c := z.src.current()
	switch c {
	case '\t', '\n', '\f', ' ':
		z.src.advance()
	case '>':
		z.src.advance()
		z.emitDoctype()
		z.state = DataState
	case '"':
		z.src.advance()
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.src.advance()
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierSingleQuotedState
	case eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errMissingQuoteBeforeDTSysID)
		z.doctypeForceQuirks = true
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepAfterDoctypeSystemKeyword() {
	c := z.src.current()
	switch c {
	case '\t', '\n', '\f', ' ':
		z.src.advance()
		z.state = BeforeDoctypeSystemIdentifierState
	case '"':
		z.src.advance()
		z.parseError(errMissingWhitespaceAfterSys)
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.src.advance()
		z.parseError(errMissingWhitespaceAfterSys)
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierSingleQuotedState
	case '>':
		z.src.advance()
		z.emitDoctypeForcedQuirks(errMissingDoctypeSystemID)
		z.state = DataState
	case eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errMissingQuoteBeforeDTSysID)
		z.doctypeForceQuirks = true
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepBeforeDoctypeSystemIdentifier() {
	c := z.src.current()
	switch c {
	case '\t', '\n', '\f', ' ':
		z.src.advance()
	case '"':
		z.src.advance()
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierDoubleQuotedState
	case '\'':
		z.src.advance()
		z.doctypeHasSystemID = true
		z.doctypeSystemID.Reset()
		z.state = DoctypeSystemIdentifierSingleQuotedState
	case '>':
		z.src.advance()
		z.emitDoctypeForcedQuirks(errMissingDoctypeSystemID)
		z.state = DataState
	case eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errMissingQuoteBeforeDTSysID)
		z.doctypeForceQuirks = true
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepDoctypeSystemIdentifierQuoted(quote byte) {
	c := z.src.current()
	switch {
	case c == int(quote):
		z.src.advance()
		z.state = AfterDoctypeSystemIdentifierState
	case c == 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.doctypeSystemID.WriteRune('�')
	case c == '>':
		z.src.advance()
		z.emitDoctypeForcedQuirks(errAbruptDTSystemID)
		z.state = DataState
	case c == eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.doctypeSystemID.WriteRune(r)
	}
}

func (z *Tokenizer) stepAfterDoctypeSystemIdentifier() {
	c := z.src.current()
	switch c {
	case '\t', '\n', '\f', ' ':
		z.src.advance()
	case '>':
		z.src.advance()
		z.emitDoctype()
		z.state = DataState
	case eof:
		z.emitDoctypeForcedQuirks(errEOFInDoctype)
		z.emitEOF()
	default:
		z.parseError(errUnexpectedCharAfterDTSys)
		z.state = BogusDoctypeState
	}
}

func (z *Tokenizer) stepBogusDoctype() {
	c := z.src.current()
	switch c {
	case '>':
		z.src.advance()
		z.emitDoctype()
		z.state = DataState
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
	case eof:
		z.emitDoctype()
		z.emitEOF()
	default:
		z.src.advance()
	}
}
