package tokenizer

func (z *Tokenizer) stepBeforeAttributeName() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
	case c == '/' || c == '>' || c == eof:
		z.state = AfterAttributeNameState
	case c == '=':
		z.src.advance()
		z.parseError(errUnexpectedEqualsSign)
		z.attrName.Reset()
		z.attrValue.Reset()
		z.attrName.WriteByte('=')
		z.state = AttributeNameState
	default:
		z.attrName.Reset()
		z.attrValue.Reset()
		z.state = AttributeNameState
	}
}

func (z *Tokenizer) stepAttributeName() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c) || c == '/' || c == '>' || c == eof:
		z.state = AfterAttributeNameState
	case c == '=':
		z.src.advance()
		z.state = BeforeAttributeValueState
	case isASCIIUpper(c):
		z.src.advance()
		z.attrName.WriteByte(byte(toLowerRune(c)))
	case c == 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.attrName.WriteRune('�')
	case c == '"' || c == '\'' || c == '<':
		z.src.advance()
		z.parseError(errUnexpectedCharInAttrName)
		z.attrName.WriteByte(byte(c))
	default:
		r := z.consumeRune()
		z.attrName.WriteRune(r)
	}
}

func (z *Tokenizer) stepAfterAttributeName() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
	case c == '/':
		z.src.advance()
		z.finishAttribute()
		z.state = SelfClosingStartTagState
	case c == '=':
		z.src.advance()
		z.state = BeforeAttributeValueState
	case c == '>':
		z.src.advance()
		z.finishAttribute()
		z.emitTag()
		z.state = DataState
	case c == eof:
		z.finishAttribute()
		z.parseError(errEOFInTag)
		z.emitEOF()
	default:
		z.finishAttribute()
		z.attrName.Reset()
		z.attrValue.Reset()
		z.state = AttributeNameState
	}
}

func (z *Tokenizer) stepBeforeAttributeValue() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
	case c == '"':
		z.src.advance()
		z.state = AttributeValueDoubleQuotedState
	case c == '\'':
		z.src.advance()
		z.state = AttributeValueSingleQuotedState
	case c == '>':
		z.src.advance()
		z.parseError(errMissingAttributeValue)
		z.finishAttribute()
		z.emitTag()
		z.state = DataState
	default:
		z.state = AttributeValueUnquotedState
	}
}

func (z *Tokenizer) stepAttributeValueQuoted(quote byte, self State) {
	c := z.src.current()
	switch {
	case c == int(quote):
		z.src.advance()
		z.finishAttribute()
		z.state = AfterAttributeValueQuotedState
	case c == '&':
		z.src.advance()
		z.enterCharacterReference(self)
	case c == 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.attrValue.WriteRune('�')
	case c == eof:
		z.parseError(errEOFInTag)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.attrValue.WriteRune(r)
	}
}

func (z *Tokenizer) stepAttributeValueUnquoted() {
	c := z.src.current()
	switch {
	case isASCIIWhitespace(c):
		z.src.advance()
		z.finishAttribute()
		z.state = BeforeAttributeNameState
	case c == '&':
		z.src.advance()
		z.enterCharacterReference(AttributeValueUnquotedState)
	case c == '>':
		z.src.advance()
		z.finishAttribute()
		z.emitTag()
		z.state = DataState
	case c == 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.attrValue.WriteRune('�')
	case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
		z.src.advance()
		z.parseError(errUnexpectedCharUnquoted)
		z.attrValue.WriteByte(byte(c))
	case c == eof:
		z.parseError(errEOFInTag)
		z.emitEOF()
	default:
		r := z.consumeRune()
		z.attrValue.WriteRune(r)
	}
}

func (z *Tokenizer) stepAfterAttributeValueQuoted() {
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
	case c == eof:
		z.parseError(errEOFInTag)
		z.emitEOF()
	default:
		z.parseError(errMissingWhitespaceBetwAttr)
		z.state = BeforeAttributeNameState
	}
}

func (z *Tokenizer) stepSelfClosingStartTag() {
	c := z.src.current()
	switch c {
	case '>':
		z.src.advance()
		z.tagSelfClosing = true
		z.emitTag()
		z.state = DataState
	case eof:
		z.parseError(errEOFInTag)
		z.emitEOF()
	default:
		z.parseError(errUnexpectedSolidusInTag)
		z.state = BeforeAttributeNameState
	}
}

func (z *Tokenizer) stepBogusComment() {
	c := z.src.current()
	switch c {
	case '>':
		z.src.advance()
		z.emitComment()
		z.state = DataState
	case eof:
		z.emitComment()
		z.emitEOF()
	case 0:
		z.src.advance()
		z.parseError(errUnexpectedNullCharacter)
		z.commentData.WriteRune('�')
	default:
		r := z.consumeRune()
		z.commentData.WriteRune(r)
	}
}

func (z *Tokenizer) stepMarkupDeclarationOpen() {
	if z.src.matchLiteral("--", false) {
		z.resetComment()
		z.state = CommentStartState
		return
	}
	if z.src.matchLiteral("DOCTYPE", true) {
		z.state = DoctypeState
		return
	}
	if z.src.matchLiteral("[CDATA[", false) {
		if z.opts.InForeignContent != nil && z.opts.InForeignContent() {
			z.state = CDATASectionState
		} else {
			z.parseError(errCDATAInHTMLContent)
			z.resetComment()
			z.commentData.WriteString("[CDATA[")
			z.state = BogusCommentState
		}
		return
	}
	z.parseError(errIncorrectlyOpenedComment)
	z.resetComment()
	z.state = BogusCommentState
}
