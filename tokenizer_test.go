package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// collect drains a Tokenizer, returning every token up to and
// including the terminating EndOfFile token.
func collect(t *testing.T, src string) []Token {
	t.Helper()
	z := NewTokenizer([]byte(src), Options{})
	var toks []Token
	for {
		tok := z.Next()
		toks = append(toks, tok)
		if tok.Type == EndOfFileTokenMarker {
			return toks
		}
		if len(toks) > 10000 {
			t.Fatalf("tokenizer did not terminate for input %q", src)
		}
	}
}

func chars(s string) []Token {
	toks := make([]Token, 0, len(s))
	for _, r := range s {
		toks = append(toks, Token{Type: CharacterToken, Rune: r})
	}
	return toks
}

func TestTokenizerDataText(t *testing.T) {
	toks := collect(t, "hello")
	require.Equal(t, append(chars("hello"), Token{Type: EndOfFileTokenMarker}), toks)
}

func TestTokenizerSimpleTag(t *testing.T) {
	toks := collect(t, "<p>hi</p>")
	require.Equal(t, []Token{
		{Type: StartTagToken, Data: "p"},
		{Type: CharacterToken, Rune: 'h'},
		{Type: CharacterToken, Rune: 'i'},
		{Type: EndTagToken, Data: "p"},
		{Type: EndOfFileTokenMarker},
	}, toks)
}

func TestTokenizerAttributes(t *testing.T) {
	toks := collect(t, `<a href="/x" target='_blank' disabled>`)
	require.Equal(t, []Token{
		{Type: StartTagToken, Data: "a", Attr: []Attribute{
			{Key: "href", Val: "/x"},
			{Key: "target", Val: "_blank"},
			{Key: "disabled", Val: ""},
		}},
		{Type: EndOfFileTokenMarker},
	}, toks)
}

func TestTokenizerUppercaseTagAndAttrLowered(t *testing.T) {
	toks := collect(t, `<DIV CLASS="x">`)
	require.Equal(t, []Token{
		{Type: StartTagToken, Data: "div", Attr: []Attribute{{Key: "class", Val: "x"}}},
		{Type: EndOfFileTokenMarker},
	}, toks)
}

func TestTokenizerDuplicateAttributeDropped(t *testing.T) {
	var errs []ParseError
	z := NewTokenizer([]byte(`<a href="1" href="2">`), Options{OnParseError: func(e ParseError) { errs = append(errs, e) }})
	tok := z.Next()
	require.Equal(t, StartTagToken, tok.Type)
	require.Equal(t, []Attribute{{Key: "href", Val: "1"}}, tok.Attr)
	require.NotEmpty(t, errs)
	require.Equal(t, errDuplicateAttribute, errs[0].Code)
}

func TestTokenizerSelfClosing(t *testing.T) {
	toks := collect(t, `<br/>`)
	require.Equal(t, []Token{
		{Type: StartTagToken, Data: "br", SelfClosing: true},
		{Type: EndOfFileTokenMarker},
	}, toks)
}

func TestTokenizerComment(t *testing.T) {
	toks := collect(t, "abc<!-- skipme --></b>def")
	require.Equal(t, append(append(chars("abc"),
		Token{Type: CommentToken, Data: " skipme "},
		Token{Type: EndTagToken, Data: "b"}),
		append(chars("def"), Token{Type: EndOfFileTokenMarker})...), toks)
}

func TestTokenizerAbruptClosingEmptyComment(t *testing.T) {
	var errs []ParseError
	z := NewTokenizer([]byte("<!-->"), Options{OnParseError: func(e ParseError) { errs = append(errs, e) }})
	tok := z.Next()
	require.Equal(t, CommentToken, tok.Type)
	require.Equal(t, "", tok.Data)
	require.Equal(t, []ParseError{{Code: errAbruptClosingEmptyComment, Pos: 5}}, errs)
}

func TestTokenizerNestedCommentParseError(t *testing.T) {
	var errs []ParseError
	z := NewTokenizer([]byte("<!-- a <!--b--> c -->"), Options{OnParseError: func(e ParseError) { errs = append(errs, e) }})
	_ = z.Next()
	found := false
	for _, e := range errs {
		if e.Code == errNestedComment {
			found = true
		}
	}
	require.True(t, found, "expected a nested-comment parse error, got %+v", errs)
}

func TestTokenizerBogusComment(t *testing.T) {
	var errs []ParseError
	toks := collect2(t, "<!zzz>", &errs)
	require.Equal(t, CommentToken, toks[0].Type)
	require.Equal(t, "zzz", toks[0].Data)
	require.Contains(t, codes(errs), errIncorrectlyOpenedComment)
}

func TestTokenizerProcessingInstructionIsLiteralLessThan(t *testing.T) {
	var errs []ParseError
	toks := collect2(t, "<?xml?>", &errs)
	require.Equal(t, append(chars("<?xml?>"), Token{Type: EndOfFileTokenMarker}), toks)
	require.Contains(t, codes(errs), errInvalidFirstCharOfTagName)
}

func TestTokenizerDoctype(t *testing.T) {
	toks := collect(t, "<!DOCTYPE html>")
	require.Equal(t, []Token{
		{Type: DoctypeToken, Data: "html"},
		{Type: EndOfFileTokenMarker},
	}, toks)
}

func TestTokenizerDoctypeWithPublicAndSystem(t *testing.T) {
	toks := collect(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	require.Equal(t, DoctypeToken, toks[0].Type)
	require.Equal(t, "html", toks[0].Data)
	require.True(t, toks[0].HasPublicID)
	require.Equal(t, "-//W3C//DTD HTML 4.01//EN", toks[0].PublicID)
	require.True(t, toks[0].HasSystemID)
	require.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", toks[0].SystemID)
	require.False(t, toks[0].ForceQuirks)
}

func TestTokenizerDoctypeMissingNameForcesQuirks(t *testing.T) {
	toks := collect(t, "<!DOCTYPE>")
	require.True(t, toks[0].ForceQuirks)
}

func TestTokenizerNullInData(t *testing.T) {
	var errs []ParseError
	z := NewTokenizer([]byte("a\x00b"), Options{OnParseError: func(e ParseError) { errs = append(errs, e) }})
	require.Equal(t, Token{Type: CharacterToken, Rune: 'a'}, z.Next())
	require.Equal(t, Token{Type: CharacterToken, Rune: 0}, z.Next())
	require.Equal(t, Token{Type: CharacterToken, Rune: 'b'}, z.Next())
	require.Equal(t, []ParseError{{Code: errUnexpectedNullCharacter, Pos: 2}}, errs)
}

func TestTokenizerNullInRCDATAIsReplaced(t *testing.T) {
	z := NewTokenizer([]byte("a\x00b"), Options{InitialState: State(RCDATA)})
	require.Equal(t, Token{Type: CharacterToken, Rune: 'a'}, z.Next())
	require.Equal(t, Token{Type: CharacterToken, Rune: '�'}, z.Next())
	require.Equal(t, Token{Type: CharacterToken, Rune: 'b'}, z.Next())
}

func TestTokenizerRCDATAEndTag(t *testing.T) {
	z := NewTokenizer([]byte("text</title>"), Options{InitialState: State(RCDATA)})
	z.lastStartTag = "title"
	require.Equal(t, chars("text"), []Token{z.Next(), z.Next(), z.Next(), z.Next()})
	require.Equal(t, Token{Type: EndTagToken, Data: "title"}, z.Next())
	require.Equal(t, Token{Type: EndOfFileTokenMarker}, z.Next())
}

func TestTokenizerRCDATAInappropriateEndTagIsText(t *testing.T) {
	z := NewTokenizer([]byte("</b>"), Options{InitialState: State(RCDATA)})
	z.lastStartTag = "title"
	require.Equal(t, append(chars("</b>"), Token{Type: EndOfFileTokenMarker}), []Token{
		z.Next(), z.Next(), z.Next(), z.Next(), z.Next(),
	})
}

func TestTokenizerScriptDataEscaped(t *testing.T) {
	src := "<script>var x = 1;\n<!-- var y = '<img>'; //--></script>"
	z := NewTokenizer([]byte(src), Options{})
	start := z.Next()
	require.Equal(t, StartTagToken, start.Type)
	require.Equal(t, "script", start.Data)
	z.SetContentModel(ScriptData)

	var toks []Token
	for {
		tok := z.Next()
		toks = append(toks, tok)
		if tok.Type == EndOfFileTokenMarker {
			break
		}
	}
	last := toks[len(toks)-2]
	require.Equal(t, EndTagToken, last.Type)
	require.Equal(t, "script", last.Data)
}

func TestTokenizerCharacterReferenceNamed(t *testing.T) {
	toks := collect(t, "a&amp;b")
	require.Equal(t, []Token{
		{Type: CharacterToken, Rune: 'a'},
		{Type: CharacterToken, Rune: '&'},
		{Type: CharacterToken, Rune: 'b'},
		{Type: EndOfFileTokenMarker},
	}, toks)
}

func TestTokenizerCharacterReferenceMultiCodepoint(t *testing.T) {
	toks := collect(t, "&gesl;")
	require.Equal(t, CharacterToken, toks[0].Type)
	require.Equal(t, '⋛', toks[0].Rune)
	require.Equal(t, CharacterToken, toks[1].Type)
	require.Equal(t, rune(0xFE00), toks[1].Rune)
	require.Equal(t, EndOfFileTokenMarker, toks[2].Type)
}

func TestTokenizerCharacterReferenceUnknown(t *testing.T) {
	toks := collect(t, "&qwertyzzz;")
	require.Equal(t, append(chars("&qwertyzzz;"), Token{Type: EndOfFileTokenMarker}), toks)
}

func collect2(t *testing.T, src string, errs *[]ParseError) []Token {
	t.Helper()
	z := NewTokenizer([]byte(src), Options{OnParseError: func(e ParseError) { *errs = append(*errs, e) }})
	var toks []Token
	for {
		tok := z.Next()
		toks = append(toks, tok)
		if tok.Type == EndOfFileTokenMarker {
			return toks
		}
	}
}

func TestTokenizerAmbiguousAmpersandInAttribute(t *testing.T) {
	toks := collect(t, `<a href="?x&notit=1">`)
	require.Equal(t, StartTagToken, toks[0].Type)
	require.Equal(t, "?x&notit=1", toks[0].Attr[0].Val)
}

func TestTokenizerNumericDecimal(t *testing.T) {
	toks := collect(t, "&#65;")
	require.Equal(t, Token{Type: CharacterToken, Rune: 'A'}, toks[0])
}

func TestTokenizerNumericHex(t *testing.T) {
	toks := collect(t, "&#x41;")
	require.Equal(t, Token{Type: CharacterToken, Rune: 'A'}, toks[0])
}

func TestTokenizerNumericNullReplacement(t *testing.T) {
	var errs []ParseError
	toks := collect2(t, "&#0;", &errs)
	require.Equal(t, Token{Type: CharacterToken, Rune: '�'}, toks[0])
	require.Contains(t, codes(errs), errNullCharacterRef)
}

func TestTokenizerNumericWindows1252Remap(t *testing.T) {
	var errs []ParseError
	toks := collect2(t, "&#128;", &errs)
	require.Equal(t, Token{Type: CharacterToken, Rune: '€'}, toks[0])
	require.Contains(t, codes(errs), errControlCharacterRef)
}

func TestTokenizerNumericSurrogate(t *testing.T) {
	var errs []ParseError
	toks := collect2(t, "&#xD800;", &errs)
	require.Equal(t, Token{Type: CharacterToken, Rune: '�'}, toks[0])
	require.Contains(t, codes(errs), errSurrogateCharacterRef)
}

func TestTokenizerNumericOutsideRange(t *testing.T) {
	var errs []ParseError
	toks := collect2(t, "&#x110000;", &errs)
	require.Equal(t, Token{Type: CharacterToken, Rune: '�'}, toks[0])
	require.Contains(t, codes(errs), errCharRefOutsideRange)
}

func TestTokenizerNumericAbsenceOfDigits(t *testing.T) {
	var errs []ParseError
	toks := collect2(t, "&#;rest", &errs)
	require.Contains(t, codes(errs), errAbsenceOfDigitsInNumeric)
	require.Equal(t, append(chars("&#;rest"), Token{Type: EndOfFileTokenMarker}), toks)
}

func codes(errs []ParseError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestTokenizerCDATAOutsideForeignContentIsBogusComment(t *testing.T) {
	toks := collect(t, "<![CDATA[hi]]>")
	require.Equal(t, CommentToken, toks[0].Type)
	require.Equal(t, "[CDATA[hi]]", toks[0].Data)
}

func TestTokenizerCDATAInForeignContent(t *testing.T) {
	z := NewTokenizer([]byte("<![CDATA[hi]]>"), Options{InForeignContent: func() bool { return true }})
	require.Equal(t, append(chars("hi"), Token{Type: EndOfFileTokenMarker}), []Token{
		z.Next(), z.Next(), z.Next(),
	})
}

func TestTokenizerEOFIsStickyEndOfFile(t *testing.T) {
	z := NewTokenizer([]byte(""), Options{})
	require.Equal(t, Token{Type: EndOfFileTokenMarker}, z.Next())
	require.Equal(t, Token{Type: EndOfFileTokenMarker}, z.Next())
	require.Equal(t, Token{Type: EndOfFileTokenMarker}, z.Next())
}

func TestNormalizeNewlines(t *testing.T) {
	require.Equal(t, []byte("a\nb\nc\n"), NormalizeNewlines([]byte("a\r\nb\rc\n")))
	require.Equal(t, []byte("\n\n"), NormalizeNewlines([]byte("\r\r\n")))

	// No CR means the input is returned as-is, without copying.
	in := []byte("plain\ntext")
	require.Same(t, &in[0], &NormalizeNewlines(in)[0])
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	s := `<a href="x&y">`
	require.Equal(t, `&lt;a href=&quot;x&amp;y&quot;&gt;`, EscapeString(s))
	require.Equal(t, s, UnescapeString(EscapeString(s)))
}

func TestUnescapeString(t *testing.T) {
	require.Equal(t, "& < hi", UnescapeString("&amp; &#60; hi"))
	require.Equal(t, "€43", UnescapeString("&#128;43"))
	require.Equal(t, "no entity &zzz; here", UnescapeString("no entity &zzz; here"))
}
