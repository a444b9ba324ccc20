package tokenizer

// ParseError identifies a non-fatal tokenization error by the
// kebab-case name used in the HTML Standard's parse error table (e.g.
// "unexpected-null-character", "eof-in-tag"). Parse errors never
// abort tokenization; a valid token stream is produced regardless.
type ParseError struct {
	// Code is the kebab-case error identifier.
	Code string
	// Pos is the byte offset in the input where the error was detected.
	Pos int
}

func (e ParseError) Error() string {
	return e.Code
}

// Parse error codes from the HTML Standard's error table. Only the
// ones this tokenizer can actually emit are listed; this is not the
// full table. entity-table-unavailable is this package's own code and
// is not in the Standard's table.
const (
	errInvalidFirstCharOfTagName = "invalid-first-character-of-tag-name"
	errDuplicateAttribute        = "duplicate-attribute"
	errUnexpectedEqualsSign      = "unexpected-equals-sign-before-attribute-name"
	errUnexpectedCharInAttrName  = "unexpected-character-in-attribute-name"
	errUnexpectedSolidusInTag    = "unexpected-solidus-in-tag"
	errUnexpectedNullCharacter   = "unexpected-null-character"
	errNestedComment             = "nested-comment"
	errAbruptClosingEmptyComment = "abrupt-closing-of-empty-comment"
	errEOFInComment              = "eof-in-comment"
	errEOFInTag                  = "eof-in-tag"
	errEOFInDoctype              = "eof-in-doctype"
	errEOFBeforeTagName          = "eof-before-tag-name"
	errMissingDoctypeName        = "missing-doctype-name"
	errMissingWhitespaceDoctype  = "missing-whitespace-before-doctype-name"
	errCDATAInHTMLContent        = "cdata-in-html-content"
	errIncorrectlyOpenedComment  = "incorrectly-opened-comment"
	errControlCharacterRef       = "control-character-reference"
	errSurrogateCharacterRef     = "surrogate-character-reference"
	errNoncharacterCharacterRef  = "noncharacter-character-reference"
	errNullCharacterRef          = "null-character-reference"
	errAbsenceOfDigitsInNumeric  = "absence-of-digits-in-numeric-character-reference"
	errMissingSemicolonRef       = "missing-semicolon-after-character-reference"
	errUnknownNamedReference     = "unknown-named-character-reference"
	errMissingQuoteBeforeDTID    = "missing-quote-before-doctype-public-identifier"
	errMissingWhitespaceAfterKw  = "missing-whitespace-after-doctype-public-keyword"
	errAbruptDTPublicID          = "abrupt-doctype-public-identifier"
	errAbruptDTSystemID          = "abrupt-doctype-system-identifier"
	errUnexpectedCharAfterDTSys  = "unexpected-character-after-doctype-system-identifier"
	errCharRefOutsideRange       = "character-reference-outside-unicode-range"
	errMissingWhitespaceBetween  = "missing-whitespace-between-doctype-public-and-system-identifiers"
	errMissingWhitespaceAfterSys = "missing-whitespace-after-doctype-system-keyword"
	errMissingQuoteBeforeDTSysID = "missing-quote-before-doctype-system-identifier"
	errEOFInCDATA                = "eof-in-cdata"
	errMissingEndTagName         = "missing-end-tag-name"
	errMissingAttributeValue     = "missing-attribute-value"
	errUnexpectedCharUnquoted    = "unexpected-character-in-unquoted-attribute-value"
	errMissingWhitespaceBetwAttr = "missing-whitespace-between-attributes"
	errIncorrectlyClosedComment  = "incorrectly-closed-comment"
	errInvalidCharAfterDoctype   = "invalid-character-sequence-after-doctype-name"
	errMissingDoctypePublicID    = "missing-doctype-public-identifier"
	errMissingDoctypeSystemID    = "missing-doctype-system-identifier"
	errEOFInScriptHTMLComment    = "eof-in-script-html-comment-like-text"
	errEntityTableUnavailable    = "entity-table-unavailable"
)
