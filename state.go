package tokenizer

// State names the tokenizer's current position in the ~80-state
// machine from https://html.spec.whatwg.org/multipage/parsing.html#tokenization.
type State int

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
	TagOpenState
	EndTagOpenState
	TagNameState
	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
	DoctypeState
	BeforeDoctypeNameState
	DoctypeNameState
	AfterDoctypeNameState
	AfterDoctypePublicKeywordState
	BeforeDoctypePublicIdentifierState
	DoctypePublicIdentifierDoubleQuotedState
	DoctypePublicIdentifierSingleQuotedState
	AfterDoctypePublicIdentifierState
	BetweenDoctypePublicAndSystemIdentifiersState
	AfterDoctypeSystemKeywordState
	BeforeDoctypeSystemIdentifierState
	DoctypeSystemIdentifierDoubleQuotedState
	DoctypeSystemIdentifierSingleQuotedState
	AfterDoctypeSystemIdentifierState
	BogusDoctypeState
	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState
	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

// ContentModel is the subset of states the tree constructor is
// allowed to switch the tokenizer into via SetContentModel.
type ContentModel State

const (
	Data       ContentModel = ContentModel(DataState)
	RCDATA     ContentModel = ContentModel(RCDATAState)
	RAWTEXT    ContentModel = ContentModel(RAWTEXTState)
	ScriptData ContentModel = ContentModel(ScriptDataState)
	PLAINTEXT  ContentModel = ContentModel(PLAINTEXTState)
)
