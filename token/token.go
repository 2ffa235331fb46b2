// Package token defines constants and types representing lexical tokens
// in ECMAScript/TypeScript source text.
//
// The Kind catalog covers every token the full language can produce. The
// tslex core only scans some of them (punctuation, operators, comments and
// numeric literals); the remaining kinds exist so that sub-scanners for
// identifiers, strings, templates and regular expressions can be added
// without changing the catalog.
//
package token

import "strconv"

// Kind represents a token's kind.
//
type Kind int

// Token kinds.
//
const (
	Unknown Kind = iota
	EndOfFile
	SingleLineCommentTrivia
	MultiLineCommentTrivia
	JSDocCommentTrivia // /** ... */
	NewLineTrivia
	WhitespaceTrivia
	ConflictMarkerTrivia
	NonTextFileMarkerTrivia
	NumericLiteral
	BigIntLiteral
	StringLiteral
	JsxText
	JsxTextAllWhiteSpaces
	RegularExpressionLiteral
	NoSubstitutionTemplateLiteral
	// Pseudo-literals
	TemplateHead
	TemplateMiddle
	TemplateTail
	// Punctuation
	LeftBraceToken                         // {
	RightBraceToken                        // }
	LeftParenToken                         // (
	RightParenToken                        // )
	LeftBracketToken                       // [
	RightBracketToken                      // ]
	DotToken                               // .
	DotDotDotToken                         // ...
	SemicolonToken                         // ;
	CommaToken                             // ,
	QuestionDotToken                       // ?.
	LessThanToken                          // <
	LessThanSlashToken                     // </
	GreaterThanToken                       // >
	LessThanEqualsToken                    // <=
	GreaterThanEqualsToken                 // >=
	EqualsEqualsToken                      // ==
	ExclamationEqualsToken                 // !=
	EqualsEqualsEqualsToken                // ===
	ExclamationEqualsEqualsToken           // !==
	EqualsGreaterThanToken                 // =>
	PlusToken                              // +
	MinusToken                             // -
	AsteriskToken                          // *
	AsteriskAsteriskToken                  // **
	SlashToken                             // /
	PercentToken                           // %
	PlusPlusToken                          // ++
	MinusMinusToken                        // --
	LessThanLessThanToken                  // <<
	GreaterThanGreaterThanToken            // >>
	GreaterThanGreaterThanGreaterThanToken // >>>
	AmpersandToken                         // &
	BarToken                               // |
	CaretToken                             // ^
	ExclamationToken                       // !
	TildeToken                             // ~
	AmpersandAmpersandToken                // &&
	BarBarToken                            // ||
	QuestionToken                          // ?
	ColonToken                             // :
	AtToken                                // @
	QuestionQuestionToken                  // ??
	BacktickToken                          // ` only produced by a JSDoc scanner
	HashToken                              // # only produced by a JSDoc scanner
	// Assignments
	EqualsToken                                  // =
	PlusEqualsToken                              // +=
	MinusEqualsToken                             // -=
	AsteriskEqualsToken                          // *=
	AsteriskAsteriskEqualsToken                  // **=
	SlashEqualsToken                             // /=
	PercentEqualsToken                           // %=
	LessThanLessThanEqualsToken                  // <<=
	GreaterThanGreaterThanEqualsToken            // >>=
	GreaterThanGreaterThanGreaterThanEqualsToken // >>>=
	AmpersandEqualsToken                         // &=
	AmpersandAmpersandEqualsToken                // &&=
	BarEqualsToken                               // |=
	BarBarEqualsToken                            // ||=
	QuestionQuestionEqualsToken                  // ??=
	CaretEqualsToken                             // ^=
	// Identifiers
	Identifier
	PrivateIdentifier
	JSDocCommentTextToken
	// Reserved words
	BreakKeyword
	CaseKeyword
	CatchKeyword
	ClassKeyword
	ConstKeyword
	ContinueKeyword
	DebuggerKeyword
	DefaultKeyword
	DeleteKeyword
	DoKeyword
	ElseKeyword
	EnumKeyword
	ExportKeyword
	ExtendsKeyword
	FalseKeyword
	FinallyKeyword
	ForKeyword
	FunctionKeyword
	IfKeyword
	ImportKeyword
	InKeyword
	InstanceOfKeyword
	NewKeyword
	NullKeyword
	ReturnKeyword
	SuperKeyword
	SwitchKeyword
	ThisKeyword
	ThrowKeyword
	TrueKeyword
	TryKeyword
	TypeOfKeyword
	VarKeyword
	VoidKeyword
	WhileKeyword
	WithKeyword
	// Strict mode reserved words
	ImplementsKeyword
	InterfaceKeyword
	LetKeyword
	PackageKeyword
	PrivateKeyword
	ProtectedKeyword
	PublicKeyword
	StaticKeyword
	YieldKeyword
	// Contextual keywords
	AbstractKeyword
	AccessorKeyword
	AsKeyword
	AssertsKeyword
	AssertKeyword
	AnyKeyword
	AsyncKeyword
	AwaitKeyword
	BooleanKeyword
	ConstructorKeyword
	DeclareKeyword
	GetKeyword
	ImmediateKeyword
	InferKeyword
	IntrinsicKeyword
	IsKeyword
	KeyOfKeyword
	ModuleKeyword
	NamespaceKeyword
	NeverKeyword
	OutKeyword
	ReadonlyKeyword
	RequireKeyword
	NumberKeyword
	ObjectKeyword
	SatisfiesKeyword
	SetKeyword
	StringKeyword
	SymbolKeyword
	TypeKeyword
	UndefinedKeyword
	UniqueKeyword
	UnknownKeyword
	UsingKeyword
	FromKeyword
	GlobalKeyword
	BigIntKeyword
	OverrideKeyword
	OfKeyword

	kindCount
)

// Range markers.
//
const (
	FirstAssignment         = EqualsToken
	LastAssignment          = CaretEqualsToken
	FirstCompoundAssignment = PlusEqualsToken
	LastCompoundAssignment  = CaretEqualsToken
	FirstReservedWord       = BreakKeyword
	LastReservedWord        = WithKeyword
	FirstKeyword            = BreakKeyword
	LastKeyword             = OfKeyword
	FirstFutureReservedWord = ImplementsKeyword
	LastFutureReservedWord  = YieldKeyword
	FirstPunctuation        = LeftBraceToken
	LastPunctuation         = CaretEqualsToken
	FirstToken              = Unknown
	LastToken               = LastKeyword
	FirstLiteralToken       = NumericLiteral
	LastLiteralToken        = NoSubstitutionTemplateLiteral
	FirstTemplateToken      = NoSubstitutionTemplateLiteral
	LastTemplateToken       = TemplateTail
	FirstBinaryOperator     = LessThanToken
	LastBinaryOperator      = CaretEqualsToken
	FirstContextualKeyword  = AbstractKeyword
	LastContextualKeyword   = OfKeyword
	FirstTriviaToken        = SingleLineCommentTrivia
	LastTriviaToken         = ConflictMarkerTrivia
)

// kinds holds the name and, for fixed tokens, the source spelling of every Kind.
//
var kinds = [...]struct {
	name string
	text string
}{
	Unknown:                       {"Unknown", ""},
	EndOfFile:                     {"EndOfFile", ""},
	SingleLineCommentTrivia:       {"SingleLineCommentTrivia", ""},
	MultiLineCommentTrivia:        {"MultiLineCommentTrivia", ""},
	JSDocCommentTrivia:            {"JSDocCommentTrivia", ""},
	NewLineTrivia:                 {"NewLineTrivia", ""},
	WhitespaceTrivia:              {"WhitespaceTrivia", ""},
	ConflictMarkerTrivia:          {"ConflictMarkerTrivia", ""},
	NonTextFileMarkerTrivia:       {"NonTextFileMarkerTrivia", ""},
	NumericLiteral:                {"NumericLiteral", ""},
	BigIntLiteral:                 {"BigIntLiteral", ""},
	StringLiteral:                 {"StringLiteral", ""},
	JsxText:                       {"JsxText", ""},
	JsxTextAllWhiteSpaces:         {"JsxTextAllWhiteSpaces", ""},
	RegularExpressionLiteral:      {"RegularExpressionLiteral", ""},
	NoSubstitutionTemplateLiteral: {"NoSubstitutionTemplateLiteral", ""},
	TemplateHead:                  {"TemplateHead", ""},
	TemplateMiddle:                {"TemplateMiddle", ""},
	TemplateTail:                  {"TemplateTail", ""},

	LeftBraceToken:                         {"LeftBraceToken", "{"},
	RightBraceToken:                        {"RightBraceToken", "}"},
	LeftParenToken:                         {"LeftParenToken", "("},
	RightParenToken:                        {"RightParenToken", ")"},
	LeftBracketToken:                       {"LeftBracketToken", "["},
	RightBracketToken:                      {"RightBracketToken", "]"},
	DotToken:                               {"DotToken", "."},
	DotDotDotToken:                         {"DotDotDotToken", "..."},
	SemicolonToken:                         {"SemicolonToken", ";"},
	CommaToken:                             {"CommaToken", ","},
	QuestionDotToken:                       {"QuestionDotToken", "?."},
	LessThanToken:                          {"LessThanToken", "<"},
	LessThanSlashToken:                     {"LessThanSlashToken", "</"},
	GreaterThanToken:                       {"GreaterThanToken", ">"},
	LessThanEqualsToken:                    {"LessThanEqualsToken", "<="},
	GreaterThanEqualsToken:                 {"GreaterThanEqualsToken", ">="},
	EqualsEqualsToken:                      {"EqualsEqualsToken", "=="},
	ExclamationEqualsToken:                 {"ExclamationEqualsToken", "!="},
	EqualsEqualsEqualsToken:                {"EqualsEqualsEqualsToken", "==="},
	ExclamationEqualsEqualsToken:           {"ExclamationEqualsEqualsToken", "!=="},
	EqualsGreaterThanToken:                 {"EqualsGreaterThanToken", "=>"},
	PlusToken:                              {"PlusToken", "+"},
	MinusToken:                             {"MinusToken", "-"},
	AsteriskToken:                          {"AsteriskToken", "*"},
	AsteriskAsteriskToken:                  {"AsteriskAsteriskToken", "**"},
	SlashToken:                             {"SlashToken", "/"},
	PercentToken:                           {"PercentToken", "%"},
	PlusPlusToken:                          {"PlusPlusToken", "++"},
	MinusMinusToken:                        {"MinusMinusToken", "--"},
	LessThanLessThanToken:                  {"LessThanLessThanToken", "<<"},
	GreaterThanGreaterThanToken:            {"GreaterThanGreaterThanToken", ">>"},
	GreaterThanGreaterThanGreaterThanToken: {"GreaterThanGreaterThanGreaterThanToken", ">>>"},
	AmpersandToken:                         {"AmpersandToken", "&"},
	BarToken:                               {"BarToken", "|"},
	CaretToken:                             {"CaretToken", "^"},
	ExclamationToken:                       {"ExclamationToken", "!"},
	TildeToken:                             {"TildeToken", "~"},
	AmpersandAmpersandToken:                {"AmpersandAmpersandToken", "&&"},
	BarBarToken:                            {"BarBarToken", "||"},
	QuestionToken:                          {"QuestionToken", "?"},
	ColonToken:                             {"ColonToken", ":"},
	AtToken:                                {"AtToken", "@"},
	QuestionQuestionToken:                  {"QuestionQuestionToken", "??"},
	BacktickToken:                          {"BacktickToken", "`"},
	HashToken:                              {"HashToken", "#"},

	EqualsToken:                                  {"EqualsToken", "="},
	PlusEqualsToken:                              {"PlusEqualsToken", "+="},
	MinusEqualsToken:                             {"MinusEqualsToken", "-="},
	AsteriskEqualsToken:                          {"AsteriskEqualsToken", "*="},
	AsteriskAsteriskEqualsToken:                  {"AsteriskAsteriskEqualsToken", "**="},
	SlashEqualsToken:                             {"SlashEqualsToken", "/="},
	PercentEqualsToken:                           {"PercentEqualsToken", "%="},
	LessThanLessThanEqualsToken:                  {"LessThanLessThanEqualsToken", "<<="},
	GreaterThanGreaterThanEqualsToken:            {"GreaterThanGreaterThanEqualsToken", ">>="},
	GreaterThanGreaterThanGreaterThanEqualsToken: {"GreaterThanGreaterThanGreaterThanEqualsToken", ">>>="},
	AmpersandEqualsToken:                         {"AmpersandEqualsToken", "&="},
	AmpersandAmpersandEqualsToken:                {"AmpersandAmpersandEqualsToken", "&&="},
	BarEqualsToken:                               {"BarEqualsToken", "|="},
	BarBarEqualsToken:                            {"BarBarEqualsToken", "||="},
	QuestionQuestionEqualsToken:                  {"QuestionQuestionEqualsToken", "??="},
	CaretEqualsToken:                             {"CaretEqualsToken", "^="},

	Identifier:            {"Identifier", ""},
	PrivateIdentifier:     {"PrivateIdentifier", ""},
	JSDocCommentTextToken: {"JSDocCommentTextToken", ""},

	BreakKeyword:      {"BreakKeyword", "break"},
	CaseKeyword:       {"CaseKeyword", "case"},
	CatchKeyword:      {"CatchKeyword", "catch"},
	ClassKeyword:      {"ClassKeyword", "class"},
	ConstKeyword:      {"ConstKeyword", "const"},
	ContinueKeyword:   {"ContinueKeyword", "continue"},
	DebuggerKeyword:   {"DebuggerKeyword", "debugger"},
	DefaultKeyword:    {"DefaultKeyword", "default"},
	DeleteKeyword:     {"DeleteKeyword", "delete"},
	DoKeyword:         {"DoKeyword", "do"},
	ElseKeyword:       {"ElseKeyword", "else"},
	EnumKeyword:       {"EnumKeyword", "enum"},
	ExportKeyword:     {"ExportKeyword", "export"},
	ExtendsKeyword:    {"ExtendsKeyword", "extends"},
	FalseKeyword:      {"FalseKeyword", "false"},
	FinallyKeyword:    {"FinallyKeyword", "finally"},
	ForKeyword:        {"ForKeyword", "for"},
	FunctionKeyword:   {"FunctionKeyword", "function"},
	IfKeyword:         {"IfKeyword", "if"},
	ImportKeyword:     {"ImportKeyword", "import"},
	InKeyword:         {"InKeyword", "in"},
	InstanceOfKeyword: {"InstanceOfKeyword", "instanceof"},
	NewKeyword:        {"NewKeyword", "new"},
	NullKeyword:       {"NullKeyword", "null"},
	ReturnKeyword:     {"ReturnKeyword", "return"},
	SuperKeyword:      {"SuperKeyword", "super"},
	SwitchKeyword:     {"SwitchKeyword", "switch"},
	ThisKeyword:       {"ThisKeyword", "this"},
	ThrowKeyword:      {"ThrowKeyword", "throw"},
	TrueKeyword:       {"TrueKeyword", "true"},
	TryKeyword:        {"TryKeyword", "try"},
	TypeOfKeyword:     {"TypeOfKeyword", "typeof"},
	VarKeyword:        {"VarKeyword", "var"},
	VoidKeyword:       {"VoidKeyword", "void"},
	WhileKeyword:      {"WhileKeyword", "while"},
	WithKeyword:       {"WithKeyword", "with"},

	ImplementsKeyword: {"ImplementsKeyword", "implements"},
	InterfaceKeyword:  {"InterfaceKeyword", "interface"},
	LetKeyword:        {"LetKeyword", "let"},
	PackageKeyword:    {"PackageKeyword", "package"},
	PrivateKeyword:    {"PrivateKeyword", "private"},
	ProtectedKeyword:  {"ProtectedKeyword", "protected"},
	PublicKeyword:     {"PublicKeyword", "public"},
	StaticKeyword:     {"StaticKeyword", "static"},
	YieldKeyword:      {"YieldKeyword", "yield"},

	AbstractKeyword:    {"AbstractKeyword", "abstract"},
	AccessorKeyword:    {"AccessorKeyword", "accessor"},
	AsKeyword:          {"AsKeyword", "as"},
	AssertsKeyword:     {"AssertsKeyword", "asserts"},
	AssertKeyword:      {"AssertKeyword", "assert"},
	AnyKeyword:         {"AnyKeyword", "any"},
	AsyncKeyword:       {"AsyncKeyword", "async"},
	AwaitKeyword:       {"AwaitKeyword", "await"},
	BooleanKeyword:     {"BooleanKeyword", "boolean"},
	ConstructorKeyword: {"ConstructorKeyword", "constructor"},
	DeclareKeyword:     {"DeclareKeyword", "declare"},
	GetKeyword:         {"GetKeyword", "get"},
	ImmediateKeyword:   {"ImmediateKeyword", "immediate"},
	InferKeyword:       {"InferKeyword", "infer"},
	IntrinsicKeyword:   {"IntrinsicKeyword", "intrinsic"},
	IsKeyword:          {"IsKeyword", "is"},
	KeyOfKeyword:       {"KeyOfKeyword", "keyof"},
	ModuleKeyword:      {"ModuleKeyword", "module"},
	NamespaceKeyword:   {"NamespaceKeyword", "namespace"},
	NeverKeyword:       {"NeverKeyword", "never"},
	OutKeyword:         {"OutKeyword", "out"},
	ReadonlyKeyword:    {"ReadonlyKeyword", "readonly"},
	RequireKeyword:     {"RequireKeyword", "require"},
	NumberKeyword:      {"NumberKeyword", "number"},
	ObjectKeyword:      {"ObjectKeyword", "object"},
	SatisfiesKeyword:   {"SatisfiesKeyword", "satisfies"},
	SetKeyword:         {"SetKeyword", "set"},
	StringKeyword:      {"StringKeyword", "string"},
	SymbolKeyword:      {"SymbolKeyword", "symbol"},
	TypeKeyword:        {"TypeKeyword", "type"},
	UndefinedKeyword:   {"UndefinedKeyword", "undefined"},
	UniqueKeyword:      {"UniqueKeyword", "unique"},
	UnknownKeyword:     {"UnknownKeyword", "unknown"},
	UsingKeyword:       {"UsingKeyword", "using"},
	FromKeyword:        {"FromKeyword", "from"},
	GlobalKeyword:      {"GlobalKeyword", "global"},
	BigIntKeyword:      {"BigIntKeyword", "bigint"},
	OverrideKeyword:    {"OverrideKeyword", "override"},
	OfKeyword:          {"OfKeyword", "of"},
}

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, LastKeyword-FirstKeyword+1)
	for k := FirstKeyword; k <= LastKeyword; k++ {
		keywords[kinds[k].text] = k
	}
}

// String returns the name of the kind, or "Kind(n)" for values outside the
// catalog.
//
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// Text returns the source spelling of fixed tokens (punctuation and keywords)
// and an empty string for all other kinds.
//
func (k Kind) Text() string {
	if k < 0 || k >= kindCount {
		return ""
	}
	return kinds[k].text
}

// IsPunctuation reports whether k is a punctuation or operator token.
//
func (k Kind) IsPunctuation() bool { return k >= FirstPunctuation && k <= LastPunctuation }

// IsAssignment reports whether k is an assignment operator.
//
func (k Kind) IsAssignment() bool { return k >= FirstAssignment && k <= LastAssignment }

// IsCompoundAssignment reports whether k is an assignment operator other than '='.
//
func (k Kind) IsCompoundAssignment() bool {
	return k >= FirstCompoundAssignment && k <= LastCompoundAssignment
}

// IsBinaryOperator reports whether k can be used as a binary operator.
//
func (k Kind) IsBinaryOperator() bool {
	return k >= FirstBinaryOperator && k <= LastBinaryOperator
}

// IsLiteral reports whether k is a literal token.
//
func (k Kind) IsLiteral() bool { return k >= FirstLiteralToken && k <= LastLiteralToken }

// IsTemplate reports whether k is part of a template literal.
//
func (k Kind) IsTemplate() bool { return k >= FirstTemplateToken && k <= LastTemplateToken }

// IsTrivia reports whether k is a trivia token (comments, whitespace,
// newlines and markers).
//
func (k Kind) IsTrivia() bool { return k >= FirstTriviaToken && k <= LastTriviaToken }

// IsComment reports whether k is any of the comment kinds.
//
func (k Kind) IsComment() bool {
	return k == SingleLineCommentTrivia || k == MultiLineCommentTrivia || k == JSDocCommentTrivia
}

// IsKeyword reports whether k is a reserved, future reserved or contextual
// keyword.
//
func (k Kind) IsKeyword() bool { return k >= FirstKeyword && k <= LastKeyword }

// IsReservedWord reports whether k is a reserved word.
//
func (k Kind) IsReservedWord() bool { return k >= FirstReservedWord && k <= LastReservedWord }

// IsContextualKeyword reports whether k is a contextual keyword.
//
func (k Kind) IsContextualKeyword() bool {
	return k >= FirstContextualKeyword && k <= LastContextualKeyword
}

// Lookup maps an identifier to its keyword kind, or Identifier if ident is
// not a keyword.
//
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

