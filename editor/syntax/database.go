package syntax

// Database is the static lexicon table consulted by Select.
var Database = []*Lexicon{
	{
		Filetype:  "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: concat(
			Keywords(TierPrimary,
				"int", "long", "double", "float", "char", "unsigned",
				"signed", "void", "short", "struct", "union", "enum",
				"typedef", "static", "const", "extern", "volatile"),
			Keywords(TierSecondary,
				"switch", "if", "while", "for", "break", "continue",
				"return", "else", "case", "default", "do", "goto"),
			Keywords(TierTertiary,
				"NULL", "true", "false", "sizeof"),
		),
		CommentMarker: "//",
		Flags:         HighlightNumbers | HighlightStrings,
	},
	{
		Filetype:  "go",
		FileMatch: []string{".go"},
		Keywords: concat(
			Keywords(TierPrimary,
				"bool", "byte", "complex64", "complex128", "error",
				"float32", "float64", "int", "int8", "int16", "int32",
				"int64", "rune", "string", "uint", "uint8", "uint16",
				"uint32", "uint64", "uintptr", "any"),
			Keywords(TierSecondary,
				"break", "case", "chan", "const", "continue", "default",
				"defer", "else", "fallthrough", "for", "func", "go", "goto",
				"if", "import", "interface", "map", "package", "range",
				"return", "select", "struct", "switch", "type", "var"),
			Keywords(TierTertiary,
				"true", "false", "nil", "iota", "append", "cap", "close",
				"copy", "delete", "len", "make", "new", "panic", "recover"),
		),
		CommentMarker: "//",
		Flags:         HighlightNumbers | HighlightStrings,
	},
	{
		Filetype:  "python",
		FileMatch: []string{".py"},
		Keywords: concat(
			Keywords(TierPrimary,
				"int", "float", "bool", "str", "bytes", "list", "dict",
				"set", "tuple", "object"),
			Keywords(TierSecondary,
				"and", "as", "assert", "break", "class", "continue", "def",
				"del", "elif", "else", "except", "finally", "for", "from",
				"global", "if", "import", "in", "is", "lambda", "nonlocal",
				"not", "or", "pass", "raise", "return", "try", "while",
				"with", "yield"),
			Keywords(TierTertiary,
				"True", "False", "None", "self", "len", "print", "range"),
		),
		CommentMarker: "#",
		Flags:         HighlightNumbers | HighlightStrings,
	},
}

func concat(groups ...[]Keyword) []Keyword {
	var out []Keyword
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
