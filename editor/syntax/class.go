package syntax

import (
	"fmt"
	"strings"
)

// Class is the highlight category of one render column.
type Class uint8

const (
	ClassPlain Class = iota
	ClassNumber
	ClassString
	ClassComment
	ClassKeywordPrimary
	ClassKeywordSecondary
	ClassKeywordTertiary
	ClassSearchMatch

	// NumClasses is the number of classes.
	NumClasses = int(ClassSearchMatch) + 1
)

var classNames = [...]string{
	ClassPlain:            "plain",
	ClassNumber:           "number",
	ClassString:           "string",
	ClassComment:          "comment",
	ClassKeywordPrimary:   "keyword-primary",
	ClassKeywordSecondary: "keyword-secondary",
	ClassKeywordTertiary:  "keyword-tertiary",
	ClassSearchMatch:      "search-match",
}

// Classes lists every class in declaration order.
var Classes = []Class{
	ClassPlain,
	ClassNumber,
	ClassString,
	ClassComment,
	ClassKeywordPrimary,
	ClassKeywordSecondary,
	ClassKeywordTertiary,
	ClassSearchMatch,
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// ParseClass resolves a class by its String form. '_' is accepted in place
// of '-' so the names can be used as TOML keys.
func ParseClass(name string) (Class, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	for i, n := range classNames {
		if n == key {
			return Class(i), nil
		}
	}
	return ClassPlain, fmt.Errorf("unknown highlight class %q", name)
}
