package syntax

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrMalformedLexicon = errors.New("malformed lexicon")

// Tier ranks a keyword. The tier is decided where the keyword is declared
// and selects the highlight class its matches get.
type Tier uint8

const (
	TierPrimary Tier = iota
	TierSecondary
	TierTertiary
)

// Class returns the highlight class for keywords of tier t.
func (t Tier) Class() Class {
	switch t {
	case TierSecondary:
		return ClassKeywordSecondary
	case TierTertiary:
		return ClassKeywordTertiary
	default:
		return ClassKeywordPrimary
	}
}

// Flags toggle optional parts of the scan.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

type Keyword struct {
	Word string
	Tier Tier
}

// Keywords declares words that all share tier.
func Keywords(tier Tier, words ...string) []Keyword {
	out := make([]Keyword, 0, len(words))
	for _, w := range words {
		out = append(out, Keyword{Word: w, Tier: tier})
	}
	return out
}

// Lexicon is the language description the scan runs against.
type Lexicon struct {
	// Filetype is the name shown in the status bar.
	Filetype string
	// FileMatch holds patterns matched against a filename. Patterns starting
	// with '.' must equal the extension, all others match as a substring.
	FileMatch []string
	Keywords  []Keyword
	// CommentMarker starts a comment running to the end of the row. Empty
	// disables comments.
	CommentMarker string
	Flags         Flags
}

// Validate reports ErrMalformedLexicon for entries the scan cannot use.
func (l *Lexicon) Validate() error {
	if l.Filetype == "" {
		return fmt.Errorf("%w: empty filetype", ErrMalformedLexicon)
	}
	for i, p := range l.FileMatch {
		if p == "" {
			return fmt.Errorf("%w: %s: empty file match at %d",
				ErrMalformedLexicon, l.Filetype, i)
		}
	}
	for i, kw := range l.Keywords {
		if kw.Word == "" {
			return fmt.Errorf("%w: %s: zero-length keyword at %d",
				ErrMalformedLexicon, l.Filetype, i)
		}
		if kw.Tier > TierTertiary {
			return fmt.Errorf("%w: %s: keyword %q has unknown tier %d",
				ErrMalformedLexicon, l.Filetype, kw.Word, kw.Tier)
		}
	}
	return nil
}

// Matches reports whether filename selects this lexicon.
func (l *Lexicon) Matches(filename string) bool {
	ext := filepath.Ext(filename)
	for _, p := range l.FileMatch {
		isExt := strings.HasPrefix(p, ".")
		if (isExt && ext == p) || (!isExt && strings.Contains(filename, p)) {
			return true
		}
	}
	return false
}

// SelectFrom returns the first lexicon in db matching filename, or nil when
// there is none. A matching lexicon that fails validation is an error.
func SelectFrom(db []*Lexicon, filename string) (*Lexicon, error) {
	if filename == "" {
		return nil, nil
	}
	for _, l := range db {
		if !l.Matches(filename) {
			continue
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, nil
}

// Select picks a lexicon for filename from Database.
func Select(filename string) (*Lexicon, error) {
	return SelectFrom(Database, filename)
}
