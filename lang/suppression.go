package lang

import "unicode"

type charClass uint8

const (
	classNone charClass = iota
	classAlpha
	classAlnum
	classDigit
)

func parseCharClass(s string) charClass {
	switch s {
	case "alpha":
		return classAlpha
	case "alnum":
		return classAlnum
	case "digit":
		return classDigit
	default:
		return classNone
	}
}

func (c charClass) matches(ch rune) bool {
	switch c {
	case classAlpha:
		return unicode.IsLetter(ch)
	case classAlnum:
		return unicode.IsLetter(ch) || unicode.IsDigit(ch)
	case classDigit:
		return unicode.IsDigit(ch)
	default:
		return false
	}
}

// suppressPattern is one fast local suppression rule: Char must match the
// candidate's trigger character, with optional before/after class gates and
// an optional line-start requirement.
type suppressPattern struct {
	char      rune
	lineStart bool
	before    charClass
	after     charClass
}

// suppresser evaluates a candidate boundary against every configured
// suppressPattern.
type suppresser struct {
	patterns []suppressPattern
}

func newSuppresser(cfgs []FastPattern) suppresser {
	s := suppresser{patterns: make([]suppressPattern, 0, len(cfgs))}
	for _, c := range cfgs {
		if c.Char == "" {
			continue
		}
		s.patterns = append(s.patterns, suppressPattern{
			char:      []rune(c.Char)[0],
			lineStart: c.LineStart,
			before:    parseCharClass(c.Before),
			after:     parseCharClass(c.After),
		})
	}
	return s
}

// shouldSuppress reports whether the candidate boundary ending at byte
// position pos in text must be dropped. pos is the byte offset immediately
// after the trigger character, matching sakura.LanguageRules.Suppress's
// contract.
func (s suppresser) shouldSuppress(text []byte, pos int) bool {
	if pos <= 0 || pos > len(text) {
		return false
	}
	runes := []rune(string(text))
	charPos := len([]rune(string(text[:pos])))
	if charPos == 0 || charPos > len(runes) {
		return false
	}
	ch := runes[charPos-1]

	for _, p := range s.patterns {
		if p.char != ch {
			continue
		}
		if p.lineStart && charPos > 1 && runes[charPos-2] != '\n' {
			continue
		}
		if p.before != classNone {
			if charPos < 2 || !p.before.matches(runes[charPos-2]) {
				continue
			}
		}
		if p.after != classNone {
			if charPos >= len(runes) || !p.after.matches(runes[charPos]) {
				continue
			}
		}
		return true
	}
	return false
}
