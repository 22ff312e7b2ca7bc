// Package lang provides declarative, TOML-backed language rule tables: an
// implementation of sakura.LanguageRules built from data rather than code,
// so a new language or a tuned ruleset needs a config file, not a rebuild.
package lang

import "fmt"

// LanguageConfig is the TOML schema a language's rule file must match.
type LanguageConfig struct {
	Metadata         MetadataConfig         `toml:"metadata"`
	Terminators      TerminatorConfig       `toml:"terminators"`
	Ellipsis         EllipsisConfig         `toml:"ellipsis"`
	Enclosures       EnclosureConfig        `toml:"enclosures"`
	Suppression      SuppressionConfig      `toml:"suppression"`
	Abbreviations    AbbreviationConfig     `toml:"abbreviations"`
	SentenceStarters SentenceStartersConfig `toml:"sentence_starters"`
}

// SentenceStartersConfig is an optional section listing words/categories
// that tend to start a new sentence, for callers doing starter-aware
// post-processing. Recognized for schema compatibility; see DESIGN.md for
// why it is not yet consulted by ConfigurableLanguageRules.
type SentenceStartersConfig struct {
	RequireFollowingSpace bool                `toml:"require_following_space"`
	MinWordLength         int                 `toml:"min_word_length"`
	Categories            map[string][]string `toml:"-"`
}

// UnmarshalTOML collects the section's free-form category keys the same
// way AbbreviationConfig does, alongside its two fixed fields.
func (s *SentenceStartersConfig) UnmarshalTOML(data interface{}) error {
	raw, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("lang: sentence_starters table has unexpected shape %T", data)
	}
	s.Categories = make(map[string][]string)
	for key, v := range raw {
		switch key {
		case "require_following_space":
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("lang: sentence_starters.require_following_space must be a bool")
			}
			s.RequireFollowingSpace = b
		case "min_word_length":
			n, ok := v.(int64)
			if !ok {
				return fmt.Errorf("lang: sentence_starters.min_word_length must be an integer")
			}
			s.MinWordLength = int(n)
		default:
			items, ok := v.([]interface{})
			if !ok {
				return fmt.Errorf("lang: sentence_starters.%s must be a list of strings", key)
			}
			words := make([]string, 0, len(items))
			for _, item := range items {
				word, ok := item.(string)
				if !ok {
					return fmt.Errorf("lang: sentence_starters.%s contains a non-string entry", key)
				}
				words = append(words, word)
			}
			s.Categories[key] = words
		}
	}
	return nil
}

// MetadataConfig identifies the language a config describes.
type MetadataConfig struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
}

// TerminatorConfig lists sentence-terminating characters, plus optional
// compound multi-character terminator patterns (e.g. "!?").
type TerminatorConfig struct {
	Chars    []string            `toml:"chars"`
	Patterns []TerminatorPattern `toml:"patterns"`
}

// TerminatorPattern names a multi-character terminator sequence. Recognized
// for schema compatibility with the declarative language rules format;
// see DESIGN.md for why it is not yet consulted by the scan loop.
type TerminatorPattern struct {
	Pattern string `toml:"pattern"`
	Name    string `toml:"name"`
}

// EllipsisConfig controls how a run of dots (or other configured ellipsis
// glyphs) is treated, plus optional context-sensitive overrides.
type EllipsisConfig struct {
	TreatAsBoundary bool            `toml:"treat_as_boundary"`
	Patterns        []string        `toml:"patterns"`
	ContextRules    []ContextRule   `toml:"context_rules"`
	Exceptions      []ExceptionRule `toml:"exceptions"`
}

// ContextRule overrides TreatAsBoundary when Condition holds. Recognized
// for schema compatibility; see DESIGN.md.
type ContextRule struct {
	Condition string `toml:"condition"`
	Boundary  bool   `toml:"boundary"`
}

// ExceptionRule overrides the ellipsis boundary decision when Regex
// matches the surrounding text. Recognized for schema compatibility; see
// DESIGN.md.
type ExceptionRule struct {
	Regex    string `toml:"regex"`
	Boundary bool   `toml:"boundary"`
}

// EnclosureConfig lists the enclosure pairs (brackets, quotes) a language
// recognizes.
type EnclosureConfig struct {
	Pairs []EnclosurePair `toml:"pairs"`
}

// EnclosurePair is one opener/closer pair. Symmetric pairs use the same
// glyph for Open and Close (quotation marks); Open != Close is an
// asymmetric pair (brackets, parentheses).
type EnclosurePair struct {
	Open      string `toml:"open"`
	Close     string `toml:"close"`
	Symmetric bool   `toml:"symmetric"`
}

// SuppressionConfig lists fast local patterns that veto an otherwise
// legitimate candidate boundary (contractions, possessives, and similar),
// plus optional regex-based patterns for cases the fast table can't
// express.
type SuppressionConfig struct {
	FastPatterns  []FastPattern  `toml:"fast_patterns"`
	RegexPatterns []RegexPattern `toml:"regex_patterns"`
}

// RegexPattern is a suppression rule expressed as a regular expression
// rather than a fast character-class pattern. Recognized for schema
// compatibility; see DESIGN.md for why it is not yet consulted by Suppress.
type RegexPattern struct {
	Pattern     string `toml:"pattern"`
	Description string `toml:"description"`
}

// FastPattern is one suppression rule: Char must match the boundary's
// trigger character, with optional Before/After character-class
// constraints ("alpha", "alnum", "digit") and an optional LineStart
// requirement.
type FastPattern struct {
	Char      string `toml:"char"`
	LineStart bool   `toml:"line_start"`
	Before    string `toml:"before"`
	After     string `toml:"after"`
}

// AbbreviationConfig groups abbreviations into named categories (titles,
// units, …); the category name is metadata only, every entry feeds the same
// lookup trie.
type AbbreviationConfig struct {
	Categories map[string][]string `toml:"-"`
}

// UnmarshalTOML implements toml.Unmarshaler so AbbreviationConfig can
// collect the config file's free-form `[abbreviations]` table — every key
// under it is a category name, and BurntSushi/toml hands us the whole table
// as a generic map.
func (a *AbbreviationConfig) UnmarshalTOML(data interface{}) error {
	raw, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("lang: abbreviations table has unexpected shape %T", data)
	}
	a.Categories = make(map[string][]string, len(raw))
	for category, v := range raw {
		items, ok := v.([]interface{})
		if !ok {
			return fmt.Errorf("lang: abbreviations.%s must be a list of strings", category)
		}
		words := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("lang: abbreviations.%s contains a non-string entry", category)
			}
			words = append(words, s)
		}
		a.Categories[category] = words
	}
	return nil
}

// Validate reports a config problem that would make building rules from it
// unsafe: no terminator characters at all, or more enclosure pairs than a
// uint8 TypeID and DeltaVec width can index.
func (c LanguageConfig) Validate() error {
	if len(c.Terminators.Chars) == 0 {
		return fmt.Errorf("lang: %s: at least one terminator character is required", c.Metadata.Code)
	}
	if len(c.Enclosures.Pairs) > 255 {
		return fmt.Errorf("lang: %s: at most 255 enclosure pairs are supported, got %d", c.Metadata.Code, len(c.Enclosures.Pairs))
	}
	for _, p := range c.Enclosures.Pairs {
		if p.Open == "" || p.Close == "" {
			return fmt.Errorf("lang: %s: enclosure pair open/close must not be empty", c.Metadata.Code)
		}
	}
	return nil
}
