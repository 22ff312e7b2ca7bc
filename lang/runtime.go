package lang

import "github.com/sakura-sbd/sakura"

// ConfigurableLanguageRules bridges a declarative LanguageConfig to
// sakura.LanguageRules's hot-path interface: every lookup is a table/trie
// hit built once at construction, never a config walk.
type ConfigurableLanguageRules struct {
	code string
	name string

	term       termTable
	enclosures encTable
	abbrevs    abbrevTrie
	ellipsis   ellipsisSet
	suppress   suppresser
}

// NewConfigurableLanguageRules builds a ConfigurableLanguageRules from cfg,
// which must already satisfy cfg.Validate().
func NewConfigurableLanguageRules(cfg LanguageConfig) (*ConfigurableLanguageRules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ConfigurableLanguageRules{
		code:       cfg.Metadata.Code,
		name:       cfg.Metadata.Name,
		term:       newTermTable(cfg.Terminators.Chars),
		enclosures: newEncTable(cfg.Enclosures.Pairs),
		abbrevs:    newAbbrevTrie(cfg.Abbreviations.Categories),
		ellipsis:   newEllipsisSet(cfg.Ellipsis.Patterns, cfg.Ellipsis.TreatAsBoundary),
		suppress:   newSuppresser(cfg.Suppression.FastPatterns),
	}, nil
}

// Code is the language code this ruleset was built from (e.g. "en").
func (r *ConfigurableLanguageRules) Code() string { return r.code }

// Name is the human-readable language name (e.g. "English").
func (r *ConfigurableLanguageRules) Name() string { return r.name }

func (r *ConfigurableLanguageRules) IsTerminator(ch rune) bool {
	return r.term.isTerminator(ch)
}

func (r *ConfigurableLanguageRules) EnclosureInfo(ch rune) (sakura.EnclosureInfo, bool) {
	return r.enclosures.get(ch)
}

func (r *ConfigurableLanguageRules) DotRole(prev, next rune) sakura.DotRole {
	if isASCIIDigit(prev) && isASCIIDigit(next) {
		return sakura.DecimalDot
	}
	if prev == '.' || next == '.' {
		return sakura.EllipsisTail
	}
	return sakura.Ordinary
}

func (r *ConfigurableLanguageRules) IsAbbreviation(window []byte, dotBytePos int) bool {
	return r.abbrevs.find(window, dotBytePos)
}

// Suppress combines the configured fast suppression patterns with the
// ellipsis table: a candidate that sits inside a configured, non-boundary
// ellipsis pattern is suppressed the same way a contraction apostrophe is.
func (r *ConfigurableLanguageRules) Suppress(text []byte, pos int) bool {
	if r.suppress.shouldSuppress(text, pos) {
		return true
	}
	if r.ellipsis.isEllipsisAt(text, pos-1) && !r.ellipsis.boundary() {
		return true
	}
	return false
}

func (r *ConfigurableLanguageRules) MaxEnclosurePairs() int {
	return r.enclosures.maxEnclosurePairs()
}

func (r *ConfigurableLanguageRules) EllipsisTreatAsBoundary() bool {
	return r.ellipsis.boundary()
}

func isASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
