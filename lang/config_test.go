package lang

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
[metadata]
code = "en"
name = "English"

[terminators]
chars = [".", "!", "?"]

[ellipsis]
treat_as_boundary = true
patterns = ["...", "…"]

[enclosures]
pairs = [
  { open = "(", close = ")" },
  { open = '"', close = '"', symmetric = true },
]

[suppression]
fast_patterns = [
  { char = "'", before = "alpha", after = "alpha" },
]

[abbreviations]
titles = ["Dr", "Mr", "Mrs"]
common = ["etc", "vs"]
`

func TestLanguageConfigDecodesFromTOML(t *testing.T) {
	var cfg LanguageConfig
	_, err := toml.Decode(sampleTOML, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Metadata.Code)
	assert.Equal(t, "English", cfg.Metadata.Name)
	assert.Len(t, cfg.Terminators.Chars, 3)
	assert.Len(t, cfg.Enclosures.Pairs, 2)
	assert.True(t, cfg.Enclosures.Pairs[1].Symmetric)
	assert.Len(t, cfg.Abbreviations.Categories["titles"], 3)
	assert.ElementsMatch(t, []string{"etc", "vs"}, cfg.Abbreviations.Categories["common"])
	assert.NoError(t, cfg.Validate())
}

func TestLanguageConfigValidateRejectsNoTerminators(t *testing.T) {
	cfg := LanguageConfig{Metadata: MetadataConfig{Code: "xx"}}
	assert.Error(t, cfg.Validate())
}

func TestLanguageConfigValidateRejectsTooManyEnclosurePairs(t *testing.T) {
	cfg := LanguageConfig{
		Metadata:    MetadataConfig{Code: "xx"},
		Terminators: TerminatorConfig{Chars: []string{"."}},
	}
	for i := 0; i < 256; i++ {
		cfg.Enclosures.Pairs = append(cfg.Enclosures.Pairs, EnclosurePair{Open: "(", Close: ")"})
	}
	assert.Error(t, cfg.Validate())
}

func TestLanguageConfigValidateRejectsEmptyEnclosureGlyph(t *testing.T) {
	cfg := LanguageConfig{
		Metadata:    MetadataConfig{Code: "xx"},
		Terminators: TerminatorConfig{Chars: []string{"."}},
		Enclosures:  EnclosureConfig{Pairs: []EnclosurePair{{Open: "", Close: ")"}}},
	}
	assert.Error(t, cfg.Validate())
}

const extendedSchemaTOML = `
[metadata]
code = "en"
name = "English"

[terminators]
chars = [".", "!", "?"]
patterns = [
  { pattern = "!?", name = "surprised_question" },
]

[ellipsis]
treat_as_boundary = true
patterns = ["...", "…"]
context_rules = [
  { condition = "followed_by_lowercase", boundary = false },
]
exceptions = [
  { regex = "\\betc\\.\\.\\.$", boundary = false },
]

[enclosures]
pairs = []

[suppression]
regex_patterns = [
  { pattern = "[A-Z]\\.$", description = "single initial" },
]

[abbreviations]

[sentence_starters]
require_following_space = true
min_word_length = 2
pronouns = ["He", "She", "They"]
`

func TestLanguageConfigDecodesExtendedSchemaSections(t *testing.T) {
	var cfg LanguageConfig
	_, err := toml.Decode(extendedSchemaTOML, &cfg)
	require.NoError(t, err)

	require.Len(t, cfg.Terminators.Patterns, 1)
	assert.Equal(t, "!?", cfg.Terminators.Patterns[0].Pattern)
	assert.Equal(t, "surprised_question", cfg.Terminators.Patterns[0].Name)

	require.Len(t, cfg.Ellipsis.ContextRules, 1)
	assert.False(t, cfg.Ellipsis.ContextRules[0].Boundary)
	require.Len(t, cfg.Ellipsis.Exceptions, 1)
	assert.Contains(t, cfg.Ellipsis.Exceptions[0].Regex, "etc")

	require.Len(t, cfg.Suppression.RegexPatterns, 1)
	assert.Equal(t, "single initial", cfg.Suppression.RegexPatterns[0].Description)

	assert.True(t, cfg.SentenceStarters.RequireFollowingSpace)
	assert.Equal(t, 2, cfg.SentenceStarters.MinWordLength)
	assert.ElementsMatch(t, []string{"He", "She", "They"}, cfg.SentenceStarters.Categories["pronouns"])

	assert.NoError(t, cfg.Validate())
}

func TestLanguageConfigSentenceStartersOptional(t *testing.T) {
	var cfg LanguageConfig
	_, err := toml.Decode(sampleTOML, &cfg)
	require.NoError(t, err)
	assert.Empty(t, cfg.SentenceStarters.Categories)
	assert.False(t, cfg.SentenceStarters.RequireFollowingSpace)
}
