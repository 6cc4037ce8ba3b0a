package password

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are visually confusable with each other (0/O, 1/l/I)
	// and can be excluded from generation.
	AmbiguousChars = "0O1lI"
)

// categorySet pairs a category identifier with its fixed member characters.
// The slice order below is the round-robin order for guaranteed slots.
type categorySet struct {
	name  string
	chars string
}

var categorySets = []categorySet{
	{"uppercase", uppercaseChars},
	{"lowercase", lowercaseChars},
	{"digits", digitChars},
	{"symbols", symbolChars},
}

// Config controls a single generation run. At least one category must be
// enabled for a non-empty result.
type Config struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultConfig returns sensible defaults: 16 characters with all categories
// enabled and ambiguous characters kept.
func DefaultConfig() Config {
	return Config{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// enabledSets returns the member sequences of the enabled categories in the
// fixed category order.
func (c Config) enabledSets() []categorySet {
	sets := make([]categorySet, 0, len(categorySets))
	for _, enabled := range []struct {
		on  bool
		set categorySet
	}{
		{c.Uppercase, categorySets[0]},
		{c.Lowercase, categorySets[1]},
		{c.Digits, categorySets[2]},
		{c.Symbols, categorySets[3]},
	} {
		if enabled.on {
			sets = append(sets, enabled.set)
		}
	}
	return sets
}

// EnabledCategories reports how many categories the config enables.
func (c Config) EnabledCategories() int {
	return len(c.enabledSets())
}

// BuildPool assembles the pool of candidate characters: each enabled
// category's full sequence concatenated in category order. Characters shared
// between categories are kept as-is, so sampling frequency follows category
// membership. When ExcludeAmbiguous is set, every occurrence of an ambiguous
// character is removed. Returns "" when no category is enabled, which callers
// must treat as "cannot generate".
func BuildPool(cfg Config) string {
	var pool string
	for _, set := range cfg.enabledSets() {
		pool += set.chars
	}
	if !cfg.ExcludeAmbiguous {
		return pool
	}

	filtered := make([]byte, 0, len(pool))
	for i := 0; i < len(pool); i++ {
		if !isAmbiguous(pool[i]) {
			filtered = append(filtered, pool[i])
		}
	}
	return string(filtered)
}

func isAmbiguous(ch byte) bool {
	return strings.IndexByte(AmbiguousChars, ch) >= 0
}
