package password

// Generate produces a random password from cfg using src for randomness.
// A nil src falls back to the crypto/rand source.
//
// Each enabled category is guaranteed at least one character in the result
// as long as the length allows it: min(categories, length) slots are filled
// round-robin over the enabled categories before the rest of the password is
// drawn from the combined pool, and the whole buffer is shuffled so the
// guaranteed characters are not positionally predictable.
//
// Returns "" when no category is enabled or the length is not positive.
// The empty result is the only failure signal; callers must check for it.
func Generate(cfg Config, src Source) string {
	if src == nil {
		src = CryptoSource()
	}
	if cfg.Length <= 0 {
		return ""
	}

	pool := BuildPool(cfg)
	if pool == "" {
		return ""
	}

	sets := cfg.enabledSets()
	required := len(sets)
	if cfg.Length < required {
		required = cfg.Length
	}

	out := make([]byte, 0, cfg.Length)

	// Guaranteed slots: slot i draws from category i mod len(sets). The
	// category sequences are not pre-filtered for ambiguous characters, so
	// resample until the draw is clean; the categories always keep at least
	// one unambiguous member, so this terminates.
	for i := 0; i < required; i++ {
		chars := sets[i%len(sets)].chars
		ch := chars[src.Intn(len(chars))]
		for cfg.ExcludeAmbiguous && isAmbiguous(ch) {
			ch = chars[src.Intn(len(chars))]
		}
		out = append(out, ch)
	}

	// Remaining slots draw from the pool, which is already filtered.
	for len(out) < cfg.Length {
		out = append(out, pool[src.Intn(len(pool))])
	}

	shuffle(out, src)
	return string(out)
}

// shuffle is a Fisher-Yates shuffle over the candidate buffer.
func shuffle(b []byte, src Source) {
	for i := len(b) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}
