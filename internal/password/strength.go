package password

import (
	"math"
	"strings"
)

// Label is the coarse display bucket for a strength score.
type Label string

const (
	VeryWeak Label = "Very weak"
	Weak     Label = "Weak"
	Medium   Label = "Medium"
	Strong   Label = "Strong"
)

// Strength is the 0-100 display score of a password, with its label.
type Strength struct {
	Score int   `json:"score"`
	Label Label `json:"label"`
}

// weakTokens force the score to the floor when the password starts with one
// of them, case-insensitively. Prefix match only.
var weakTokens = []string{"password", "1234", "qwerty", "admin"}

// Evaluate scores text for display purposes. Deterministic: length earns up
// to 40 points (short strings below 6 runes pull the total down), each
// present character class (lower, upper, digit, anything else) earns 15, a
// character repeated three or more times in a row costs 10, and a weak-token
// prefix overrides everything to a score of 5. The result is clamped to
// [0, 100] and rounded.
func Evaluate(text string) Strength {
	if text == "" {
		return Strength{Score: 0, Label: VeryWeak}
	}

	runes := []rune(text)
	score := math.Min(40, float64(len(runes)-6)*3.33)

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			score += 15
		}
	}

	if hasRepeatRun(runes) {
		score -= 10
	}

	lower := strings.ToLower(text)
	for _, token := range weakTokens {
		if strings.HasPrefix(lower, token) {
			score = 5
			break
		}
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	final := int(math.Round(score))
	return Strength{Score: final, Label: labelFor(final)}
}

// hasRepeatRun reports whether any rune repeats 3+ times consecutively.
func hasRepeatRun(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func labelFor(score int) Label {
	switch {
	case score >= 80:
		return Strong
	case score >= 60:
		return Medium
	case score >= 30:
		return Weak
	default:
		return VeryWeak
	}
}
