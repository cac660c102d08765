package lang

import (
	"strings"
)

const (
	English = "en"
	Hindi   = "hi"
	Marathi = "mr"

	// Auto asks the speech service to detect the spoken language itself.
	Auto = "auto"
)

var hindiKeywords = []string{
	"मुझे", "क्योंकि", "नहीं", "बहुत", "मैं", "है",
	"mujhe", "kyunki", "nahin", "bahut", "dukhi", "mujhko",
}

var marathiKeywords = []string{
	"मला", "आहे", "माझे", "माझा", "तुम्ही", "काय",
	"aahe", "majhe", "majha", "tumhi", "kaay", "dukhta",
}

// Detect classifies text as English, Hindi or Marathi by counting keyword
// occurrences. Matching is plain substring counting on the lowercased text;
// a tie (including no matches at all) resolves to English.
func Detect(text string) string {
	text = strings.ToLower(text)

	hindiCount := countMatches(text, hindiKeywords)
	marathiCount := countMatches(text, marathiKeywords)

	switch {
	case hindiCount > marathiCount:
		return Hindi
	case marathiCount > hindiCount:
		return Marathi
	default:
		return English
	}
}

// Resolve picks the language a request is answered in. A non-English
// detection overrides the caller's hint; otherwise a concrete hint wins and
// English is the default.
func Resolve(detected, hint string) string {
	if detected != "" && detected != English {
		return detected
	}
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint != "" && hint != Auto {
		return hint
	}
	return English
}

func countMatches(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		count += strings.Count(text, keyword)
	}
	return count
}
