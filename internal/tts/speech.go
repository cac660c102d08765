package tts

import (
	"strings"

	"medibuddy/internal/random"
)

var fillers = []string{"um ", "uh ", "hmm ", "well ", "you know ", "I mean "}

// AddSpeechMarkers lengthens sentence pauses and, for longer texts, sometimes
// starts a later sentence with a filler word.
func AddSpeechMarkers(text string, rng random.Source) string {
	text = strings.ReplaceAll(text, ". ", "... ")

	if len(text) <= 50 || rng.Float64() <= 0.6 {
		return text
	}

	sentences := strings.Split(text, ". ")
	if len(sentences) < 2 {
		return text
	}

	i := 1 + rng.IntN(len(sentences)-1)
	sentences[i] = fillers[rng.IntN(len(fillers))] + sentences[i]
	return strings.Join(sentences, ". ")
}

const DefaultVariant = "en-US"

// variants lists the regional voices for each supported language.
var variants = map[string][]string{
	"en":    {"en-AU", "en-GB", "en-US", "en-CA", "en-IN"},
	"hi":    {"hi-IN"},
	"mr":    {"mr-IN"},
	"es":    {"es-ES", "es-US"},
	"fr":    {"fr-FR", "fr-CA"},
	"de":    {"de-DE"},
	"ja":    {"ja-JP"},
	"ko":    {"ko-KR"},
	"zh-CN": {"cmn-CN"},
	"ru":    {"ru-RU"},
	"pt":    {"pt-BR", "pt-PT"},
	"it":    {"it-IT"},
	"nl":    {"nl-NL"},
	"pl":    {"pl-PL"},
	"sv":    {"sv-SE"},
	"tr":    {"tr-TR"},
}

// ChooseVariant picks a regional voice for language uniformly at random.
// Unknown languages get DefaultVariant.
func ChooseVariant(language string, rng random.Source) string {
	options, ok := variants[language]
	if !ok || len(options) == 0 {
		return DefaultVariant
	}
	return options[rng.IntN(len(options))]
}
