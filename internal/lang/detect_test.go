package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: English},
		{name: "plain english", text: "I have been feeling anxious lately", want: English},
		{name: "romanized hindi", text: "mujhe bahut dukh hai", want: Hindi},
		{name: "devanagari hindi", text: "मुझे नींद नहीं आती", want: Hindi},
		{name: "uppercase romanized hindi", text: "MUJHE DARD", want: Hindi},
		{name: "devanagari marathi", text: "मला झोप येत नाही", want: Marathi},
		{name: "romanized marathi", text: "majhe dokhe dukhta aahe", want: Marathi},
		{name: "tie falls back to english", text: "mujhe aahe", want: English},
		{name: "substring inside a word counts", text: "the bahutness of it", want: Hindi},
		{name: "english symptom text", text: "I need a standard checkup for my cough", want: English},
		{name: "romanized marathi pain", text: "my pot dukhta", want: Marathi},
		{name: "romanized hindi sadness", text: "main bahut dukhi hoon", want: Hindi},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Detect(tc.text))
		})
	}
}

func TestDetectCountsOccurrences(t *testing.T) {
	t.Parallel()

	// Two Hindi occurrences against one Marathi keyword.
	require.Equal(t, Hindi, Detect("mujhe mujhe aahe"))
	require.Equal(t, Marathi, Detect("mujhe aahe aahe"))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	require.Equal(t, Hindi, Resolve(Hindi, "en"))
	require.Equal(t, Marathi, Resolve(Marathi, ""))
	require.Equal(t, "es", Resolve(English, "es"))
	require.Equal(t, "es", Resolve(English, " ES "))
	require.Equal(t, English, Resolve(English, Auto))
	require.Equal(t, English, Resolve(English, ""))
	require.Equal(t, English, Resolve("", ""))
}
