package nlsql

import "strings"

// Replacements applied to transcribed voice input before it reaches the
// model. Order matters: earlier rules run first and later rules see their
// output. Number-word fixes come first, then command-verb normalization,
// then filler removal.
var voiceCorrections = []struct {
	from string
	to   string
}{
	{"to", "2"}, {"too", "2"}, {"two", "2"},
	{"for", "4"}, {"four", "4"}, {"fore", "4"},
	{"won", "1"}, {"one", "1"},
	{"tree", "3"}, {"three", "3"},
	{"ate", "8"}, {"eight", "8"},
	{"nine", "9"}, {"nein", "9"},
	{"how many", "count"}, {"show me", "select"}, {"give me", "select"},
	{"find", "select"}, {"get", "select"}, {"list", "select"}, {"tell me", "select"},
	{"policies", "policy"}, {"claims", "claim"}, {"persons", "person"},
	{"um", ""}, {"uh", ""}, {"like", ""}, {"you know", ""}, {"please", ""},
	{"can you", ""}, {"could you", ""}, {"i want", ""}, {"i need", ""}, {"i would like", ""},
}

// Preprocess cleans transcribed voice input to make it more SQL-friendly:
// lowercases, applies the correction table, collapses whitespace and
// capitalizes the first letter.
func Preprocess(text string) string {
	if text == "" {
		return text
	}

	text = strings.ToLower(strings.TrimSpace(text))

	for _, c := range voiceCorrections {
		text = strings.ReplaceAll(text, c.from, c.to)
	}

	text = strings.Join(strings.Fields(text), " ")

	if text != "" {
		text = strings.ToUpper(text[:1]) + text[1:]
	}

	return text
}
