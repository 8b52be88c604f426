package debate

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"One. Two! Three?", []string{"One.", "Two!", "Three?"}},
		{"Just one sentence.", []string{"Just one sentence."}},
		{"No terminal punctuation", []string{"No terminal punctuation"}},
		{"Wait... really? Yes.", []string{"Wait...", "really?", "Yes."}},
		{"Spaces   collapse.  Then split.", []string{"Spaces collapse.", "Then split."}},
		{"", nil},
	}
	for _, tc := range cases {
		got := SplitSentences(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitSentences(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestKeySentence(t *testing.T) {
	key, rest := KeySentence("")
	if key != "" || rest != "" {
		t.Fatalf("empty content: key=%q rest=%q", key, rest)
	}

	key, rest = KeySentence("Only sentence here.")
	if key != "Only sentence here." || rest != "" {
		t.Fatalf("single sentence: key=%q rest=%q", key, rest)
	}

	content := "Short. This considerably longer sentence carries the substantial core argument of the whole message. End."
	key, rest = KeySentence(content)
	if key != "This considerably longer sentence carries the substantial core argument of the whole message." {
		t.Fatalf("unexpected key sentence: %q", key)
	}
	if rest != "Short. End." {
		t.Fatalf("unexpected rest: %q", rest)
	}
}
