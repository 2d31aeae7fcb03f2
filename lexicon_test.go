package skrafl

import "testing"

func TestLexiconAddExists(t *testing.T) {
	cases := []struct {
		words []string
		query string
		want  bool
	}{
		{[]string{"CAT", "CATS", "DOG"}, "CAT", true},
		{[]string{"CAT", "CATS", "DOG"}, "CA", false},
		{[]string{"CAT", "CATS", "DOG"}, "DOGS", false},
		{[]string{"CAT", "CATS", "DOG"}, "dog", true},
		{[]string{}, "CAT", false},
	}
	for _, c := range cases {
		lex := NewLexiconFromWords(c.words)
		if got := lex.Exists(c.query); got != c.want {
			t.Errorf("Exists(%q) with words %v = %v, want %v", c.query, c.words, got, c.want)
		}
	}
}

func TestLexiconDescend(t *testing.T) {
	lex := NewLexiconFromWords([]string{"CAT", "CATS", "CAR"})
	node, ok := lex.Descend("CA")
	if !ok {
		t.Fatalf("Descend(\"CA\") failed, want success")
	}
	if node.Final() {
		t.Errorf("node at CA should not be final")
	}
	next := node.NextLetters()
	if len(next) != 2 {
		t.Errorf("NextLetters() at CA = %v, want 2 letters (R, T)", next)
	}

	if _, ok := lex.Descend("CZ"); ok {
		t.Errorf("Descend(\"CZ\") succeeded, want failure")
	}

	full, ok := lex.Descend("CAT")
	if !ok || !full.Final() {
		t.Errorf("Descend(\"CAT\") should land on a final node")
	}
}

func TestLexiconCrossSet(t *testing.T) {
	lex := NewLexiconFromWords([]string{"CAT", "COT", "CUT"})
	allowed := lex.CrossSet("C", "T")
	for _, r := range []rune{'A', 'O', 'U'} {
		if !allowed[r] {
			t.Errorf("CrossSet(C,T)[%c] = false, want true", r)
		}
	}
	if allowed['Z'] {
		t.Errorf("CrossSet(C,T)[Z] = true, want false")
	}
}

func TestLexiconCrossSetEmptyFragments(t *testing.T) {
	lex := NewLexiconFromWords([]string{"CAT"})
	allowed := lex.CrossSet("", "")
	if allowed == nil {
		t.Fatalf("CrossSet(\"\",\"\") returned nil")
	}
}
