package embedding

import "testing"

func TestWordTokenizerShape(t *testing.T) {
	tok := wordTokenizer{}
	ids, mask, types := tok.Tokenize("right to information act", 16)

	if len(ids) != 16 || len(mask) != 16 || len(types) != 16 {
		t.Fatalf("slices not padded to maxTokens: %d %d %d", len(ids), len(mask), len(types))
	}
	if ids[0] != clsTokenID {
		t.Errorf("position 0 = %d, want CLS", ids[0])
	}
	// 4 words, so SEP lands at position 5.
	if ids[5] != sepTokenID {
		t.Errorf("position 5 = %d, want SEP", ids[5])
	}
	var attended int
	for _, m := range mask {
		attended += int(m)
	}
	if attended != 6 {
		t.Errorf("attention covers %d positions, want 6", attended)
	}
}

func TestWordTokenizerDeterministic(t *testing.T) {
	tok := wordTokenizer{}
	a, _, _ := tok.Tokenize("section 6 rti act", 16)
	b, _, _ := tok.Tokenize("section 6 rti act", 16)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same text produced different token IDs")
		}
	}
	// The same word hashes to the same ID wherever it appears.
	c, _, _ := tok.Tokenize("rti rti", 16)
	if c[1] != c[2] {
		t.Errorf("repeated word got different IDs: %d %d", c[1], c[2])
	}
}

func TestWordTokenizerTruncates(t *testing.T) {
	tok := wordTokenizer{}
	ids, mask, _ := tok.Tokenize("one two three four five six seven eight", 4)

	if len(ids) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(ids))
	}
	if ids[3] != sepTokenID {
		t.Errorf("last position = %d, want SEP", ids[3])
	}
	for i, m := range mask {
		if m != 1 {
			t.Errorf("position %d unattended in a full window", i)
		}
	}
}
