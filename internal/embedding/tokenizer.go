package embedding

import (
	"hash/fnv"
	"strings"
)

// Tokenizer produces the three BERT input slices (input_ids, attention_mask,
// token_type_ids) for a text, padded to maxTokens. maxTokens comes from the
// embedding config.
type Tokenizer interface {
	Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64)
}

const (
	clsTokenID = 101
	sepTokenID = 102
	vocabSize  = 30000
)

// wordTokenizer splits on whitespace and hashes each word into a token ID.
// Legal queries arrive in English and transliterated Hindi; without the
// model's real vocabulary file, hashing at least keeps identical words on
// identical IDs so the index stays deterministic.
type wordTokenizer struct{}

func (wordTokenizer) Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64) {
	if maxTokens < 2 {
		maxTokens = 2
	}
	inputIDs = make([]int64, maxTokens)
	attentionMask = make([]int64, maxTokens)
	tokenTypeIDs = make([]int64, maxTokens)

	inputIDs[0] = clsTokenID
	attentionMask[0] = 1

	pos := 1
	for _, word := range strings.Fields(text) {
		if pos >= maxTokens-1 {
			break
		}
		inputIDs[pos] = int64(hashText(word) % vocabSize)
		attentionMask[pos] = 1
		pos++
	}
	inputIDs[pos] = sepTokenID
	attentionMask[pos] = 1
	return inputIDs, attentionMask, tokenTypeIDs
}

// hashText returns a deterministic non-negative hash of s, shared by the
// fallback tokenizer and the mock embedder.
func hashText(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() & 0x7fffffff)
}
