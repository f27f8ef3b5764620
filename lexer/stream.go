package lexer

import (
	"strings"

	"github.com/freeeve/machparse/token"
)

// maxPhraseWords bounds the multi-word reserved phrase lookahead (the
// longest entry, "FOR NO KEY UPDATE", is four words) so merging stays a
// bounded, constant-factor pass over the token slice (spec §4.2, §5).
const maxPhraseWords = 4

// Tokenize runs the lexical classifier to completion and merges multi-word
// reserved words (spec §4.2). The returned slice is the full token
// sequence including Whitespace, comments, and a trailing EOF token;
// concatenating every token's Text reproduces source exactly (spec §3).
//
// Tokenize is restartable only by calling it again on the original
// source — there is no incremental re-tokenization.
func Tokenize(source string) []token.Token {
	l := Get(source)
	defer Put(l)

	raw := make([]token.Token, 0, len(source)/4+1)
	for {
		t := l.Next()
		raw = append(raw, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return mergeReservedPhrases(raw)
}

func isWordLike(k token.Kind) bool {
	return k == token.Word || k.IsReserved()
}

// mergeReservedPhrases performs the greedy longest-match multi-word
// reserved merge. Whitespace between two candidate words never blocks a
// match and is folded into the merged token's Text verbatim (spec §4.2);
// any other intervening token (a comment, punctuation) breaks the chain.
func mergeReservedPhrases(raw []token.Token) []token.Token {
	out := make([]token.Token, 0, len(raw))
	i := 0
	for i < len(raw) {
		t := raw[i]
		if isWordLike(t.Kind) && t.Key != "" {
			if merged, rawConsumed, ok := tryMergePhrase(raw, i); ok {
				out = append(out, merged)
				i += rawConsumed
				continue
			}
		}
		out = append(out, t)
		i++
	}
	return out
}

func tryMergePhrase(raw []token.Token, i int) (token.Token, int, bool) {
	var keys []string
	var wordIdx []int

	j := i
	for len(keys) < maxPhraseWords {
		if j >= len(raw) || !isWordLike(raw[j].Kind) {
			break
		}
		keys = append(keys, raw[j].Key)
		wordIdx = append(wordIdx, j)
		j++
		if j < len(raw) && raw[j].Kind == token.Whitespace {
			j++
			continue
		}
		break
	}
	if len(keys) < 2 {
		return token.Token{}, 0, false
	}

	consumed, kind, canonical, ok := token.MatchPhrase(keys)
	if !ok {
		return token.Token{}, 0, false
	}

	lastRaw := wordIdx[consumed-1]
	merged := token.Token{
		Kind: kind,
		Text: concatText(raw[i : lastRaw+1]),
		Key:  strings.ToLower(canonical),
		Pos:  raw[i].Pos,
	}
	return merged, lastRaw - i + 1, true
}

func concatText(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}
