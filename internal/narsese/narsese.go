// Package narsese implements the lexical folding contract: turning the
// surface Narsese notation for one sentence into a validated term.Term plus
// its punctuation and optional truth value. It never partially mutates
// reasoner state — any construction failure is a hard parse error.
package narsese

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/narust/reasoner/internal/evidence"
	"github.com/narust/reasoner/internal/term"
	"github.com/narust/reasoner/internal/truth"
)

// Parsed is the result of folding one Narsese sentence.
type Parsed struct {
	Content     term.Term
	Punctuation evidence.Punctuation
	Truth       *truth.Truth
}

// Parse folds a single Narsese sentence, e.g. "<A --> B>. %1.0;0.9%",
// "Sentence.", or "<?1 --> B>?". Temporal copulas (=/>, =|>, </>, &/, &|)
// are rejected: the copula reader accepts only -->, <->, ==> and <=>.
func Parse(input string) (Parsed, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Parsed{}, fmt.Errorf("narsese: empty input")
	}

	body := s
	var tv *truth.Truth
	if idx := strings.IndexByte(s, '%'); idx >= 0 {
		truthStr := strings.TrimSpace(s[idx:])
		body = strings.TrimSpace(s[:idx])
		parsed, err := parseTruth(truthStr)
		if err != nil {
			return Parsed{}, err
		}
		tv = &parsed
	}

	if len(body) == 0 {
		return Parsed{}, fmt.Errorf("narsese: missing punctuation in %q", input)
	}
	punctChar := body[len(body)-1]
	var punct evidence.Punctuation
	switch punctChar {
	case '.':
		punct = evidence.Judgement
	case '?':
		punct = evidence.Question
	default:
		return Parsed{}, fmt.Errorf("narsese: expected '.' or '?' punctuation, got %q", input)
	}
	termStr := strings.TrimSpace(body[:len(body)-1])
	if termStr == "" {
		return Parsed{}, fmt.Errorf("narsese: empty term in %q", input)
	}

	content, err := ParseTerm(termStr)
	if err != nil {
		return Parsed{}, fmt.Errorf("narsese: %w", err)
	}

	if punct == evidence.Question {
		tv = nil // a truth value on a question is meaningless, silently dropped
	}
	return Parsed{Content: content, Punctuation: punct, Truth: tv}, nil
}

// ParseTerm folds just a term's surface syntax, with no punctuation or
// truth suffix. Used directly by Parse and by internal/status to refold a
// concept's or sentence's printed key back into a term.Term on load.
func ParseTerm(s string) (term.Term, error) {
	p := newParser(s)
	content, err := p.parseTerm()
	if err != nil {
		return term.Term{}, err
	}
	if !p.atEnd() {
		return term.Term{}, fmt.Errorf("trailing input after term in %q", s)
	}
	return term.NormalizeVariables(content), nil
}

func parseTruth(s string) (truth.Truth, error) {
	s = strings.TrimPrefix(s, "%")
	s = strings.TrimSuffix(s, "%")
	parts := strings.Split(s, ";")
	if len(parts) != 2 {
		return truth.Truth{}, fmt.Errorf("narsese: malformed truth value %q", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return truth.Truth{}, fmt.Errorf("narsese: malformed frequency %q: %w", parts[0], err)
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return truth.Truth{}, fmt.Errorf("narsese: malformed confidence %q: %w", parts[1], err)
	}
	return truth.New(f, c, false), nil
}
