package timeutil

import "time"

// Token is a pattern substring bound to one numeric field of a date.
type Token struct {
	Text  string
	Width int
	field func(time.Time) int
}

// Known tokens, longest first so YYYY wins over any shorter prefix.
var tokens = []Token{
	{Text: "YYYY", Width: 4, field: func(t time.Time) int { return t.Year() }},
	{Text: "MM", Width: 2, field: func(t time.Time) int { return int(t.Month()) }},
	{Text: "DD", Width: 2, field: func(t time.Time) int { return t.Day() }},
	{Text: "HH", Width: 2, field: func(t time.Time) int { return t.Hour() }},
	{Text: "mm", Width: 2, field: func(t time.Time) int { return t.Minute() }},
	{Text: "ss", Width: 2, field: func(t time.Time) int { return t.Second() }},
}

// Tokens returns the recognized token texts.
func Tokens() []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}

func matchToken(s string) (Token, bool) {
	for _, tok := range tokens {
		if len(s) >= len(tok.Text) && s[:len(tok.Text)] == tok.Text {
			return tok, true
		}
	}
	return Token{}, false
}

// SegmentKind distinguishes literal runs from tokens.
type SegmentKind string

const (
	SegmentLiteral SegmentKind = "literal"
	SegmentToken   SegmentKind = "token"
)

// Segment is one piece of a scanned pattern.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// Tokenize splits pattern the same way FormatDate scans it.
// Adjacent literal bytes are merged into a single segment.
func Tokenize(pattern string) []Segment {
	var segs []Segment
	litStart := -1
	flush := func(end int) {
		if litStart >= 0 {
			segs = append(segs, Segment{Kind: SegmentLiteral, Text: pattern[litStart:end]})
			litStart = -1
		}
	}
	for i := 0; i < len(pattern); {
		tok, ok := matchToken(pattern[i:])
		if !ok {
			if litStart < 0 {
				litStart = i
			}
			i++
			continue
		}
		flush(i)
		segs = append(segs, Segment{Kind: SegmentToken, Text: tok.Text})
		i += len(tok.Text)
	}
	flush(len(pattern))
	return segs
}
