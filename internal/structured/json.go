// Package structured enforces the output-shape contract on free-form model
// text: locating a single JSON object in the response, parsing it, and
// patching required-but-missing keys.
package structured

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseFailure reasons.
const (
	ReasonNoJSON      = "no-json-found"
	ReasonInvalidJSON = "invalid-json"
)

// ParseFailure reports that no usable JSON object could be recovered from a
// model response. RawText keeps the full response for display and debugging.
type ParseFailure struct {
	Reason  string
	RawText string
	Err     error
}

func (e *ParseFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extracting json from model response (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extracting json from model response (%s)", e.Reason)
}

func (e *ParseFailure) Unwrap() error {
	return e.Err
}

// Layered search patterns, most specific first. The brace matching is a
// regex approximation: an object whose string values contain unescaped
// braces can be mis-bracketed. Kept for compatibility with the established
// extraction behavior; swap the internals here if a real scanner is needed.
var (
	fencedJSONRe  = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	fencedPlainRe = regexp.MustCompile("(?s)```\\s*(\\{.*?\\})\\s*```")
	braceSpanRe   = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractObject finds the first JSON object in free-form model text, allowing
// prose before and after it. Search order: a ```json fenced block, then an
// unlabeled fenced block, then the first "{" through the last "}". The error,
// when non-nil, is always a *ParseFailure.
func ExtractObject(text string) (map[string]any, error) {
	candidate := ""
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else if m := fencedPlainRe.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else if m := braceSpanRe.FindString(text); m != "" {
		candidate = m
	}

	if candidate == "" {
		return nil, &ParseFailure{Reason: ReasonNoJSON, RawText: text}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &obj); err != nil {
		return nil, &ParseFailure{Reason: ReasonInvalidJSON, RawText: text, Err: err}
	}
	return obj, nil
}
