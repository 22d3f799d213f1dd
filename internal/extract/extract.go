// Package extract recovers structured JSON from free-form model text.
//
// Generative models asked for JSON routinely wrap it in prose or markdown
// fences, so both operations try a fenced code block first and fall back to
// scanning the raw text for the first balanced JSON value. Both are pure:
// no side effects, no logging.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceRe matches a markdown code fence, optionally tagged json, tolerating
// whitespace around the delimiters.
var fenceRe = regexp.MustCompile("(?s)```(?:json)?[ \t]*\r?\n?(.*?)```")

// Array recovers the first JSON array found in text. remainder is the
// surrounding text with the matched array (or its fence) removed and
// edge whitespace trimmed. When no array can be recovered, ok is false and
// remainder is the original text unchanged; that is a defined fallback, not
// an error.
func Array(text string) (arr json.RawMessage, remainder string, ok bool) {
	if raw, rem, found := fromFence(text, '['); found {
		return raw, rem, true
	}
	if raw, rem, found := scan(text, '['); found {
		return raw, rem, true
	}
	return nil, text, false
}

// Object recovers the first JSON object found in text using the same
// two-tier strategy as Array. On failure it returns (nil, false) rather than
// echoing the input: callers treat an unrecoverable object as a failure
// condition, unlike the array fallback.
func Object(text string) (obj json.RawMessage, ok bool) {
	if raw, _, found := fromFence(text, '{'); found {
		return raw, true
	}
	if raw, _, found := scan(text, '{'); found {
		return raw, true
	}
	return nil, false
}

// fromFence returns the first fenced code block whose entire content is one
// valid JSON value opening with the given bracket. Malformed fence content is
// skipped so the caller falls through to the raw scan.
func fromFence(text string, open byte) (json.RawMessage, string, bool) {
	for _, m := range fenceRe.FindAllStringSubmatchIndex(text, -1) {
		inner := strings.TrimSpace(text[m[2]:m[3]])
		if len(inner) == 0 || inner[0] != open {
			continue
		}
		if !json.Valid([]byte(inner)) {
			continue
		}
		remainder := strings.TrimSpace(text[:m[0]] + text[m[1]:])
		return json.RawMessage(inner), remainder, true
	}
	return nil, "", false
}

// scan walks the raw text and parses a balanced JSON value at the first
// occurrence of the opening bracket that yields one. Extraneous brackets in
// surrounding prose are skipped because they fail to parse.
func scan(text string, open byte) (json.RawMessage, string, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != open {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			continue
		}
		end := i + int(dec.InputOffset())
		remainder := strings.TrimSpace(text[:i] + text[end:])
		return raw, remainder, true
	}
	return nil, "", false
}
