package mw

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// LookupResult is the ordered list of entries returned for one term.
// The position of an entry is its page.
type LookupResult []Entry

type Entry struct {
	ID           string
	Headword     string // may contain '*' syllable markers
	PartOfSpeech string
	Sense        Sense
}

// Sense is one of Definitions, CrossReference or TitleOnly.
type Sense interface {
	sense()
}

// Definitions are the non-empty short definitions of an entry.
type Definitions []string

// CrossReference points to another term, e.g. "past tense of" "run".
type CrossReference struct {
	Label  string
	Target string
}

type TitleOnly struct{}

func (Definitions) sense()    {}
func (CrossReference) sense() {}
func (TitleOnly) sense()      {}

const syllableMarker = "*"

func (e Entry) HasTitle() bool {
	return e.Headword != ""
}

// DisplayTitle renders syllable markers as middle dots.
func (e Entry) DisplayTitle() string {
	return strings.ReplaceAll(e.Headword, syllableMarker, "·")
}

// PlainTitle is the headword without syllable markers.
func (e Entry) PlainTitle() string {
	return strings.ReplaceAll(e.Headword, syllableMarker, "")
}

// Text returns "label target" for a cross reference.
func (c CrossReference) Text() string {
	return strings.TrimSpace(c.Label + " " + c.Target)
}

// --- Collegiate dictionary API payload ---
// Reference: https://dictionaryapi.com/products/json

type apiEntry struct {
	Meta struct {
		ID string `json:"id"`
	} `json:"meta"`
	Hwi *struct {
		Hw string `json:"hw"`
	} `json:"hwi"`
	Fl       string     `json:"fl"`
	Shortdef []string   `json:"shortdef"`
	Cxs      []apiCross `json:"cxs"`
}

type apiCross struct {
	Cxl   string `json:"cxl"`
	Cxtis []struct {
		Cxt string `json:"cxt"`
	} `json:"cxtis"`
}

// ParseLookup converts a dictionary response into a LookupResult.
// Unknown terms come back as an array of suggestion strings; those elements
// become entries without a headword. A valid document that is not an array
// yields an empty result. Only syntactically invalid JSON is an error.
func ParseLookup(data []byte) (LookupResult, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return LookupResult{}, nil
		}
		return nil, err
	}

	result := make(LookupResult, 0, len(raw))
	for _, elem := range raw {
		result = append(result, parseEntry(elem))
	}
	return result, nil
}

func parseEntry(elem json.RawMessage) Entry {
	if !bytes.HasPrefix(bytes.TrimSpace(elem), []byte("{")) {
		return Entry{Sense: TitleOnly{}}
	}
	var e apiEntry
	if err := json.Unmarshal(elem, &e); err != nil {
		return Entry{Sense: TitleOnly{}}
	}

	entry := Entry{
		ID:           e.Meta.ID,
		PartOfSpeech: e.Fl,
		Sense:        resolveSense(e),
	}
	if e.Hwi != nil {
		entry.Headword = e.Hwi.Hw
	}
	return entry
}

func resolveSense(e apiEntry) Sense {
	var defs Definitions
	for _, d := range e.Shortdef {
		if d != "" {
			defs = append(defs, d)
		}
	}
	if len(defs) > 0 {
		return defs
	}
	if len(e.Cxs) > 0 && e.Cxs[0].Cxl != "" {
		ref := CrossReference{Label: e.Cxs[0].Cxl}
		if len(e.Cxs[0].Cxtis) > 0 {
			ref.Target = e.Cxs[0].Cxtis[0].Cxt
		}
		return ref
	}
	return TitleOnly{}
}

// --- Site endpoints (autocomplete, popular lookups) ---

// Suggestion is one autocomplete candidate and the index it came from.
type Suggestion struct {
	Word string `json:"word"`
	Ref  string `json:"ref"`
}

type autocompleteResponse struct {
	Docs []Suggestion `json:"docs"`
}

type popularResponse struct {
	Data struct {
		Words []string `json:"words"`
	} `json:"data"`
}
