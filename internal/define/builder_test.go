package define

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lojasmm/definebot/internal/discord"
	"github.com/lojasmm/definebot/internal/mw"
	"github.com/lojasmm/definebot/internal/token"
)

type fakeResolver struct {
	results map[string]mw.LookupResult
	calls   map[string]int
	err     error
}

func newResolver(results map[string]mw.LookupResult) *fakeResolver {
	return &fakeResolver{results: results, calls: map[string]int{}}
}

func (f *fakeResolver) Resolve(_ context.Context, term string) (mw.LookupResult, error) {
	f.calls[term]++
	if f.err != nil {
		return nil, f.err
	}
	return f.results[term], nil
}

func runResult() mw.LookupResult {
	return mw.LookupResult{
		{ID: "run:1", Headword: "run", PartOfSpeech: "verb", Sense: mw.Definitions{"to go faster than a walk", "to flee"}},
		{ID: "run:2", Headword: "run", PartOfSpeech: "noun", Sense: mw.Definitions{"an act of running"}},
		{ID: "ran", Headword: "ran", Sense: mw.CrossReference{Label: "past tense of", Target: "run"}},
		{ID: "run*ning", Headword: "run*ning", Sense: mw.TitleOnly{}},
	}
}

func buttons(t *testing.T, msg *discord.MessageData) []discord.Component {
	t.Helper()
	if len(msg.Components) != 2 || len(msg.Components[0].Components) != 4 {
		t.Fatalf("expected two action rows with four buttons, got %+v", msg.Components)
	}
	return msg.Components[0].Components
}

func selectOptions(t *testing.T, msg *discord.MessageData) []discord.SelectOption {
	t.Helper()
	row := msg.Components[1]
	if len(row.Components) != 1 || row.Components[0].Type != discord.ComponentStringSelect {
		t.Fatalf("expected a string select, got %+v", row)
	}
	return row.Components[0].Options
}

func TestBuildFirstPage(t *testing.T) {
	b := NewBuilder(newResolver(map[string]mw.LookupResult{"run": runResult()}), "")
	msg, err := b.Build(context.Background(), "run", 0, VisibilityPublic)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(msg.Embeds) != 1 {
		t.Fatalf("expected one embed, got %d", len(msg.Embeds))
	}
	e := msg.Embeds[0]
	if e.Title != "run (verb)" {
		t.Errorf("unexpected title %q", e.Title)
	}
	if e.URL != "https://www.merriam-webster.com/dictionary/run" {
		t.Errorf("unexpected url %q", e.URL)
	}
	if e.Description != "• to go faster than a walk\n• to flee" {
		t.Errorf("unexpected description %q", e.Description)
	}
	if e.Footer == nil || e.Footer.Text != footerText {
		t.Errorf("expected footer")
	}
	if msg.Flags != 0 {
		t.Errorf("expected public message, got flags %d", msg.Flags)
	}

	btns := buttons(t, msg)
	want := []struct {
		label    string
		id       string
		disabled bool
	}{
		{"1", "run:0:first", true},
		{"Previous", "run:-1:prev", true},
		{"Next (2)", "run:1:next", false},
		{"4", "run:3:last", false},
	}
	for i, w := range want {
		if btns[i].Label != w.label || btns[i].CustomID != w.id || btns[i].Disabled != w.disabled {
			t.Errorf("button %d: got %+v, want %+v", i, btns[i], w)
		}
		if btns[i].Type != discord.ComponentButton || btns[i].Style != discord.ButtonPrimary {
			t.Errorf("button %d: unexpected type/style", i)
		}
	}
}

func TestBuildPaginationBoundaries(t *testing.T) {
	result := runResult()
	n := len(result)
	b := NewBuilder(newResolver(map[string]mw.LookupResult{"run": result}), "")

	for page := 0; page < n; page++ {
		msg, err := b.Build(context.Background(), "run", page, VisibilityPreserve)
		if err != nil {
			t.Fatalf("build page %d: %v", page, err)
		}
		btns := buttons(t, msg)
		if btns[0].Disabled != (page == 0) {
			t.Errorf("page %d: first disabled=%v", page, btns[0].Disabled)
		}
		if btns[1].Disabled != (page-1 < 0) {
			t.Errorf("page %d: prev disabled=%v", page, btns[1].Disabled)
		}
		if btns[2].Disabled != (page+1 >= n) {
			t.Errorf("page %d: next disabled=%v", page, btns[2].Disabled)
		}
		if btns[3].Disabled != (page == n-1) {
			t.Errorf("page %d: last disabled=%v", page, btns[3].Disabled)
		}

		for i, action := range []token.Action{token.ActionFirst, token.ActionPrev, token.ActionNext, token.ActionLast} {
			tok, err := token.Decode(btns[i].CustomID)
			if err != nil {
				t.Fatalf("page %d: decode %q: %v", page, btns[i].CustomID, err)
			}
			if tok.Term != "run" || tok.Action != action {
				t.Errorf("page %d: unexpected token %+v", page, tok)
			}
		}
	}
}

func TestBuildMiddlePageLabels(t *testing.T) {
	b := NewBuilder(newResolver(map[string]mw.LookupResult{"run": runResult()}), "")
	msg, err := b.Build(context.Background(), "run", 2, VisibilityPreserve)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	btns := buttons(t, msg)
	if btns[1].Label != "Previous (2)" || btns[1].CustomID != "run:1:prev" {
		t.Errorf("unexpected prev button %+v", btns[1])
	}
	if btns[2].Label != "Next (4)" || btns[2].CustomID != "run:3:next" {
		t.Errorf("unexpected next button %+v", btns[2])
	}
	if msg.Embeds[0].Description != "past tense of run" {
		t.Errorf("expected cross reference description, got %q", msg.Embeds[0].Description)
	}
}

func TestBuildLastPage(t *testing.T) {
	b := NewBuilder(newResolver(map[string]mw.LookupResult{"run": runResult()}), "https://example.com/")
	msg, err := b.Build(context.Background(), "run", 3, VisibilityPreserve)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	e := msg.Embeds[0]
	if e.Title != "run·ning" {
		t.Errorf("expected marker rendered as dot, got %q", e.Title)
	}
	if e.URL != "https://example.com/dictionary/running" {
		t.Errorf("expected marker stripped from url, got %q", e.URL)
	}
	if e.Description != "" {
		t.Errorf("expected empty description for title-only entry, got %q", e.Description)
	}
	btns := buttons(t, msg)
	if btns[2].Label != "Next" || btns[2].CustomID != "run:4:next" || !btns[2].Disabled {
		t.Errorf("unexpected next button on last page %+v", btns[2])
	}
}

func TestBuildSelectOptions(t *testing.T) {
	result := runResult()
	b := NewBuilder(newResolver(map[string]mw.LookupResult{"run": result}), "")

	for page := range result {
		msg, err := b.Build(context.Background(), "run", page, VisibilityPreserve)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		opts := selectOptions(t, msg)
		if len(opts) != len(result) {
			t.Fatalf("expected %d options, got %d", len(result), len(opts))
		}
		defaults := 0
		for i, o := range opts {
			if o.Default {
				defaults++
				if i != page {
					t.Errorf("page %d: option %d marked default", page, i)
				}
			}
			tok, err := token.Decode(o.Value)
			if err != nil {
				t.Fatalf("decode %q: %v", o.Value, err)
			}
			if tok != (token.Token{Term: "run", Page: i, Action: token.ActionSelect}) {
				t.Errorf("unexpected option token %+v", tok)
			}
		}
		if defaults != 1 {
			t.Errorf("page %d: expected exactly one default, got %d", page, defaults)
		}
	}

	msg, _ := b.Build(context.Background(), "run", 0, VisibilityPreserve)
	opts := selectOptions(t, msg)
	if opts[0].Label != "1. run (verb)" || opts[0].Description != "to go faster than a walk, to flee" {
		t.Errorf("unexpected first option %+v", opts[0])
	}
	if opts[2].Description != "past tense of run" {
		t.Errorf("unexpected cross reference option %+v", opts[2])
	}
	if opts[3].Label != "4. running" || opts[3].Description != "" {
		t.Errorf("unexpected title-only option %+v", opts[3])
	}
	sel := msg.Components[1].Components[0]
	if sel.CustomID != "select" || sel.Placeholder != "Choose a definition" {
		t.Errorf("unexpected select %+v", sel)
	}
}

func TestBuildTruncatesOptionText(t *testing.T) {
	long := strings.Repeat("é", 150)
	result := mw.LookupResult{{Headword: long, Sense: mw.Definitions{long}}}
	b := NewBuilder(newResolver(map[string]mw.LookupResult{"long": result}), "")

	msg, err := b.Build(context.Background(), "long", 0, VisibilityPreserve)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	o := selectOptions(t, msg)[0]
	for _, s := range []string{o.Label, o.Description} {
		if utf8.RuneCountInString(s) != MaxLabelLength || !strings.HasSuffix(s, "…") {
			t.Errorf("expected %d characters ending in ellipsis, got %d: %q", MaxLabelLength, utf8.RuneCountInString(s), s)
		}
	}
}

func TestBuildNotFound(t *testing.T) {
	results := map[string]mw.LookupResult{
		"empty":     {},
		"suggested": {{Sense: mw.TitleOnly{}}, {Sense: mw.TitleOnly{}}},
		"run":       runResult(),
	}
	tests := []struct {
		term string
		page int
	}{
		{"empty", 0},
		{"missing", 0},
		{"suggested", 0},
		{"run", 4},
		{"run", -1},
	}
	b := NewBuilder(newResolver(results), "")
	for _, tt := range tests {
		msg, err := b.Build(context.Background(), tt.term, tt.page, VisibilityPublic)
		if err != nil {
			t.Fatalf("%s/%d: build: %v", tt.term, tt.page, err)
		}
		if msg.Content != "Not found" || !msg.Ephemeral() || len(msg.Components) != 0 || len(msg.Embeds) != 0 {
			t.Errorf("%s/%d: expected not found payload, got %+v", tt.term, tt.page, msg)
		}
	}
}

func TestBuildVisibility(t *testing.T) {
	b := NewBuilder(newResolver(map[string]mw.LookupResult{"run": runResult()}), "")
	tests := []struct {
		vis       Visibility
		ephemeral bool
	}{
		{VisibilityPublic, false},
		{VisibilityPreserve, false},
		{VisibilityEphemeral, true},
	}
	for _, tt := range tests {
		msg, err := b.Build(context.Background(), "run", 0, tt.vis)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if msg.Ephemeral() != tt.ephemeral {
			t.Errorf("visibility %d: ephemeral=%v", tt.vis, msg.Ephemeral())
		}
	}
}

func TestBuildPropagatesResolveError(t *testing.T) {
	r := newResolver(nil)
	r.err = errors.New("upstream down")
	b := NewBuilder(r, "")
	if _, err := b.Build(context.Background(), "run", 0, VisibilityPublic); !errors.Is(err, r.err) {
		t.Fatalf("expected wrapped resolve error, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 100); got != "short" {
		t.Errorf("unexpected %q", got)
	}
	exact := strings.Repeat("a", 100)
	if got := truncate(exact, 100); got != exact {
		t.Errorf("expected exact-length string to be kept")
	}
	got := truncate(strings.Repeat("a", 101), 100)
	if utf8.RuneCountInString(got) != 100 || !strings.HasSuffix(got, "…") {
		t.Errorf("unexpected truncation %q", got)
	}
}
