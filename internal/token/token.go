// Package token encodes the pagination state carried in component
// identifiers and select values. The token is the whole session: the server
// keeps nothing between round trips.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const Delimiter = ":"

type Action string

const (
	ActionInitial Action = "initial"
	ActionFirst   Action = "first"
	ActionPrev    Action = "prev"
	ActionNext    Action = "next"
	ActionLast    Action = "last"
	ActionSelect  Action = "select"
)

func (a Action) valid() bool {
	switch a {
	case ActionInitial, ActionFirst, ActionPrev, ActionNext, ActionLast, ActionSelect:
		return true
	}
	return false
}

var ErrMalformed = errors.New("malformed interaction token")

type Token struct {
	Term   string
	Page   int
	Action Action
}

func (t Token) String() string {
	return Encode(t)
}

func Encode(t Token) string {
	return t.Term + Delimiter + strconv.Itoa(t.Page) + Delimiter + string(t.Action)
}

// Decode parses "term:page:action". Two-field tokens ("term:page") decode
// with ActionInitial. Fields before the page are joined back into the term.
func Decode(s string) (Token, error) {
	fields := strings.Split(s, Delimiter)
	if len(fields) < 2 {
		return Token{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	if len(fields) == 2 {
		page, err := strconv.Atoi(fields[1])
		if err != nil {
			return Token{}, fmt.Errorf("%w: page %q", ErrMalformed, fields[1])
		}
		return Token{Term: fields[0], Page: page, Action: ActionInitial}, nil
	}

	n := len(fields)
	action := Action(fields[n-1])
	if !action.valid() {
		return Token{}, fmt.Errorf("%w: action %q", ErrMalformed, action)
	}
	page, err := strconv.Atoi(fields[n-2])
	if err != nil {
		return Token{}, fmt.Errorf("%w: page %q", ErrMalformed, fields[n-2])
	}
	return Token{
		Term:   strings.Join(fields[:n-2], Delimiter),
		Page:   page,
		Action: action,
	}, nil
}

// FromComponent decodes the token of a component interaction. Select menus
// carry it in the chosen value, buttons in their custom id.
func FromComponent(customID string, values []string) (Token, error) {
	if len(values) > 0 && values[0] != "" {
		return Decode(values[0])
	}
	return Decode(customID)
}
