package define

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lojasmm/definebot/internal/discord"
	"github.com/lojasmm/definebot/internal/mw"
	"github.com/lojasmm/definebot/internal/token"
)

const (
	DefaultSiteURL = "https://www.merriam-webster.com"

	selectCustomID    = "select"
	selectPlaceholder = "Choose a definition"
	footerText        = "Powered by Merriam-Webster"
	notFoundContent   = "Not found"
)

// Visibility controls the ephemeral flag of a built message.
type Visibility int

const (
	// VisibilityPreserve omits the flag so an edited message keeps its
	// current visibility.
	VisibilityPreserve Visibility = iota
	VisibilityPublic
	VisibilityEphemeral
)

type Resolver interface {
	Resolve(ctx context.Context, term string) (mw.LookupResult, error)
}

// Builder renders one page of a lookup result as an interactive message.
type Builder struct {
	resolver Resolver
	siteURL  string
}

func NewBuilder(resolver Resolver, siteURL string) *Builder {
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	return &Builder{resolver: resolver, siteURL: strings.TrimRight(siteURL, "/")}
}

// Build resolves term and renders the entry at page. A missing entry is not
// an error: it yields an ephemeral "Not found" message.
func (b *Builder) Build(ctx context.Context, term string, page int, vis Visibility) (*discord.MessageData, error) {
	result, err := b.resolver.Resolve(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", term, err)
	}

	if page < 0 || page >= len(result) || !result[page].HasTitle() {
		return &discord.MessageData{Content: notFoundContent, Flags: discord.FlagEphemeral}, nil
	}

	msg := &discord.MessageData{
		Embeds: []discord.Embed{b.embed(result[page])},
		Components: []discord.Component{
			pagination(term, page, len(result)),
			definitionSelect(term, page, result),
		},
	}
	if vis == VisibilityEphemeral {
		msg.Flags = discord.FlagEphemeral
	}
	return msg, nil
}

func (b *Builder) embed(e mw.Entry) discord.Embed {
	return discord.Embed{
		Title:       e.DisplayTitle() + posSuffix(e),
		URL:         b.siteURL + "/dictionary/" + url.PathEscape(e.PlainTitle()),
		Description: body(e.Sense),
		Footer:      &discord.EmbedFooter{Text: footerText},
	}
}

func pagination(term string, page, total int) discord.Component {
	hasPrev := page-1 >= 0 && page-1 < total
	hasNext := page+1 >= 0 && page+1 < total

	prevLabel := "Previous"
	if hasPrev {
		prevLabel = fmt.Sprintf("Previous (%d)", page)
	}
	nextLabel := "Next"
	if hasNext {
		nextLabel = fmt.Sprintf("Next (%d)", page+2)
	}

	return discord.ActionRow(
		button("1", term, 0, token.ActionFirst, page == 0),
		button(prevLabel, term, page-1, token.ActionPrev, !hasPrev),
		button(nextLabel, term, page+1, token.ActionNext, !hasNext),
		button(strconv.Itoa(total), term, total-1, token.ActionLast, page == total-1),
	)
}

func button(label, term string, target int, action token.Action, disabled bool) discord.Component {
	return discord.Component{
		Type:     discord.ComponentButton,
		Style:    discord.ButtonPrimary,
		Label:    truncate(label, MaxLabelLength),
		CustomID: token.Encode(token.Token{Term: term, Page: target, Action: action}),
		Disabled: disabled,
	}
}

func definitionSelect(term string, page int, result mw.LookupResult) discord.Component {
	options := make([]discord.SelectOption, len(result))
	for i, e := range result {
		label := strconv.Itoa(i+1) + "."
		if e.HasTitle() {
			label += " " + e.PlainTitle() + posSuffix(e)
		}
		options[i] = discord.SelectOption{
			Label:       truncate(label, MaxLabelLength),
			Description: truncate(summary(e.Sense), MaxLabelLength),
			Value:       token.Encode(token.Token{Term: term, Page: i, Action: token.ActionSelect}),
			Default:     i == page,
		}
	}
	return discord.ActionRow(discord.Component{
		Type:        discord.ComponentStringSelect,
		CustomID:    selectCustomID,
		Placeholder: selectPlaceholder,
		Options:     options,
	})
}

func posSuffix(e mw.Entry) string {
	if e.PartOfSpeech == "" {
		return ""
	}
	return " (" + e.PartOfSpeech + ")"
}

// body is the embed description: one bulleted line per definition.
func body(s mw.Sense) string {
	switch s := s.(type) {
	case mw.Definitions:
		lines := make([]string, len(s))
		for i, d := range s {
			lines[i] = "• " + d
		}
		return strings.Join(lines, "\n")
	case mw.CrossReference:
		return s.Text()
	default:
		return ""
	}
}

// summary is the single-line form of body used in select options.
func summary(s mw.Sense) string {
	switch s := s.(type) {
	case mw.Definitions:
		return strings.Join(s, ", ")
	case mw.CrossReference:
		return s.Text()
	default:
		return ""
	}
}
