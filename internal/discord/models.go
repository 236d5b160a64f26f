package discord

import "encoding/json"

// --- Incoming interaction payload ---
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object

type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
	InteractionMessageComponent   InteractionType = 3
	InteractionAutocomplete       InteractionType = 4
	InteractionModalSubmit        InteractionType = 5
)

func (t InteractionType) String() string {
	switch t {
	case InteractionPing:
		return "ping"
	case InteractionApplicationCommand:
		return "command"
	case InteractionMessageComponent:
		return "component"
	case InteractionAutocomplete:
		return "autocomplete"
	case InteractionModalSubmit:
		return "modal_submit"
	}
	return "unknown"
}

type Interaction struct {
	ID    string          `json:"id"`
	Type  InteractionType `json:"type"`
	Token string          `json:"token,omitempty"`
	Data  InteractionData `json:"data"`
}

type InteractionData struct {
	// Application commands and autocomplete
	Name    string          `json:"name,omitempty"`
	Options []CommandOption `json:"options,omitempty"`

	// Message components
	CustomID      string        `json:"custom_id,omitempty"`
	ComponentType ComponentType `json:"component_type,omitempty"`
	Values        []string      `json:"values,omitempty"`
}

type CommandOption struct {
	Name    string          `json:"name"`
	Type    OptionType      `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Focused bool            `json:"focused,omitempty"`
}

// StringOption returns the value of a string option, or "" when it is
// absent or not a string.
func (d InteractionData) StringOption(name string) string {
	for _, o := range d.Options {
		if o.Name != name {
			continue
		}
		var s string
		if err := json.Unmarshal(o.Value, &s); err != nil {
			return ""
		}
		return s
	}
	return ""
}

// BoolOption returns the value of a boolean option, false when absent.
func (d InteractionData) BoolOption(name string) bool {
	for _, o := range d.Options {
		if o.Name != name {
			continue
		}
		var b bool
		if err := json.Unmarshal(o.Value, &b); err != nil {
			return false
		}
		return b
	}
	return false
}

// --- Interaction responses ---
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-response-object

type ResponseType int

const (
	ResponsePong               ResponseType = 1
	ResponseChannelMessage     ResponseType = 4
	ResponseUpdateMessage      ResponseType = 7
	ResponseAutocompleteResult ResponseType = 8
)

type InteractionResponse struct {
	Type ResponseType `json:"type"`
	Data any          `json:"data,omitempty"`
}

type MessageFlags int

const FlagEphemeral MessageFlags = 1 << 6

type MessageData struct {
	Content    string       `json:"content,omitempty"`
	Embeds     []Embed      `json:"embeds,omitempty"`
	Components []Component  `json:"components,omitempty"`
	Flags      MessageFlags `json:"flags,omitempty"`
}

func (m *MessageData) Ephemeral() bool {
	return m.Flags&FlagEphemeral != 0
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type AutocompleteData struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func Pong() *InteractionResponse {
	return &InteractionResponse{Type: ResponsePong}
}

func Message(data *MessageData) *InteractionResponse {
	return &InteractionResponse{Type: ResponseChannelMessage, Data: data}
}

func Update(data *MessageData) *InteractionResponse {
	return &InteractionResponse{Type: ResponseUpdateMessage, Data: data}
}

// EphemeralMessage is a plain text reply only the invoking user can see.
func EphemeralMessage(content string) *InteractionResponse {
	return Message(&MessageData{Content: content, Flags: FlagEphemeral})
}

func Autocomplete(choices []Choice) *InteractionResponse {
	if choices == nil {
		choices = []Choice{}
	}
	return &InteractionResponse{Type: ResponseAutocompleteResult, Data: &AutocompleteData{Choices: choices}}
}

// --- Message components ---
// Reference: https://discord.com/developers/docs/interactions/message-components

type ComponentType int

const (
	ComponentActionRow    ComponentType = 1
	ComponentButton       ComponentType = 2
	ComponentStringSelect ComponentType = 3
)

type ButtonStyle int

const ButtonPrimary ButtonStyle = 1

// Component covers action rows, buttons and string selects.
type Component struct {
	Type        ComponentType  `json:"type"`
	Components  []Component    `json:"components,omitempty"`
	Style       ButtonStyle    `json:"style,omitempty"`
	Label       string         `json:"label,omitempty"`
	CustomID    string         `json:"custom_id,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
}

type SelectOption struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

func ActionRow(components ...Component) Component {
	return Component{Type: ComponentActionRow, Components: components}
}

// --- Application commands ---
// Reference: https://discord.com/developers/docs/interactions/application-commands

type OptionType int

const (
	OptionString  OptionType = 3
	OptionBoolean OptionType = 5
)

type ApplicationCommand struct {
	Name             string                     `json:"name"`
	Description      string                     `json:"description"`
	Options          []ApplicationCommandOption `json:"options,omitempty"`
	IntegrationTypes []int                      `json:"integration_types,omitempty"`
	Contexts         []int                      `json:"contexts,omitempty"`
}

type ApplicationCommandOption struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Type         OptionType `json:"type"`
	Required     bool       `json:"required,omitempty"`
	Autocomplete bool       `json:"autocomplete,omitempty"`
}
