// Package askmax drives the guided listing entry: the agent names a location,
// MAX shows the pre-filled details and then asks for each required field in
// order until the listing is ready for the editor.
package askmax

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"maxdata/internal/models"
)

// Steps of a conversation.
const (
	StepPrompt    = "prompt"
	StepChat      = "chat"
	StepContinued = "continued"
)

const (
	SenderAgent = "agent"
	SenderMax   = "max"
)

// Message types rendered by the chat.
const (
	TypeText         = "text"
	TypeDetails      = "details"
	TypeAsk          = "ask"
	TypeFinalConfirm = "finalConfirm"
	TypeSummary      = "summary"
)

var (
	ErrEmptyPrompt    = errors.New("prompt is empty")
	ErrEmptyReply     = errors.New("reply is empty")
	ErrNoPendingField = errors.New("no question is waiting for a reply")
	ErrNotReady       = errors.New("listing is not ready to continue")
	ErrInvalidStep    = errors.New("invalid conversation step")
)

var transitions = map[string]map[string]struct{}{
	StepPrompt:    {StepChat: {}},
	StepChat:      {StepContinued: {}},
	StepContinued: {},
}

// CanTransition reports whether a conversation may move between steps.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// RequiredFields are asked for, in order, when still empty.
var RequiredFields = []string{models.FieldPrice, models.FieldListingDates}

type Message struct {
	Sender  string          `json:"sender"`
	Type    string          `json:"type"`
	Text    string          `json:"text,omitempty"`
	Field   string          `json:"field,omitempty"`
	Listing *models.Listing `json:"listing,omitempty"`
}

// Conversation is the persisted state of one Ask MAX session.
type Conversation struct {
	ID                   string         `json:"id"`
	Step                 string         `json:"step"`
	Listing              models.Listing `json:"listing"`
	Messages             []Message      `json:"messages"`
	MissingFields        []string       `json:"missing_fields"`
	CurrentField         string         `json:"current_field,omitempty"`
	AwaitingFinalConfirm bool           `json:"awaiting_final_confirm"`
	ShowContinue         bool           `json:"show_continue"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func New(id string, now time.Time) *Conversation {
	now = now.UTC()
	return &Conversation{
		ID:            id,
		Step:          StepPrompt,
		Listing:       models.NewAskMaxListing("", nil),
		Messages:      []Message{},
		MissingFields: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

var listingForRe = regexp.MustCompile(`(?i)create (a )?listing for (.+)`)

// ExtractAddress pulls the location out of prompts like
// "Create a listing for 12 Ocean Dr"; anything else is taken as the address.
func ExtractAddress(prompt string) string {
	if m := listingForRe.FindStringSubmatch(prompt); m != nil && m[2] != "" {
		return strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(prompt)
}

// Start opens the chat. A selected suggestion wins over the typed prompt.
func (c *Conversation) Start(prompt, suggestion string, photoPool []string, now time.Time) error {
	if c.Step != StepPrompt {
		return ErrInvalidStep
	}
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}

	address := suggestion
	if address == "" {
		address = ExtractAddress(prompt)
	}
	if err := c.advance(StepChat); err != nil {
		return err
	}
	c.Listing = models.NewAskMaxListing(address, models.DemoPhotos(address, photoPool))

	details := c.Listing
	c.Messages = []Message{
		{Sender: SenderAgent, Type: TypeText, Text: prompt},
		{Sender: SenderMax, Type: TypeDetails, Text: detailsText(address), Listing: &details},
	}

	c.MissingFields = c.stillMissing(RequiredFields, "")
	if len(c.MissingFields) > 0 {
		c.ask(c.MissingFields[0])
	} else {
		c.ShowContinue = true
	}
	c.touch(now)
	return nil
}

// Reply answers the pending question, or the final confirmation.
func (c *Conversation) Reply(answer string, now time.Time) error {
	if c.Step != StepChat {
		return ErrInvalidStep
	}
	if strings.TrimSpace(answer) == "" {
		return ErrEmptyReply
	}

	if c.AwaitingFinalConfirm {
		c.Messages = append(c.Messages, Message{Sender: SenderAgent, Type: TypeText, Text: answer})
		c.AwaitingFinalConfirm = false
		c.ShowContinue = true
		summary := c.Listing
		c.Messages = append(c.Messages, Message{
			Sender:  SenderMax,
			Type:    TypeSummary,
			Text:    summaryText(c.Listing.Address),
			Listing: &summary,
		})
		c.touch(now)
		return nil
	}

	if c.CurrentField == "" {
		return ErrNoPendingField
	}

	c.Messages = append(c.Messages, Message{Sender: SenderAgent, Type: TypeText, Text: answer})
	c.Listing.SetField(c.CurrentField, answer)
	c.MissingFields = c.stillMissing(c.MissingFields, c.CurrentField)

	if len(c.MissingFields) > 0 {
		c.ask(c.MissingFields[0])
	} else {
		c.CurrentField = ""
		c.AwaitingFinalConfirm = true
		c.Messages = append(c.Messages, Message{Sender: SenderMax, Type: TypeFinalConfirm, Text: finalConfirmText})
	}
	c.touch(now)
	return nil
}

// Continue hands the finished listing over to the editor.
func (c *Conversation) Continue(now time.Time) (models.Listing, error) {
	if c.Step != StepChat || !c.ShowContinue {
		return models.Listing{}, ErrNotReady
	}
	if err := c.advance(StepContinued); err != nil {
		return models.Listing{}, err
	}
	c.touch(now)
	return c.Listing, nil
}

// StatusBar is the line shown above the chat input.
func (c *Conversation) StatusBar() string {
	if c.ShowContinue {
		return "All set! Ready to continue."
	}
	return "MAX is waiting on reply"
}

func (c *Conversation) advance(to string) error {
	if c.Step == to || !CanTransition(c.Step, to) {
		return ErrInvalidStep
	}
	c.Step = to
	return nil
}

func (c *Conversation) ask(field string) {
	c.CurrentField = field
	c.Messages = append(c.Messages, Message{Sender: SenderMax, Type: TypeAsk, Field: field, Text: Question(field)})
}

func (c *Conversation) stillMissing(fields []string, answered string) []string {
	out := []string{}
	for _, f := range fields {
		if f == answered {
			continue
		}
		if c.Listing.Field(f) == "" {
			out = append(out, f)
		}
	}
	return out
}

func (c *Conversation) touch(now time.Time) {
	c.UpdatedAt = now.UTC()
}
