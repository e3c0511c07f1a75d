package askmax

import (
	"time"

	"maxdata/internal/models"
	"maxdata/internal/pricing"
)

const (
	finalConfirmText = "Does everything look good, or would you like to make any changes before creating the listing?"
	locationFallback = "[location_name]"
	dateLayout       = "Jan 2, 2006"
	contractDays     = 30
)

var suggestedPrices = []int64{410000, 420000, 430000}

// Question is what MAX asks for a missing field.
func Question(field string) string {
	if field == models.FieldPrice {
		return "What is the listing price?"
	}
	return "What are the listing contract dates?"
}

func detailsText(address string) string {
	if address == "" {
		address = locationFallback
	}
	return "Thanks! Happy to help, can you first confirm the following listing details for " + address + ":"
}

func summaryText(address string) string {
	return "Looks great! Here's your completed listing for " + address + ". Ready to create the listing?"
}

// Suggestion is a one-tap reply. Other marks the free-text affordance.
type Suggestion struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Other bool   `json:"other,omitempty"`
}

// Suggestions returns the quick replies for the pending question.
func (c *Conversation) Suggestions(now time.Time) []Suggestion {
	if c.ShowContinue {
		return []Suggestion{}
	}
	switch c.CurrentField {
	case models.FieldPrice:
		out := make([]Suggestion, 0, len(suggestedPrices)+1)
		for _, p := range suggestedPrices {
			v := pricing.FormatDollars(p)
			out = append(out, Suggestion{Label: v, Value: v})
		}
		return append(out, Suggestion{Label: "Other", Other: true})
	case models.FieldListingDates:
		v := ContractDates(now)
		return []Suggestion{{Label: v, Value: v}}
	}
	return []Suggestion{}
}

// ContractDates is the default contract window starting today.
func ContractDates(now time.Time) string {
	return now.Format(dateLayout) + " - " + now.AddDate(0, 0, contractDays).Format(dateLayout)
}
