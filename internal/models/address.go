package models

import "strings"

const NoResults = "No results"

// MockAddresses is the address book behind the location search box.
var MockAddresses = []string{
	"123 Main St, Miami FL",
	"456 Oak Ave, Orlando FL",
	"789 Pine Rd, Tampa FL",
	"101 Maple Dr, Jacksonville FL",
	"202 Elm St, St. Petersburg FL",
}

type AddressSuggestions struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
	Message     string   `json:"message,omitempty"`
}

// SuggestAddresses filters the address book by a case-insensitive substring.
// An empty query shows no dropdown at all.
func SuggestAddresses(query string, book []string) AddressSuggestions {
	res := AddressSuggestions{Query: query, Suggestions: []string{}}
	if query == "" {
		return res
	}
	q := strings.ToLower(query)
	for _, addr := range book {
		if strings.Contains(strings.ToLower(addr), q) {
			res.Suggestions = append(res.Suggestions, addr)
		}
	}
	if len(res.Suggestions) == 0 {
		res.Message = NoResults
	}
	return res
}
