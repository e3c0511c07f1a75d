package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusSuccess   = "Success"

	FilterAll = "All"
)

const (
	TabOverview = "overview"
	TabDetails  = "details"
)

const (
	FieldPrice        = "price"
	FieldListingDates = "listingDates"
)

var PropertyTypes = []string{"Home", "Apartment", "Condo", "Townhouse", "Land"}

// Listing is the record edited by the agent. Form values are kept as typed
// ("3,000 sqft", "$410,000") and are never parsed.
type Listing struct {
	ID           string    `json:"id,omitempty"`
	Address      string    `json:"address"`
	Bedrooms     string    `json:"bedrooms"`
	Bathrooms    string    `json:"bathrooms"`
	LivingArea   string    `json:"livingArea"`
	LotArea      string    `json:"lotArea"`
	YearBuilt    string    `json:"yearBuilt"`
	PropertyType string    `json:"propertyType"`
	Price        string    `json:"price"`
	ListingDates string    `json:"listingDates"`
	Description  string    `json:"description"`
	Photos       []string  `json:"photos"`
	Status       string    `json:"status"`
	Cart         []string  `json:"cart,omitempty"`
	LastUpdated  string    `json:"lastUpdated,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

var requiredFields = map[string][]string{
	TabOverview: {FieldPrice, FieldListingDates},
	TabDetails:  {},
}

// NewEditorListing returns the record the editor opens with when nothing was
// handed over from Ask MAX.
func NewEditorListing() Listing {
	return Listing{
		Address:      "123 Main St, Miami FL",
		Bedrooms:     "3",
		Bathrooms:    "3",
		LivingArea:   "3,000 sqft",
		LotArea:      ".5 acre",
		YearBuilt:    "2012",
		PropertyType: "Home",
		Status:       StatusDraft,
	}
}

// NewAskMaxListing returns the record Ask MAX pre-fills for an address.
func NewAskMaxListing(address string, photos []string) Listing {
	return Listing{
		Address:      address,
		Bedrooms:     "3",
		Bathrooms:    "2",
		LivingArea:   "2,100 sqft",
		YearBuilt:    "2015",
		PropertyType: "Home",
		Photos:       photos,
	}
}

// Field returns the value of a form field by its JSON name.
func (l Listing) Field(name string) string {
	switch name {
	case "address":
		return l.Address
	case "bedrooms":
		return l.Bedrooms
	case "bathrooms":
		return l.Bathrooms
	case "livingArea":
		return l.LivingArea
	case "lotArea":
		return l.LotArea
	case "yearBuilt":
		return l.YearBuilt
	case "propertyType":
		return l.PropertyType
	case FieldPrice:
		return l.Price
	case FieldListingDates:
		return l.ListingDates
	case "description":
		return l.Description
	case "status":
		return l.Status
	}
	return ""
}

// SetField writes a form field by its JSON name. Unknown names are ignored.
func (l *Listing) SetField(name, value string) bool {
	switch name {
	case "address":
		l.Address = value
	case "bedrooms":
		l.Bedrooms = value
	case "bathrooms":
		l.Bathrooms = value
	case "livingArea":
		l.LivingArea = value
	case "lotArea":
		l.LotArea = value
	case "yearBuilt":
		l.YearBuilt = value
	case "propertyType":
		l.PropertyType = value
	case FieldPrice:
		l.Price = value
	case FieldListingDates:
		l.ListingDates = value
	case "description":
		l.Description = value
	default:
		return false
	}
	return true
}

// RequiredFields lists the fields a tab needs before the listing is complete.
func RequiredFields(tab string) []string {
	fields := requiredFields[tab]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// MissingFields reports the required fields of a tab that are still empty.
// Missing data is only flagged for display, never rejected.
func MissingFields(l Listing, tab string) []string {
	missing := []string{}
	for _, f := range requiredFields[tab] {
		if l.Field(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

type TabMissing struct {
	Tab     string   `json:"tab"`
	Fields  []string `json:"fields"`
	Count   int      `json:"count"`
	Message string   `json:"message,omitempty"`
}

// TabSummary returns the missing-field badge data for both editor tabs.
func TabSummary(l Listing) []TabMissing {
	tabs := []string{TabOverview, TabDetails}
	out := make([]TabMissing, 0, len(tabs))
	for _, tab := range tabs {
		fields := MissingFields(l, tab)
		m := TabMissing{Tab: tab, Fields: fields, Count: len(fields)}
		if m.Count > 0 {
			m.Message = pluralMissing(m.Count)
		}
		out = append(out, m)
	}
	return out
}

func pluralMissing(n int) string {
	return strconv.Itoa(n) + " missing fields"
}

// NormalizeStatus treats an empty status as Draft.
func NormalizeStatus(status string) string {
	if status == "" {
		return StatusDraft
	}
	return status
}

// IsPublishedStatus reports whether the status renders with the published badge.
func IsPublishedStatus(status string) bool {
	return status == StatusPublished || status == StatusSuccess
}

// FilterByStatus applies the list page filter. "All" (or empty) keeps everything;
// other filters match the status exactly.
func FilterByStatus(listings []Listing, filter string) []Listing {
	if filter == "" || filter == FilterAll {
		return listings
	}
	out := []Listing{}
	for _, l := range listings {
		if NormalizeStatus(l.Status) == filter {
			out = append(out, l)
		}
	}
	return out
}

// CartCount returns the cart size of the most recently published listing.
func CartCount(listings []Listing) int {
	for i := len(listings) - 1; i >= 0; i-- {
		if listings[i].Status == StatusPublished {
			return len(listings[i].Cart)
		}
	}
	return 0
}

// SplitAddress splits "123 Main St, Miami FL" into street and the rest.
func SplitAddress(address string) (street, cityStateZip string) {
	parts := strings.Split(address, ",")
	street = parts[0]
	if len(parts) > 1 {
		cityStateZip = strings.TrimSpace(strings.Join(parts[1:], ","))
	}
	return street, cityStateZip
}
