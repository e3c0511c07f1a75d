package models

import "strings"

const (
	PlaceholderPhoto = "/static/placeholder-listing.png"
	emptyValue       = "—"
	previewSlots     = 3
)

// Preview is the side panel shown next to the editor.
type Preview struct {
	MainPhoto        string       `json:"main_photo"`
	Thumbnails       []string     `json:"thumbnails"`
	PlaceholderSlots int          `json:"placeholder_slots"`
	Street           string       `json:"street"`
	CityLine         string       `json:"city_line"`
	Bedrooms         string       `json:"bedrooms"`
	Bathrooms        string       `json:"bathrooms"`
	LivingArea       string       `json:"living_area"`
	YearBuilt        string       `json:"year_built"`
	Missing          []TabMissing `json:"missing"`
}

// Card is one tile of the listings page.
type Card struct {
	ID            string `json:"id,omitempty"`
	MainPhoto     string `json:"main_photo"`
	FallbackPhoto string `json:"fallback_photo"`
	Status        string `json:"status"`
	Published     bool   `json:"published"`
	Street        string `json:"street"`
	CityLine      string `json:"city_line"`
	Price         string `json:"price"`
	Bedrooms      string `json:"bedrooms"`
	Bathrooms     string `json:"bathrooms"`
	LivingArea    string `json:"living_area"`
	YearBuilt     string `json:"year_built"`
	ContractDate  string `json:"contract_date"`
	LastUpdated   string `json:"last_updated"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// BuildPreview renders the preview panel for an unsaved listing.
func BuildPreview(l Listing, photos []string) Preview {
	main := PlaceholderPhoto
	if len(photos) > 0 && photos[0] != "" {
		main = photos[0]
	}

	thumbs := []string{main}
	if len(photos) > 1 {
		end := len(photos)
		if end > 4 {
			end = 4
		}
		thumbs = append(thumbs, photos[1:end]...)
	}
	if len(thumbs) > previewSlots {
		thumbs = thumbs[:previewSlots]
	}

	slots := 0
	if len(photos) < previewSlots {
		slots = previewSlots - len(photos)
	}

	street := strings.Split(l.Address, ",")[0]
	cityLine := "Miami, Florida 12321"
	if strings.Contains(l.Address, ",") {
		_, cityLine = SplitAddress(l.Address)
	}

	return Preview{
		MainPhoto:        main,
		Thumbnails:       thumbs,
		PlaceholderSlots: slots,
		Street:           orDefault(street, "123 Main St"),
		CityLine:         cityLine,
		Bedrooms:         orDefault(l.Bedrooms, "3"),
		Bathrooms:        orDefault(l.Bathrooms, "3"),
		LivingArea:       orDefault(l.LivingArea, "1200 sq ft"),
		YearBuilt:        orDefault(l.YearBuilt, "2012"),
		Missing:          TabSummary(l),
	}
}

// BuildCard renders a stored listing for the listings page. fallback is shown
// when the main photo fails to load.
func BuildCard(l Listing, fallback string) Card {
	status := NormalizeStatus(l.Status)
	street, cityLine := SplitAddress(l.Address)
	main := ""
	if len(l.Photos) > 0 {
		main = l.Photos[0]
	}
	return Card{
		ID:            l.ID,
		MainPhoto:     main,
		FallbackPhoto: fallback,
		Status:        status,
		Published:     IsPublishedStatus(status),
		Street:        street,
		CityLine:      cityLine,
		Price:         orDefault(l.Price, emptyValue),
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		LivingArea:    l.LivingArea,
		YearBuilt:     l.YearBuilt,
		ContractDate:  orDefault(l.ListingDates, emptyValue),
		LastUpdated:   orDefault(l.LastUpdated, emptyValue),
	}
}
