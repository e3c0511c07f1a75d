package models

import "testing"

func TestBuildPreviewFallbacks(t *testing.T) {
	p := BuildPreview(Listing{}, nil)
	if p.MainPhoto != PlaceholderPhoto {
		t.Fatalf("expected placeholder main photo, got %q", p.MainPhoto)
	}
	if len(p.Thumbnails) != 1 || p.PlaceholderSlots != 3 {
		t.Fatalf("unexpected thumbnails %v / slots %d", p.Thumbnails, p.PlaceholderSlots)
	}
	if p.Street != "123 Main St" || p.CityLine != "Miami, Florida 12321" {
		t.Fatalf("unexpected address fallbacks %q / %q", p.Street, p.CityLine)
	}
	if p.Bedrooms != "3" || p.Bathrooms != "3" || p.LivingArea != "1200 sq ft" || p.YearBuilt != "2012" {
		t.Fatalf("unexpected detail fallbacks %#v", p)
	}
}

func TestBuildPreviewPhotos(t *testing.T) {
	l := Listing{Address: "9 Bay Rd, Naples FL 34102", Bedrooms: "5"}
	photos := []string{"/1.jpg", "/2.jpg", "/3.jpg", "/4.jpg", "/5.jpg"}
	p := BuildPreview(l, photos)
	if p.MainPhoto != "/1.jpg" {
		t.Fatalf("unexpected main photo %q", p.MainPhoto)
	}
	if len(p.Thumbnails) != 3 || p.Thumbnails[0] != "/1.jpg" || p.Thumbnails[2] != "/3.jpg" {
		t.Fatalf("unexpected thumbnails %v", p.Thumbnails)
	}
	if p.PlaceholderSlots != 0 {
		t.Fatalf("expected no placeholder slots, got %d", p.PlaceholderSlots)
	}
	if p.Street != "9 Bay Rd" || p.CityLine != "Naples FL 34102" || p.Bedrooms != "5" {
		t.Fatalf("unexpected preview %#v", p)
	}

	p = BuildPreview(l, photos[:2])
	if p.PlaceholderSlots != 1 || len(p.Thumbnails) != 2 {
		t.Fatalf("expected 2 thumbnails and 1 slot, got %v / %d", p.Thumbnails, p.PlaceholderSlots)
	}
}

func TestBuildCard(t *testing.T) {
	c := BuildCard(Listing{ID: "x", Address: "456 Oak Ave, Orlando FL", Photos: []string{"/p.jpg"}}, "/fallback.jpg")
	if c.Status != StatusDraft || c.Published {
		t.Fatalf("expected draft card, got %#v", c)
	}
	if c.ContractDate != "—" || c.LastUpdated != "—" || c.Price != "—" {
		t.Fatalf("expected dash fallbacks, got %q / %q / %q", c.ContractDate, c.LastUpdated, c.Price)
	}
	if c.MainPhoto != "/p.jpg" || c.FallbackPhoto != "/fallback.jpg" || c.CityLine != "Orlando FL" {
		t.Fatalf("unexpected card %#v", c)
	}

	c = BuildCard(Listing{Status: StatusSuccess, ListingDates: "Jan 1 - Feb 1", Price: "$410,000"}, "")
	if !c.Published || c.ContractDate != "Jan 1 - Feb 1" || c.Price != "$410,000" {
		t.Fatalf("expected published card with dates, got %#v", c)
	}
}
