package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMissingFields(t *testing.T) {
	l := NewEditorListing()
	got := MissingFields(l, TabOverview)
	if len(got) != 2 || got[0] != FieldPrice || got[1] != FieldListingDates {
		t.Fatalf("expected price and listingDates missing, got %v", got)
	}
	if got := MissingFields(l, TabDetails); got == nil || len(got) != 0 {
		t.Fatalf("details tab requires nothing, got %v", got)
	}

	l.Price = "$410,000"
	got = MissingFields(l, TabOverview)
	if len(got) != 1 || got[0] != FieldListingDates {
		t.Fatalf("expected only listingDates missing, got %v", got)
	}
}

func TestTabSummary(t *testing.T) {
	summary := TabSummary(NewEditorListing())
	if len(summary) != 2 {
		t.Fatalf("expected two tabs, got %d", len(summary))
	}
	if summary[0].Tab != TabOverview || summary[0].Count != 2 || summary[0].Message != "2 missing fields" {
		t.Fatalf("unexpected overview summary %#v", summary[0])
	}
	if summary[1].Count != 0 || summary[1].Message != "" {
		t.Fatalf("unexpected details summary %#v", summary[1])
	}
}

func TestSetField(t *testing.T) {
	var l Listing
	if !l.SetField(FieldPrice, "$1") || l.Price != "$1" {
		t.Fatal("expected price to be set")
	}
	if l.SetField("status", StatusPublished) {
		t.Fatal("status is not a form field")
	}
	if l.SetField("unknown", "x") {
		t.Fatal("unknown fields must be ignored")
	}
	if l.Field("livingArea") != "" {
		t.Fatal("expected empty living area")
	}
}

func TestFilterByStatus(t *testing.T) {
	listings := []Listing{
		{Address: "a", Status: StatusDraft},
		{Address: "b", Status: StatusPublished},
		{Address: "c"},
		{Address: "d", Status: StatusSuccess},
	}
	cases := []struct {
		filter string
		want   int
	}{
		{"", 4},
		{FilterAll, 4},
		{StatusDraft, 2},
		{"draft", 0},
		{"all", 0},
		{StatusPublished, 1},
		{StatusSuccess, 1},
		{"Archived", 0},
	}
	for _, tc := range cases {
		if got := FilterByStatus(listings, tc.filter); len(got) != tc.want {
			t.Errorf("filter %q: expected %d listings, got %d", tc.filter, tc.want, len(got))
		}
	}
}

func TestCartCount(t *testing.T) {
	if CartCount(nil) != 0 {
		t.Fatal("expected 0 for no listings")
	}
	listings := []Listing{
		{Status: StatusPublished, Cart: []string{"featured"}},
		{Status: StatusPublished, Cart: []string{"featured", "email_blast"}},
		{Status: StatusDraft, Cart: []string{"a", "b", "c"}},
	}
	if got := CartCount(listings); got != 2 {
		t.Fatalf("expected cart count of the latest published listing, got %d", got)
	}
}

func TestSplitAddress(t *testing.T) {
	cases := []struct {
		in, street, rest string
	}{
		{"123 Main St, Miami FL", "123 Main St", "Miami FL"},
		{"1 A St, Town, ST 00000", "1 A St", "Town, ST 00000"},
		{"No comma", "No comma", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		street, rest := SplitAddress(tc.in)
		if street != tc.street || rest != tc.rest {
			t.Errorf("SplitAddress(%q) = %q, %q", tc.in, street, rest)
		}
	}
}

func TestCreatedAtOmittedUntilSaved(t *testing.T) {
	b, err := json.Marshal(NewEditorListing())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "created_at") {
		t.Fatalf("unsaved listing should not carry created_at: %s", b)
	}

	saved := NewEditorListing()
	saved.CreatedAt = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	b, err = json.Marshal(saved)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"created_at":"2026-02-03T04:05:06Z"`) {
		t.Fatalf("expected created_at on saved listing: %s", b)
	}
}
