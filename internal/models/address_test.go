package models

import "testing"

func TestSuggestAddresses(t *testing.T) {
	res := SuggestAddresses("", MockAddresses)
	if len(res.Suggestions) != 0 || res.Message != "" {
		t.Fatalf("empty query should show nothing, got %#v", res)
	}

	res = SuggestAddresses("fl", MockAddresses)
	if len(res.Suggestions) != len(MockAddresses) {
		t.Fatalf("expected every address to match, got %v", res.Suggestions)
	}

	res = SuggestAddresses("OAK", MockAddresses)
	if len(res.Suggestions) != 1 || res.Suggestions[0] != "456 Oak Ave, Orlando FL" {
		t.Fatalf("unexpected suggestions %v", res.Suggestions)
	}

	res = SuggestAddresses("Boston", MockAddresses)
	if len(res.Suggestions) != 0 || res.Message != NoResults {
		t.Fatalf("expected no results message, got %#v", res)
	}
}
