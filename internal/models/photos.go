package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrPhotoIndex = errors.New("photo index out of range")

// DefaultDemoPhotos is the curated pool used when no pool is configured.
var DefaultDemoPhotos = []string{
	"/static/demo/house-front.jpg",
	"/static/demo/living-room.jpg",
	"/static/demo/kitchen.jpg",
	"/static/demo/bedroom.jpg",
	"/static/demo/backyard.jpg",
	"/static/demo/bathroom.jpg",
}

// DemoPhotos picks three consecutive pool entries starting at the sum of the
// address code points, so the same address always gets the same photos.
func DemoPhotos(address string, pool []string) []string {
	if len(pool) == 0 {
		return []string{}
	}
	hash := 0
	for _, r := range address {
		hash += int(r)
	}
	if hash < 0 {
		hash = -hash
	}
	n := len(pool)
	return []string{
		pool[hash%n],
		pool[(hash+1)%n],
		pool[(hash+2)%n],
	}
}

// PicsumPhotos returns the seeded placeholder photos stored with a listing
// when the agent kept the demo photos.
func PicsumPhotos(address string) []string {
	out := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		seed := encodeURIComponent(fmt.Sprintf("%s-%d", address, i))
		out = append(out, fmt.Sprintf("https://picsum.photos/seed/%s/600/400", seed))
	}
	return out
}

// FinalPhotos decides which photos are persisted. An empty list, or the
// untouched demo pool, is swapped for Picsum photos seeded by the address.
func FinalPhotos(photos, pool []string, address string) []string {
	if len(photos) == 0 || samePhotos(photos, pool) {
		return PicsumPhotos(address)
	}
	return photos
}

func samePhotos(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AddPhotos appends uploaded photo references, skipping blanks.
func AddPhotos(photos []string, added ...string) []string {
	out := make([]string, 0, len(photos)+len(added))
	out = append(out, photos...)
	for _, p := range added {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ReplacePhoto swaps the photo at index and returns a new slice.
func ReplacePhoto(photos []string, index int, photo string) ([]string, error) {
	if index < 0 || index >= len(photos) {
		return nil, fmt.Errorf("%w: %d", ErrPhotoIndex, index)
	}
	out := make([]string, len(photos))
	copy(out, photos)
	out[index] = photo
	return out, nil
}

// encodeURIComponent matches the browser function: QueryEscape differs only
// in using "+" for spaces and escaping !'()*.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(escaped)
}
