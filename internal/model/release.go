package model

import (
	"fmt"
	"strings"
	"time"
)

// InstMarker is appended to instrumental track names in exported text.
const InstMarker = "(Inst)"

// Release is a single entry of a discography.
//
// A Release is what gets written to and read from project files. All header
// fields are kept as entered text; Order in particular is only parsed as an
// integer when an export needs its ordinal form.
//
// Example:
//
//	rel := &Release{
//	    Year: "2024", Month: "05", Day: "10",
//	    Order: "1", Type: "Single", Title: "Hello",
//	    Tracks: []Track{{Name: "Hello"}, {Name: "Hello", Instrumental: true}},
//	}
type Release struct {
	// Year is the four digit release year.
	Year string `json:"year"`

	// Month is the two digit release month.
	Month string `json:"month"`

	// Day is the two digit release day.
	Day string `json:"day"`

	// Order is the position of this release in the discography, as entered.
	Order string `json:"order"`

	// Type is the release type, e.g. "Single" or "Album". Free text.
	Type string `json:"type"`

	// Title is the release title. It also names exported files.
	Title string `json:"title"`

	// Tracks holds the track list in presentation order.
	Tracks []Track `json:"tracks"`
}

// Track is one entry of a release's track list.
type Track struct {
	// Name is the track title without the instrumental marker.
	Name string `json:"name"`

	// Instrumental marks the instrumental version of a track.
	Instrumental bool `json:"is_inst"`
}

// Label returns the track name as it appears in exports, with InstMarker
// appended for instrumental tracks.
func (t Track) Label() string {
	if t.Instrumental {
		return t.Name + InstMarker
	}
	return t.Name
}

// Date returns the release date in "YYYY.MM.DD" form.
func (r *Release) Date() string {
	return fmt.Sprintf("%s.%s.%s", r.Year, r.Month, r.Day)
}

// Clone returns a deep copy of the release.
func (r *Release) Clone() *Release {
	c := *r
	c.Tracks = append([]Track(nil), r.Tracks...)
	return &c
}

// MissingFields returns the JSON names of empty header fields, in form order.
func (r *Release) MissingFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"year", r.Year},
		{"month", r.Month},
		{"day", r.Day},
		{"order", r.Order},
		{"type", r.Type},
		{"title", r.Title},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// NewRelease returns an empty release dated on the given day.
func NewRelease(now time.Time) *Release {
	return &Release{
		Year:  now.Format("2006"),
		Month: now.Format("01"),
		Day:   now.Format("02"),
	}
}
