package model

import "strings"

// Draft is the release currently being edited.
//
// Header fields hold raw form text. Tracks is the editable list. A Draft is
// turned into a Release with Snapshot before it is saved, and replaced
// wholesale by Apply when a file is loaded.
type Draft struct {
	Year   string
	Month  string
	Day    string
	Order  string
	Type   string
	Title  string
	Tracks *TrackList
}

// NewDraft returns a draft initialised from rel. When rel has no tracks the
// draft gets one empty row to type into.
func NewDraft(rel *Release) *Draft {
	d := &Draft{Tracks: &TrackList{}}
	d.Apply(rel)
	return d
}

// Apply replaces every field and the whole track list with rel.
func (d *Draft) Apply(rel *Release) {
	d.Year = rel.Year
	d.Month = rel.Month
	d.Day = rel.Day
	d.Order = rel.Order
	d.Type = rel.Type
	d.Title = rel.Title
	d.Tracks.Replace(rel.Tracks)
	if d.Tracks.Len() == 0 {
		d.Tracks.Append("", false)
	}
}

// Snapshot returns an independent Release built from the draft. Fields and
// track names are trimmed; tracks whose name is blank are left out.
func (d *Draft) Snapshot() *Release {
	rel := &Release{
		Year:  strings.TrimSpace(d.Year),
		Month: strings.TrimSpace(d.Month),
		Day:   strings.TrimSpace(d.Day),
		Order: strings.TrimSpace(d.Order),
		Type:  strings.TrimSpace(d.Type),
		Title: strings.TrimSpace(d.Title),
	}

	rel.Tracks = []Track{}
	for _, t := range d.Tracks.Tracks() {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		rel.Tracks = append(rel.Tracks, Track{Name: name, Instrumental: t.Instrumental})
	}
	return rel
}
