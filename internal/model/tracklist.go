package model

// TrackID identifies a row of a TrackList for as long as the row exists.
//
// Names may be empty or duplicated, so rows are always addressed by ID and
// never by value.
type TrackID int

type trackRow struct {
	id    TrackID
	track Track
}

// TrackList is the editable, ordered track list of a release.
//
// Display numbers are not stored; Position derives them from the current
// order every time. All operations on unknown IDs or out of range moves are
// silent no-ops.
//
// Example:
//
//	var list TrackList
//	a := list.Append("Intro", false)
//	b := list.Append("Outro", false)
//	list.Move(b, -1)
//	list.Position(b) // 1
//	list.Delete(a)
type TrackList struct {
	rows   []trackRow
	nextID TrackID
}

// NewTrackList returns a list holding the given tracks in order.
func NewTrackList(tracks []Track) *TrackList {
	l := &TrackList{}
	l.Replace(tracks)
	return l
}

// Append adds a track at the end and returns its ID.
func (l *TrackList) Append(name string, instrumental bool) TrackID {
	l.nextID++
	id := l.nextID
	l.rows = append(l.rows, trackRow{id: id, track: Track{Name: name, Instrumental: instrumental}})
	return id
}

// Move swaps the track with its neighbour delta positions away. delta must
// be -1 or +1. It reports whether the list changed.
func (l *TrackList) Move(id TrackID, delta int) bool {
	if delta != -1 && delta != 1 {
		return false
	}
	idx := l.index(id)
	if idx == -1 {
		return false
	}
	target := idx + delta
	if target < 0 || target >= len(l.rows) {
		return false
	}
	l.rows[idx], l.rows[target] = l.rows[target], l.rows[idx]
	return true
}

// Delete removes the track. It reports whether a track was removed.
func (l *TrackList) Delete(id TrackID) bool {
	idx := l.index(id)
	if idx == -1 {
		return false
	}
	l.rows = append(l.rows[:idx], l.rows[idx+1:]...)
	return true
}

// Clear removes every track.
func (l *TrackList) Clear() {
	l.rows = nil
}

// Replace clears the list and appends tracks in order.
func (l *TrackList) Replace(tracks []Track) {
	l.Clear()
	for _, t := range tracks {
		l.Append(t.Name, t.Instrumental)
	}
}

// Len returns the number of tracks.
func (l *TrackList) Len() int {
	return len(l.rows)
}

// Position returns the 1-based display position of the track, or 0 if the
// ID is unknown.
func (l *TrackList) Position(id TrackID) int {
	return l.index(id) + 1
}

// IDs returns the track IDs in display order.
func (l *TrackList) IDs() []TrackID {
	ids := make([]TrackID, len(l.rows))
	for i, r := range l.rows {
		ids[i] = r.id
	}
	return ids
}

// Get returns the track with the given ID.
func (l *TrackList) Get(id TrackID) (Track, bool) {
	idx := l.index(id)
	if idx == -1 {
		return Track{}, false
	}
	return l.rows[idx].track, true
}

// SetName updates the name of a track.
func (l *TrackList) SetName(id TrackID, name string) {
	if idx := l.index(id); idx != -1 {
		l.rows[idx].track.Name = name
	}
}

// SetInstrumental updates the instrumental flag of a track.
func (l *TrackList) SetInstrumental(id TrackID, instrumental bool) {
	if idx := l.index(id); idx != -1 {
		l.rows[idx].track.Instrumental = instrumental
	}
}

// ToggleInstrumental flips the instrumental flag of a track.
func (l *TrackList) ToggleInstrumental(id TrackID) {
	if idx := l.index(id); idx != -1 {
		l.rows[idx].track.Instrumental = !l.rows[idx].track.Instrumental
	}
}

// Tracks returns a copy of the tracks in display order.
func (l *TrackList) Tracks() []Track {
	tracks := make([]Track, len(l.rows))
	for i, r := range l.rows {
		tracks[i] = r.track
	}
	return tracks
}

func (l *TrackList) index(id TrackID) int {
	for i, r := range l.rows {
		if r.id == id {
			return i
		}
	}
	return -1
}
