// Package model defines the release data used throughout discman.
//
// # Release
//
// Release is the saved form of one discography entry: date, order number,
// type, title and an ordered list of tracks:
//
//	rel := &model.Release{Year: "2024", Month: "05", Day: "10", Order: "1", Type: "Single", Title: "Hello"}
//	fmt.Println(rel.Date()) // 2024.05.10
//
// # TrackList
//
// TrackList is the editable track list. Rows are addressed by TrackID so that
// duplicate or empty names never confuse a move or delete:
//
//	id := list.Append("Hello", true)
//	list.Move(id, -1)
//	fmt.Println(list.Position(id))
//
// # Draft
//
// Draft couples the raw header fields with a TrackList. Snapshot produces the
// trimmed Release that gets written; Apply loads a Release wholesale.
package model
