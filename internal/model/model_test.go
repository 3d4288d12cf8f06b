package model

import (
	"reflect"
	"testing"
	"time"
)

func names(l *TrackList) []string {
	var out []string
	for _, t := range l.Tracks() {
		out = append(out, t.Name)
	}
	return out
}

func TestTrackList_Append(t *testing.T) {
	var list TrackList
	a := list.Append("", false)
	b := list.Append("", false)

	if a == b {
		t.Fatalf("Append returned duplicate ID %d", a)
	}
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}
	if got := list.Position(b); got != 2 {
		t.Errorf("Position(b) = %d, want 2", got)
	}
}

func TestTrackList_Move(t *testing.T) {
	tests := []struct {
		name  string
		index int
		delta int
		want  []string
		moved bool
	}{
		{"first up is no-op", 0, -1, []string{"a", "b", "c", "d"}, false},
		{"last down is no-op", 3, 1, []string{"a", "b", "c", "d"}, false},
		{"middle up", 2, -1, []string{"a", "c", "b", "d"}, true},
		{"middle down", 1, 1, []string{"a", "c", "b", "d"}, true},
		{"first down", 0, 1, []string{"b", "a", "c", "d"}, true},
		{"delta too large", 1, 2, []string{"a", "b", "c", "d"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewTrackList([]Track{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}})
			id := list.IDs()[tt.index]

			if got := list.Move(id, tt.delta); got != tt.moved {
				t.Errorf("Move() = %v, want %v", got, tt.moved)
			}
			if got := names(list); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackList_MoveByIdentity(t *testing.T) {
	list := NewTrackList([]Track{{Name: "same"}, {Name: "same", Instrumental: true}, {Name: "same"}})
	ids := list.IDs()

	list.Move(ids[1], -1)

	if got := list.Position(ids[1]); got != 1 {
		t.Errorf("Position = %d, want 1", got)
	}
	first, _ := list.Get(list.IDs()[0])
	if !first.Instrumental {
		t.Error("moved row should be the instrumental one")
	}
}

func TestTrackList_Delete(t *testing.T) {
	list := NewTrackList([]Track{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	ids := list.IDs()

	if !list.Delete(ids[0]) {
		t.Fatal("Delete() = false, want true")
	}
	if got := names(list); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("order = %v, want [b c]", got)
	}
	if got := list.Position(ids[1]); got != 1 {
		t.Errorf("Position(b) = %d, want 1", got)
	}
	if got := list.Position(ids[2]); got != 2 {
		t.Errorf("Position(c) = %d, want 2", got)
	}

	if list.Delete(ids[0]) {
		t.Error("deleting an unknown ID should be a no-op")
	}
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}
}

func TestTrackList_UnknownIDs(t *testing.T) {
	list := NewTrackList([]Track{{Name: "a"}})

	list.SetName(99, "x")
	list.ToggleInstrumental(99)
	if list.Move(99, 1) {
		t.Error("Move on unknown ID should be a no-op")
	}
	if got := list.Position(99); got != 0 {
		t.Errorf("Position(unknown) = %d, want 0", got)
	}
	if got := names(list); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("order = %v, want [a]", got)
	}
}

func TestTrackList_ClearAndEdit(t *testing.T) {
	list := NewTrackList([]Track{{Name: "a"}, {Name: "b"}})
	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", list.Len())
	}

	id := list.Append("x", false)
	list.SetName(id, "y")
	list.ToggleInstrumental(id)
	got, ok := list.Get(id)
	if !ok {
		t.Fatal("Get() ok = false")
	}
	if got != (Track{Name: "y", Instrumental: true}) {
		t.Errorf("Get() = %+v", got)
	}
	list.SetInstrumental(id, false)
	if got, _ := list.Get(id); got.Instrumental {
		t.Error("SetInstrumental(false) did not apply")
	}
}

func TestDraft_Snapshot(t *testing.T) {
	d := NewDraft(&Release{
		Year: " 2024 ", Month: "05", Day: "10", Order: " 1", Type: "Single ", Title: " Hello ",
		Tracks: []Track{{Name: " Hello "}, {Name: "   "}, {Name: "Hello", Instrumental: true}},
	})

	rel := d.Snapshot()
	want := &Release{
		Year: "2024", Month: "05", Day: "10", Order: "1", Type: "Single", Title: "Hello",
		Tracks: []Track{{Name: "Hello"}, {Name: "Hello", Instrumental: true}},
	}
	if !reflect.DeepEqual(rel, want) {
		t.Errorf("Snapshot() = %+v, want %+v", rel, want)
	}

	d.Tracks.SetName(d.Tracks.IDs()[0], "Changed")
	if rel.Tracks[0].Name != "Hello" {
		t.Error("snapshot must not change after later edits")
	}
}

func TestDraft_ApplyEmptyAddsRow(t *testing.T) {
	d := NewDraft(&Release{Title: "x", Tracks: []Track{{Name: "a"}, {Name: "b"}}})
	d.Apply(&Release{Title: "y"})

	if d.Title != "y" {
		t.Errorf("Title = %q, want %q", d.Title, "y")
	}
	if d.Tracks.Len() != 1 {
		t.Errorf("Len() = %d, want 1 empty row", d.Tracks.Len())
	}
}

func TestTrack_Label(t *testing.T) {
	if got := (Track{Name: "Hello"}).Label(); got != "Hello" {
		t.Errorf("Label() = %q, want %q", got, "Hello")
	}
	if got := (Track{Name: "Hello", Instrumental: true}).Label(); got != "Hello(Inst)" {
		t.Errorf("Label() = %q, want %q", got, "Hello(Inst)")
	}
}

func TestRelease_MissingFields(t *testing.T) {
	rel := &Release{Year: "2024", Month: "05", Day: "", Order: "1", Type: " ", Title: "x"}
	got := rel.MissingFields()
	want := []string{"day", "type"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFields() = %v, want %v", got, want)
	}
}

func TestNewRelease(t *testing.T) {
	rel := NewRelease(time.Date(2023, 5, 7, 0, 0, 0, 0, time.UTC))
	if rel.Date() != "2023.05.07" {
		t.Errorf("Date() = %q, want %q", rel.Date(), "2023.05.07")
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestClampDay(t *testing.T) {
	tests := []struct {
		year, month, day string
		want             string
	}{
		{"2023", "02", "31", "28"},
		{"2024", "02", "30", "29"},
		{"2024", "03", "15", "15"},
		{"abcd", "02", "31", "31"},
		{"2024", "02", "", ""},
	}

	for _, tt := range tests {
		if got := ClampDay(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("ClampDay(%q, %q, %q) = %q, want %q", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}
