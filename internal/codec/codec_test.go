package codec

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/handiism/discman/internal/model"
)

func sampleRelease() *model.Release {
	return &model.Release{
		Year:  "2024",
		Month: "05",
		Day:   "10",
		Order: "1",
		Type:  "Single",
		Title: "Hello",
		Tracks: []model.Track{
			{Name: "Hello"},
			{Name: "Hello", Instrumental: true},
		},
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"},
		{100, "100th"}, {101, "101st"},
		{111, "111th"}, {112, "112th"}, {113, "113th"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Ordinal(tt.n); got != tt.want {
				t.Errorf("Ordinal(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	got, err := FormatText(sampleRelease())
	if err != nil {
		t.Fatalf("FormatText failed: %v", err)
	}

	want := "2024.05.10\n" +
		"1st Single\n" +
		"Hello\n" +
		"1.Hello\n" +
		"2.Hello(Inst)\n" +
		"\n" +
		"<div class=\"details-text\">\n" +
		"    <h3>1st Single<br>Hello</h3>\n" +
		"    <p>2024.05.10</p>\n" +
		"    <p>1.Hello<br>2.Hello(Inst)</p>\n" +
		"</div>"
	if got != want {
		t.Errorf("FormatText() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatText_InvalidOrder(t *testing.T) {
	rel := sampleRelease()
	rel.Order = "first"

	_, err := FormatText(rel)
	if !errors.Is(err, ErrOrderNumber) {
		t.Errorf("err = %v, want ErrOrderNumber", err)
	}
	if _, err := FormatHTML(rel); !errors.Is(err, ErrOrderNumber) {
		t.Errorf("FormatHTML err = %v, want ErrOrderNumber", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	rel := sampleRelease()
	rel.Order = "22"
	rel.Type = "Mini Album"
	rel.Tracks = append(rel.Tracks, model.Track{Name: "3.14"})

	text, err := FormatText(rel)
	if err != nil {
		t.Fatalf("FormatText failed: %v", err)
	}

	got, err := ParseText(text)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if !reflect.DeepEqual(got, rel) {
		t.Errorf("round trip = %+v, want %+v", got, rel)
	}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *model.Release
		wantErr bool
	}{
		{
			name:  "fallback order without suffix",
			input: "2020.01.02\n#7 Live Album\nTitle\n1.A\n",
			want: &model.Release{
				Year: "2020", Month: "01", Day: "02", Order: "7", Type: "Live Album", Title: "Title",
				Tracks: []model.Track{{Name: "A"}},
			},
		},
		{
			name:  "fallback single token",
			input: "2020.01.02\nNo.3\nTitle",
			want: &model.Release{
				Year: "2020", Month: "01", Day: "02", Order: "3", Type: "", Title: "Title",
				Tracks: []model.Track{},
			},
		},
		{
			name:  "track numbers are ignored and junk skipped",
			input: "2020.01.02\n3rd EP\nT\n9.First\nnot a track\n1.Second(Inst)\n\n5.After blank",
			want: &model.Release{
				Year: "2020", Month: "01", Day: "02", Order: "3", Type: "EP", Title: "T",
				Tracks: []model.Track{{Name: "First"}, {Name: "Second", Instrumental: true}},
			},
		},
		{
			name:  "stops at html block and trims CRLF",
			input: "  2020.01.02  \r\n3rd EP\r\n T \r\n1.A\r\n<div class=\"details-text\">\r\n2.B",
			want: &model.Release{
				Year: "2020", Month: "01", Day: "02", Order: "3", Type: "EP", Title: "T",
				Tracks: []model.Track{{Name: "A"}},
			},
		},
		{
			name:  "bare CR line endings",
			input: "2020.01.02\r3rd EP\rT\r1.A\r2.B(Inst)\r",
			want: &model.Release{
				Year: "2020", Month: "01", Day: "02", Order: "3", Type: "EP", Title: "T",
				Tracks: []model.Track{{Name: "A"}, {Name: "B", Instrumental: true}},
			},
		},
		{name: "too few lines", input: "2020.01.02\n1st EP\n", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bad date", input: "2020-01-02\n1st EP\nT", wantErr: true},
		{name: "short year", input: "20.01.02\n1st EP\nT", wantErr: true},
		{name: "no order digits", input: "2020.01.02\nSingle release\nT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseText(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrFormat) {
					t.Errorf("err = %v, want ErrFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseText() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	rel := sampleRelease()
	rel.Title = "こんにちは <World> & Co"

	data, err := EncodeJSON(rel)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	got, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if !reflect.DeepEqual(got, rel) {
		t.Errorf("round trip = %+v, want %+v", got, rel)
	}
}

func TestEncodeJSON_Layout(t *testing.T) {
	rel := &model.Release{Year: "2024", Title: "日本 <b>"}

	data, err := EncodeJSON(rel)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	s := string(data)

	if !strings.Contains(s, "\n    \"year\": \"2024\"") {
		t.Errorf("expected 4 space indentation, got:\n%s", s)
	}
	if !strings.Contains(s, "日本 <b>") {
		t.Errorf("non-ASCII and HTML should be written verbatim, got:\n%s", s)
	}
	if !strings.Contains(s, "\"tracks\": []") {
		t.Errorf("nil tracks should encode as [], got:\n%s", s)
	}
	if strings.HasSuffix(s, "\n") {
		t.Error("output should not end with a newline")
	}
	for _, key := range []string{"year", "month", "day", "order", "type", "title", "tracks"} {
		if !strings.Contains(s, "\""+key+"\"") {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *model.Release
		wantErr bool
	}{
		{
			name:  "missing header fields default to empty",
			input: `{"title": "X", "tracks": [{"name": "a", "is_inst": true}]}`,
			want:  &model.Release{Title: "X", Tracks: []model.Track{{Name: "a", Instrumental: true}}},
		},
		{
			name:  "no tracks",
			input: `{"title": "X"}`,
			want:  &model.Release{Title: "X", Tracks: []model.Track{}},
		},
		{name: "not json", input: `{"title": `, wantErr: true},
		{name: "track without is_inst", input: `{"tracks": [{"name": "a"}]}`, wantErr: true},
		{name: "is_inst not bool", input: `{"tracks": [{"name": "a", "is_inst": "false"}]}`, wantErr: true},
		{name: "order as number", input: `{"order": 3}`, wantErr: true},
		{name: "array document", input: `[]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrFormat) {
					t.Errorf("err = %v, want ErrFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeJSON() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
