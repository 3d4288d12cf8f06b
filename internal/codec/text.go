package codec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/handiism/discman/internal/model"
)

var (
	dateLineRe  = regexp.MustCompile(`^(\d{4})\.(\d{2})\.(\d{2})`)
	orderLineRe = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)\s+(.*)$`)
	nonDigitRe  = regexp.MustCompile(`\D`)
	trackLineRe = regexp.MustCompile(`^\d+\.(.*)$`)
)

// FormatText renders the full text export of rel: the plain text block, a
// blank line and the HTML fragment. The order field must be an integer.
func FormatText(rel *model.Release) (string, error) {
	order, err := ParseOrder(rel.Order)
	if err != nil {
		return "", err
	}

	heading := Ordinal(order) + " " + rel.Type
	trackLines := numberedTracks(rel.Tracks)

	lines := append([]string{rel.Date(), heading, rel.Title}, trackLines...)
	text := strings.Join(lines, "\n")

	return text + "\n\n" + formatHTML(rel, heading, trackLines), nil
}

// FormatHTML renders only the HTML fragment of the text export.
func FormatHTML(rel *model.Release) (string, error) {
	order, err := ParseOrder(rel.Order)
	if err != nil {
		return "", err
	}
	return formatHTML(rel, Ordinal(order)+" "+rel.Type, numberedTracks(rel.Tracks)), nil
}

func formatHTML(rel *model.Release, heading string, trackLines []string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="details-text">` + "\n")
	sb.WriteString(fmt.Sprintf("    <h3>%s<br>%s</h3>\n", heading, rel.Title))
	sb.WriteString(fmt.Sprintf("    <p>%s</p>\n", rel.Date()))
	sb.WriteString(fmt.Sprintf("    <p>%s</p>\n", strings.Join(trackLines, "<br>")))
	sb.WriteString("</div>")
	return sb.String()
}

// numberedTracks returns "1.Name", "2.Name(Inst)", ...
func numberedTracks(tracks []model.Track) []string {
	lines := make([]string, len(tracks))
	for i, t := range tracks {
		lines[i] = fmt.Sprintf("%d.%s", i+1, t.Label())
	}
	return lines
}

// ParseText reads a release back from a text export.
//
// The steps are:
//  1. Require at least three lines
//  2. Read the date from line 1 ("YYYY.MM.DD")
//  3. Read order and type from line 2 ("1st Single")
//  4. Take line 3 as the title
//  5. Read "N.Name" track lines until a blank line or the HTML block
//
// CRLF and bare CR line endings are accepted. Every line is trimmed first. Track numbers in the file are ignored; the
// order of lines decides the order of tracks. A trailing "(Inst)" marks an
// instrumental track and is removed from the name.
//
// Returns an error wrapping ErrFormat if there are fewer than three lines,
// the date line does not match or no order number can be found.
func ParseText(content string) (*model.Release, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")

	var lines []string
	if content != "" {
		for _, l := range strings.Split(content, "\n") {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 lines, got %d", ErrFormat, len(lines))
	}

	date := dateLineRe.FindStringSubmatch(lines[0])
	if date == nil {
		return nil, fmt.Errorf("%w: bad date line %q", ErrFormat, lines[0])
	}

	order, releaseType, err := parseOrderLine(lines[1])
	if err != nil {
		return nil, err
	}

	rel := &model.Release{
		Year:   date[1],
		Month:  date[2],
		Day:    date[3],
		Order:  order,
		Type:   releaseType,
		Title:  lines[2],
		Tracks: []model.Track{},
	}

	for _, line := range lines[3:] {
		if line == "" || strings.HasPrefix(line, "<div") {
			break
		}
		m := trackLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rel.Tracks = append(rel.Tracks, parseTrackName(m[1]))
	}

	return rel, nil
}

// parseOrderLine splits "12th Album" into "12" and "Album". Without a
// recognised suffix the first word minus its non-digits is the order.
func parseOrderLine(line string) (order, releaseType string, err error) {
	if m := orderLineRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2], nil
	}

	first, rest, _ := strings.Cut(line, " ")
	order = nonDigitRe.ReplaceAllString(first, "")
	if order == "" {
		return "", "", fmt.Errorf("%w: no order number in %q", ErrFormat, line)
	}
	return order, rest, nil
}

func parseTrackName(raw string) model.Track {
	if name, ok := strings.CutSuffix(raw, model.InstMarker); ok {
		return model.Track{Name: name, Instrumental: true}
	}
	return model.Track{Name: raw}
}
