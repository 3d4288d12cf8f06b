// Package codec converts releases to and from their file formats.
//
// # Text
//
// The text format is a presentation export. FormatText renders a release as
// a plain text block followed by an HTML fragment:
//
//	2024.05.10
//	1st Single
//	Hello
//	1.Hello
//	2.Hello(Inst)
//
//	<div class="details-text">
//	    ...
//	</div>
//
// ParseText reads the plain text block back and ignores the HTML. The round
// trip keeps every field of the release but is still lossy in general: the
// order number is normalised and unmatched lines are skipped.
//
// # JSON
//
// EncodeJSON and DecodeJSON handle project files. JSON is lossless and is
// checked against an embedded JSON Schema before it is decoded.
//
// # Ordinals
//
//	codec.Ordinal(1)   // "1st"
//	codec.Ordinal(112) // "112th"
package codec
