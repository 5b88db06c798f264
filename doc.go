// Package musicxml converts MusicXML documents into a validated,
// strongly-typed score model.
//
// Both plain MusicXML (3.0, 3.1, 4.0) and the compressed MXL container are
// accepted. The result is an immutable tree of parts, measures, notes and
// annotations suitable for rendering, playback conversion or analysis.
//
// # Quick Start
//
// Parsing a file:
//
//	res, err := musicxml.ParseFile("sonata.mxl")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s by %s\n", res.Score.Title(), res.Score.Composer())
//	for _, part := range res.Score.Parts {
//		fmt.Printf("%s: %d measures\n", part.Name, len(part.Measures))
//	}
//
// # Document Model
//
//	[Score]              - Metadata, part list, parts
//	  └─ [Part]          - One instrument or voice group
//	       └─ [Measure]  - Resolved divisions, key, time; notes, beams, annotations
//	            └─ [Note] - Pitch or rest, duration, notations
//
// Divisions, key signature and time signature are resolved per measure:
// a measure that declares none inherits the values in effect at the end of
// the previous measure of the same part. Beams are rebuilt from the
// per-note begin/continue/end markers into groups of note indices.
//
// Only score-partwise documents are supported. A score-timewise document
// fails with ErrTimewiseUnsupported, which is distinct from the
// ErrUnrecognizedRoot returned for anything else.
//
// # Error Handling
//
// musicxml distinguishes three kinds of problems:
//
//   - Structural errors: a required element or attribute is missing
//     (*StructuralError). The parse is aborted.
//   - Validation errors: a value is outside its domain, such as an octave
//     of 10 or a beat type of 6 (*ValidationError, with a stable Rule id).
//     The parse is aborted.
//   - Warnings: recoverable or unsupported constructs such as part groups,
//     backup/forward elements or an ending without a type. They are
//     recorded in Result.Diagnostics and parsing continues.
//
// Malformed XML is reported as a *ParseError; errors of the underlying XML
// libraries never escape.
//
//	res, err := musicxml.Parse(data)
//	var ve *musicxml.ValidationError
//	if errors.As(err, &ve) {
//		log.Printf("rule %s failed at %s", ve.Rule, ve.Location)
//	}
//
// # Concurrency
//
// A parse call is synchronous and shares no mutable state with other
// calls, so independent documents may be parsed concurrently. ParseFiles
// does this with a bounded worker group.
package musicxml
