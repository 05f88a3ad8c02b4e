// Package sentiment parses the sentiment annotations carried by the corpus.
//
// Post transcripts are annotated with a serialized list of (label, score)
// pairs produced by the upstream German sentiment model; the first pair is
// the primary classification. The annotation format is a Python literal and
// frequently malformed, so Parse is tolerant: anything it cannot read
// becomes the Unparseable variant instead of an error. Comment-level sentiws
// scores are plain numbers and are coerced strictly; a non-numeric value
// there is a hard error surfaced to the caller.
package sentiment
