// Package corpus loads research corpora from CSV files into typed in-memory
// tables.
//
// A corpus mixes post-level and comment-level data: one row per comment,
// with post fields repeated across a post's rows, and a single row with
// empty comment fields for posts without comments. The loader normalizes
// count columns, parses the date formats the scraped files actually carry,
// resolves the corpus identity column (hashtag vs profile name) once, and
// normalizes comment thread roots so downstream code never branches on the
// corpus kind or platform quirks again.
package corpus
