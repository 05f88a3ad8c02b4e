// Command corpusdash renders analytics over social media research corpora:
// it loads a corpus CSV, applies the staged filter pipeline, and prints
// tables, timelines, term counts, or a single video's comment thread. One
// invocation is one render cycle.
package main
