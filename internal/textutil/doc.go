// Package textutil provides the text normalization shared by keyword
// filtering and term counting: Unicode case folding tuned for the German
// corpus text and a loader for stopword lists.
package textutil
