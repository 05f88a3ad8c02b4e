package textutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Stopwords is a folded word set used to drop filler terms from term counts.
type Stopwords map[string]struct{}

// NewStopwords builds a set from the given words.
func NewStopwords(words ...string) Stopwords {
	set := make(Stopwords, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		set[Fold(w)] = struct{}{}
	}
	return set
}

// LoadStopwords reads a stopword list file: one word per line, blank lines
// and #-prefixed lines ignored. An empty path yields an empty set.
func LoadStopwords(path string) (Stopwords, error) {
	if strings.TrimSpace(path) == "" {
		return Stopwords{}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopword list: %w", err)
	}
	defer file.Close()

	set := Stopwords{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[Fold(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopword list: %w", err)
	}
	return set, nil
}

// Contains reports whether the folded form of word is in the set.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[Fold(word)]
	return ok
}
