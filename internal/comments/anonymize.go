package comments

import "fmt"

// Anonymizer maps author names to stable pseudonyms in first-seen order:
// user0, user1, and so on. The same name always maps to the same pseudonym
// within one Anonymizer.
type Anonymizer struct {
	names map[string]string
}

// NewAnonymizer returns an empty mapping.
func NewAnonymizer() *Anonymizer {
	return &Anonymizer{names: make(map[string]string)}
}

// Name returns the pseudonym for an author, assigning the next index on
// first sight. Empty names map to the empty string.
func (a *Anonymizer) Name(author string) string {
	if author == "" {
		return ""
	}
	if alias, ok := a.names[author]; ok {
		return alias
	}
	alias := fmt.Sprintf("user%d", len(a.names))
	a.names[author] = alias
	return alias
}

// Len returns the number of distinct authors seen.
func (a *Anonymizer) Len() int {
	return len(a.names)
}
