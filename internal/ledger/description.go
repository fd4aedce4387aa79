package ledger

import (
	"regexp"
	"sync"
)

// descriptionTag matches one leading "[...>" header and the whitespace after it.
var descriptionTag = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^\[.*?>\s*`)
})

// CleanDescription strips a single leading "[...>" tag from an event
// description. Anything after the first tag is kept as is, including a
// second tag.
func CleanDescription(s string) string {
	loc := descriptionTag().FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[loc[1]:]
}
