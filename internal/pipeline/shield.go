package pipeline

import (
	"fmt"
	"strings"
)

// Reserved marker bracketing every generated placeholder token. Occurrences
// typed by the user are neutralized before the first token is minted and
// restored at the very end of the pipeline.
const (
	reservedMarker = "@@"
	reservedWord   = "USERRESERVEDTOKEN"
)

// shieldEntry pairs a minted token with the snippet it replaced.
type shieldEntry struct {
	token string
	body  string
}

// ShieldTable records protected snippets in mint order so they can be put
// back verbatim after the structural passes have run. A table is created
// empty by a shielding stage, fully consumed by the matching restore, and
// never reused across documents.
type ShieldTable struct {
	prefix  string
	entries []shieldEntry
}

// NewShieldTable creates a table whose tokens are named @@<prefix><n>@@.
func NewShieldTable(prefix string) *ShieldTable {
	return &ShieldTable{prefix: prefix}
}

// Shield records body and returns the freshly minted token standing in for it.
func (t *ShieldTable) Shield(body string) string {
	token := fmt.Sprintf("%s%s%d%s", reservedMarker, t.prefix, len(t.entries), reservedMarker)
	t.entries = append(t.entries, shieldEntry{token: token, body: body})
	return token
}

// Restore replaces every minted token in doc with its recorded snippet.
func (t *ShieldTable) Restore(doc string) string {
	for _, e := range t.entries {
		doc = strings.ReplaceAll(doc, e.token, e.body)
	}
	return doc
}

// Len reports how many snippets have been shielded.
func (t *ShieldTable) Len() int {
	return len(t.entries)
}

// NeutralizeReservedMarker rewrites literal occurrences of the token marker
// in user text so they cannot collide with minted tokens. Must run before
// any table hands out tokens that outlive a single pass.
func NeutralizeReservedMarker(doc string) string {
	return strings.ReplaceAll(doc, reservedMarker, reservedWord)
}

// RestoreReservedMarker undoes NeutralizeReservedMarker. Runs last, after
// every table has been consumed.
func RestoreReservedMarker(doc string) string {
	return strings.ReplaceAll(doc, reservedWord, reservedMarker)
}
