// Package history holds the caller-owned record of prior interactions and
// renders a bounded context block from it for prompt construction.
package history

import (
	"fmt"
	"strings"
)

// ContextItems is the maximum number of history items included in a prompt
// context block.
const ContextItems = 3

// NoHistory is returned by Context when there are no prior interactions.
const NoHistory = "No previous interaction history."

// Item records one prior interaction: the user's request, the command that
// was synthesized for it, and the result of running it.
type Item struct {
	Request string
	Command string
	Result  string
}

// Context renders the most recent items, most recent first, as a formatted
// block of request/command/result triplets. At most ContextItems items are
// included regardless of input length. An empty history yields NoHistory.
func Context(items []Item) string {
	if len(items) == 0 {
		return NoHistory
	}

	var b strings.Builder
	b.WriteString("Here are some previous interactions:\n\n")

	n := 0
	for i := len(items) - 1; i >= 0 && n < ContextItems; i-- {
		n++
		fmt.Fprintf(&b, "Request %d: %s\nCommand: %s\nResult: %s\n\n",
			n, items[i].Request, items[i].Command, items[i].Result)
	}

	return b.String()
}

// Latest returns the most recent item, or false when the history is empty.
func Latest(items []Item) (Item, bool) {
	if len(items) == 0 {
		return Item{}, false
	}

	return items[len(items)-1], true
}
