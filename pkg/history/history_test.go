package history_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/strikelab/commandstrike/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Empty(t *testing.T) {
	assert.Equal(t, history.NoHistory, history.Context(nil))
	assert.Equal(t, history.NoHistory, history.Context([]history.Item{}))
}

func TestContext_MostRecentFirst(t *testing.T) {
	items := []history.Item{
		{Request: "first", Command: "cmd1", Result: "res1"},
		{Request: "second", Command: "cmd2", Result: "res2"},
	}

	ctx := history.Context(items)

	assert.Contains(t, ctx, "Request 1: second")
	assert.Contains(t, ctx, "Request 2: first")
	assert.Less(t, strings.Index(ctx, "second"), strings.Index(ctx, "first"))
}

func TestContext_CapsAtThreeItems(t *testing.T) {
	var items []history.Item
	for i := range 10 {
		items = append(items, history.Item{
			Request: fmt.Sprintf("req-%d", i),
			Command: fmt.Sprintf("cmd-%d", i),
			Result:  fmt.Sprintf("res-%d", i),
		})
	}

	ctx := history.Context(items)

	assert.Equal(t, 3, strings.Count(ctx, "Request "))
	assert.Contains(t, ctx, "req-9")
	assert.Contains(t, ctx, "req-8")
	assert.Contains(t, ctx, "req-7")
	assert.NotContains(t, ctx, "req-6")
}

func TestContext_TripletRendering(t *testing.T) {
	ctx := history.Context([]history.Item{
		{Request: "scan the host", Command: "nmap -sV host", Result: "80/tcp open"},
	})

	assert.Contains(t, ctx, "Request 1: scan the host")
	assert.Contains(t, ctx, "Command: nmap -sV host")
	assert.Contains(t, ctx, "Result: 80/tcp open")
}

func TestLatest(t *testing.T) {
	_, ok := history.Latest(nil)
	assert.False(t, ok)

	items := []history.Item{
		{Request: "old"},
		{Request: "new"},
	}

	latest, ok := history.Latest(items)
	require.True(t, ok)
	assert.Equal(t, "new", latest.Request)
}
