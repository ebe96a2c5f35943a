package ollama_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/strikelab/commandstrike/pkg/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ndjsonHandler streams the given lines, flushing after each so the client
// observes them incrementally.
func ndjsonHandler(t *testing.T, lines []string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		req := readBody(t, r)
		assert.Equal(t, true, req["stream"])

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		w.Header().Set("Content-Type", "application/x-ndjson")

		// Write errors are ignored: the client may close the connection
		// early after a done frame.
		for _, line := range lines {
			_, _ = fmt.Fprintln(w, line)
			flusher.Flush()
		}
	}
}

// collect drains a session's channel and returns the fragments.
func collect(session *ollama.StreamSession) []string {
	var fragments []string
	for f := range session.Fragments {
		fragments = append(fragments, f)
	}

	return fragments
}

func TestStream_FragmentsAndFinalAgree(t *testing.T) {
	client := newTestClient(t, ndjsonHandler(t, []string{
		`{"model":"gemma3:12b","response":"The ","done":false}`,
		`{"model":"gemma3:12b","response":"command ","done":false}`,
		`{"model":"gemma3:12b","response":"lists files.","done":true}`,
	}))

	session, err := client.Stream(context.Background(), "explain ls", "")
	require.NoError(t, err)

	fragments := collect(session)
	assert.Equal(t, []string{"The ", "command ", "lists files."}, fragments)

	final, done := session.Final()
	require.True(t, done)
	assert.Equal(t, strings.Join(fragments, ""), final)
}

func TestStream_SkipsMalformedLines(t *testing.T) {
	client := newTestClient(t, ndjsonHandler(t, []string{
		`{"model":"gemma3:12b","response":"good ","done":false}`,
		`{{{this is not json`,
		`{"model":"gemma3:12b","response":"still good","done":true}`,
	}))

	session, err := client.Stream(context.Background(), "explain", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"good ", "still good"}, collect(session))

	final, done := session.Final()
	require.True(t, done)
	assert.Equal(t, "good still good", final)
}

func TestStream_StopsAtDoneFrame(t *testing.T) {
	client := newTestClient(t, ndjsonHandler(t, []string{
		`{"model":"gemma3:12b","response":"one","done":false}`,
		`{"model":"gemma3:12b","response":"two","done":true}`,
		`{"model":"gemma3:12b","response":"ignored","done":false}`,
	}))

	session, err := client.Stream(context.Background(), "explain", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, collect(session))

	final, done := session.Final()
	require.True(t, done)
	assert.Equal(t, "onetwo", final)
}

func TestStream_TransportFailureDeliversDiagnosticFragment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := ollama.New(ollama.Config{BaseURL: srv.URL})
	srv.Close()

	session, err := client.Stream(context.Background(), "explain", "")
	require.NoError(t, err)

	fragments := collect(session)
	require.Len(t, fragments, 1)
	assert.Contains(t, fragments[0], "Error:")

	_, done := session.Final()
	assert.False(t, done)
}

func TestStream_ServiceErrorDeliversDiagnosticFragment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model exploded"))
	})

	session, err := client.Stream(context.Background(), "explain", "")
	require.NoError(t, err)

	fragments := collect(session)
	require.Len(t, fragments, 1)
	assert.Equal(t, "API Error: model exploded", fragments[0])

	_, done := session.Final()
	assert.False(t, done)
}

func TestStream_EmptyStream(t *testing.T) {
	client := newTestClient(t, ndjsonHandler(t, nil))

	session, err := client.Stream(context.Background(), "explain", "")
	require.NoError(t, err)

	assert.Empty(t, collect(session))

	final, done := session.Final()
	require.True(t, done)
	assert.Empty(t, final)
}

func TestStream_ManyFramesWithSlowConsumer(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = fmt.Sprintf(`{"model":"m","response":"frag-%03d ","done":%v}`, i, i == len(lines)-1)
	}

	client := newTestClient(t, ndjsonHandler(t, lines))

	session, err := client.Stream(context.Background(), "explain", "")
	require.NoError(t, err)

	// Consume slower than the producer fills the buffered channel; the
	// producer must block rather than drop fragments.
	var got []string
	for f := range session.Fragments {
		got = append(got, f)
		if len(got)%50 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}

	require.Len(t, got, len(lines))

	final, done := session.Final()
	require.True(t, done)
	assert.Equal(t, strings.Join(got, ""), final)
}
