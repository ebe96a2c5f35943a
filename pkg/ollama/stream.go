package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// streamBuffer is the fragment channel capacity. A slow consumer exerts
// backpressure on the producer once this many fragments are pending.
const streamBuffer = 100

// maxStreamLine bounds a single streamed JSON line.
const maxStreamLine = 1024 * 1024

// streamClient has no timeout: streaming generations are long-lived by
// nature and are bounded only by the caller's context.
var streamClient = &http.Client{}

// StreamSession is a handle to an in-flight streaming generation. Fragments
// receives response text as it arrives and is closed when the producer
// finishes; there is no end-of-stream sentinel value. The accumulated full
// text is available from Final after the channel closes.
type StreamSession struct {
	Fragments <-chan string

	mu    sync.Mutex
	final string
	done  bool
}

// Final returns the accumulated full response text. It reports false until
// the producer has finished; callers should only read it after observing
// channel closure.
func (s *StreamSession) Final() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.final, s.done
}

// setFinal records the accumulated text. Called exactly once, by the
// producer, after it has stopped sending fragments.
func (s *StreamSession) setFinal(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.final = text
	s.done = true
}

// Stream issues a streaming generation request and returns immediately with
// a session whose channel receives fragments as they arrive. The request is
// exempt from the configured timeout but honors ctx for cancellation.
//
// Transport failures and non-success statuses are delivered as a single
// diagnostic fragment on the channel rather than an error return, since the
// channel is the only path back to the consumer once streaming has begun.
// Unparseable lines are skipped, not fatal to the stream.
func (c *Client) Stream(ctx context.Context, prompt, system string) (*StreamSession, error) {
	payload, err := json.Marshal(c.generateRequest(prompt, system, true))
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := c.NewRequest(ctx, http.MethodPost, generatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	fragments := make(chan string, streamBuffer)
	session := &StreamSession{Fragments: fragments}

	go c.produce(req, fragments, session)

	return session, nil
}

// produce performs the streaming I/O. Sends on the channel block when the
// consumer falls streamBuffer fragments behind.
func (c *Client) produce(req *http.Request, fragments chan<- string, session *StreamSession) {
	defer close(fragments)

	resp, err := streamClient.Do(req)
	if err != nil {
		fragments <- fmt.Sprintf("Error: %v", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			fragments <- fmt.Sprintf("API Error: failed to read error response: %v", readErr)
			return
		}

		fragments <- fmt.Sprintf("API Error: %s", string(body))
		return
	}

	var full bytes.Buffer

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLine)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var frame generateFrame
		if err := json.Unmarshal(line, &frame); err != nil {
			c.logger().Debug("skipping malformed stream line", zap.Error(err))
			continue
		}

		fragments <- frame.Response
		full.WriteString(frame.Response)

		if frame.Done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		fragments <- fmt.Sprintf("Stream error: %v", err)
	}

	session.setFinal(full.String())
}
