package live

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

// joinBuffer attaches an in-memory subscriber to a room and returns the
// buffer its frames land in.
func joinBuffer(h *Hub, matchID string) *bytes.Buffer {
	var buf bytes.Buffer
	h.room(matchID).join(newWSPeer(json.NewEncoder(&buf)))
	return &buf
}

func decodeFrames(t *testing.T, buf *bytes.Buffer) []Frame {
	t.Helper()
	var frames []Frame
	dec := json.NewDecoder(buf)
	for dec.More() {
		var f Frame
		require.NoError(t, dec.Decode(&f))
		frames = append(frames, f)
	}
	return frames
}

func TestScoreUpdateReachesOnlyItsRoom(t *testing.T) {
	h := NewHub()
	room1a := joinBuffer(h, "1")
	room1b := joinBuffer(h, "1")
	room2 := joinBuffer(h, "2")

	h.ScoreUpdate(1, map[string]int{"runs": 42})

	for _, buf := range []*bytes.Buffer{room1a, room1b} {
		frames := decodeFrames(t, buf)
		require.Len(t, frames, 1)
		assert.Equal(t, "scoreUpdate", frames[0].Event)
	}
	assert.Empty(t, decodeFrames(t, room2), "other rooms stay quiet")
}

func TestScoreUpdateAllReachesEveryRoom(t *testing.T) {
	h := NewHub()
	room1 := joinBuffer(h, "1")
	room2 := joinBuffer(h, "2")

	h.ScoreUpdateAll([]string{"a", "b"})

	assert.Len(t, decodeFrames(t, room1), 1)
	assert.Len(t, decodeFrames(t, room2), 1)
}

func TestLeaveStopsDelivery(t *testing.T) {
	h := NewHub()
	var buf bytes.Buffer
	peer := newWSPeer(json.NewEncoder(&buf))
	room := h.room("5")
	room.join(peer)
	room.leave(peer)

	h.ScoreUpdate(5, nil)

	assert.Zero(t, buf.Len())
}

func TestHandlerRejectsBadRequests(t *testing.T) {
	h := NewHub()
	handler := h.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ws?match=1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriberReceivesFrameOverWebSocket(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?match=7"
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	defer conn.Close()

	// The join happens on the server goroutine after the handshake.
	require.Eventually(t, func() bool {
		room := h.room("7")
		room.mu.Lock()
		defer room.mu.Unlock()
		return len(room.subscribers) == 1
	}, 2*time.Second, 10*time.Millisecond)

	h.ScoreUpdate(7, map[string]string{"status": "in-progress"})

	var frame Frame
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, json.NewDecoder(conn).Decode(&frame))
	assert.Equal(t, "scoreUpdate", frame.Event)
}
