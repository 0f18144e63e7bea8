// Package live fans match snapshots out to WebSocket subscribers. Each match
// has its own room; clients subscribe with GET /ws?match=<id> and receive the
// full match document on every successful mutation (snapshot replace, not
// deltas, so a dropped frame self-corrects on the next one).
package live

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/net/websocket"
)

// Frame is the wire envelope pushed to subscribers.
type Frame struct {
	Event string      `json:"event"`
	Match interface{} `json:"match,omitempty"`
}

type wsPeer struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func newWSPeer(encoder *json.Encoder) *wsPeer {
	return &wsPeer{encoder: encoder}
}

func (p *wsPeer) writeFrame(frame Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encoder.Encode(frame)
}

type matchRoom struct {
	mu          sync.Mutex
	matchID     string
	subscribers map[*wsPeer]struct{}
}

func newMatchRoom(matchID string) *matchRoom {
	return &matchRoom{
		matchID:     matchID,
		subscribers: make(map[*wsPeer]struct{}),
	}
}

func (r *matchRoom) join(peer *wsPeer) {
	r.mu.Lock()
	r.subscribers[peer] = struct{}{}
	r.mu.Unlock()
}

func (r *matchRoom) leave(peer *wsPeer) {
	r.mu.Lock()
	delete(r.subscribers, peer)
	r.mu.Unlock()
}

func (r *matchRoom) broadcast(frame Frame) {
	r.mu.Lock()
	peers := make([]*wsPeer, 0, len(r.subscribers))
	for peer := range r.subscribers {
		peers = append(peers, peer)
	}
	r.mu.Unlock()

	for _, peer := range peers {
		if err := peer.writeFrame(frame); err != nil {
			// Fire-and-forget: a dead peer is dropped on its own read loop exit.
			log.Printf("live: dropping frame for match %s: %v", r.matchID, err)
		}
	}
}

// Hub owns the per-match rooms.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]*matchRoom
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]*matchRoom)}
}

func (h *Hub) room(matchID string) *matchRoom {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[matchID]
	if ok {
		return room
	}

	room = newMatchRoom(matchID)
	h.rooms[matchID] = room
	return room
}

// ScoreUpdate pushes the full match document to every subscriber of matchID.
func (h *Hub) ScoreUpdate(matchID uint, match interface{}) {
	room := h.room(strconv.FormatUint(uint64(matchID), 10))
	room.broadcast(Frame{Event: "scoreUpdate", Match: match})
}

// ScoreUpdateAll pushes a payload to every open room (bulk reset).
func (h *Hub) ScoreUpdateAll(matches interface{}) {
	h.mu.Lock()
	rooms := make([]*matchRoom, 0, len(h.rooms))
	for _, room := range h.rooms {
		rooms = append(rooms, room)
	}
	h.mu.Unlock()

	frame := Frame{Event: "scoreUpdate", Match: matches}
	for _, room := range rooms {
		room.broadcast(frame)
	}
}

// Handler returns the subscription endpoint. The match id comes from the
// "match" query parameter; the connection is read-only from the client side
// and stays open until the client disconnects.
func (h *Hub) Handler() http.Handler {
	wsHandler := websocket.Handler(func(conn *websocket.Conn) {
		h.handleConn(conn)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Query().Get("match") == "" {
			http.Error(w, "match query parameter is required", http.StatusBadRequest)
			return
		}
		wsHandler.ServeHTTP(w, r)
	})
}

func (h *Hub) handleConn(conn *websocket.Conn) {
	defer conn.Close()

	matchID := conn.Request().URL.Query().Get("match")
	room := h.room(matchID)

	peer := newWSPeer(json.NewEncoder(conn))
	room.join(peer)
	defer room.leave(peer)

	// Drain the connection so we notice the close. Subscribers don't send
	// anything meaningful; inbound frames are discarded.
	buf := make([]byte, 512)
	for {
		if _, err := conn.Read(buf); err != nil {
			if err != io.EOF {
				log.Printf("live: subscriber read for match %s: %v", matchID, err)
			}
			return
		}
	}
}
