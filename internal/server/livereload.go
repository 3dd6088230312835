package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/docsrv/docsrv/internal/logging"
)

// LiveReload broadcasts a reload notice to connected development
// browsers whenever a new catalog is swapped in.
type LiveReload struct {
	logger  logging.Logger
	mutex   sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewLiveReload creates an empty hub.
func NewLiveReload(logger logging.Logger) *LiveReload {
	return &LiveReload{
		logger:  logger.WithComponent("livereload"),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handle upgrades the request and parks the connection until the
// client goes away.
func (lr *LiveReload) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		lr.logger.Warn(r.Context(), err, "websocket upgrade failed")
		return
	}

	lr.mutex.Lock()
	lr.clients[conn] = struct{}{}
	lr.mutex.Unlock()

	defer func() {
		lr.mutex.Lock()
		delete(lr.clients, conn)
		lr.mutex.Unlock()
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	// Reads only to detect disconnect; clients never send payloads.
	for {
		if _, _, err := conn.Read(r.Context()); err != nil {
			return
		}
	}
}

// NotifyReload tells every connected client to refresh.
func (lr *LiveReload) NotifyReload() {
	lr.mutex.Lock()
	clients := make([]*websocket.Conn, 0, len(lr.clients))
	for conn := range lr.clients {
		clients = append(clients, conn)
	}
	lr.mutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for _, conn := range clients {
		if err := conn.Write(ctx, websocket.MessageText, []byte("reload")); err != nil {
			lr.logger.Debug(ctx, "dropping unreachable livereload client")
			conn.Close(websocket.StatusGoingAway, "write failed")
		}
	}
}

// ClientCount returns the number of connected clients.
func (lr *LiveReload) ClientCount() int {
	lr.mutex.Lock()
	defer lr.mutex.Unlock()
	return len(lr.clients)
}
