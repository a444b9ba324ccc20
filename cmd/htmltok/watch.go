package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// watchServer re-tokenizes a file and pushes the resulting token
// stream as JSON text frames to any connected browser tab whenever the
// file's mtime changes.
type watchServer struct {
	path   string
	logger *slog.Logger

	upgrader websocket.Upgrader
}

func newWatchServer(path string, logger *slog.Logger) *watchServer {
	return &watchServer{path: path, logger: logger}
}

func (s *watchServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		fmt.Fprintf(w, "connect via a websocket client to watch %q for changes\n", s.path)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade", "error", err)
		return
	}
	defer ws.Close()

	if err := s.pushLoop(ws); err != nil {
		s.logger.Warn("watch loop ended", "error", err)
	}
}

// pushLoop polls s.path's modification time and pushes a fresh token
// stream every time it changes, until the client disconnects.
func (s *watchServer) pushLoop(ws *websocket.Conn) error {
	var lastMod time.Time

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	// Detect client-initiated close without blocking the poll loop.
	closed := make(chan error, 1)
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					err = nil
				}
				closed <- err
				return
			}
		}
	}()

	for {
		select {
		case err := <-closed:
			return err
		case <-ticker.C:
			info, err := os.Stat(s.path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			src, err := os.ReadFile(s.path)
			if err != nil {
				s.logger.Warn("read watched file", "error", err)
				continue
			}

			wr, err := ws.NextWriter(websocket.TextMessage)
			if err != nil {
				return fmt.Errorf("get websocket writer: %w", err)
			}
			if err := tokenize(wr, src, true, false, s.logger); err != nil {
				wr.Close()
				return err
			}
			if err := wr.Close(); err != nil {
				return fmt.Errorf("close websocket writer: %w", err)
			}
		}
	}
}
