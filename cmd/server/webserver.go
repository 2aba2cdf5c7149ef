package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer serves the files in staticDir and upgrades /ws connections into
// rendering sessions.
func webServer(port int, staticDir string, cfg sessionConfig) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler handles the http ws endpoint. Each accepted connection
// gets its own ViewState and runs until the browser goes away.
func websocketHandler(cfg sessionConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("viewer connected: %s", r.RemoteAddr)
		s := newSession(c, cfg)
		s.run(r.Context())
		log.Printf("viewer disconnected: %s", r.RemoteAddr)
	}
}
