package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"

	"github.com/tbeaudouin05/packchange/api/services/packs/app"
	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
	"github.com/tbeaudouin05/packchange/api/services/packs/notify"
)

const heartbeatInterval = 25 * time.Second

// notificationStream serves the caller's notifications as Server-Sent Events.
// EventSource cannot set headers, so the token may also come as ?access_token=.
func notificationStream(bus *notify.Bus, sessions gw.SessionVerifier) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if token == "" {
			token = r.URL.Query().Get("access_token")
		}
		if token == "" || sessions == nil {
			http.Error(w, app.MsgSessionExpired, http.StatusUnauthorized)
			return
		}
		sess, err := sessions.VerifySession(r.Context(), token)
		if err != nil {
			http.Error(w, app.MsgSessionExpired, http.StatusUnauthorized)
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		events, unsubscribe := bus.Subscribe(sess.UserID)
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		slog.Debug("notification stream opened", "user_id", sess.UserID)
		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case <-r.Context().Done():
				slog.Debug("notification stream closed", "user_id", sess.UserID)
				return
			case <-heartbeat.C:
				fmt.Fprint(w, ": ping\n\n")
				flusher.Flush()
			case n, open := <-events:
				if !open {
					return
				}
				data, err := json.Marshal(n)
				if err != nil {
					slog.Error("failed to encode notification", "notification_id", n.ID, "err", err)
					continue
				}
				fmt.Fprintf(w, "id: %s\nevent: notification\ndata: %s\n\n", n.ID, data)
				flusher.Flush()
			}
		}
	}
}
