package changefeed

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/pkg/user"
)

type ChangefeedHandler struct {
	broadcaster *Broadcaster
}

func NewChangefeedHandler(broadcaster *Broadcaster) *ChangefeedHandler {
	return &ChangefeedHandler{broadcaster: broadcaster}
}

// Stream serves a Server-Sent Events stream of invalidation signals for the
// current user. Each event names the entity that changed; the client is
// expected to re-fetch rather than patch local state.
func (h *ChangefeedHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userId, err := user.CurrentId(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// The server write timeout would cut the stream; lift it for this response.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		log.Debugf("changefeed: could not clear write deadline: %v", err)
	}

	signals, unsubscribe := h.broadcaster.Subscribe(userId)
	defer unsubscribe()

	// Tell the client the stream is live before the first change arrives.
	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			log.Debugf("changefeed: stream closed for user %d", userId)
			return
		case signal := <-signals:
			_, err := fmt.Fprintf(w, "event: invalidated\ndata: {\"entity\":%q}\n\n", signal.Entity)
			if err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
