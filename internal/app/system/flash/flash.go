// Package flash carries transient notifications across redirects using
// session flash values. At most one notification exists at a time: pushing
// a new one replaces whatever was pending. Auto-dismiss happens
// client-side after a fixed delay; the server's part of the contract is
// that a popped notification never renders twice.
package flash

import (
	"encoding/json"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
)

// Notification kinds.
const (
	KindError   = "error"
	KindSuccess = "success"
	KindInfo    = "info"
)

// Note is one transient notification.
type Note struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// Server-supplied message text goes through a strict sanitizer before it
// can ever reach a template.
var sanitize = bluemonday.StrictPolicy()

// Push stores a notification in the session, replacing any pending one.
func Push(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, log *zap.Logger, kind, message string) {
	sess, err := sm.GetSession(r)
	if err != nil {
		log.Warn("flash push: session decode failed", zap.Error(err))
	}

	// Drain pending flashes so only the newest notification survives.
	sess.Flashes()

	note := Note{Message: sanitize.Sanitize(message), Kind: kind}
	encoded, err := json.Marshal(note)
	if err != nil {
		log.Error("flash push: encode failed", zap.Error(err))
		return
	}
	sess.AddFlash(string(encoded))

	if err := sess.Save(r, w); err != nil {
		log.Error("flash push: session save failed", zap.Error(err))
	}
}

// Pop removes and returns the pending notification, or nil when there is
// none. Popping clears the flash so the notification cannot reappear
// without a new trigger.
func Pop(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, log *zap.Logger) *Note {
	sess, err := sm.GetSession(r)
	if err != nil {
		return nil
	}

	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		log.Warn("flash pop: session save failed", zap.Error(err))
	}

	// Newest wins if something managed to queue more than one.
	raw, ok := flashes[len(flashes)-1].(string)
	if !ok {
		return nil
	}
	var note Note
	if err := json.Unmarshal([]byte(raw), &note); err != nil {
		return nil
	}
	return &note
}
