// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/system/viewdata"
)

// ErrorLogger pairs structured logging with a user-facing error page, so
// handlers can fail a request in one call. The log entry carries the
// technical detail; the page only ever shows the friendly message.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogBadRequest logs a malformed request and renders an error page with
// status 400.
func (el *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, op string, err error, userMsg, backURL string) {
	el.log.Warn("bad request",
		zap.String("op", op),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	el.render(w, r, http.StatusBadRequest, userMsg, backURL)
}

// LogServerError logs an internal failure and renders an error page with
// status 500.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, op string, err error, userMsg, backURL string) {
	el.log.Error("server error",
		zap.String("op", op),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	el.render(w, r, http.StatusInternalServerError, userMsg, backURL)
}

func (el *ErrorLogger) render(w http.ResponseWriter, r *http.Request, status int, userMsg, backURL string) {
	w.WriteHeader(status)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", backURL),
		Message: userMsg,
	}
	templates.Render(w, r, "error_page", data)
}
