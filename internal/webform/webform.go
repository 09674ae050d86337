// Package webform serves a one-field HTML form and echoes the submitted
// username back.
package webform

import (
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Field is the name of the form field the handler reads.
const Field = "username"

// ErrMissingField is returned by Echo when the username field was not
// submitted at all. An empty username is accepted.
var ErrMissingField = errors.New("missing form field " + Field)

// shutdownTimeout bounds how long Serve waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head><title>Form</title></head>
<body>
<form method="post" action="{{.Action}}">
  <label for="{{.Field}}">Username:</label>
  <input type="text" id="{{.Field}}" name="{{.Field}}">
  <input type="submit" value="Submit">
</form>
</body>
</html>
`))

// Echo greets the username found in fields, the submitted form data keyed
// by field name. A present but empty username greets nobody ("Hello, !").
// The returned string is not HTML-escaped.
func Echo(fields map[string]string) (string, error) {
	name, ok := fields[Field]
	if !ok {
		return "", ErrMissingField
	}
	return fmt.Sprintf("Hello, %s!", name), nil
}

// Handler renders the form on GET and answers the submission on POST.
type Handler struct {
	Logger *zap.Logger
}

// NewHandler creates a Handler. A nil logger is replaced with a no-op one.
func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct{ Action, Field string }{Action: r.URL.Path, Field: Field}
		if err := formTemplate.Execute(w, data); err != nil {
			h.Logger.Error("render form", zap.Error(err))
		}
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "malformed form", http.StatusBadRequest)
			return
		}
		fields := make(map[string]string, len(r.PostForm))
		for k, v := range r.PostForm {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		msg, err := Echo(fields)
		if err != nil {
			h.Logger.Debug("rejected submission", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Info("form submitted", zap.String(Field, fields[Field]))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintln(w, html.EscapeString(msg))
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Serve runs h on ln until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("serving web form", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-errCh
	logger.Info("web form stopped")
	return nil
}
