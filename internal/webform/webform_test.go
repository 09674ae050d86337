package webform

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestEcho(t *testing.T) {
	msg, err := Echo(map[string]string{"username": "John"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, John!", msg)

	_, err = Echo(map[string]string{"email": "john@example.com"})
	require.ErrorIs(t, err, ErrMissingField)

	msg, err = Echo(map[string]string{"username": ""})
	require.NoError(t, err)
	assert.Equal(t, "Hello, !", msg)
}

func postForm(h http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Post(t *testing.T) {
	rec := postForm(NewHandler(nil), url.Values{"username": {"John"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, John!\n", rec.Body.String())
}

func TestHandler_PostEscapesHTML(t *testing.T) {
	rec := postForm(NewHandler(nil), url.Values{"username": {"<script>"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, &lt;script&gt;!\n", rec.Body.String())
}

func TestHandler_PostMissingField(t *testing.T) {
	rec := postForm(NewHandler(nil), url.Values{"other": {"x"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing form field username")
}

func TestHandler_PostEmptyUsername(t *testing.T) {
	rec := postForm(NewHandler(nil), url.Values{"username": {""}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, !\n", rec.Body.String())
}

func TestHandler_PostIgnoresQueryUsername(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/?username=Query", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetRendersForm(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<form method="post" action="/">`)
	assert.Contains(t, body, `name="username"`)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, NewHandler(nil), zap.NewNop())
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport}

	resp, err := client.PostForm("http://"+ln.Addr().String()+"/", url.Values{"username": {"John"}})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "Hello, John!\n", string(body))
	transport.CloseIdleConnections()

	cancel()
	require.NoError(t, <-done)
}
