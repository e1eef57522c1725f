package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/infra/httpclient"
)

type captured struct {
	method string
	path   string
	auth   string
	accept string
	ctype  string
	body   map[string]any
	cookie string
}

func newTestSession(t *testing.T, h func(c captured, w http.ResponseWriter)) (*Session, *[]captured) {
	t.Helper()

	var calls []captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		c := captured{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			accept: r.Header.Get("Accept"),
			ctype:  r.Header.Get("Content-Type"),
		}
		if ck, err := r.Cookie("sessionid"); err == nil {
			c.cookie = ck.Value
		}
		if len(b) > 0 {
			if err := json.Unmarshal(b, &c.body); err != nil {
				t.Errorf("expected JSON body, got %q: %v", b, err)
			}
		}
		calls = append(calls, c)
		h(c, w)
	}))
	t.Cleanup(srv.Close)

	s := New(srv.URL+"/api/v1/", httpclient.New(httpclient.DefaultConfig()))
	t.Cleanup(s.Close)
	return s, &calls
}

func TestSession_LoginPostsCredentials(t *testing.T) {
	s, calls := newTestSession(t, func(_ captured, w http.ResponseWriter) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"access":"tok","refresh":"r"}`))
	})

	resp, err := s.Login(context.Background(), domain.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"access":"tok","refresh":"r"}`, string(resp.Body))

	require.Len(t, *calls, 1)
	c := (*calls)[0]
	assert.Equal(t, http.MethodPost, c.method)
	assert.Equal(t, "/api/v1/auth/login/", c.path)
	assert.Equal(t, "application/json", c.ctype)
	assert.Equal(t, "*/*", c.accept)
	assert.Equal(t, map[string]any{"username": "u", "password": "p"}, c.body)
	assert.Empty(t, c.auth)
}

func TestSession_RegisterReturnsNon2xxAsResponse(t *testing.T) {
	s, calls := newTestSession(t, func(_ captured, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"username":["already exists"]}`))
	})

	resp, err := s.Register(context.Background(), domain.RegisterRequest{Username: "u", Email: "e", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `{"username":["already exists"]}`, string(resp.Body))

	require.Len(t, *calls, 1)
	assert.Equal(t, "/api/v1/auth/register/", (*calls)[0].path)
	assert.Equal(t, "e", (*calls)[0].body["email"])
}

func TestSession_CreateTaskSendsBearerAndNullDueDate(t *testing.T) {
	s, calls := newTestSession(t, func(_ captured, w http.ResponseWriter) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<pre class="exception_value">boom</pre>`))
	})

	resp, err := s.CreateTask(context.Background(), domain.AccessToken("tok"), domain.DefaultConfig().Task)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	require.Len(t, *calls, 1)
	c := (*calls)[0]
	assert.Equal(t, "/api/v1/tasks/", c.path)
	assert.Equal(t, "Bearer tok", c.auth)
	dueDate, present := c.body["due_date"]
	assert.True(t, present, "due_date must be sent explicitly")
	assert.Nil(t, dueDate)
	assert.Equal(t, "MEDIUM", c.body["priority"])
	assert.Equal(t, false, c.body["starred"])
}

func TestSession_KeepsCookiesBetweenCalls(t *testing.T) {
	s, calls := newTestSession(t, func(c captured, w http.ResponseWriter) {
		if c.path == "/api/v1/auth/login/" {
			http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "s1", Path: "/"})
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := s.Login(context.Background(), domain.LoginRequest{})
	require.NoError(t, err)
	_, err = s.CreateTask(context.Background(), "tok", domain.TaskDraft{})
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	assert.Equal(t, "s1", (*calls)[1].cookie)
}

func TestSession_TransportErrorIsExecution(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s := New(url, httpclient.New(httpclient.DefaultConfig()))
	_, err := s.Login(context.Background(), domain.LoginRequest{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
}
