package apiclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

const (
	loginPath    = "/auth/login/"
	registerPath = "/auth/register/"
	tasksPath    = "/tasks/"
)

// Session talks to the task backend for the duration of one diagnostic run.
// Cookies and connections are shared by every call made through it.
type Session struct {
	client *resty.Client
	log    *zap.Logger
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a Session rooted at baseURL (e.g. http://localhost:8000/api/v1).
func New(baseURL string, hc *http.Client, opts ...Option) *Session {
	s := &Session{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	s.client = resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetLogger(s.log.Sugar()).
		// resty would otherwise mirror Content-Type into Accept, and a JSON Accept
		// makes the backend render its 500 page as plain text without the exception markers.
		SetHeader("Accept", "*/*")

	return s
}

var (
	_ ports.AuthAPI = (*Session)(nil)
	_ ports.TaskAPI = (*Session)(nil)
)

func (s *Session) Login(ctx context.Context, req domain.LoginRequest) (domain.APIResponse, error) {
	return s.post(ctx, "apiclient.login", loginPath, req, "")
}

func (s *Session) Register(ctx context.Context, req domain.RegisterRequest) (domain.APIResponse, error) {
	return s.post(ctx, "apiclient.register", registerPath, req, "")
}

func (s *Session) CreateTask(ctx context.Context, token domain.AccessToken, draft domain.TaskDraft) (domain.APIResponse, error) {
	return s.post(ctx, "apiclient.create_task", tasksPath, draft, token)
}

// Close releases idle connections held by the session.
func (s *Session) Close() {
	s.client.GetClient().CloseIdleConnections()
}

func (s *Session) post(ctx context.Context, op, path string, body any, token domain.AccessToken) (domain.APIResponse, error) {
	r := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if token != "" {
		r.SetAuthToken(string(token))
	}

	resp, err := r.Post(path)
	if err != nil {
		s.log.Debug("request failed", zap.String("op", op), zap.String("path", path), zap.Error(err))
		return domain.APIResponse{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	s.log.Debug("request done",
		zap.String("op", op),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("latency", resp.Time()),
	)

	return domain.APIResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
