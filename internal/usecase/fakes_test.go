package usecase

import (
	"context"
	"errors"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

// --- catalog fakes ---

type fakeCatalog struct {
	tables  []string
	listErr error
	closed  bool
}

func (c *fakeCatalog) ListTables(_ context.Context) ([]string, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.tables, nil
}

func (c *fakeCatalog) Close() error {
	c.closed = true
	return nil
}

type fakeOpener struct {
	catalog *fakeCatalog
	openErr error
	opened  []string
}

func (o *fakeOpener) Open(_ context.Context, path string) (ports.Catalog, error) {
	o.opened = append(o.opened, path)
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.catalog, nil
}

// --- API fakes ---

// scriptedAPI replays one response per call, in order, and records the calls made.
type scriptedAPI struct {
	logins    []domain.APIResponse
	registers []domain.APIResponse
	creates   []domain.APIResponse

	transportErr error

	calls      []string
	lastToken  domain.AccessToken
	lastDraft  domain.TaskDraft
	registered domain.RegisterRequest
}

func (a *scriptedAPI) Login(_ context.Context, _ domain.LoginRequest) (domain.APIResponse, error) {
	a.calls = append(a.calls, "login")
	if a.transportErr != nil {
		return domain.APIResponse{}, a.transportErr
	}
	return pop(&a.logins), nil
}

func (a *scriptedAPI) Register(_ context.Context, req domain.RegisterRequest) (domain.APIResponse, error) {
	a.calls = append(a.calls, "register")
	a.registered = req
	return pop(&a.registers), nil
}

func (a *scriptedAPI) CreateTask(_ context.Context, token domain.AccessToken, draft domain.TaskDraft) (domain.APIResponse, error) {
	a.calls = append(a.calls, "create_task")
	a.lastToken = token
	a.lastDraft = draft
	return pop(&a.creates), nil
}

func pop(q *[]domain.APIResponse) domain.APIResponse {
	if len(*q) == 0 {
		return domain.APIResponse{StatusCode: 599, Body: []byte("unscripted call")}
	}
	r := (*q)[0]
	*q = (*q)[1:]
	return r
}

func resp(status int, body string) domain.APIResponse {
	return domain.APIResponse{StatusCode: status, Body: []byte(body)}
}

// --- extractor fakes ---

type fakeExtractor struct {
	text   string
	err    error
	panics bool
	calls  int
}

func (e *fakeExtractor) Extract(_ []byte) (string, error) {
	e.calls++
	if e.panics {
		panic("tokenizer exploded")
	}
	return e.text, e.err
}

var errConnRefused = &domain.OpError{
	Op:   "apiclient.login",
	Kind: domain.KindExecution,
	Err:  errors.New("connection refused"),
}
