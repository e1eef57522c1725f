package ports

import (
	"context"

	"github.com/Kedar1021/to-do-app/internal/domain"
)

// AuthAPI is the backend's authentication surface.
// Non-2xx statuses are returned as responses, not errors; errors mean the call did not complete.
type AuthAPI interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.APIResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.APIResponse, error)
}

// TaskAPI is the backend's task surface.
type TaskAPI interface {
	CreateTask(ctx context.Context, token domain.AccessToken, draft domain.TaskDraft) (domain.APIResponse, error)
}
