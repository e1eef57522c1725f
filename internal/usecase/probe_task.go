package usecase

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

// ProbeTaskCreation sends one task-creation request and hands back whatever the server said.
type ProbeTaskCreation struct {
	api      ports.TaskAPI
	progress io.Writer
	log      *zap.Logger
}

func NewProbeTaskCreation(api ports.TaskAPI, progress io.Writer, log *zap.Logger) *ProbeTaskCreation {
	if progress == nil {
		progress = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProbeTaskCreation{api: api, progress: progress, log: log}
}

// Execute does not validate the draft and never retries.
func (uc *ProbeTaskCreation) Execute(ctx context.Context, token domain.AccessToken, draft domain.TaskDraft) (domain.APIResponse, error) {
	fmt.Fprintln(uc.progress, "Creating task...")

	resp, err := uc.api.CreateTask(ctx, token, draft)
	if err != nil {
		return domain.APIResponse{}, err
	}

	fmt.Fprintf(uc.progress, "Status Code: %d\n", resp.StatusCode)
	uc.log.Info("task.created", zap.Int("status", resp.StatusCode), zap.Int("body_bytes", len(resp.Body)))
	return resp, nil
}
