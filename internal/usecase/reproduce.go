package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

const defaultPreviewLines = 20

type ReproduceConfig struct {
	TokenPath    string
	PreviewLines int
	Progress     io.Writer
	Logger       *zap.Logger
}

// Reproduce runs one diagnostic: authenticate, create a task, and when the
// backend answers 500 pull the exception text out of its error page.
type Reproduce struct {
	auth      *BootstrapAuth
	probe     *ProbeTaskCreation
	extractor ports.ExceptionExtractor

	previewLines int
	progress     io.Writer
	log          *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewReproduce(authAPI ports.AuthAPI, taskAPI ports.TaskAPI, extractor ports.ExceptionExtractor, cfg ReproduceConfig) *Reproduce {
	if cfg.Progress == nil {
		cfg.Progress = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.PreviewLines <= 0 {
		cfg.PreviewLines = defaultPreviewLines
	}

	return &Reproduce{
		auth:         NewBootstrapAuth(authAPI, cfg.TokenPath, cfg.Progress, cfg.Logger),
		probe:        NewProbeTaskCreation(taskAPI, cfg.Progress, cfg.Logger),
		extractor:    extractor,
		previewLines: cfg.PreviewLines,
		progress:     cfg.Progress,
		log:          cfg.Logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Execute returns an error only when the run could not reach the task probe
// (auth chain exhausted, transport failure). A 500 from the probe is data.
func (uc *Reproduce) Execute(ctx context.Context, cred domain.Credential, draft domain.TaskDraft) (domain.DiagnosticResult, error) {
	res := domain.DiagnosticResult{
		RunID:      uc.newID(),
		StartedAt:  uc.now(),
		Extraction: domain.ExtractionOutcome{Path: domain.ExtractionNone},
	}
	log := uc.log.With(zap.String("run_id", res.RunID))
	log.Info("reproduce.started", zap.String("username", cred.Username))

	token, err := uc.auth.Execute(ctx, cred)
	if err != nil {
		res.EndedAt = uc.now()
		log.Warn("reproduce.auth_failed", zap.Error(err))
		return res, err
	}

	resp, err := uc.probe.Execute(ctx, token, draft)
	if err != nil {
		res.EndedAt = uc.now()
		log.Warn("reproduce.probe_failed", zap.Error(err))
		return res, err
	}
	res.StatusCode = resp.StatusCode

	if resp.StatusCode == http.StatusInternalServerError {
		uc.diagnose(&res, resp.Body, log)
	} else {
		body := string(resp.Body)
		res.RawBody = &body
		uc.say("Response: %s", body)
	}

	res.EndedAt = uc.now()
	log.Info("reproduce.finished",
		zap.Int("status", res.StatusCode),
		zap.String("extraction", string(res.Extraction.Path)),
	)
	return res, nil
}

// diagnose fills the exception text, or degrades to the body preview with a
// typed reason when extraction fails. It never propagates a failure.
func (uc *Reproduce) diagnose(res *domain.DiagnosticResult, body []byte, log *zap.Logger) {
	preview := HeadLines(string(body), uc.previewLines)
	res.ResponseBodyPreview = &preview

	text, err := uc.extract(body)
	if err != nil {
		log.Warn("reproduce.extraction_failed", zap.Error(err))
		res.Extraction = domain.ExtractionOutcome{
			Path:    domain.ExtractionFallback,
			Failure: err.Error(),
		}
		uc.say("Failed to parse error: %v", err)
	} else {
		res.ExtractedExceptionText = &text
		res.Extraction = domain.ExtractionOutcome{Path: domain.ExtractionExtracted}
		uc.say("Exception: %s", text)
	}

	uc.say("Response Head:")
	uc.say("%s", preview)
}

func (uc *Reproduce) extract(body []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.OpError{
				Op:   "usecase.reproduce.extract",
				Kind: domain.KindExtractionFailure,
				Err:  fmt.Errorf("extractor panicked: %v", r),
			}
		}
	}()

	text, err = uc.extractor.Extract(body)
	if err != nil && !domain.IsKind(err, domain.KindExtractionFailure) {
		err = &domain.OpError{
			Op:   "usecase.reproduce.extract",
			Kind: domain.KindExtractionFailure,
			Err:  err,
		}
	}
	return text, err
}

func (uc *Reproduce) say(format string, args ...any) {
	fmt.Fprintf(uc.progress, format+"\n", args...)
}

// HeadLines returns the first n newline-separated lines of s.
func HeadLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
