package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
	ucextract "github.com/Kedar1021/to-do-app/internal/usecase/extract"
)

type authState int

const (
	stateTryLogin authState = iota
	stateTryRegister
	stateRetryLogin
)

func (s authState) String() string {
	switch s {
	case stateTryLogin:
		return "try_login"
	case stateTryRegister:
		return "try_register"
	case stateRetryLogin:
		return "retry_login"
	default:
		return "unknown"
	}
}

// BootstrapAuth obtains an access token for a credential whose server-side
// state is unknown: login, and if that fails register once and login again.
type BootstrapAuth struct {
	api       ports.AuthAPI
	tokenPath string
	progress  io.Writer
	log       *zap.Logger
}

func NewBootstrapAuth(api ports.AuthAPI, tokenPath string, progress io.Writer, log *zap.Logger) *BootstrapAuth {
	if progress == nil {
		progress = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BootstrapAuth{api: api, tokenPath: tokenPath, progress: progress, log: log}
}

// Execute runs TryLogin -> TryRegister -> RetryLogin. Each state has one
// terminal failure exit; failing responses are printed verbatim and carried
// in the returned error as a *domain.HTTPStatusError.
func (uc *BootstrapAuth) Execute(ctx context.Context, cred domain.Credential) (domain.AccessToken, error) {
	state := stateTryLogin
	for {
		uc.log.Debug("auth.state", zap.Stringer("state", state))

		switch state {
		case stateTryLogin:
			uc.say("Attempting login...")
			resp, err := uc.api.Login(ctx, cred.Login())
			if err != nil {
				return "", err
			}
			if resp.StatusCode == http.StatusOK {
				return uc.accept(resp)
			}
			uc.log.Info("auth.login_rejected", zap.Int("status", resp.StatusCode))
			state = stateTryRegister

		case stateTryRegister:
			uc.say("Login failed, trying register...")
			resp, err := uc.api.Register(ctx, cred.Register())
			if err != nil {
				return "", err
			}
			if resp.StatusCode != http.StatusCreated {
				uc.say("Registration failed: %s", resp.Body)
				return "", authFailure("usecase.auth.register", resp)
			}
			uc.say("Registration successful, logging in...")
			state = stateRetryLogin

		case stateRetryLogin:
			resp, err := uc.api.Login(ctx, cred.Login())
			if err != nil {
				return "", err
			}
			if resp.StatusCode != http.StatusOK {
				uc.say("Login failed: %s", resp.Body)
				return "", authFailure("usecase.auth.retry_login", resp)
			}
			return uc.accept(resp)

		default:
			return "", &domain.OpError{
				Op:   "usecase.auth",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("unknown auth state %d", state),
			}
		}
	}
}

func (uc *BootstrapAuth) accept(resp domain.APIResponse) (domain.AccessToken, error) {
	tok, err := ucextract.Field(resp.Body, uc.tokenPath)
	if err != nil {
		uc.say("Login response has no access token: %s", resp.Body)
		return "", &domain.OpError{
			Op:   "usecase.auth.token",
			Kind: domain.KindAuthFailure,
			Err:  fmt.Errorf("%w: %v", domain.ErrMissingToken, err),
		}
	}
	uc.say("Login successful.")
	return domain.AccessToken(tok), nil
}

func (uc *BootstrapAuth) say(format string, args ...any) {
	fmt.Fprintf(uc.progress, format+"\n", args...)
}

func authFailure(op string, resp domain.APIResponse) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindAuthFailure,
		Err:  &domain.HTTPStatusError{Status: resp.StatusCode, Body: resp.Body},
	}
}
