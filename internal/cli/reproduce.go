package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/infra/apiclient"
	"github.com/Kedar1021/to-do-app/internal/infra/htmlscan"
	"github.com/Kedar1021/to-do-app/internal/infra/httpclient"
	"github.com/Kedar1021/to-do-app/internal/infra/logger"
	"github.com/Kedar1021/to-do-app/internal/infra/runstore"
	"github.com/Kedar1021/to-do-app/internal/ports"
	"github.com/Kedar1021/to-do-app/internal/usecase"
)

type reproduceFlags struct {
	baseURL  string
	username string
	password string
	email    string
	dueDate  string
	save     bool
}

func reproduceCmd(opts *rootOpts) *cobra.Command {
	var f reproduceFlags

	c := &cobra.Command{
		Use:   "reproduce",
		Short: "Log in (registering if needed), create a task and diagnose a server error",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := loadProbeCtx(opts.config)
			if err != nil {
				return err
			}
			defer pc.startLogging(opts.debug)()

			cfg := pc.cfg
			applyReproduceFlags(cmd, f, &cfg)

			hcfg := httpclient.DefaultConfig()
			hcfg.Timeout = cfg.API.Timeout
			session := apiclient.New(cfg.API.BaseURL, httpclient.New(hcfg), apiclient.WithLogger(logger.L()))
			defer session.Close()

			out := cmd.OutOrStdout()
			var progress io.Writer = out
			if opts.format == "json" {
				progress = cmd.ErrOrStderr()
			}

			uc := usecase.NewReproduce(
				session,
				session,
				htmlscan.New(htmlscan.WithMaxBuf(cfg.Diagnostics.MaxMarkupBytes)),
				usecase.ReproduceConfig{
					TokenPath:    cfg.API.TokenPath,
					PreviewLines: cfg.Diagnostics.PreviewLines,
					Progress:     progress,
					Logger:       logger.L(),
				},
			)

			res, runErr := uc.Execute(cmd.Context(), cfg.Credential, cfg.Task)

			if err := printDiagnostic(out, opts.format, res, runErr); err != nil {
				return err
			}

			if f.save {
				store := runstore.NewJSONStore(pc.root, runstore.WithIndex(true))
				if err := saveReport(progress, store, res); err != nil {
					return err
				}
			}
			return opts.verdict(reproduceExitCode(res, runErr), runErr)
		},
	}

	c.Flags().StringVar(&f.baseURL, "base-url", "", "API base URL (default from config: api.base_url)")
	c.Flags().StringVar(&f.username, "username", "", "Diagnostic account username")
	c.Flags().StringVar(&f.password, "password", "", "Diagnostic account password")
	c.Flags().StringVar(&f.email, "email", "", "Diagnostic account email (used only for registration)")
	c.Flags().StringVar(&f.dueDate, "due-date", "", `Task due_date; "null" or empty sends JSON null`)
	c.Flags().BoolVar(&f.save, "save", false, "Save the diagnostic result under .todoprobe/runs/")
	return c
}

func applyReproduceFlags(cmd *cobra.Command, f reproduceFlags, cfg *domain.Config) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.API.BaseURL = strings.TrimSpace(f.baseURL)
	}
	if flags.Changed("username") {
		cfg.Credential.Username = f.username
	}
	if flags.Changed("password") {
		cfg.Credential.Password = f.password
	}
	if flags.Changed("email") {
		cfg.Credential.Email = f.email
	}
	if flags.Changed("due-date") {
		d := strings.TrimSpace(f.dueDate)
		if d == "" || d == "null" {
			cfg.Task.DueDate = nil
		} else {
			cfg.Task.DueDate = &d
		}
	}
}

func saveReport(w io.Writer, store ports.ReportStore, res domain.DiagnosticResult) error {
	id, err := store.SaveDiagnostic(res)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved report %s\n", id)
	return nil
}

func reproduceExitCode(res domain.DiagnosticResult, err error) int {
	if err != nil {
		return codeForKind(domain.KindOf(err))
	}
	return codeForStatus(res.StatusCode)
}
