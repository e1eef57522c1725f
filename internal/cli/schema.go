package cli

import (
	"github.com/spf13/cobra"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/infra/logger"
	"github.com/Kedar1021/to-do-app/internal/infra/sqlitecatalog"
	"github.com/Kedar1021/to-do-app/internal/usecase"
)

func schemaCmd(opts *rootOpts) *cobra.Command {
	var db string
	var table string

	c := &cobra.Command{
		Use:   "schema",
		Short: "Check that the database file exists and holds the task table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc, err := loadProbeCtx(opts.config)
			if err != nil {
				return err
			}
			defer pc.startLogging(opts.debug)()

			path := db
			if path == "" {
				path = pc.resolvePath(pc.cfg.Schema.Database)
			}
			expected := table
			if expected == "" {
				expected = pc.cfg.Schema.ExpectedTable
			}

			uc := usecase.NewProbeSchema(sqlitecatalog.NewOpener(), logger.L())
			report, runErr := uc.Execute(cmd.Context(), path, expected)

			if err := printSchema(cmd.OutOrStdout(), opts.format, report, runErr); err != nil {
				return err
			}
			return opts.verdict(schemaExitCode(report, runErr), runErr)
		},
	}

	c.Flags().StringVar(&db, "db", "", "Database file to inspect (default from config: schema.database)")
	c.Flags().StringVar(&table, "table", "", "Table that must exist (default from config: schema.expected_table)")
	return c
}

func schemaExitCode(report domain.SchemaReport, err error) int {
	if err != nil {
		return codeForKind(domain.KindOf(err))
	}
	if !report.HasExpectedTable {
		return ExitTableMissing
	}
	return ExitOK
}
