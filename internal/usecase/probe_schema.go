package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

// ProbeSchema lists the tables of a database file and checks for one expected table.
type ProbeSchema struct {
	opener ports.CatalogOpener
	log    *zap.Logger
}

func NewProbeSchema(opener ports.CatalogOpener, log *zap.Logger) *ProbeSchema {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProbeSchema{opener: opener, log: log}
}

// Execute never opens a connection when path does not exist; that case returns
// a report with Exists=false and a KindResourceMissing error.
// Catalog failures are KindQueryFailure. The catalog is closed on every path.
func (uc *ProbeSchema) Execute(ctx context.Context, path string, expectedTable string) (report domain.SchemaReport, err error) {
	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		abs = path
	}
	report = domain.SchemaReport{
		Path:          abs,
		ExpectedTable: expectedTable,
		TableNames:    []string{},
	}

	if _, statErr := os.Stat(abs); statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			uc.log.Info("schema.database_missing", zap.String("path", abs))
			return report, &domain.OpError{
				Op:   "usecase.probe_schema",
				Kind: domain.KindResourceMissing,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		return report, &domain.OpError{
			Op:   "usecase.probe_schema",
			Kind: domain.KindQueryFailure,
			Path: abs,
			Err:  statErr,
		}
	}
	report.Exists = true

	cat, err := uc.opener.Open(ctx, abs)
	if err != nil {
		return report, err
	}
	defer func() {
		if cerr := cat.Close(); cerr != nil {
			uc.log.Warn("schema.close_failed", zap.String("path", abs), zap.Error(cerr))
		}
	}()

	names, err := cat.ListTables(ctx)
	if err != nil {
		return report, err
	}

	report.TableNames = names
	report.HasExpectedTable = slices.Contains(names, expectedTable)

	uc.log.Info("schema.inspected",
		zap.String("path", abs),
		zap.Int("tables", len(names)),
		zap.Bool("has_expected_table", report.HasExpectedTable),
	)
	return report, nil
}
