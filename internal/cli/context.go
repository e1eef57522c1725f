package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kedar1021/to-do-app/internal/domain"
	"github.com/Kedar1021/to-do-app/internal/infra/configfile"
	"github.com/Kedar1021/to-do-app/internal/infra/logger"
	"github.com/Kedar1021/to-do-app/internal/ports"
)

type probeCtx struct {
	root    string // directory holding the config file, or the working directory
	cfgPath string // empty when running on defaults
	cfg     domain.Config
}

func loadProbeCtx(configFlag string) (*probeCtx, error) {
	path, root, err := resolveConfigPath(configFlag, configfile.NewFinder())
	if err != nil {
		return nil, err
	}

	cfg, err := configfile.Load(path)
	if err != nil {
		return nil, err
	}

	return &probeCtx{root: root, cfgPath: path, cfg: cfg}, nil
}

func resolveConfigPath(configFlag string, locator ports.ConfigLocator) (path string, root string, err error) {
	c := strings.TrimSpace(configFlag)
	if c != "" {
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", "", fmt.Errorf("invalid config path: %w", err)
		}
		return abs, filepath.Dir(abs), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("get working directory: %w", err)
	}

	found, ferr := locator.FindRoot(wd)
	if ferr != nil {
		// No config file: defaults + environment.
		return "", wd, nil
	}
	return filepath.Join(found, configfile.FileName), found, nil
}

// resolvePath anchors config-relative paths at the config file's directory.
func (pc *probeCtx) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || pc.cfgPath == "" {
		return p
	}
	return filepath.Join(pc.root, p)
}

func (pc *probeCtx) startLogging(debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{
		Root:  pc.root,
		Debug: debug || pc.cfg.Log.Debug,
	})
	if cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
