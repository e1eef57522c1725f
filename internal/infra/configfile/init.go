package configfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Kedar1021/to-do-app/internal/domain"
)

const templateHeader = `# todoprobe configuration.
# Every key can be overridden with a TODOPROBE_* environment variable,
# e.g. TODOPROBE_API_BASE_URL or TODOPROBE_SCHEMA_DATABASE.
`

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init writes todoprobe.yaml with default values into root and makes sure the
// log directory is git-ignored. An existing file is kept unless force is set.
// It reports whether the file was written.
func (i *Initializer) Init(root string, force bool) (bool, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return false, opErr("configfile.init", root, err)
	}

	if err := ensureGitignore(root); err != nil {
		return false, opErr("configfile.init", filepath.Join(root, ".gitignore"), err)
	}

	dst := filepath.Join(root, FileName)
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return false, nil
		}
	}

	b, err := renderTemplate(domain.DefaultConfig())
	if err != nil {
		return false, opErr("configfile.init", dst, err)
	}

	// The file holds a password.
	if err := os.WriteFile(dst, b, 0o600); err != nil {
		return false, opErr("configfile.init", dst, err)
	}
	return true, nil
}

func renderTemplate(cfg domain.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toFile(cfg)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ensureGitignore(root string) error {
	const header = "# todoprobe"
	entries := []string{
		".todoprobe/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func opErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
