package configfile

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/Kedar1021/to-do-app/internal/domain"
)

// EnvPrefix namespaces environment overrides, e.g. TODOPROBE_API_BASE_URL.
const EnvPrefix = "TODOPROBE"

// Load builds the configuration from defaults, the optional file at path and
// TODOPROBE_* environment variables, in increasing precedence.
// An empty path means defaults and environment only.
func Load(path string) (domain.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, toFile(domain.DefaultConfig()))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// due_date defaults to null, which viper does not register as a key.
	_ = v.BindEnv("task.due_date")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			kind := domain.KindInvalidConfig
			if errors.Is(err, fs.ErrNotExist) {
				kind = domain.KindResourceMissing
			}
			return domain.Config{}, &domain.OpError{
				Op:   "configfile.load",
				Kind: kind,
				Path: path,
				Err:  err,
			}
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(path, fc)
}

func setDefaults(v *viper.Viper, d fileConfig) {
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.token_path", d.API.TokenPath)

	v.SetDefault("credential.username", d.Credential.Username)
	v.SetDefault("credential.password", d.Credential.Password)
	v.SetDefault("credential.email", d.Credential.Email)

	v.SetDefault("task.title", d.Task.Title)
	v.SetDefault("task.description", d.Task.Description)
	v.SetDefault("task.priority", d.Task.Priority)
	v.SetDefault("task.status", d.Task.Status)
	v.SetDefault("task.starred", d.Task.Starred)

	v.SetDefault("schema.database", d.Schema.Database)
	v.SetDefault("schema.expected_table", d.Schema.ExpectedTable)

	v.SetDefault("diagnostics.preview_lines", d.Diagnostics.PreviewLines)
	v.SetDefault("diagnostics.max_markup_bytes", d.Diagnostics.MaxMarkupBytes)

	v.SetDefault("log.debug", d.Log.Debug)
}
