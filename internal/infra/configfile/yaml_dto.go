package configfile

// fileConfig is the on-disk shape of todoprobe.yaml.
// Durations stay strings here and are parsed by the mapper so errors can name the field.
type fileConfig struct {
	API         fileAPI         `yaml:"api" mapstructure:"api"`
	Credential  fileCredential  `yaml:"credential" mapstructure:"credential"`
	Task        fileTask        `yaml:"task" mapstructure:"task"`
	Schema      fileSchema      `yaml:"schema" mapstructure:"schema"`
	Diagnostics fileDiagnostics `yaml:"diagnostics" mapstructure:"diagnostics"`
	Log         fileLog         `yaml:"log" mapstructure:"log"`
}

type fileAPI struct {
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   string `yaml:"timeout" mapstructure:"timeout"`
	TokenPath string `yaml:"token_path" mapstructure:"token_path"`
}

type fileCredential struct {
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Email    string `yaml:"email" mapstructure:"email"`
}

type fileTask struct {
	Title       string  `yaml:"title" mapstructure:"title"`
	Description string  `yaml:"description" mapstructure:"description"`
	DueDate     *string `yaml:"due_date" mapstructure:"due_date"`
	Priority    string  `yaml:"priority" mapstructure:"priority"`
	Status      string  `yaml:"status" mapstructure:"status"`
	Starred     bool    `yaml:"starred" mapstructure:"starred"`
}

type fileSchema struct {
	Database      string `yaml:"database" mapstructure:"database"`
	ExpectedTable string `yaml:"expected_table" mapstructure:"expected_table"`
}

type fileDiagnostics struct {
	PreviewLines   int `yaml:"preview_lines" mapstructure:"preview_lines"`
	MaxMarkupBytes int `yaml:"max_markup_bytes" mapstructure:"max_markup_bytes"`
}

type fileLog struct {
	Debug bool `yaml:"debug" mapstructure:"debug"`
}
