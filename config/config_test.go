package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/tabkit/errors"
)

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// loadIsolated loads with only the given config file visible to the resolver.
func loadIsolated(t *testing.T, path string, opts ...LoaderOption) *AppConfig {
	t.Helper()
	files := map[string]bool{}
	if path != "" {
		files[path] = true
		opts = append(opts, WithConfigFile(path))
	}
	opts = append([]LoaderOption{WithFileSystem(&mockFS{files: files})}, opts...)
	cfg, err := Load(opts...)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return cfg
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		cfg := ServiceConfig{}
		cfg.ApplyDefaults()
		if cfg.Name != ServiceName {
			t.Errorf("expected name %q, got %q", ServiceName, cfg.Name)
		}
		if cfg.Environment != "development" || !cfg.Debug {
			t.Errorf("expected development with debug, got %q debug=%v", cfg.Environment, cfg.Debug)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging in development, got %q", cfg.Logging.Level)
		}
	})

	t.Run("production keeps info logging", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info, got %q", cfg.Logging.Level)
		}
	})
}

func TestAppConfigValidate(t *testing.T) {
	valid := func() AppConfig {
		cfg := AppConfig{}
		cfg.Students.MinMarks = DefaultMinMarks
		cfg.Tracing.SampleRate = 1
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults", func(*AppConfig) {}, false},
		{"json output", func(c *AppConfig) { c.Output.Format = FormatJSON }, false},
		{"unknown format", func(c *AppConfig) { c.Output.Format = "csv" }, true},
		{"bad locale", func(c *AppConfig) { c.Output.Locale = "not a locale" }, true},
		{"marks above 100", func(c *AppConfig) { c.Students.MinMarks = 150 }, true},
		{"bad environment", func(c *AppConfig) { c.Environment = "qa" }, true},
		{"missing name", func(c *AppConfig) { c.Name = "" }, true},
		{"bad endpoint", func(c *AppConfig) { c.Tracing.Endpoint = "no-port" }, true},
		{"sample rate above 1", func(c *AppConfig) { c.Tracing.SampleRate = 2 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.IsCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadIsolated(t, "")
	if cfg.Name != ServiceName {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Students.MinMarks != DefaultMinMarks {
		t.Errorf("min_marks = %d, want %d", cfg.Students.MinMarks, DefaultMinMarks)
	}
	if cfg.Output.Format != FormatText || cfg.Output.Locale != "en-US" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Tracing.Enabled {
		t.Error("tracing should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
name: tabkit-report
environment: staging
logging:
  level: warn
  format: json
output:
  format: yaml
  locale: de-DE
students:
  min_marks: 0
tracing:
  enabled: true
datasets:
  products: ./products.yml
`)

	cfg := loadIsolated(t, path)
	if cfg.Name != "tabkit-report" || cfg.Environment != "staging" {
		t.Errorf("service = %+v", cfg.ServiceConfig)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Output.Format != FormatYAML || cfg.Output.Locale != "de-DE" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Students.MinMarks != 0 {
		t.Errorf("explicit zero threshold must survive defaults, got %d", cfg.Students.MinMarks)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Endpoint != "localhost:4318" {
		t.Errorf("tracing = %+v", cfg.Tracing)
	}
	if cfg.Datasets.Products != "./products.yml" || cfg.Datasets.Employees != "" {
		t.Errorf("datasets = %+v", cfg.Datasets)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", "output:\n  format: json\nstudents:\n  min_marks: 60\n")
	t.Setenv("TABKIT_OUTPUT_FORMAT", "yaml")
	t.Setenv("TABKIT_STUDENTS_MIN_MARKS", "90")
	t.Setenv("OUTPUT_FORMAT", "text")

	cfg := loadIsolated(t, path)
	if cfg.Output.Format != FormatYAML {
		t.Errorf("format = %q, want yaml from TABKIT_OUTPUT_FORMAT", cfg.Output.Format)
	}
	if cfg.Students.MinMarks != 90 {
		t.Errorf("min_marks = %d, want 90", cfg.Students.MinMarks)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envPath := writeFile(t, ".env", "TABKIT_DATASETS_STUDENTS=/data/students.yml\n")
	t.Cleanup(func() { os.Unsetenv("TABKIT_DATASETS_STUDENTS") })

	cfg, err := Load(WithEnvFile(envPath), WithFileSystem(&envOnlyFS{env: envPath}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Datasets.Students != "/data/students.yml" {
		t.Errorf("datasets.students = %q", cfg.Datasets.Students)
	}
}

// envOnlyFS exposes a single real .env file and nothing else.
type envOnlyFS struct {
	env string
}

func (f *envOnlyFS) Exists(path string) bool { return path == f.env }
func (f *envOnlyFS) LoadEnv(path string) error {
	return (&RealFileSystem{}).LoadEnv(path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(WithConfigFile("/nonexistent/tabkit.yml"), WithFileSystem(&mockFS{}))
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "output: [unclosed\n")
	_, err := Load(WithConfigFile(path), WithFileSystem(&mockFS{files: map[string]bool{path: true}}))
	if !errors.IsCode(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"cmd dir wins", []string{"./cmd/tabkit/config.yml", "./config.yml"}, "./cmd/tabkit/config.yml"},
		{"config dir", []string{"./config/config.yml"}, "./config/config.yml"},
		{"root fallback", []string{"./config.yml"}, "./config.yml"},
		{"nothing found", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &mockFS{files: map[string]bool{}}
			for _, f := range tc.files {
				fs.files[f] = true
			}
			resolver := &Resolver{FileSystem: fs}
			files := resolver.ResolveFiles(ServiceName, LoaderConfig{})
			if files.ConfigFile != tc.want {
				t.Errorf("got %q, want %q", files.ConfigFile, tc.want)
			}
		})
	}
}

func TestResolverFindsEnvFile(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"cmd dir before root", []string{"./cmd/tabkit/.env", "./.env"}, "./cmd/tabkit/.env"},
		{"service file first", []string{"./.env", "./config/.env.tabkit"}, "./config/.env.tabkit"},
		{"config dir", []string{"./config/.env"}, "./config/.env"},
		{"root only", []string{"./.env"}, "./.env"},
		{"parent dir", []string{"../.env"}, "../.env"},
		{"nothing found", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &mockFS{files: map[string]bool{}}
			for _, f := range tc.files {
				fs.files[f] = true
			}
			files := (&Resolver{FileSystem: fs}).ResolveFiles(ServiceName, LoaderConfig{})
			if files.EnvFile != tc.want {
				t.Errorf("got %q, want %q", files.EnvFile, tc.want)
			}
		})
	}
}

func TestBuildEnvSearchPaths_NoDoubleSeparator(t *testing.T) {
	for _, p := range buildEnvSearchPaths(ServiceName, ".env") {
		if strings.Contains(p, "//") {
			t.Errorf("malformed search path %q", p)
		}
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("TABKIT_")(&lc)
	WithDefaults(map[string]any{"a": 1})(&lc)
	WithDefaults(map[string]any{"b": 2})(&lc)

	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("files = %q %q", lc.ConfigFile, lc.EnvFile)
	}
	if lc.EnvPrefix != "TABKIT" {
		t.Errorf("prefix = %q", lc.EnvPrefix)
	}
	if len(lc.Defaults) != 2 {
		t.Errorf("defaults = %v", lc.Defaults)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("STUDENTS_MIN_MARKS")
	for _, want := range []string{"students_min_marks", "students.min.marks", "students.min_marks"} {
		if !slices.Contains(got, want) {
			t.Errorf("missing variant %q in %v", want, got)
		}
	}
	if got := generateEnvKeyVariants("NAME"); !slices.Equal(got, []string{"name"}) {
		t.Errorf("got %v", got)
	}
}
