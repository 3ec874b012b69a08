package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fluentdom-go/fluentdom/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "fluentdom.json"

	// DefaultPort is the default development server port.
	DefaultPort = 8420

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default snapshot output directory.
	DefaultOutput = "dist"

	// DefaultStaticDir is the default static assets directory.
	DefaultStaticDir = "static"

	// DefaultStaticRoute is the default URL prefix for static assets.
	DefaultStaticRoute = "/static"
)

// Config represents the complete fluentdom.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Title is the page title used by the gallery scaffold.
	// Falls back to Name when empty.
	Title string `json:"title,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Snapshot contains snapshot rendering configuration.
	Snapshot SnapshotConfig `json:"snapshot,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// HotReload enables live reload in development.
	HotReload bool `json:"hotReload,omitempty"`
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Route is the URL prefix for static files (default: "/static").
	Route string `json:"route,omitempty"`
}

// SnapshotConfig contains snapshot rendering settings.
type SnapshotConfig struct {
	// Output is the output directory for snapshots.
	Output string `json:"output,omitempty"`

	// S3 configures publishing snapshots to an S3 bucket.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config contains S3 publishing settings.
type S3Config struct {
	// Bucket is the bucket to publish snapshots to.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Dev: DevConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			HotReload: true,
			Watch:     []string{"static"},
			Ignore:    []string{"dist", ".git"},
		},
		Static: StaticConfig{
			Dir:   DefaultStaticDir,
			Route: DefaultStaticRoute,
		},
		Snapshot: SnapshotConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for fluentdom.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No fluentdom.json found in " + filepath.Dir(path))
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail("Failed to parse fluentdom.json: " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E102").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E102").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{"static"}
	}
	if c.Dev.Ignore == nil {
		c.Dev.Ignore = []string{"dist", ".git"}
	}

	if c.Static.Dir == "" {
		c.Static.Dir = DefaultStaticDir
	}
	if c.Static.Route == "" {
		c.Static.Route = DefaultStaticRoute
	}

	if c.Snapshot.Output == "" {
		c.Snapshot.Output = DefaultOutput
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E103").
			WithDetail("dev.port must be between 0 and 65535")
	}
	if !strings.HasPrefix(c.Static.Route, "/") {
		return errors.New("E103").
			WithDetail("static.route must start with a slash")
	}
	return nil
}

// PageTitle returns the configured title, falling back to the project name.
func (c *Config) PageTitle() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Name != "" {
		return c.Name
	}
	return "fluentdom"
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + itoa(c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// StaticPath returns the absolute path to the static directory.
func (c *Config) StaticPath() string {
	if filepath.IsAbs(c.Static.Dir) {
		return c.Static.Dir
	}
	return filepath.Join(c.Dir(), c.Static.Dir)
}

// StaticRoute returns the URL prefix for static files.
func (c *Config) StaticRoute() string {
	if c.Static.Route == "" {
		return DefaultStaticRoute
	}
	return c.Static.Route
}

// OutputPath returns the absolute path to the snapshot output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Snapshot.Output) {
		return c.Snapshot.Output
	}
	return filepath.Join(c.Dir(), c.Snapshot.Output)
}

// HasS3 returns true if S3 publishing is fully configured.
func (c *Config) HasS3() bool {
	return c.Snapshot.S3.Bucket != "" && c.Snapshot.S3.Region != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing fluentdom.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No fluentdom.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// LoadOrDefault loads configuration from the working directory, falling
// back to defaults when no fluentdom.json exists. Parse and validation
// failures are still errors.
func LoadOrDefault() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadOrDefaultFrom(wd)
}

// LoadOrDefaultFrom is LoadOrDefault starting from an explicit directory.
func LoadOrDefaultFrom(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		var fe *errors.FluentError
		if stderrors.As(err, &fe) && fe.Code == "E101" {
			return New(), nil
		}
		return nil, err
	}
	return Load(root)
}

// itoa converts int to string without importing strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	// Reverse
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
