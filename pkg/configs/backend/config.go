package backend

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BackendConfig is the server configuration, read from a yaml file.
type BackendConfig struct {
	// Port the API server listens on.
	Port int32 `yaml:"port"`

	// Database is the postgres connection string.
	Database string `yaml:"database"`

	Storage StorageConfig `yaml:"storage"`
	Worker  WorkerConfig  `yaml:"worker"`
	Token   TokenConfig   `yaml:"token"`
	Export  ExportConfig  `yaml:"export"`
}

type StorageConfig struct {
	// Root directory holding one subdirectory per dataset.
	Root string `yaml:"root"`
}

type WorkerConfig struct {
	// URL is the base address of the external training worker.
	URL string `yaml:"url"`

	// Timeout bounds one dispatch call, including the archive upload.
	Timeout Duration `yaml:"timeout"`

	// AutoStartTraining is relayed to the worker as-is.
	AutoStartTraining bool `yaml:"autoStartTraining"`
}

type TokenConfig struct {
	Secret string   `yaml:"secret"`
	TTL    Duration `yaml:"ttl"`
}

// Duration reads yaml values like "30s" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	raw := ""
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type ExportConfig struct {
	// Reference image dimensions used to normalize box geometry.
	// Boxes are always divided by these, not by each image's true size.
	ReferenceWidth  int `yaml:"referenceWidth"`
	ReferenceHeight int `yaml:"referenceHeight"`
}

func LoadBackendConfig(filepath string) (*BackendConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*BackendConfig, error) {
	out := BackendConfig{
		Port: 8080,
		Worker: WorkerConfig{
			Timeout:           Duration(5 * time.Minute),
			AutoStartTraining: true,
		},
		Token: TokenConfig{
			TTL: Duration(24 * time.Hour),
		},
		Export: ExportConfig{
			ReferenceWidth:  640,
			ReferenceHeight: 640,
		},
	}
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}

	if out.Database == "" {
		return nil, fmt.Errorf("config: database is required")
	}
	if out.Storage.Root == "" {
		return nil, fmt.Errorf("config: storage.root is required")
	}
	if out.Worker.URL == "" {
		return nil, fmt.Errorf("config: worker.url is required")
	}
	if out.Token.Secret == "" {
		return nil, fmt.Errorf("config: token.secret is required")
	}

	return &out, nil
}
