package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnvKey  = "CONFIG_FILE"
	defaultConfigFile = "config.yaml"
)

type config struct {
	App           AppConfig           `yaml:"app"`
	CurrencyLayer CurrencyLayerConfig `yaml:"currencylayer"`
}

// Service carries everything the daemon is configured with: the yaml file
// for behavior, the environment for secrets. Secrets never live in yaml.
type Service struct {
	config config

	apiKey      string
	databaseURL string
	encodingKey string
}

func New() (*Service, error) {
	// A .env file is a development convenience; production passes real
	// environment variables.
	_ = godotenv.Overload()

	s := &Service{config: defaults()}

	path := strings.TrimSpace(os.Getenv(configFileEnvKey))
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults plus environment are enough to run.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	s.apiKey = strings.TrimSpace(os.Getenv("CURRENCYLAYER_API_KEY"))
	if s.apiKey == "" {
		return nil, fmt.Errorf("CURRENCYLAYER_API_KEY is empty; sign up at https://currencylayer.com and export your access key")
	}

	s.databaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if s.databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	s.encodingKey = strings.TrimSpace(os.Getenv("ENCODING_KEY"))
	if s.encodingKey == "" {
		return nil, fmt.Errorf("ENCODING_KEY is empty")
	}

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		s.config.App.HTTPPortVal = p
	}

	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			BaseCurrencyName: "USD",
			CronSpecVal:      "0 12 * * *",
			LocationName:     "UTC",
			HTTPPortVal:      "8080",
			SnapshotDirVal:   "./snapshots",
		},
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) CurrencyLayer() *CurrencyLayerConfig {
	return &s.config.CurrencyLayer
}

func (s *Service) APIKey() string { return s.apiKey }

func (s *Service) DatabaseURL() string { return s.databaseURL }

func (s *Service) EncodingKey() string { return s.encodingKey }
