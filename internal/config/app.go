package config

type AppConfig struct {
	BaseCurrencyName string   `yaml:"base-currency"`
	CurrencyFilter   []string `yaml:"currencies"`
	CronSpecVal      string   `yaml:"cron"`
	LocationName     string   `yaml:"location"`
	HTTPPortVal      string   `yaml:"http-port"`
	SnapshotDirVal   string   `yaml:"snapshot-dir"`
	SaveSnapshotsVal bool     `yaml:"save-snapshots"`
}

func (s *AppConfig) BaseCurrency() string {
	return s.BaseCurrencyName
}

// Currencies is the set the daemon asks the service for. Empty means
// every currency the plan allows.
func (s *AppConfig) Currencies() []string {
	return s.CurrencyFilter
}

func (s *AppConfig) CronSpec() string {
	return s.CronSpecVal
}

func (s *AppConfig) Location() string {
	return s.LocationName
}

func (s *AppConfig) HTTPPort() string {
	return s.HTTPPortVal
}

func (s *AppConfig) SnapshotDir() string {
	return s.SnapshotDirVal
}

func (s *AppConfig) SaveSnapshots() bool {
	return s.SaveSnapshotsVal
}
