package config

type CurrencyLayerConfig struct {
	BaseURLVal string `yaml:"base-url"`
}

// BaseURL overrides the client's default endpoint when non-empty. Useful
// for mirrors and local stubs.
func (c *CurrencyLayerConfig) BaseURL() string {
	return c.BaseURLVal
}
