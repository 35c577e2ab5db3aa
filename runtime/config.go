package runtime

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

// ConfigPkg is the name the runtime configuration is stored under.
const ConfigPkg = "runtime"

// Config holds the runtime parameters. It is loaded from the "conf.runtime"
// section of the genesis file.
type Config struct {
	Rent vault.Rent `json:"rent"`
	// MaxCallDepth limits how deep cross-program invocations may nest. The
	// top level instruction is depth 1.
	MaxCallDepth int `json:"max_call_depth"`
}

var _ gconf.Configuration = (*Config)(nil)

// DefaultConfig is used when no configuration was stored.
func DefaultConfig() Config {
	return Config{
		Rent:         vault.DefaultRent,
		MaxCallDepth: 4,
	}
}

func (c *Config) Marshal() ([]byte, error) {
	return gconf.MarshalJSON(c)
}

func (c *Config) Unmarshal(raw []byte) error {
	return gconf.UnmarshalJSON(raw, c)
}

func (c *Config) Validate() error {
	if err := c.Rent.Validate(); err != nil {
		return errors.Wrap(err, "rent")
	}
	if c.MaxCallDepth < 1 {
		return errors.Wrap(errors.ErrInput, "max call depth must be at least 1")
	}
	return nil
}

// LoadConfig returns the stored configuration or DefaultConfig if there is
// none.
func LoadConfig(db gconf.ReadStore) (Config, error) {
	var conf Config
	err := gconf.Load(db, ConfigPkg, &conf)
	switch {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfig(), nil
	default:
		return Config{}, err
	}
}
