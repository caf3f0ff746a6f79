package conv

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"

	"github.com/go-mysql-org/mysqlconv/mysql"
)

// Config carries the codec settings in loadable form.
type Config struct {
	Charset string `toml:"charset"`

	// UseUnicode controls whether string columns decode to text in the
	// configured charset. When false the raw column bytes are returned
	// as an untranscoded string.
	UseUnicode bool `toml:"use_unicode"`
}

func NewConfigWithFile(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return NewConfig(string(data))
}

func NewConfig(data string) (*Config, error) {
	var c Config

	_, err := toml.Decode(data, &c)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &c, nil
}

// NewDefaultConfig initiates the default config for the codec.
func NewDefaultConfig() *Config {
	c := new(Config)

	c.Charset = mysql.DEFAULT_CHARSET
	c.UseUnicode = true

	return c
}
