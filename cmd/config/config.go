package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Server   string        `flag:"server" short:"S" desc:"atomix server url" default:"http://localhost:5678" mapstructure:"server" validate:"required,url"`
	Username string        `flag:"username" short:"U" desc:"basic auth username" mapstructure:"username" validate:"required_with=Password"`
	Password string        `flag:"password" short:"P" desc:"basic auth password" mapstructure:"password" validate:"required_with=Username"`
	Token    string        `flag:"token" short:"T" desc:"JWT bearer token" mapstructure:"token"`
	Timeout  time.Duration `flag:"timeout" desc:"http client timeout" default:"10s" mapstructure:"timeout" validate:"gte=0"`
	LogLevel string        `flag:"log-level" desc:"can be one of: debug, info, warn, error, off" default:"info" mapstructure:"log-level"`
}

// Bind registers a flag for every field of the config and binds it to the
// viper key of the same name.
func (c *Config) Bind(flags *pflag.FlagSet, vip *viper.Viper) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		n := field.Tag.Get("flag")
		short := field.Tag.Get("short")
		desc := field.Tag.Get("desc")
		value := field.Tag.Get("default")

		switch field.Type {
		case reflect.TypeOf(time.Duration(0)):
			d, _ := time.ParseDuration(value)
			flags.DurationP(n, short, d, desc)
		case reflect.TypeOf(""):
			flags.StringP(n, short, value, desc)
		default:
			panic(fmt.Sprintf("unsupported type %s", field.Type))
		}

		_ = vip.BindPFlag(n, flags.Lookup(n))
	}
}

// Read locates the config file and enables environment overrides. A missing
// config file is not an error.
func Read(vip *viper.Viper, file string) error {
	if file != "" {
		vip.SetConfigFile(file)
	} else {
		vip.SetConfigName("atomix")
		vip.AddConfigPath(".")
		vip.AddConfigPath("$HOME")
	}

	vip.SetEnvPrefix("atomix")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	vip.AutomaticEnv()

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

func (c *Config) Parse(vip *viper.Viper) error {
	hooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)

	if err := vip.Unmarshal(c, viper.DecodeHook(hooks)); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
