package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	CurrencySymbol  string `mapstructure:"currency_symbol"`
	FallbackProduct string `mapstructure:"fallback_product"`
	LogLevel        string `mapstructure:"log_level"`
}

// Build assembles the configuration from defaults, an optional config file,
// environment variables (NFESALES_*, with .env support), and flag overrides,
// in increasing precedence.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("currency_symbol", "R$")
	v.SetDefault("fallback_product", "Desconhecido")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("NFESALES")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	if flags != nil {
		if f := flags.Lookup("symbol"); f != nil && f.Changed {
			_ = v.BindPFlag("currency_symbol", f)
		}
		if f := flags.Lookup("fallback"); f != nil && f.Changed {
			_ = v.BindPFlag("fallback_product", f)
		}
		if f := flags.Lookup("log-level"); f != nil && f.Changed {
			_ = v.BindPFlag("log_level", f)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
