// Package config loads issuer and export settings through koanf.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	configFileName = "config.yaml"
	envPrefix      = "QUOTATION_"
)

// Config holds all runtime settings.
type Config struct {
	Issuer Issuer `koanf:"issuer"`
	Export Export `koanf:"export"`
}

// Issuer is the fixed header block stamped on every exported document.
type Issuer struct {
	CompanyName    string   `koanf:"companyname"`
	AddressLines   []string `koanf:"addresslines"`
	ContactNumbers []string `koanf:"contactnumbers"`
}

// Export holds document export settings.
type Export struct {
	// DefaultTitle seeds the quotation title for new sessions.
	DefaultTitle string `koanf:"defaulttitle"`
	// SettleDelayMs is the minimum delay between the last cart mutation
	// and capturing the export snapshot.
	SettleDelayMs int `koanf:"settledelayms"`
}

// Default returns the compiled-in configuration, used when no config
// file is present.
func Default() Config {
	return Config{
		Issuer: Issuer{
			CompanyName: "SM Enterprises",
			AddressLines: []string{
				"D no:6/544, Jeenigala Street, Opp: Ramana Reddy Lorry Transport",
				"StonehousePet, Nellore-524002, SPSR Nellore Dist",
			},
			ContactNumbers: []string{"98484 30077", "99080 24119"},
		},
		Export: Export{
			DefaultTitle:  "Quotation for Home Theatre 7.1.4",
			SettleDelayMs: 500,
		},
	}
}

// Load reads config.yaml from the first path that has one and applies
// QUOTATION_-prefixed environment overrides (QUOTATION_ISSUER_COMPANYNAME
// maps to issuer.companyname). A missing file is not an error; defaults
// apply.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	var found string
	for _, p := range append(paths, ".") {
		candidate := filepath.Join(p, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			found = candidate
			break
		}
	}

	if found != "" {
		if err := k.Load(file.Provider(found), yaml.Parser()); err != nil {
			return cfg, errors.Wrap(err, "load config file")
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return cfg, errors.Wrap(err, "load env overrides")
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}
