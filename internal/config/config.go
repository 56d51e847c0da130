// Package config loads the pwcrypt command configuration from a YAML file
// and PWCRYPT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hasbyte1/go-pwcrypt/hashing"
	"github.com/hasbyte1/go-pwcrypt/strength"
)

// Config holds the command configuration.
type Config struct {
	Crypt    CryptConfig
	Strength strength.Rules
	Logger   LoggerConfig
}

// CryptConfig mirrors [hashing.Options] in configuration-file form.
type CryptConfig struct {
	// Key is optional key material, optionally prefixed "<descriptor>:".
	Key string
	// DigestAlg is the default algorithm descriptor.
	DigestAlg string
	// Salt is "false" (or empty) for none, "true" for auto, or a fixed salt.
	Salt      string
	MinLength int
	MaxLength int
}

// Options converts c to [hashing.Options].
func (c CryptConfig) Options() hashing.Options {
	opts := hashing.DefaultOptions()
	opts.Key = c.Key
	opts.DigestAlg = c.DigestAlg
	opts.Salt = hashing.ParseSaltPolicy(c.Salt)
	opts.MinLength = c.MinLength
	opts.MaxLength = c.MaxLength
	return opts
}

// Load reads configuration from path, or from pwcrypt.yaml in ./config, the
// working directory or /etc/pwcrypt when path is empty.  A missing default
// file is not an error.  Environment variables override file values, e.g.
// PWCRYPT_CRYPT_DIGEST_ALG for crypt.digest_alg.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pwcrypt")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/pwcrypt/")
	}

	v.SetEnvPrefix("PWCRYPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	cfg := &Config{}

	// Crypt
	cfg.Crypt.Key = v.GetString("crypt.key")
	cfg.Crypt.DigestAlg = v.GetString("crypt.digest_alg")
	cfg.Crypt.Salt = v.GetString("crypt.salt")
	cfg.Crypt.MinLength = v.GetInt("crypt.min_length")
	cfg.Crypt.MaxLength = v.GetInt("crypt.max_length")

	// Strength
	cfg.Strength = loadRules(v)

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Format = v.GetString("logger.format")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("crypt.digest_alg", hashing.DefaultDigestAlg)
	v.SetDefault("crypt.salt", "true")
	v.SetDefault("crypt.max_length", hashing.DefaultMaxLength)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")

	// Strength rules have no defaults here: whether a key is set decides
	// whether its rule is enabled.
}

// loadRules starts from [strength.DefaultRules], or from
// [strength.EntropyRules] when an entropy floor is configured, and applies
// every strength.* key that is set.
func loadRules(v *viper.Viper) strength.Rules {
	rules := strength.DefaultRules()
	if v.IsSet("strength.entropy") {
		rules = strength.EntropyRules(v.GetFloat64("strength.entropy"))
	}
	if v.IsSet("strength.min_length") {
		rules.MinLength = v.GetInt("strength.min_length")
	}
	if v.IsSet("strength.max_length") {
		rules.MaxLength = v.GetInt("strength.max_length")
	}
	for key, dst := range map[string]*strength.Count{
		"strength.upper":   &rules.Upper,
		"strength.lower":   &rules.Lower,
		"strength.digits":  &rules.Digits,
		"strength.special": &rules.Special,
	} {
		if v.IsSet(key) {
			*dst = strength.Require(v.GetInt(key))
		}
	}
	if v.IsSet("strength.specials") {
		rules.Specials = v.GetString("strength.specials")
	}
	if v.IsSet("strength.invalid") {
		rules.Invalid = v.GetString("strength.invalid")
	}
	return rules
}
