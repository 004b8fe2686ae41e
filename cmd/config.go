package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	CliHisFileEnv     = "INTSETCLI_HISTFILE"
	CliHisFileDefault = ".intsetcli_history"
	CliRCFileEnv      = "INTSETCLI_RCFILE"
	CliRCFileDefault  = ".intsetclirc"
	CliEnvPrefix      = "INTSETCLI"
)

// Config holds the shell settings. Values come from, in increasing priority:
// defaults, the rc file, INTSETCLI_* environment variables, command line flags.
type Config struct {
	Prompt      string `mapstructure:"prompt"`
	HistoryFile string `mapstructure:"history_file"`
	Output      string `mapstructure:"output"`
	LogLevel    string `mapstructure:"log_level"`
	DebugChecks bool   `mapstructure:"debug_checks"`
}

// flagKeys maps config keys to the command line flags overriding them.
var flagKeys = map[string]string{
	"output":       "output",
	"log_level":    "log-level",
	"debug_checks": "debug-checks",
	"history_file": "history",
}

// LoadConfig reads the rc file at path, or searches $HOME and the working
// directory for .intsetclirc when path is empty. A missing rc file is not an
// error. flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("prompt", "intset> ")
	v.SetDefault("history_file", "")
	v.SetDefault("output", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("debug_checks", false)

	v.SetEnvPrefix(CliEnvPrefix)
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(CliRCFileEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(CliRCFileDefault)
	}
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.HistoryFile == "" {
		config.HistoryFile = getDotfilePath(CliHisFileEnv, CliHisFileDefault)
	}

	return &config, nil
}

// getDotfilePath returns the value of envOverride when set, otherwise
// dotFilename in the home directory. "/dev/null" disables the file.
func getDotfilePath(envOverride, dotFilename string) string {
	if p := os.Getenv(envOverride); p != "" {
		if p == os.DevNull {
			return ""
		}
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dotFilename)
}
