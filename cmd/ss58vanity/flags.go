package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys; each can also be set as SS58VANITY_<KEY>.
const (
	cfgText      = "text"
	cfgFill      = "fill"
	cfgBatch     = "batch"
	cfgVerify    = "verify"
	cfgWorkers   = "workers"
	cfgOutput    = "output"
	cfgVerbosity = "verbosity"
)

// loadConfig parses args into a viper instance backed by flags and the
// environment.
func loadConfig(args []string) (*viper.Viper, error) {
	flags := pflag.NewFlagSet("ss58vanity", pflag.ContinueOnError)
	flags.StringP(cfgText, "t", "", "vanity text to show in the address (max 20 characters)")
	flags.StringP(cfgFill, "f", "", "character used to pad the address (default \"1\")")
	flags.StringP(cfgBatch, "b", "", "file with one vanity text per line, \"-\" for stdin")
	flags.String(cfgVerify, "", "check the checksum of an existing address")
	flags.IntP(cfgWorkers, "w", 0, "number of workers for batch mode (default: CPU count)")
	flags.StringP(cfgOutput, "o", "wallet.txt", "file the interactive mode saves results to")
	flags.String(cfgVerbosity, "info", "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("SS58VANITY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

func initLog(v *viper.Viper) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(v.GetString(cfgVerbosity))
	if err != nil {
		log.WithError(err).Warn("unknown verbosity, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
