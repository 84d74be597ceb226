// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	cfg "github.com/astryx-hash/astryx/config"
	"github.com/astryx-hash/astryx/internal/log"
	"github.com/astryx-hash/astryx/lib/astryx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	terminal "golang.org/x/term"
)

// EnvPrefix prefixes the environment variables overriding the configuration,
// for example ASTRYX_DIGEST_BITS for digest.bits.
const EnvPrefix = "ASTRYX"

const noDataHint = "Astryx CLI: No data provided. Use 'astryx <data>' or piped input."

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// settings holds the viper instance shared by a command tree
// and the configuration parsed from it before each run.
type settings struct {
	viper      *viper.Viper
	configFile string
	config     *cfg.Config
}

func newSettings() *settings {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// Keys without a flag are unknown to viper until they get a default.
	v.SetDefault("pprof.block-profile-rate", 0)
	v.SetDefault("pprof.mutex-profile-rate", 0)
	return &settings{
		viper:  v,
		config: cfg.Default(),
	}
}

// parseConfig merges the configuration file, the environment and the flags
// over the default configuration, validates it and applies the log level.
func (s *settings) parseConfig() error {
	if s.configFile != "" {
		s.viper.SetConfigFile(s.configFile)
		if err := s.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	config := cfg.Default()
	if err := s.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return err
	}

	level, err := config.LogLevel()
	if err != nil {
		return err
	}
	log.PatchLevel(level)
	logger.Debugf("configuration: bits %d, strip %t", config.Digest.Bits, config.Digest.Strip)

	s.config = config
	return nil
}

// NewRootCommand creates the root command and its subcommands
func NewRootCommand() (*cobra.Command, error) {
	s := newSettings()

	cmd := &cobra.Command{
		Use:   "astryx [data]",
		Short: "Astryx (GAQWH) hashing command-line interface",
		Long: `Astryx hashes its argument, or the standard input when no argument is given,
and prints the digest in hexadecimal.
Usage:
	astryx "hello"
	echo "hello" | astryx --bits 512
	astryx demo
	astryx bench --size 4096 --iterations 1000`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.parseConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return execRoot(cmd, args, s.config)
		},
	}

	if err := addRootFlags(cmd, s); err != nil {
		return nil, err
	}

	benchCmd, err := newBenchCommand(s)
	if err != nil {
		return nil, err
	}

	cmd.AddCommand(
		newDemoCommand(),
		benchCmd,
		newConfigCommand(s),
		newVersionCommand(),
	)

	return cmd, nil
}

// addRootFlags adds the root flags to the command
func addRootFlags(cmd *cobra.Command, s *settings) error {
	cmd.PersistentFlags().StringVar(&s.configFile,
		"config",
		"",
		"TOML configuration file")

	if err := addStringFlagBindViper(s.viper, cmd.PersistentFlags(),
		"log",
		s.config.Log.Level,
		"Log level. Supports levels critical (silent), error, warn, info, debug and trace",
		"log.level"); err != nil {
		return fmt.Errorf("failed to add --log flag: %w", err)
	}

	if err := addIntFlagBindViper(s.viper, cmd.Flags(),
		"bits", "b",
		s.config.Digest.Bits,
		"Output hash bits, 256 or 512",
		"digest.bits"); err != nil {
		return fmt.Errorf("failed to add --bits flag: %w", err)
	}

	if err := addBoolFlagBindViper(s.viper, cmd.Flags(),
		"strip",
		s.config.Digest.Strip,
		"Strip leading and trailing whitespace from the standard input",
		"digest.strip"); err != nil {
		return fmt.Errorf("failed to add --strip flag: %w", err)
	}

	return nil
}

// execRoot hashes the argument or the standard input
func execRoot(cmd *cobra.Command, args []string, config *cfg.Config) error {
	var data []byte
	if len(args) == 1 {
		data = []byte(args[0])
	} else {
		stdin := cmd.InOrStdin()
		if isTerminal(stdin) {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), noDataHint)
			return err
		}

		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		if config.Digest.Strip {
			data = bytes.TrimSpace(data)
		}
	}

	digest := astryx.Hash(data, config.Digest.Bits)
	logger.Debugf("hashed %d bytes to %d bits", len(data), config.Digest.Bits)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(digest))
	return err
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	return ok && terminal.IsTerminal(int(file.Fd()))
}
