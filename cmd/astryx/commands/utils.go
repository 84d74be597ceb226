// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// addStringFlagBindViper adds a string flag to the flag set and binds it to the given viper name
func addStringFlagBindViper(v *viper.Viper,
	flags *pflag.FlagSet,
	name,
	defaultValue,
	usage,
	viperBindName string,
) error {
	flags.String(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}

// addIntFlagBindViper adds an int flag to the flag set and binds it to the given viper name
func addIntFlagBindViper(
	v *viper.Viper,
	flags *pflag.FlagSet,
	name,
	shorthand string,
	defaultValue int,
	usage string,
	viperBindName string,
) error {
	flags.IntP(name, shorthand, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}

// addBoolFlagBindViper adds a bool flag to the flag set and binds it to the given viper name
func addBoolFlagBindViper(
	v *viper.Viper,
	flags *pflag.FlagSet,
	name string,
	defaultValue bool,
	usage string,
	viperBindName string,
) error {
	flags.Bool(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}
