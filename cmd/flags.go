package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags wires a set of flags into viper keys so the usual
// precedence applies: flag over environment over config file.
func bindFlags(flags *pflag.FlagSet, mapping map[string]string) {
	for key, flagName := range mapping {
		if flag := flags.Lookup(flagName); flag != nil {
			_ = viper.BindPFlag(key, flag)
		}
	}
}
