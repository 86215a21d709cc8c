package client

import (
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// vipers holds one viper instance per command tree.
var vipers sync.Map

// BindFlags binds the flags of cmd to a fresh viper instance that also
// reads <envPrefix>_<FLAG> environment variables.
func BindFlags(cmd *cobra.Command, envPrefix string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	vipers.Store(cmd.Root(), v)
	return nil
}

func viperFor(cmd *cobra.Command) *viper.Viper {
	if v, ok := vipers.Load(cmd.Root()); ok {
		return v.(*viper.Viper)
	}
	return viper.New()
}

// stringFlag resolves a flag: an explicit flag wins over the environment,
// the environment over the flag default.
func stringFlag(cmd *cobra.Command, name string) string {
	f := cmd.Flag(name)
	if f != nil && f.Changed {
		return f.Value.String()
	}
	v := viperFor(cmd)
	if v.IsSet(name) {
		return cast.ToString(v.Get(name))
	}
	if f != nil {
		return f.Value.String()
	}
	return ""
}

// GetString resolves a string flag the way every gravityd flag is resolved.
func GetString(cmd *cobra.Command, name string) string {
	return stringFlag(cmd, name)
}
