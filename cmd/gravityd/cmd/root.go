package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/client"
	"github.com/GPTx-global/gravity/relayer/config"
	"github.com/GPTx-global/gravity/relayer/log"
	gravitycli "github.com/GPTx-global/gravity/x/gravity/client/cli"
	ibportcli "github.com/GPTx-global/gravity/x/ibport/client/cli"
	nebulacli "github.com/GPTx-global/gravity/x/nebula/client/cli"
	tokencli "github.com/GPTx-global/gravity/x/token/client/cli"
)

// EnvPrefix is the prefix of environment variables overriding flags.
const EnvPrefix = "GRAVITYD"

const annotationEnvPrefix = "env-prefix"

// NewRootCmd creates the root command of gravityd.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   app.Name + "d",
		Short: "Gravity bridge node and relayer tooling",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envPrefix := EnvPrefix
			if prefix, ok := cmd.Root().Annotations[annotationEnvPrefix]; ok {
				envPrefix = prefix
			}
			if err := client.BindFlags(cmd, envPrefix); err != nil {
				return err
			}

			home := client.GetString(cmd, client.FlagHome)
			if err := config.Load(home); err != nil {
				return err
			}

			level, format := logSettings(cmd)
			return log.InitLogger(cmd.ErrOrStderr(), level, format)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(client.FlagHome, app.DefaultNodeHome, "The application home directory")
	rootCmd.PersistentFlags().String(client.FlagLogLevel, "", "Log level (debug|info|error|none); defaults to log.level of config.toml")
	rootCmd.PersistentFlags().String(client.FlagLogFormat, "", "Log format (plain|json); defaults to log.format of config.toml")

	rootCmd.AddCommand(
		InitCmd(),
		client.KeyCommands(),
		gravitycli.GetConsulsCmd(),
		nebulacli.GetOraclesCmd(),
		ibportcli.GetIBPortCmd(),
		tokencli.GetTokenCmd(),
		RotationCmd(),
		ExportCmd(),
		ServeCmd(),
		ConfigCmd(),
	)
	return rootCmd
}

// logSettings resolves the log level and format; flags and environment win
// over config.toml.
func logSettings(cmd *cobra.Command) (level, format string) {
	level = client.GetString(cmd, client.FlagLogLevel)
	if level == "" {
		level = config.LogLevel()
	}
	format = client.GetString(cmd, client.FlagLogFormat)
	if format == "" {
		format = config.LogFormat()
	}
	return level, format
}

// Execute runs rootCmd with defaultHome as the --home default and prints a
// failing command's error to stderr.
func Execute(rootCmd *cobra.Command, envPrefix string, defaultHome string) error {
	if f := rootCmd.PersistentFlags().Lookup(client.FlagHome); f != nil {
		f.DefValue = defaultHome
		if err := f.Value.Set(defaultHome); err != nil {
			return err
		}
	}
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = map[string]string{}
	}
	rootCmd.Annotations[annotationEnvPrefix] = envPrefix

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
