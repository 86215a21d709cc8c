package main

import (
	"os"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/cmd/gravityd/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := cmd.Execute(rootCmd, cmd.EnvPrefix, app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
