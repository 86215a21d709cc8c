package client

import (
	"github.com/spf13/cobra"
)

const (
	FlagHome      = "home"
	FlagOutput    = "output"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagFrom      = "from"
	FlagKeyIndex  = "key-index"
	FlagOverwrite = "overwrite"
	FlagKMSKeyID  = "kms-key-id"
	FlagKMSRegion = "kms-region"

	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// AddOutputFlagToCmd registers the --output flag.
func AddOutputFlagToCmd(cmd *cobra.Command) {
	cmd.Flags().StringP(FlagOutput, "o", OutputFormatText, "Output format (text|json)")
}

// AddTxFlagsToCmd registers the flags every state changing command takes.
func AddTxFlagsToCmd(cmd *cobra.Command) {
	cmd.Flags().String(FlagFrom, "", "Account the call is made from (bech32 or 0x hex)")
	_ = cmd.MarkFlagRequired(FlagFrom)
	AddOutputFlagToCmd(cmd)
}

// AddSignerFlagsToCmd registers the flags that pick the committee key a
// command signs with: a derived key of the mnemonic or an AWS KMS key.
func AddSignerFlagsToCmd(cmd *cobra.Command) {
	cmd.Flags().Uint32(FlagKeyIndex, 0, "Key index to sign with; defaults to key.index of config.toml")
	cmd.Flags().String(FlagKMSKeyID, "", "Sign with this AWS KMS key (id, ARN or alias) instead of the mnemonic")
	cmd.Flags().String(FlagKMSRegion, "", "AWS region of the KMS key; defaults to $AWS_REGION")
}
