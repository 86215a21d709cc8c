// Copyright 2022 Evmos Foundation
// This file is part of the Evmos Network packages.
//
// Evmos is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The Evmos packages are distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the Evmos packages. If not, see https://github.com/evmos/evmos/blob/main/LICENSE
package client

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/gravity/crypto/keyring"
	"github.com/GPTx-global/gravity/relayer/config"
)

// KeyCommands registers a sub-tree of commands to interact with the local
// committee key. Keys are derived from one mnemonic stored in the file named
// by key.mnemonic_file in config.toml.
func KeyCommands() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the committee member key",
		Long: `Key management commands. Consul and oracle keys are secp256k1 keys derived
along m/44'/60'/0'/0/<index> from a single BIP-39 mnemonic. The mnemonic lives
in the file configured as key.mnemonic_file and is never printed.`,
	}

	cmd.AddCommand(
		NewMnemonicCmd(),
		ImportMnemonicCmd(),
		ShowKeyCmd(),
		ListKeysCmd(),
		ShowKMSKeyCmd(),
	)
	return cmd
}

type keyInfo struct {
	Index   uint32 `json:"index"`
	Address string `json:"address"`
	Entry   string `json:"entry"`
}

func writeMnemonic(path, mnemonic string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("mnemonic file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(mnemonic+"\n"), 0o600)
}

// LoadKeyring opens the keyring of the configured mnemonic file.
func LoadKeyring() (*keyring.Keyring, error) {
	bz, err := os.ReadFile(config.MnemonicFile())
	if err != nil {
		return nil, fmt.Errorf("failed to read mnemonic file: %w", err)
	}
	return keyring.New(strings.TrimSpace(string(bz)))
}

func NewMnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a new mnemonic into the configured mnemonic file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overwrite, _ := cmd.Flags().GetBool(FlagOverwrite)
			mnemonic, err := keyring.NewMnemonic()
			if err != nil {
				return err
			}
			if err := writeMnemonic(config.MnemonicFile(), mnemonic, overwrite); err != nil {
				return err
			}
			return GetContext(cmd).PrintString(config.MnemonicFile())
		},
	}
	cmd.Flags().Bool(FlagOverwrite, false, "Replace an existing mnemonic file")
	return cmd
}

func ImportMnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Read a mnemonic from stdin into the configured mnemonic file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overwrite, _ := cmd.Flags().GetBool(FlagOverwrite)
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("failed to read mnemonic: %w", err)
			}
			mnemonic := strings.Join(strings.Fields(line), " ")
			if _, err := keyring.New(mnemonic); err != nil {
				return err
			}
			if err := writeMnemonic(config.MnemonicFile(), mnemonic, overwrite); err != nil {
				return err
			}
			return GetContext(cmd).PrintString(config.MnemonicFile())
		},
	}
	cmd.Flags().Bool(FlagOverwrite, false, "Replace an existing mnemonic file")
	return cmd
}

func ShowKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [index]",
		Short: "Show the address and committee entry of a key; defaults to key.index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := config.KeyIndex()
			if len(args) == 1 {
				v, err := cast.ToUint32E(args[0])
				if err != nil {
					return fmt.Errorf("invalid key index %q: %w", args[0], err)
				}
				index = v
			}

			kr, err := LoadKeyring()
			if err != nil {
				return err
			}
			info, err := newKeyInfo(kr, index)
			if err != nil {
				return err
			}
			return GetContext(cmd).PrintObject(info)
		},
	}
	AddOutputFlagToCmd(cmd)
	return cmd
}

func ListKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the first keys of the mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetUint32("count")
			kr, err := LoadKeyring()
			if err != nil {
				return err
			}
			infos := make([]keyInfo, 0, count)
			for i := uint32(0); i < count; i++ {
				info, err := newKeyInfo(kr, i)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			return GetContext(cmd).PrintObject(infos)
		},
	}
	cmd.Flags().Uint32("count", 5, "Number of keys to list")
	AddOutputFlagToCmd(cmd)
	return cmd
}

// LoadSigner returns the signer selected by the signer flags of cmd. A KMS key
// id wins over the mnemonic.
func LoadSigner(cmd *cobra.Command) (keyring.Signer, error) {
	if keyID := GetString(cmd, FlagKMSKeyID); keyID != "" {
		kmsClient, err := keyring.NewKMSClient(GetString(cmd, FlagKMSRegion))
		if err != nil {
			return nil, err
		}
		return keyring.NewKMSSigner(kmsClient, keyID)
	}

	kr, err := LoadKeyring()
	if err != nil {
		return nil, err
	}
	return kr.Member(SigningKeyIndex(cmd))
}

// SigningKeyIndex resolves --key-index, falling back to key.index of config.toml.
func SigningKeyIndex(cmd *cobra.Command) uint32 {
	if cmd.Flags().Changed(FlagKeyIndex) {
		index, _ := cmd.Flags().GetUint32(FlagKeyIndex)
		return index
	}
	return config.KeyIndex()
}

type kmsKeyInfo struct {
	KeyID   string `json:"key_id"`
	Address string `json:"address"`
	Entry   string `json:"entry"`
}

func ShowKMSKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-kms [key-id]",
		Short: "Show the address and committee entry of an AWS KMS secp256k1 key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kmsClient, err := keyring.NewKMSClient(GetString(cmd, FlagKMSRegion))
			if err != nil {
				return err
			}
			signer, err := keyring.NewKMSSigner(kmsClient, args[0])
			if err != nil {
				return err
			}
			return GetContext(cmd).PrintObject(kmsKeyInfo{
				KeyID:   signer.KeyID(),
				Address: signer.Address().Hex(),
				Entry:   signer.Entry().String(),
			})
		},
	}
	cmd.Flags().String(FlagKMSRegion, "", "AWS region of the KMS key; defaults to $AWS_REGION")
	AddOutputFlagToCmd(cmd)
	return cmd
}

func newKeyInfo(kr *keyring.Keyring, index uint32) (keyInfo, error) {
	addr, err := kr.Address(index)
	if err != nil {
		return keyInfo{}, err
	}
	entry, err := kr.Entry(index)
	if err != nil {
		return keyInfo{}, err
	}
	return keyInfo{Index: index, Address: addr.Hex(), Entry: entry.String()}, nil
}
