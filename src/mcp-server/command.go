// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/config"
	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/helper/posix"
)

// NewCommand returns the root command of the MCP server binary.
//
// Without flags it serves MCP on stdio through [Run]. --instructions prints
// the usage workflows clients receive on initialize and exits.
func NewCommand(version string) *cobra.Command {
	var (
		configFile       string
		showInstructions bool
	)

	cmd := &cobra.Command{
		Use:   posix.ExecutableName("mcp-server"),
		Short: "MCP server for X.509 chain segmentation",
		Long: `Serves the find_chain_root, segment_intermediates, order_chain and
get_metrics tools over the Model Context Protocol on stdio.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showInstructions {
				cfg, err := config.Load(configFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				instructions, err := loadInstructions(cfg.Server.Name, createTools())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), instructions)
				return err
			}
			return Run(version, configFile)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to configuration file (JSON or YAML, default $"+config.EnvConfigFile+")")
	cmd.Flags().BoolVar(&showInstructions, "instructions", false, "print usage workflows for the segmentation tools")

	return cmd
}
