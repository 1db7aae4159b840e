// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the TaskApp CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taskapp",
		Short: "TaskApp - a multi-tenant task tracking service",
		Long: `TaskApp is a small multi-tenant task tracking service: users
register, obtain a bearer token, and manage their own tasks.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
