package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yfedoseev/meta-oxide/types"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := types.GetBuildInfo()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (%s)\n", info.Name, info.Version, info.GoVersion)
			return err
		},
	}
}
