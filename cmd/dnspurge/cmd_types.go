package main

import (
	"fmt"

	"github.com/dnspurge/dnspurge/domain/model"
	"github.com/spf13/cobra"
)

// newCmdTypes returns a command that lists the purgeable record types.
func newCmdTypes() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported DNS record types",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range model.AllRecordTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
		},
	}
}
