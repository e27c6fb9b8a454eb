package cmd

import (
	"github.com/spf13/cobra"
)

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop every entry in the history",
		Long:  `Drop every entry in the history. The live system clipboard is not touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear()
		},
	}
}
