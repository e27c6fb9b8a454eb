package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/pkg/format"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and monitor status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	resp, err := call(&ipc.Request{Command: ipc.CmdStatus})
	if err != nil {
		return err
	}

	var info ipc.StatusInfo
	if err := ipc.DecodeData(resp, &info); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if useJSON {
		return printJSON(info)
	}

	fmt.Println(format.NewDefault().FormatStatus(info))
	return nil
}
