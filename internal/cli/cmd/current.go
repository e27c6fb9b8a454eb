package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/pkg/format"
)

func newCurrentCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show what is on the clipboard right now",
		Long: `Read the live system clipboard through the daemon and print it.
The entry is shown as captured, whether or not it is in the history yet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw content without any formatting")
	return cmd
}

func runCurrent(raw bool) error {
	resp, err := call(&ipc.Request{Command: ipc.CmdClipCurrent})
	if err != nil {
		return err
	}

	var detail ipc.ItemDetail
	if err := ipc.DecodeData(resp, &detail); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if raw {
		return writeRaw(detail)
	}
	if useJSON {
		return printJSON(detail)
	}

	opts := format.DefaultOptions()
	opts.MaxLines = 0
	opts.MaxWidth = 0
	fmt.Println(format.New(opts).FormatDetail(detail))
	return nil
}
