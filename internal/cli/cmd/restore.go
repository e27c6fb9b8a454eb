package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/berrythewa/clipstack/internal/ipc"
)

func newRestoreCmd() *cobra.Command {
	var noPaste bool

	cmd := &cobra.Command{
		Use:   "restore <index>",
		Short: "Push a history entry back onto the clipboard",
		Long: `Restore the history entry at the given index to the system clipboard
and send a paste keystroke to the frontmost application.

The entry is written back with its content intact. Use --no-paste to only
update the clipboard.

Examples:
  clipstack restore 0             # re-copy the newest entry and paste it
  clipstack restore 4 --no-paste  # only put entry 4 back on the clipboard`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer, got %q", args[0])
			}
			return runRestore(index, noPaste)
		},
	}

	cmd.Flags().BoolVar(&noPaste, "no-paste", false, "update the clipboard without sending a paste keystroke")
	return cmd
}

func runRestore(index int, noPaste bool) error {
	resp, err := rawCall(&ipc.Request{
		Command: ipc.CmdHistoryRestore,
		Args:    map[string]interface{}{"index": index, "no_paste": noPaste},
	})
	if err != nil {
		return err
	}

	if resp.Status != ipc.StatusOK {
		// A stale index means the stack moved under the user.
		if strings.Contains(resp.Message, "index out of range") {
			return fmt.Errorf("%s (the stack has changed; run 'clipstack history' and pick again)", resp.Message)
		}
		return fmt.Errorf("daemon error: %s", resp.Message)
	}

	fmt.Println(resp.Message)
	return nil
}
