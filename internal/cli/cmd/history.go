package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/pkg/format"
)

// newHistoryCmd creates the history command with all subcommands. Bare
// 'clipstack history' lists the stack.
func newHistoryCmd() *cobra.Command {
	var (
		limit    int
		compact  bool
		noColors bool
		noIcons  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the clipboard history stack",
		Long: `Inspect the clipboard history stack. Index 0 is the most recent
snapshot; older entries follow in capture order.

Examples:
  clipstack history                # list the stack
  clipstack history -n 5           # list the five newest entries
  clipstack history show 2         # show entry 2 in full
  clipstack history clear          # drop all entries`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(limit, compact, noColors, noIcons)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of entries to show (0 = all)")
	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "use compact single-line format")
	cmd.Flags().BoolVar(&noColors, "no-colors", false, "disable colored output")
	cmd.Flags().BoolVar(&noIcons, "no-icons", false, "disable icons in output")

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var (
		limit    int
		compact  bool
		noColors bool
		noIcons  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clipboard history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(limit, compact, noColors, noIcons)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of entries to show (0 = all)")
	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "use compact single-line format")
	cmd.Flags().BoolVar(&noColors, "no-colors", false, "disable colored output")
	cmd.Flags().BoolVar(&noIcons, "no-icons", false, "disable icons in output")
	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	var (
		raw      bool
		noColors bool
		noIcons  bool
	)

	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Show a history entry in full",
		Long: `Show a single history entry with its metadata, content types and body.

Examples:
  clipstack history show 0          # newest entry
  clipstack history show 3 --raw    # raw content only, suitable for piping`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer, got %q", args[0])
			}
			return runHistoryShow(index, raw, noColors, noIcons)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "output raw content without metadata")
	cmd.Flags().BoolVar(&noColors, "no-colors", false, "disable colored output")
	cmd.Flags().BoolVar(&noIcons, "no-icons", false, "disable icons in output")
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear()
		},
	}
}

func runHistoryList(limit int, compact, noColors, noIcons bool) error {
	req := &ipc.Request{Command: ipc.CmdHistoryList}
	if limit > 0 {
		req.Args = map[string]interface{}{"limit": limit}
	}

	resp, err := call(req)
	if err != nil {
		return err
	}

	var list ipc.HistoryList
	if err := ipc.DecodeData(resp, &list); err != nil {
		return err
	}

	if useJSON {
		return printJSON(list)
	}

	opts := format.DefaultOptions()
	if compact {
		opts = format.CompactOptions()
	}
	if noColors {
		opts.UseColors = false
	}
	if noIcons {
		opts.UseIcons = false
	}

	fmt.Println(format.New(opts).FormatList(list))
	return nil
}

func runHistoryShow(index int, raw, noColors, noIcons bool) error {
	resp, err := call(&ipc.Request{
		Command: ipc.CmdHistoryGet,
		Args:    map[string]interface{}{"index": index},
	})
	if err != nil {
		return err
	}

	var det ipc.ItemDetail
	if err := ipc.DecodeData(resp, &det); err != nil {
		return err
	}

	if raw {
		return writeRaw(det)
	}
	if useJSON {
		return printJSON(det)
	}

	opts := format.DefaultOptions()
	opts.MaxLines = 0
	opts.MaxWidth = 0
	if noColors {
		opts.UseColors = false
	}
	if noIcons {
		opts.UseIcons = false
	}
	fmt.Println(format.New(opts).FormatDetail(det))
	return nil
}

// writeRaw dumps the entry without decoration: the plain text when there
// is any, otherwise the preferred representation's bytes.
func writeRaw(det ipc.ItemDetail) error {
	if det.PlainText != "" {
		_, err := os.Stdout.WriteString(det.PlainText)
		return err
	}
	for _, rep := range det.Representations {
		if rep.Type == det.PreferredType {
			_, err := os.Stdout.Write(rep.Data)
			return err
		}
	}
	if len(det.Representations) > 0 {
		_, err := os.Stdout.Write(det.Representations[0].Data)
		return err
	}
	return nil
}

func runHistoryClear() error {
	resp, err := call(&ipc.Request{Command: ipc.CmdHistoryClear})
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}
