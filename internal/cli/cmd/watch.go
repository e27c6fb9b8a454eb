package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/pkg/format"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print new clipboard captures as they happen",
		Long: `Poll the daemon and print a summary line for every new history entry.
With --json each entry is printed as a single JSON object per line.

Interrupt with Ctrl-C to stop watching.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval")
	return cmd
}

func runWatch(interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := format.New(format.DefaultOptions())

	lastVersion, head, err := historyHead()
	if err != nil {
		return err
	}
	lastHash := ""
	if head != nil {
		lastHash = head.Hash
	}

	if !useJSON {
		fmt.Println("Watching clipboard (Ctrl-C to stop)")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			version, item, err := historyHead()
			if err != nil {
				// The daemon may be restarting; keep polling.
				zapLogger.Debug("watch poll failed", zap.Error(err))
				continue
			}
			if version == lastVersion {
				continue
			}
			lastVersion = version
			if item == nil || item.Hash == lastHash {
				// Version moved without a new head: a clear or a restore write-back.
				continue
			}
			lastHash = item.Hash
			if useJSON {
				line, err := json.Marshal(item)
				if err != nil {
					continue
				}
				fmt.Println(string(line))
			} else {
				fmt.Println(f.FormatSummary(*item))
			}
		}
	}
}

// historyHead returns the store version and the newest entry, nil when the
// history is empty.
func historyHead() (uint64, *ipc.ItemSummary, error) {
	resp, err := call(&ipc.Request{
		Command: ipc.CmdHistoryList,
		Args:    map[string]interface{}{"limit": 1},
	})
	if err != nil {
		return 0, nil, err
	}

	var list ipc.HistoryList
	if err := ipc.DecodeData(resp, &list); err != nil {
		return 0, nil, err
	}
	if len(list.Items) == 0 {
		return list.Version, nil, nil
	}
	return list.Version, &list.Items[0], nil
}
