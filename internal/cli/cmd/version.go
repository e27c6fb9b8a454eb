package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
	commit    = "unknown"
)

// SetVersionInfo is called from main with values injected at link time.
func SetVersionInfo(v, bt, c string) {
	version = v
	buildTime = bt
	commit = c
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if useJSON {
				printJSON(map[string]string{
					"version":    version,
					"build_time": buildTime,
					"commit":     commit,
					"go":         runtime.Version(),
					"platform":   runtime.GOOS + "/" + runtime.GOARCH,
				})
				return
			}
			fmt.Printf("clipstack %s\n", version)
			fmt.Printf("  build time: %s\n", buildTime)
			fmt.Printf("  commit:     %s\n", commit)
			fmt.Printf("  go:         %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
