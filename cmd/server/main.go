// Command syncin runs the sync.in career guidance API and exposes its
// engines on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "syncin",
		Short:         "sync.in career guidance backend",
		Long:          "sync.in serves career roadmaps and discovery quizzes over HTTP. The roadmap and discover commands run the same engines locally and print JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newRoadmapCmd(), newDiscoverCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
