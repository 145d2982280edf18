package main

import (
	"os"

	"github.com/smazurov/framecap/cmd"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "framecap",
		Short: "Camera frame buffer and pixel conversion toolkit",
	}

	root.AddCommand(cmd.CreateBackendsCmd())
	root.AddCommand(cmd.CreateBenchCmd())
	root.AddCommand(cmd.CreatePipelineCmd())
	root.AddCommand(cmd.CreateVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
