package cmd

import (
	"fmt"

	"github.com/smazurov/framecap/internal/version"
	"github.com/spf13/cobra"
)

// CreateVersionCmd creates the version command.
func CreateVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Run: func(_ *cobra.Command, _ []string) {
			if short {
				fmt.Println(version.String())
				return
			}
			info := version.Get()
			fmt.Printf("framecap %s\n", info.Version)
			fmt.Printf("  commit:   %s\n", info.GitCommit)
			fmt.Printf("  built:    %s\n", info.BuildDate)
			fmt.Printf("  go:       %s (%s)\n", info.GoVersion, info.Compiler)
			fmt.Printf("  platform: %s\n", info.Platform)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
