package cmd

import (
	"fmt"

	"github.com/smazurov/framecap/convert"
	"github.com/spf13/cobra"
)

// CreateBackendsCmd creates the backends command.
func CreateBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "Show conversion backend support on this machine",
		Run: func(_ *cobra.Command, _ []string) {
			active := convert.ActiveBackend()
			backends := []convert.Backend{
				convert.BackendCPU,
				convert.BackendAVX2,
				convert.BackendNEON,
				convert.BackendAccelerate,
			}
			fmt.Printf("%-12s %-10s %s\n", "BACKEND", "SUPPORTED", "ACTIVE")
			for _, b := range backends {
				mark := ""
				if b == active {
					mark = "*"
				}
				fmt.Printf("%-12s %-10v %s\n", b.String(), convert.HasBackend(b), mark)
			}
		},
	}
}
