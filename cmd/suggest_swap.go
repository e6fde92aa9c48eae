package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dr460nf1r3/calamares/internal/services"
	"github.com/dr460nf1r3/calamares/internal/types"
)

// suggest-swap command flags
var (
	suggestAvailable string
	suggestRAM       string
	suggestChoice    string
	suggestFactor    float64
)

var suggestSwapCmd = &cobra.Command{
	Use:   "suggest-swap",
	Short: "Run the swap sizing heuristic standalone",
	RunE: func(cmd *cobra.Command, args []string) error {
		available, err := humanize.ParseBytes(suggestAvailable)
		if err != nil {
			return fmt.Errorf("invalid available space %q: %w", suggestAvailable, err)
		}
		ram, err := humanize.ParseBytes(suggestRAM)
		if err != nil {
			return fmt.Errorf("invalid ram size %q: %w", suggestRAM, err)
		}
		if suggestFactor < 1.0 {
			return fmt.Errorf("overestimation factor %v below 1.0", suggestFactor)
		}

		size := services.SuggestSwapSize(available, types.ParseSwapChoice(suggestChoice), ram, suggestFactor)
		fmt.Printf("%s (%d bytes)\n", types.HumanSize(size), size)
		return nil
	},
}

func init() {
	suggestSwapCmd.Flags().StringVar(&suggestAvailable, "available", "", "free space after boot partitions (required)")
	suggestSwapCmd.Flags().StringVar(&suggestRAM, "ram", "", "installed RAM size (required)")
	suggestSwapCmd.Flags().StringVar(&suggestChoice, "choice", "small", "swap strategy (none, small, full)")
	suggestSwapCmd.Flags().Float64Var(&suggestFactor, "factor", 1.0, "RAM overestimation factor")
	_ = suggestSwapCmd.MarkFlagRequired("available")
	_ = suggestSwapCmd.MarkFlagRequired("ram")
}
