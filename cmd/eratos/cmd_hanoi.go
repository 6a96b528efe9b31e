package main

import (
	"fmt"
	"strconv"

	"eratos/internal/hanoi"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var hanoiPegs string

// hanoiCmd generates an optimal Tower of Hanoi solution
var hanoiCmd = &cobra.Command{
	Use:   "hanoi [disks]",
	Short: "Print the optimal Tower of Hanoi move sequence",
	Long: `Generates the optimal (2^n - 1 move) solution for moving n disks from
the first peg to the third.

Example:
  eratos hanoi 4
  eratos hanoi 3 --pegs XYZ`,
	Args: cobra.ExactArgs(1),
	RunE: runHanoi,
}

func init() {
	hanoiCmd.Flags().StringVar(&hanoiPegs, "pegs", "ABC", "three distinct single-byte peg labels")
}

func runHanoi(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("disk count %q is not an integer", args[0])
	}
	if len(hanoiPegs) != 3 {
		return fmt.Errorf("--pegs needs exactly three labels, got %q", hanoiPegs)
	}

	moves, err := hanoi.Moves(n, hanoiPegs[0], hanoiPegs[1], hanoiPegs[2])
	if err != nil {
		return fmt.Errorf("hanoi: %w", err)
	}

	logger.Debug("solution generated", zap.Int("disks", n), zap.Int("moves", len(moves)))
	return renderMoves(cmd.OutOrStdout(), moves)
}
