// Command ponygo runs the MCTS-RAVE Go engine as a GTP-speaking process
// over stdin/stdout, following the teacher's single-binary driver
// (skybrian-Gongo/main.go) but with cobra flags and a `gtp` subcommand
// in place of bare os.Args parsing.
package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mononofu/ponygo/gtp"
	"github.com/mononofu/ponygo/mcts"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ponygo",
		Short: "MCTS-RAVE Go engine",
	}
	root.AddCommand(newGTPCmd())
	return root
}

func newGTPCmd() *cobra.Command {
	var (
		boardSize int
		rollouts  int
		uctC      float64
		raveEquiv float64
		raveC     float64
		seed      int64
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "gtp",
		Short: "Run the protocol loop against stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := logrus.New()
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			base.SetLevel(level)
			var log logrus.FieldLogger = base.WithField("instance", uuid.NewString())

			cfg := mcts.Config{
				UctC:      uctC,
				RaveEquiv: raveEquiv,
				RaveC:     raveC,
				Seed:      seed,
			}

			game, err := gtp.NewGame(boardSize, rollouts, cfg, log)
			if err != nil {
				return err
			}
			return gtp.Run(game, os.Stdin, os.Stdout, log)
		},
	}

	cmd.Flags().IntVar(&boardSize, "board-size", 9, "board side length (1..19)")
	cmd.Flags().IntVar(&rollouts, "rollouts", 2000, "simulations per gen_move")
	cmd.Flags().Float64Var(&uctC, "uct-c", mcts.UctC, "UCT exploration coefficient (stored in mcts.Config; the search does not read it)")
	cmd.Flags().Float64Var(&raveEquiv, "rave-equiv", mcts.RaveEquiv, "RAVE/UCT equivalence visit count (stored in mcts.Config; the search does not read it)")
	cmd.Flags().Float64Var(&raveC, "rave-c", mcts.RaveCDefault, "additive RAVE weight in the plain UCT term (stored in mcts.Config; the search does not read it)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "logrus level: trace,debug,info,warn,error")

	return cmd
}
