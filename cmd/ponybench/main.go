// Command ponybench measures rollout throughput by running several
// self-play games concurrently, one per worker goroutine. This adapts
// the teacher's goroutine-per-CPU fan-out (skybrian-Gongo/multirobot.go)
// to an OUTER-loop concurrency primitive: each worker's search is still
// single-threaded internally (spec.md §5 forbids parallel tree search
// inside one gen_move), only the benchmark driver itself is parallel.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mononofu/ponygo/board"
	"github.com/mononofu/ponygo/mcts"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		boardSize int
		rollouts  int
		moves     int
		workers   int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "ponybench",
		Short: "Throughput benchmark: N independent single-threaded searches run concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.StandardLogger()
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			results := make(chan workerResult, workers)
			var wg sync.WaitGroup
			start := time.Now()
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					results <- runWorker(id, boardSize, rollouts, moves, seed+int64(id), log)
				}(i)
			}
			wg.Wait()
			close(results)
			elapsed := time.Since(start)

			totalRollouts := 0
			for r := range results {
				totalRollouts += r.rollouts
			}
			kpps := float64(totalRollouts) / elapsed.Seconds() / 1000
			fmt.Printf("workers=%d board=%dx%d moves_per_game=%d rollouts_per_move=%d elapsed=%v total_rollouts=%d kpps=%.1f\n",
				workers, boardSize, boardSize, moves, rollouts, elapsed, totalRollouts, kpps)
			return nil
		},
	}

	cmd.Flags().IntVar(&boardSize, "board-size", 9, "board side length")
	cmd.Flags().IntVar(&rollouts, "rollouts", 1000, "simulations per gen_move")
	cmd.Flags().IntVar(&moves, "moves", 40, "moves played per self-play game")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent self-play games (0 = one per CPU)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base RNG seed; each worker offsets it by its index")

	return cmd
}

type workerResult struct {
	rollouts int
}

// runWorker plays up to moves moves of a self-play game, building a fresh
// mcts.Controller for every move: a Controller is owned exclusively by
// one gen_move call per spec.md §5, so nothing here is shared across
// workers or across moves within a worker.
func runWorker(id, boardSize, rollouts, moves int, seed int64, log logrus.FieldLogger) workerResult {
	b, err := board.New(boardSize)
	if err != nil {
		log.WithError(err).Fatal("ponybench: building board")
	}

	toPlay := board.Black
	totalRollouts := 0
	for i := 0; i < moves; i++ {
		c, err := mcts.NewController(boardSize, mcts.Config{Rollouts: rollouts, Seed: seed + int64(i), Log: log})
		if err != nil {
			log.WithError(err).Fatal("ponybench: building controller")
		}
		v := c.GenMove(b, toPlay)
		if !b.Play(toPlay, v) {
			break
		}
		totalRollouts += rollouts
		toPlay = toPlay.Opponent()
	}

	log.WithFields(logrus.Fields{"worker": id, "moves_played": len(b.History())}).Debug("ponybench: worker finished")
	return workerResult{rollouts: totalRollouts}
}
