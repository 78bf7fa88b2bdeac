package main

import (
	"fmt"
	"os"

	"gambit/agent"
	"gambit/engine"
	"gambit/experiments/metrics"
	"gambit/game"
	"gambit/render"
	"gambit/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type config struct {
	name   string
	seed   uint64
	budget int
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	runSelfPlayExperiment()
}

func runSelfPlayExperiment() {
	numGames := 5
	first := config{name: "softmax-a", seed: 1, budget: 1000}
	second := config{name: "softmax-b", seed: 2, budget: 1000}

	writer, err := metrics.NewWriter()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	fmt.Printf("Running self-play experiment...\n")
	for i := 0; i < numGames; i++ {
		fmt.Printf("Game %d started...\n", i+1)
		result, gameMetric, moveMetrics := runGame(first, second, i)
		fmt.Printf("Game %d over! Result: %s\n", i+1, result)

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     first.name,
			Agent2:     second.name,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	fmt.Printf("Finished self-play experiment.\n")
}

// runGame executes a single game between two agents and returns the result
func runGame(config1, config2 config, gameIndex int) (string, metrics.GameMetric, []metrics.MoveMetric) {
	position := game.NewChessPosition()
	e := engine.NewLocal(position,
		createAgent(config1, uint64(gameIndex)),
		createAgent(config2, uint64(gameIndex)))

	result, gameMetric, moveMetrics := e.Run()

	saveBoard(position, gameIndex)
	return result, gameMetric, moveMetrics
}

func createAgent(cfg config, gameIndex uint64) agent.Agent {
	selector := searcher.NewSelector(
		searcher.WithRand(rand.New(rand.NewSource(cfg.seed+gameIndex))),
		searcher.WithMetrics(),
	)
	return agent.NewSoftmaxAgent(selector, cfg.budget)
}

// saveBoard writes the final position as an SVG snapshot.
func saveBoard(position game.Position, gameIndex int) {
	path := fmt.Sprintf("game_%d.svg", gameIndex+1)
	f, err := os.Create(path)
	if err != nil {
		log.Warn().Err(err).Msgf("failed to create %s", path)
		return
	}
	defer f.Close()
	render.WriteSVG(f, position)
}
