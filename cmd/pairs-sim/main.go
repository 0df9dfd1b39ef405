// cmd/pairs-sim/main.go
package main

import (
	"math/rand"
	"time"

	"github.com/jason-s-yu/pairs/internal/autoplay"
	"github.com/jason-s-yu/pairs/internal/config"
	"github.com/jason-s-yu/pairs/internal/game"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	logger.SetLevel(cfg.Level())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.WithFields(logrus.Fields{
		"rows":  cfg.Rows,
		"cols":  cfg.Cols,
		"games": cfg.Games,
		"seed":  seed,
	}).Info("starting simulation")

	results, err := simulate(cfg, seed, logger)
	if err != nil {
		logger.Fatalf("simulation failed: %v", err)
	}

	s := summarize(results)
	logger.WithFields(logrus.Fields{
		"games":      s.Games,
		"won":        s.Won,
		"avgMoves":   s.AvgMoves,
		"bestMoves":  s.BestMoves,
		"worstMoves": s.WorstMoves,
	}).Info("simulation finished")
}

// simulate plays cfg.Games games with one bot. All randomness derives from seed.
func simulate(cfg config.Config, seed int64, logger *logrus.Logger) ([]autoplay.Result, error) {
	r := rand.New(rand.NewSource(seed))
	bot := autoplay.NewPlayer(rand.New(rand.NewSource(r.Int63())))

	results := make([]autoplay.Result, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		g, err := game.NewGameWithRand(cfg.Rows, cfg.Cols, r)
		if err != nil {
			return nil, err
		}
		g.SetLogger(logger)

		res := bot.Play(g)
		entry := logger.WithFields(logrus.Fields{
			"game":    i + 1,
			"game_id": g.ID,
			"moves":   res.Moves,
			"matches": res.Matches,
		})
		if res.Won {
			entry.Info("game won")
		} else {
			entry.Warn("game stopped before all pairs were found")
		}
		results = append(results, res)
	}
	return results, nil
}

// Summary aggregates bot results.
type Summary struct {
	Games      int
	Won        int
	AvgMoves   float64
	BestMoves  int
	WorstMoves int
}

func summarize(results []autoplay.Result) Summary {
	s := Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	s.BestMoves = results[0].Moves
	for _, res := range results {
		if res.Won {
			s.Won++
		}
		total += res.Moves
		if res.Moves < s.BestMoves {
			s.BestMoves = res.Moves
		}
		if res.Moves > s.WorstMoves {
			s.WorstMoves = res.Moves
		}
	}
	s.AvgMoves = float64(total) / float64(len(results))
	return s
}
