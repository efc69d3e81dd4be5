// Command dolphin runs a fixed-depth search on a position given in
// FEN and prints the principal variation found at each depth.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/eddiemcnally/dolphin-sub001/internal/board"
	"github.com/eddiemcnally/dolphin-sub001/internal/engine"
	"github.com/eddiemcnally/dolphin-sub001/internal/storage"
)

var log = logging.MustGetLogger("dolphin")

var (
	fenFlag   = flag.String("fen", board.StartFEN, "position to search, in FEN")
	depthFlag = flag.Int("depth", 0, "maximum search depth (0 = use stored options)")
	ttFlag    = flag.Int("tt", 0, "transposition table capacity in entries (0 = use stored options)")
	dbFlag    = flag.String("db", "", "database directory (default: platform data dir)")
	saveFlag  = flag.Bool("save", false, "persist the effective options for future runs")
)

func main() {
	flag.Parse()
	initLogging()

	opts, store := loadOptions()
	if store != nil {
		defer store.Close()
	}

	if *depthFlag > 0 {
		opts.MaxDepth = *depthFlag
	}
	if *ttFlag > 0 {
		opts.TTEntries = *ttFlag
	}

	if *saveFlag && store != nil {
		if err := store.SaveOptions(opts); err != nil {
			log.Warningf("could not persist options: %v", err)
		}
	}

	pos, err := board.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}

	log.Infof("searching depth %d, TT %d entries", opts.MaxDepth, opts.TTEntries)

	s := engine.NewSearch(opts.TTEntries)
	s.OnIteration = func(depth, score int, pv []board.Move) {
		line := make([]string, len(pv))
		for i, m := range pv {
			line[i] = m.String()
		}
		log.Infof("depth %d score %s pv %s", depth, formatScore(score), strings.Join(line, " "))
	}

	result := s.Search(pos, opts.MaxDepth)

	if result.Move == board.NoMove {
		if pos.InCheck() {
			fmt.Println("checkmate")
		} else {
			fmt.Println("stalemate")
		}
		return
	}

	fmt.Printf("bestmove %s score %s nodes %d\n", result.Move, formatScore(result.Score), result.Nodes)
}

// formatScore renders mate scores as a move count, everything else as
// centipawns.
func formatScore(score int) string {
	switch {
	case score >= engine.ScoreMate-engine.MaxPly:
		return fmt.Sprintf("mate %d", (engine.ScoreMate-score+1)/2)
	case score <= -engine.ScoreMate+engine.MaxPly:
		return fmt.Sprintf("mate -%d", (engine.ScoreMate+score+1)/2)
	default:
		return fmt.Sprintf("cp %d", score)
	}
}

func initLogging() {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	logging.SetBackend(backend)
}

// loadOptions opens the store and reads the persisted options,
// falling back to defaults when the store is unavailable.
func loadOptions() (*storage.EngineOptions, *storage.Store) {
	dir := *dbFlag
	if dir == "" {
		var err error
		dir, err = storage.DatabaseDir()
		if err != nil {
			log.Warningf("no data directory, using defaults: %v", err)
			return storage.DefaultOptions(), nil
		}
	}

	store, err := storage.Open(dir)
	if err != nil {
		log.Warningf("could not open store, using defaults: %v", err)
		return storage.DefaultOptions(), nil
	}

	opts, err := store.LoadOptions()
	if err != nil {
		log.Warningf("could not load options, using defaults: %v", err)
		opts = storage.DefaultOptions()
	}
	return opts, store
}
