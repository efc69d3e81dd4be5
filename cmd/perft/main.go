// Command perft verifies the move generator against EPD suites of
// known node counts, or counts a single position. Verified results
// are cached in the store so re-runs skip work already done.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eddiemcnally/dolphin-sub001/internal/board"
	"github.com/eddiemcnally/dolphin-sub001/internal/perft"
	"github.com/eddiemcnally/dolphin-sub001/internal/storage"
)

var log = logging.MustGetLogger("perft")

var (
	suiteFlag   = flag.String("suite", "", "EPD suite file to verify")
	fenFlag     = flag.String("fen", "", "single position to count instead of a suite")
	depthFlag   = flag.Int("depth", 5, "depth for a single position")
	maxFlag     = flag.Int("max", 6, "depth cap when running a suite")
	dbFlag      = flag.String("db", "", "cache directory (default: platform data dir)")
	noCacheFlag = flag.Bool("nocache", false, "recompute even when a cached result exists")
	divideFlag  = flag.Bool("divide", false, "print per-move counts for a single position")
)

// msg prints node counts with thousands separators.
var msg = message.NewPrinter(language.English)

func main() {
	flag.Parse()
	initLogging()

	switch {
	case *fenFlag != "":
		runSingle(*fenFlag, *depthFlag)
	case *suiteFlag != "":
		runSuite(*suiteFlag)
	default:
		log.Fatal("need -suite or -fen")
	}
}

func runSingle(fen string, depth int) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}

	if *divideFlag {
		var total uint64
		for mv, nodes := range perft.Divide(pos, depth) {
			msg.Printf("%s: %d\n", mv, nodes)
			total += nodes
		}
		msg.Printf("total: %d\n", total)
		return
	}

	start := time.Now()
	nodes := perft.Count(pos, depth)
	elapsed := time.Since(start)

	msg.Printf("perft(%d) = %d  (%.2fs, %d nodes/s)\n",
		depth, nodes, elapsed.Seconds(), rate(nodes, elapsed))
}

func runSuite(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open suite: %v", err)
	}
	defer f.Close()

	rows, err := perft.ParseSuite(f)
	if err != nil {
		log.Fatalf("parse suite: %v", err)
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
	}

	failures := 0
	for _, row := range rows {
		pos, err := board.ParseFEN(row.FEN)
		if err != nil {
			log.Errorf("row %q: %v", row.FEN, err)
			failures++
			continue
		}

		for depth := 1; depth <= *maxFlag; depth++ {
			expected, ok := row.Nodes[depth]
			if !ok {
				continue
			}

			if cache != nil && !*noCacheFlag {
				if nodes, hit, err := cache.GetPerft(row.FEN, depth); err == nil && hit {
					if nodes != expected {
						log.Errorf("FAIL (cached) %s D%d: got %d, want %d", row.FEN, depth, nodes, expected)
						failures++
					}
					continue
				}
			}

			start := time.Now()
			nodes := perft.Count(pos, depth)
			elapsed := time.Since(start)

			if nodes != expected {
				log.Errorf("FAIL %s D%d: got %d, want %d", row.FEN, depth, nodes, expected)
				failures++
				continue
			}

			msg.Printf("ok   %s D%d = %d  (%.2fs)\n", row.FEN, depth, nodes, elapsed.Seconds())
			if cache != nil {
				if err := cache.PutPerft(row.FEN, depth, nodes); err != nil {
					log.Warningf("could not cache result: %v", err)
				}
			}
		}
	}

	if failures > 0 {
		log.Fatalf("%d failures", failures)
	}
	log.Infof("suite passed: %d positions", len(rows))
}

func rate(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}

func openCache() *storage.Store {
	dir := *dbFlag
	if dir == "" {
		var err error
		dir, err = storage.DatabaseDir()
		if err != nil {
			log.Warningf("no data directory, cache disabled: %v", err)
			return nil
		}
	}

	cache, err := storage.Open(dir)
	if err != nil {
		log.Warningf("could not open cache, continuing without: %v", err)
		return nil
	}
	return cache
}

func initLogging() {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	logging.SetBackend(backend)
}
