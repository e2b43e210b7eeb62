// Command corvid-search is a demonstration driver for internal/coordinator:
// it sets up one position, runs one search with the given time/depth
// budget, and prints each iteration's result to stdout. It is not a
// protocol implementation (no UCI), just enough to exercise the engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/coordinator"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/dustin/go-humanize"
)

var (
	hashMB     = flag.Int("hash", 64, "transposition table size in MB")
	moveTimeMs = flag.Int("movetime", 1000, "search time budget in milliseconds (0 disables)")
	depth      = flag.Int("depth", 0, "maximum iterative-deepening depth (0 means unbounded)")
	fen        = flag.String("fen", board.StartFEN, "FEN of the position to search")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", *cpuprofile)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parsing FEN %q: %v", *fen, err)
	}
	pos.UpdateCheckers()
	history := board.NewPositionHistory(pos)

	done := make(chan struct{})

	eng := coordinator.NewEngine(
		func(r search.Result) {
			fmt.Printf("info depth %d score %d nodes %d nps %d time %d hashfull %d pv %s\n",
				r.Depth, r.Score, r.Nodes, r.NPS, r.TimeMs, r.HashfullPermille, pvString(r.PrincipalVariation))
		},
		func(r search.Result) {
			fmt.Printf("bestmove %s\n", r.BestMove)
			close(done)
		},
		log.Default(),
	)
	defer eng.Terminate()

	eng.SetHashSize(*hashMB << 20)
	log.Printf("hash table set to %s", humanize.IBytes(uint64(*hashMB)<<20))

	eng.SetPosition(history)

	opts := search.Options{Depth: *depth}
	if *moveTimeMs > 0 {
		opts.MoveTime = time.Duration(*moveTimeMs) * time.Millisecond
	}

	if err := eng.Search(opts); err != nil {
		log.Fatalf("search: %v", err)
	}

	<-done
}

func pvString(pv []board.Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}
