package main

import (
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/starkdg/hftrie"
	"github.com/starkdg/hftrie/testutil"
)

// perfMetric aggregates one benchmark run.
type perfMetric struct {
	buildTime time.Duration
	queryOps  uint64
	queryTime time.Duration
	memory    uint64
}

func main() {

	// Command line parameter initialization.
	var (
		flagEntries     int
		flagIters       int
		flagClusters    int
		flagClusterSize int
		flagRadius      int
		flagRuns        int
		flagSeed        int64
		flagLog         string
		flagCPUProfile  string
		flagMemProfile  string
		flagBaseline    bool
	)

	pflag.IntVarP(&flagEntries, "entries", "n", 100000, "uniform entries inserted per iteration")
	pflag.IntVarP(&flagIters, "iters", "i", 10, "insert iterations per run")
	pflag.IntVarP(&flagClusters, "clusters", "c", 10, "clusters planted per run")
	pflag.IntVar(&flagClusterSize, "cluster-size", 10, "entries per cluster")
	pflag.IntVarP(&flagRadius, "radius", "r", 14, "query radius")
	pflag.IntVar(&flagRuns, "runs", 5, "benchmark runs")
	pflag.Int64Var(&flagSeed, "seed", 0, "random seed (0 means time-based)")
	pflag.StringVarP(&flagLog, "log", "l", "info", "log output level")
	pflag.StringVar(&flagCPUProfile, "cpuprofile", "", "write a CPU profile to this file")
	pflag.StringVar(&flagMemProfile, "memprofile", "", "write a heap profile to this file")
	pflag.BoolVar(&flagBaseline, "baseline", false, "also run the sequential-scan baseline")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLog)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = log.Level(level)

	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(flagSeed))
	log.Info().Int64("seed", flagSeed).Int("entries", flagEntries*flagIters).Int("radius", flagRadius).Msg("HF-Trie benchmark starting")

	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	metrics := make([]perfMetric, 0, flagRuns)
	for run := 0; run < flagRuns; run++ {
		metrics = append(metrics, doRun(log, rng, run, flagEntries, flagIters, flagClusters, flagClusterSize, flagRadius, flagBaseline))
	}

	var avg perfMetric
	for _, m := range metrics {
		avg.buildTime += m.buildTime
		avg.queryOps += m.queryOps
		avg.queryTime += m.queryTime
		avg.memory += m.memory
	}
	n := time.Duration(len(metrics))
	log.Info().
		Dur("avg_build", avg.buildTime/n).
		Dur("avg_query", avg.queryTime/n).
		Uint64("avg_query_distance_ops", avg.queryOps/uint64(len(metrics))).
		Uint64("avg_memory_bytes", avg.memory/uint64(len(metrics))).
		Msg("HF-Trie benchmark done")

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create heap profile")
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write heap profile")
		}
	}
}

func doRun(log zerolog.Logger, rng *rand.Rand, run, entries, iters, clusters, clusterSize, radius int, baseline bool) perfMetric {
	trie := hftrie.NewTrie()
	scan := hftrie.NewSeqIndex()

	var m perfMetric
	nextID := int64(1)
	for i := 0; i < iters; i++ {
		batch := testutil.Uniform(rng, entries, nextID)
		nextID += int64(entries)

		start := time.Now()
		for _, e := range batch {
			trie.Insert(e)
		}
		m.buildTime += time.Since(start)

		if baseline {
			for _, e := range batch {
				scan.Insert(e)
			}
		}
	}

	centres := make([]uint64, clusters)
	for i := range centres {
		centres[i] = rng.Uint64()
		cluster := testutil.Cluster(rng, centres[i], radius, clusterSize, nextID)
		nextID += int64(len(cluster))
		for _, e := range cluster {
			trie.Insert(e)
			if baseline {
				scan.Insert(e)
			}
		}
	}
	m.memory = trie.MemoryUsage()

	for _, centre := range centres {
		start := time.Now()
		results, stats := trie.RangeSearchStats(centre, radius)
		elapsed := time.Since(start)
		m.queryTime += elapsed
		m.queryOps += stats.DistanceOps

		log.Debug().
			Int("run", run).
			Uint64("centre", centre).
			Int("found", len(results)).
			Uint64("distance_ops", stats.DistanceOps).
			Uint64("nodes_visited", stats.NodesVisited).
			Dur("elapsed", elapsed).
			Msg("trie query")

		if baseline {
			start = time.Now()
			results, stats = scan.RangeSearchStats(centre, radius)
			log.Debug().
				Int("run", run).
				Uint64("centre", centre).
				Int("found", len(results)).
				Uint64("distance_ops", stats.DistanceOps).
				Dur("elapsed", time.Since(start)).
				Msg("baseline query")
		}
	}

	stats := trie.Stats()
	log.Info().
		Int("run", run).
		Int("size", trie.Size()).
		Int("leaves", stats.LeafCount).
		Int("internals", stats.InternalCount).
		Int("max_leaf_depth", stats.MaxLeafDepth).
		Dur("build", m.buildTime).
		Dur("query", m.queryTime).
		Uint64("memory_bytes", m.memory).
		Msg("run complete")

	return m
}
