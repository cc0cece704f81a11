package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/starkdg/hftrie"
	"github.com/starkdg/hftrie/testutil"
)

// Demonstration flow: insert uniform noise plus planted clusters, query
// every cluster centre with both search variants, delete the centres,
// and optionally dump the tree.
func main() {

	// Command line parameter initialization.
	var (
		flagEntries     int
		flagClusters    int
		flagClusterSize int
		flagRadius      int
		flagSeed        int64
		flagLog         string
		flagDump        bool
	)

	pflag.IntVarP(&flagEntries, "entries", "n", 100000, "uniform random entries to insert")
	pflag.IntVarP(&flagClusters, "clusters", "c", 10, "clusters to plant")
	pflag.IntVar(&flagClusterSize, "cluster-size", 10, "entries per cluster")
	pflag.IntVarP(&flagRadius, "radius", "r", 10, "cluster spread and query radius")
	pflag.Int64Var(&flagSeed, "seed", 0, "random seed (0 means time-based)")
	pflag.StringVarP(&flagLog, "log", "l", "info", "log output level")
	pflag.BoolVar(&flagDump, "dump", false, "print the tree to stdout before exiting")

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

	trie := hftrie.NewTrie()

	start := time.Now()
	for _, e := range testutil.Uniform(rng, flagEntries, 1) {
		trie.Insert(e)
	}
	log.Info().
		Int("entries", flagEntries).
		Dur("elapsed", time.Since(start)).
		Msg("uniform data inserted")

	const clusterIDBase = int64(100000000)
	centres := make([]uint64, flagClusters)
	for i := range centres {
		centres[i] = rng.Uint64()
		cluster := testutil.Cluster(rng, centres[i], flagRadius, flagClusterSize, clusterIDBase+int64(i*flagClusterSize))
		for _, e := range cluster {
			trie.Insert(e)
		}
	}
	log.Info().
		Int("clusters", flagClusters).
		Int("cluster_size", flagClusterSize).
		Int("size", trie.Size()).
		Uint64("memory_bytes", trie.MemoryUsage()).
		Msg("clusters planted")

	for i, centre := range centres {
		exact, stats := trie.RangeSearchStats(centre, flagRadius)
		fast, _ := trie.RangeSearchFastStats(centre, flagRadius)
		log.Info().
			Int("cluster", i).
			Uint64("centre", centre).
			Int("exact_found", len(exact)).
			Int("fast_found", len(fast)).
			Uint64("distance_ops", stats.DistanceOps).
			Uint64("nodes_visited", stats.NodesVisited).
			Uint64("pruned", stats.Pruned).
			Msg("centre query")
	}

	// Deleting a centre removes exactly the one planted entry.
	for i, centre := range centres {
		trie.Delete(hftrie.Entry{ID: clusterIDBase + int64(i*flagClusterSize), Code: centre})
	}
	log.Info().Int("size", trie.Size()).Msg("centres deleted")

	if flagDump {
		trie.Print(os.Stdout)
	}

	stats := trie.Stats()
	log.Info().
		Int("leaves", stats.LeafCount).
		Int("internals", stats.InternalCount).
		Int("min_leaf_depth", stats.MinLeafDepth).
		Int("max_leaf_depth", stats.MaxLeafDepth).
		Msg("done")
}
