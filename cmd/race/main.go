// Command race drives a sorting race from the command line: it builds the
// canonical seven-sorter roster, generates an array from the configured
// distribution and seed, runs the race to completion, and prints a
// per-sorter summary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	sortrace "github.com/joeycumines/sorting-race"
	"github.com/joeycumines/sorting-race/sorters"
)

// fileConfig mirrors RunConfiguration for optional TOML loading via -config.
type fileConfig struct {
	Race struct {
		ArraySize    int    `toml:"array_size"`
		Distribution string `toml:"distribution"`
		Seed         uint64 `toml:"seed"`
		TargetFPS    int    `toml:"target_fps"`
	} `toml:"race"`
	Fairness struct {
		Mode         string  `toml:"mode"`
		K            int     `toml:"k"`
		Alpha        float64 `toml:"alpha"`
		Beta         float64 `toml:"beta"`
		SliceMillis  float64 `toml:"slice_ms"`
		LearningRate float64 `toml:"learning_rate"`
	} `toml:"fairness"`
}

func main() {
	var (
		configPath  = flag.String("config", "", "optional race.toml configuration path")
		arraySize   = flag.Int("size", 50, "array size")
		distFlag    = flag.String("distribution", "shuffled", "shuffled|nearly_sorted|reversed|few_unique|sorted|with_duplicates")
		seed        = flag.Uint64("seed", 42, "PRNG seed")
		fps         = flag.Int("fps", 30, "target frames per second")
		fairnessFl  = flag.String("fairness", "comparison_budget", "comparison_budget|weighted|walltime|adaptive|equal_steps")
		k           = flag.Int("k", 16, "ComparisonBudget: comparisons per tick")
		alpha       = flag.Float64("alpha", 1, "Weighted: flat component scale")
		beta        = flag.Float64("beta", 2, "Weighted: complexity-weighted component scale")
		sliceMillis = flag.Float64("slice-ms", 16, "WallTime: per-tick time slice in milliseconds")
		learnRate   = flag.Float64("learning-rate", 0.5, "Adaptive: EWMA learning rate")
		maxSteps    = flag.Int("max-steps", 0, "bound on ticks executed (0 = unbounded)")
	)
	flag.Parse()

	cfg := sortrace.RunConfiguration{
		ArraySize:    *arraySize,
		Distribution: parseDistribution(*distFlag),
		Seed:         *seed,
		Fairness:     parseFairness(*fairnessFl, *k, *alpha, *beta, *sliceMillis, *learnRate),
		TargetFPS:    *fps,
	}

	if *configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(*configPath, &fc); err != nil {
			fmt.Fprintln(os.Stderr, "race: loading config:", err)
			os.Exit(1)
		}
		applyFileConfig(&cfg, fc)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "race: invalid configuration:", err)
		os.Exit(1)
	}

	ctrl, err := sortrace.NewRaceController(sorters.Registry.BuildAll())
	if err != nil {
		fmt.Fprintln(os.Stderr, "race:", err)
		os.Exit(1)
	}

	data := sortrace.NewArrayGenerator(cfg.Seed).Generate(cfg.ArraySize, cfg.Distribution)
	if err := ctrl.StartRace(cfg, data); err != nil {
		fmt.Fprintln(os.Stderr, "race: invalid configuration:", err)
		os.Exit(1)
	}

	steps := ctrl.RunToCompletion(*maxSteps)
	printSummary(ctrl, steps)
}

func parseDistribution(s string) sortrace.Distribution {
	switch s {
	case "nearly_sorted":
		return sortrace.DistributionNearlySorted
	case "reversed":
		return sortrace.DistributionReversed
	case "few_unique":
		return sortrace.DistributionFewUnique
	case "sorted":
		return sortrace.DistributionSorted
	case "with_duplicates":
		return sortrace.DistributionWithDuplicates
	default:
		return sortrace.DistributionShuffled
	}
}

func parseFairness(mode string, k int, alpha, beta, sliceMillis, learningRate float64) sortrace.FairnessMode {
	switch mode {
	case "weighted":
		return sortrace.WeightedMode(alpha, beta)
	case "walltime":
		return sortrace.WallTimeMode(sliceMillis)
	case "adaptive":
		return sortrace.AdaptiveMode(learningRate)
	case "equal_steps":
		return sortrace.EqualStepsMode()
	default:
		return sortrace.ComparisonBudgetMode(k)
	}
}

func applyFileConfig(cfg *sortrace.RunConfiguration, fc fileConfig) {
	if fc.Race.ArraySize != 0 {
		cfg.ArraySize = fc.Race.ArraySize
	}
	if fc.Race.Distribution != "" {
		cfg.Distribution = parseDistribution(fc.Race.Distribution)
	}
	if fc.Race.Seed != 0 {
		cfg.Seed = fc.Race.Seed
	}
	if fc.Race.TargetFPS != 0 {
		cfg.TargetFPS = fc.Race.TargetFPS
	}
	if fc.Fairness.Mode != "" {
		cfg.Fairness = parseFairness(fc.Fairness.Mode, fc.Fairness.K, fc.Fairness.Alpha, fc.Fairness.Beta, fc.Fairness.SliceMillis, fc.Fairness.LearningRate)
	}
}

func printSummary(ctrl *sortrace.RaceController, steps int) {
	fmt.Printf("race complete in %d ticks\n", steps)
	snap, ok := ctrl.LatestSnapshot()
	if !ok {
		return
	}
	for _, s := range snap.Sorters {
		fmt.Printf("%-16s comparisons=%-8d moves=%-8d complete=%v\n",
			s.Name, s.Telemetry.TotalComparisons, s.Telemetry.TotalMoves, s.IsComplete)
	}
}
