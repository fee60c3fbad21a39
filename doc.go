// Package sortrace implements the core of a sorting-race visualization
// engine: a set of incremental, budget-driven sorting algorithm state
// machines coordinated by a fairness scheduler, driven tick by tick from a
// race controller that maintains a bounded history of observable snapshots.
//
// # Architecture
//
// Seven resumable sorters ([sorters.Sorter] implementations) share a common
// step contract: each [sorters.Sorter.Step] call consumes at most a given
// comparison budget and returns a [sorters.StepResult] describing the work
// actually performed. A [fairness.Model] decides, once per tick, how many
// comparisons each sorter receives. The [RaceController] drives the loop,
// invoking each sorter in order and recording a [RaceSnapshot] into a
// bounded [SnapshotRing] after every tick.
//
// # Determinism
//
// For a fixed configuration (size, distribution, seed, fairness mode,
// sorter order, and per-tick budget invocation sequence) two independently
// constructed controllers produce byte-identical snapshot sequences,
// excluding wall-clock timestamp fields. [ArrayGenerator] uses a seeded
// linear congruential generator so this holds across platforms.
//
// # Usage
//
//	cfg := sortrace.RunConfiguration{
//		ArraySize:  50,
//		Distribution: sortrace.DistributionShuffled,
//		Seed:       12345,
//		Fairness:   sortrace.ComparisonBudgetMode(16),
//		TargetFPS:  30,
//	}
//
//	ctrl, err := sortrace.NewRaceController(sorters.Registry.BuildAll())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data := sortrace.NewArrayGenerator(cfg.Seed).Generate(cfg.ArraySize, cfg.Distribution)
//	if err := ctrl.StartRace(cfg, data); err != nil {
//		log.Fatal(err)
//	}
//	ctrl.RunToCompletion(0)
//
// # Concurrency
//
// The controller, its sorters, its fairness model, and its snapshot ring
// all execute on the same logical goroutine; there is no shared mutable
// state across goroutines and no locking within the core. The only
// observable suspension point is between [RaceController.Step] calls.
package sortrace
