package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hexlife/pkg/hexgrid"
	"hexlife/pkg/sims/life"
)

var (
	sweepRules   []string
	sweepProbs   []float64
	sweepSteps   int
	sweepWorkers int
	sweepTop     int

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Compare rule tables and seed densities headless",
		RunE:  runSweep,
	}
)

func init() {
	f := sweepCmd.Flags()
	f.StringSliceVar(&sweepRules, "rules", []string{"B2/S35", "B2/S34", "B24/S35", "B12/S35", "B3/S23"}, "rule tables to compare")
	f.Float64SliceVar(&sweepProbs, "probabilities", []float64{0.2, 0.35, 0.5}, "initial occupancy chances")
	f.IntVar(&sweepSteps, "steps", 120, "generations per scenario")
	f.IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "number of worker goroutines")
	f.IntVar(&sweepTop, "top", 5, "scenarios to list")
}

type scenario struct {
	rule        string
	probability float64
}

func (s scenario) String() string {
	return fmt.Sprintf("rule=%s p=%.2f", s.rule, s.probability)
}

type scenarioResult struct {
	scenario
	initial    int
	final      int
	peak       int
	extinctAt  uint64
	stableFrom uint64
}

func runSweep(cmd *cobra.Command, args []string) error {
	base, err := loadConfig()
	if err != nil {
		return err
	}
	base.Workers = 1
	if base.Seed == 0 {
		base.Seed = 1337
	}

	var sets []scenario
	for _, rule := range sweepRules {
		if _, err := life.ParseRule(rule); err != nil {
			return err
		}
		for _, p := range sweepProbs {
			sets = append(sets, scenario{rule: rule, probability: p})
		}
	}

	slog.Info("sweeping scenarios",
		"scenarios", len(sets),
		"workers", sweepWorkers,
		"steps", sweepSteps,
		"resolution", base.Resolution,
	)
	all, err := sweep(base, sets, sweepSteps, max(sweepWorkers, 1))
	if err != nil {
		return err
	}
	report(cmd.OutOrStdout(), all, sweepTop)
	return nil
}

func sweep(base life.Config, sets []scenario, steps, workers int) ([]scenarioResult, error) {
	grid := hexgrid.NewH3()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	start := time.Now()
	all := make([]scenarioResult, len(sets))
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, sc := range sets {
		eg.Go(func() error {
			res, err := runScenario(grid, base, sc, steps, quiet)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc, err)
			}
			all[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].final != all[j].final {
			return all[i].final > all[j].final
		}
		return all[i].String() < all[j].String()
	})
	slog.Info("sweep finished", "scenarios", len(all), "elapsed", time.Since(start).Round(time.Millisecond))
	return all, nil
}

func runScenario(grid hexgrid.Index, base life.Config, sc scenario, steps int, log *slog.Logger) (scenarioResult, error) {
	cfg := base
	cfg.Rule = sc.rule
	rules, err := cfg.Rules()
	if err != nil {
		return scenarioResult{}, err
	}
	g, err := life.New(grid, cfg, life.WithLogger(log))
	if err != nil {
		return scenarioResult{}, err
	}
	g.SpawnLife(sc.probability)

	res := scenarioResult{scenario: sc, initial: g.Population()}
	res.peak = res.initial
	prev := -1
	for i := 0; i < steps; i++ {
		g.Step(&rules)
		pop := g.Population()
		res.peak = max(res.peak, pop)
		if pop == 0 && res.extinctAt == 0 {
			res.extinctAt = g.Generation()
		}
		if pop != prev {
			res.stableFrom = g.Generation()
		}
		prev = pop
	}
	res.final = prev
	if steps == 0 {
		res.final = res.initial
	}
	return res, nil
}

func report(w io.Writer, all []scenarioResult, top int) {
	fmt.Fprintf(w, "Top %d of %d scenarios:\n", min(top, len(all)), len(all))
	for i := 0; i < len(all) && i < top; i++ {
		r := all[i]
		extinct := "-"
		if r.extinctAt > 0 {
			extinct = fmt.Sprint(r.extinctAt)
		}
		fmt.Fprintf(w, "%2d) final=%d peak=%d initial=%d extinct=%s stable-from=%d %s\n",
			i+1, r.final, r.peak, r.initial, extinct, r.stableFrom, r.scenario)
	}
}
