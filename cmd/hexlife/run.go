package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hexlife/internal/app"
	"hexlife/internal/metrics"
	"hexlife/pkg/hexgrid"
)

var (
	runTicks       int
	runTPS         int
	runReportEvery int
	runMetricsAddr string
	runPattern     string
	runAt          []float64

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless",
		RunE:  runHeadless,
	}
)

func init() {
	f := runCmd.Flags()
	f.IntVarP(&runTicks, "ticks", "n", 100, "generations to compute, 0 runs until interrupted")
	f.IntVar(&runTPS, "tps", 0, "generations per second, 0 for unpaced")
	f.IntVar(&runReportEvery, "report-every", 10, "log population every N generations")
	f.StringVar(&runMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	f.StringVar(&runPattern, "pattern", "", "start from an empty map with this pattern stamped at --at")
	f.Float64SliceVar(&runAt, "at", []float64{0, 0}, "lat,lng in degrees for --pattern")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := slog.Default()
	s, err := app.NewSession(hexgrid.NewH3(), cfg, runTPS, log)
	if err != nil {
		return err
	}
	if runPattern != "" {
		if err := s.SelectPattern(runPattern); err != nil {
			return err
		}
		if len(runAt) != 2 {
			return fmt.Errorf("--at wants lat,lng, got %v", runAt)
		}
		s.Clear()
		s.Click(hexgrid.LatLng{Lat: runAt[0], Lng: runAt[1]}, app.Primary)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if runMetricsAddr != "" {
		srv := &http.Server{Addr: runMetricsAddr, Handler: metrics.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", "error", err)
			}
		}()
		defer func() {
			shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdown)
		}()
		log.Info("serving metrics", "addr", runMetricsAddr)
	}

	return loop(ctx, s, log)
}

func loop(ctx context.Context, s *app.Session, log *slog.Logger) error {
	g := s.Game()
	start := time.Now()
	for runTicks <= 0 || g.Generation() < uint64(runTicks) {
		select {
		case <-ctx.Done():
			log.Info("interrupted", "generation", g.Generation())
			return nil
		default:
		}
		if !s.Update() {
			time.Sleep(time.Millisecond)
			continue
		}
		if runReportEvery > 0 && g.Generation()%uint64(runReportEvery) == 0 {
			log.Info("generation",
				"generation", g.Generation(),
				"population", g.Population(),
				"rule", s.Rules().String(),
			)
		}
	}
	log.Info("run finished",
		"generations", g.Generation(),
		"population", g.Population(),
		"elapsed", time.Since(start),
	)
	return nil
}
