//go:build ebiten

package main

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"hexlife/internal/app"
	"hexlife/pkg/hexgrid"
)

var (
	viewConfig = app.NewConfig()

	viewCmd = &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer",
		RunE:  runViewer,
	}
)

func init() {
	viewConfig.Bind(viewCmd.Flags())
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := app.NewSession(hexgrid.NewH3(), cfg, viewConfig.TPS, slog.Default())
	if err != nil {
		return err
	}
	game := app.New(s, viewConfig)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("hexlife")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
