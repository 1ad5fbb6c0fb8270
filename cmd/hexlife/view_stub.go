//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer (requires the ebiten build tag)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("the viewer requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/hexlife`")
	},
}
