package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplanner/internal/app"
)

// runApp wires the tutor and launches the form UI. The terminal belongs to
// the UI, so logs are dropped unless --log-file is set.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(cmd.Context(), app.Options{
		Tutor:       d.tutor,
		Model:       d.provider.ModelID(),
		Unavailable: d.unavailable,
	})
}
