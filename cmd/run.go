package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/promptlab/internal/app"
	"github.com/abhisek/promptlab/internal/exercise"
	"github.com/abhisek/promptlab/internal/session"
)

// runApp builds the session and launches the TUI.
func runApp(cmd *cobra.Command, rt *deps) error {
	start, _ := cmd.Flags().GetString("exercise")
	if start != "" {
		if _, err := exercise.Get(start); err != nil {
			return err
		}
	}

	sess := session.New()
	logger := rt.logger.With(zap.String("session", sess.ID))
	logger.Info("session started", zap.String("mode", "tui"))

	err := app.Run(app.Options{
		Config:        rt.cfg,
		Logger:        logger,
		Session:       sess,
		StartExercise: start,
	})

	logger.Info("session ended",
		zap.Int("attempts", sess.Count()),
		zap.Int("best", sess.Best()),
		zap.Duration("elapsed", sess.Elapsed()),
	)
	return err
}
