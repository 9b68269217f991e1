package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/promptlab/internal/config"
	"github.com/abhisek/promptlab/internal/logging"
)

// deps holds what PersistentPreRunE loads for every command.
type deps struct {
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() (*cobra.Command, *deps) {
	rt := &deps{
		cfg:    config.Default(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "promptlab",
		Short: "Practice writing AI prompts",
		Long: "Promptlab — terminal practice lab for AI prompting. Write a prompt for an exercise\n" +
			"and get instant heuristic feedback with a score from 1 to 5.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = rt.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, rt)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides PROMPTLAB_CONFIG env var)")
	rootCmd.Flags().StringP("exercise", "e", "", "Open the TUI directly on this exercise")

	rootCmd.AddCommand(newEvaluateCmd(rt))
	rootCmd.AddCommand(newExerciseCmd(rt))
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newPracticeCmd(rt))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd, rt
}

// Execute runs the root command.
func Execute() error {
	rootCmd, rt := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		rt.logger.Error("command failed", zap.Error(err))
		_ = rt.logger.Sync()
	}
	return err
}

// load reads the config file and builds the logger.
func (rt *deps) load(cmd *cobra.Command) error {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	rt.cfg = cfg
	rt.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

// resolveConfigPath returns the config path using --config flag (highest
// priority), then PROMPTLAB_CONFIG env var, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// exerciseFlag returns the --exercise value, falling back to the
// configured default.
func (rt *deps) exerciseFlag(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("exercise"); id != "" {
		return id
	}
	return rt.cfg.DefaultExercise
}
