// Package cli wires the taskboard commands.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/app"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the root flags
type options struct {
	configDir string
	logLevel  string
	logFile   string
	noMouse   bool
	focus     string
}

// NewRootCmd builds the command tree. Running the root command opens the
// board.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "taskboard",
		Short: "Track projects as active or finished",
		Long: `taskboard is a terminal board with two lists, Active and Finished.

Add projects with the form at the top and drag them between the lists
with the mouse or the keyboard (m to pick up, h/l to aim, enter to drop).`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configDir, "config", ".", "directory holding .taskboard.json and .env")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", `log file path, "-" to discard`)
	rootCmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse drag and drop")
	rootCmd.Flags().StringVar(&opts.focus, "focus", "", "list the cursor starts in (active, finished)")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig loads the config directory and applies flag overrides
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("focus") {
		cfg.Board.Focus = opts.focus
	}
	if flags.Changed("no-mouse") {
		mouse := !opts.noMouse
		cfg.Board.Mouse = &mouse
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runBoard(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger.Info("starting", zap.String("version", cmd.Root().Version), zap.Bool("mouse", cfg.Board.MouseEnabled()))

	programOpts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	}
	if cfg.Board.MouseEnabled() {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(app.New(cfg, logger), programOpts...).Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
