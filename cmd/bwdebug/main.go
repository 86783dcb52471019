// FILE: lixenwraith/bwdebug/cmd/bwdebug/main.go
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/bwdebug"
)

var (
	configPath string
	overrides  []string
	stream     int
	label      string
	asHeader   bool
	withTrace  bool
	testColors bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bwdebug [value...]",
	Short: "Append debug dumps to a tail-able log file",
	Long: "bwdebug appends each argument (or each stdin line when no argument is given) to the debug log,\n" +
		"grouping bursts of output into runs separated by blank lines and a run header.",
	SilenceUsage: true,
	RunE:         runDump,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "bwdebug.toml", "TOML config file, [bwdebug] table")
	rootCmd.PersistentFlags().StringArrayVar(&overrides, "set", nil, "config override key=value, repeatable")

	rootCmd.Flags().IntVarP(&stream, "stream", "s", 0, "output stream, 1 primary or 2 secondary (default from config)")
	rootCmd.Flags().StringVarP(&label, "label", "l", "", "label printed above each value")
	rootCmd.Flags().BoolVar(&asHeader, "header", false, "log the arguments as one section header")
	rootCmd.Flags().BoolVar(&withTrace, "trace", false, "append a stack trace")
	rootCmd.Flags().BoolVar(&testColors, "test-colors", false, "print a swatch of the configured category colors")

	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
	rootCmd.AddCommand(stateCmd)
}

// loadLogger builds a logger from the config file and --set overrides
func loadLogger() (*bwdebug.Logger, error) {
	logger := bwdebug.NewLogger()
	if err := logger.LoadConfig(configPath, overrides); err != nil {
		return nil, err
	}
	return logger, nil
}

// --- Root: dump ---

func runDump(cmd *cobra.Command, args []string) error {
	logger, err := loadLogger()
	if err != nil {
		return err
	}

	if testColors {
		printSwatch(cmd.OutOrStdout(), logger.GetConfig())
		return nil
	}

	var opts []bwdebug.Option
	if stream != 0 {
		opts = append(opts, bwdebug.ToStream(bwdebug.Stream(stream)))
	}
	if label != "" {
		opts = append(opts, bwdebug.WithLabel(label))
	}
	if withTrace {
		opts = append(opts, bwdebug.WithTrace())
	}

	if asHeader {
		logger.Section(strings.Join(args, " "), opts...)
		return nil
	}

	if len(args) > 0 {
		for _, arg := range args {
			logger.Dump(arg, opts...)
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		logger.Dump(scanner.Text(), opts...)
	}
	return scanner.Err()
}

// --- Swatch ---

var (
	swatchNameStyle = lipgloss.NewStyle().Bold(true).Width(12)
	swatchOffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// printSwatch renders each category's configured escape code next to its name
func printSwatch(w io.Writer, cfg *bwdebug.Config) {
	if !cfg.Color {
		fmt.Fprintln(w, swatchOffStyle.Render("colors are disabled (color = false)"))
	}
	for _, category := range bwdebug.Categories {
		sample := cfg.ColorCode(category) + "The quick brown fox" + "\033[0m"
		if !cfg.ColorEnabled(category) {
			sample += " " + swatchOffStyle.Render("(off)")
		}
		fmt.Fprintf(w, "%s %s\n", swatchNameStyle.Render(category), sample)
	}
}

// --- State ---

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the run state file",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the run state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := loadLogger()
		if err != nil {
			return err
		}
		cfg := logger.GetConfig()

		state, err := bwdebug.LoadState(cfg.StateFile)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		if !state.LastEvent().IsZero() {
			fmt.Fprintf(cmd.OutOrStdout(), "last event: %s\n", state.LastEvent().Format("2006-01-02 15:04:05.000"))
		}
		return nil
	},
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the run state so the next dump starts a new run",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := loadLogger()
		if err != nil {
			return err
		}
		cfg := logger.GetConfig()
		if err := bwdebug.SaveState(cfg.StateFile, &bwdebug.RunState{}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "state reset: %s\n", cfg.StateFile)
		return nil
	},
}
