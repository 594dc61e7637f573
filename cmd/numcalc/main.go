// Package main provides the CLI entrypoint for numcalc.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/numcalc/internal/calc"
	"github.com/verte-zerg/numcalc/internal/calculator"
	"github.com/verte-zerg/numcalc/internal/config"
	"github.com/verte-zerg/numcalc/internal/generator"
	"github.com/verte-zerg/numcalc/internal/input"
	"github.com/verte-zerg/numcalc/internal/logging"
	"github.com/verte-zerg/numcalc/internal/model"
	"github.com/verte-zerg/numcalc/internal/report"
	"github.com/verte-zerg/numcalc/internal/tui"
)

const (
	defaultLang        = "en"
	defaultAltScreen   = true
	defaultLogLevel    = "info"
	defaultOperation   = "average"
	defaultSampleCount = calc.MinNumbers
)

var (
	formLang      string
	formAltScreen bool
	logLevel      string
	logFile       string

	calcOp   string
	calcFile string

	sampleCount int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "numcalc",
		Short:         "Average and maximum of a list of numbers",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFormCmd,
	}

	rootCmd.PersistentFlags().StringVar(&formLang, "lang", defaultLang, "message language (en, id)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.Flags().BoolVar(&formAltScreen, "alt-screen", defaultAltScreen, "use the terminal alternate screen")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &formLang, fileCfg.UI.Lang)
	applyBoolConfig(cmd, "alt-screen", &formAltScreen, fileCfg.UI.AltScreen)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := model.Config{
		Lang:      formLang,
		AltScreen: formAltScreen,
		LogLevel:  logLevel,
		LogFile:   logFile,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runFormCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Stderr belongs to the terminal UI, so only a log file is honoured here.
	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closeLogger(closer)

	cat, _ := calc.CatalogFor(cfg.Lang)
	form := calculator.New(cat)
	m := newFormModel(form, logger)

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	logger.Info().Str("lang", cat.Lang).Msg("starting form")
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc [numbers...]",
		Short: "Compute the average or maximum without the form",
		Long: "Compute the average or maximum without the form.\n\n" +
			"Numbers come from the arguments, then --file, then piped stdin.",
		RunE: runCalcCmd,
	}
	cmd.Flags().StringVar(&calcOp, "op", defaultOperation, "operation (average, maximum)")
	cmd.Flags().StringVar(&calcFile, "file", "", "read numbers from a file")
	return cmd
}

func runCalcCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Console: os.Stderr})
	if err != nil {
		return err
	}
	defer closeLogger(closer)

	op, err := model.ParseOperation(calcOp)
	if err != nil {
		return err
	}
	raw, err := readRawInput(args, calcFile, os.Stdin)
	if err != nil {
		return err
	}

	cat, _ := calc.CatalogFor(cfg.Lang)
	res, err := cat.Compute(raw, op)
	if err != nil {
		logger.Debug().Err(err).Msg("calculation rejected")
		return errors.New(cat.Message(err))
	}
	logger.Debug().Str("operation", op.String()).Int("count", res.Count()).Msg("calculated")
	out := cmd.OutOrStdout()
	return report.Render(out, res, cat, colorEnabled(out))
}

func readRawInput(args []string, path string, stdin *os.File) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if path != "" {
		raw, err := input.Load(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return raw, nil
	}
	if stdin == nil || isTerminal(stdin) {
		return "", nil
	}
	raw, err := input.FromReader(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return raw, nil
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a random list of numbers",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	cmd.Flags().IntVar(&sampleCount, "count", defaultSampleCount, "how many numbers to print")
	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	if sampleCount <= 0 {
		return fmt.Errorf("--count must be greater than 0")
	}
	gen := generator.New()
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), gen.Text(sampleCount)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List message languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	for _, lang := range calc.Languages() {
		cat, _ := calc.CatalogFor(lang)
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", lang, cat.Name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# numcalc configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# lang = %q           # Message language: %s
# alt-screen = %t      # Use the terminal alternate screen

[log]
# level = %q        # debug, info, warn, error
# file = %q
`,
		defaultLang,
		strings.Join(calc.Languages(), ", "),
		defaultAltScreen,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if _, ok := calc.CatalogFor(cfg.Lang); !ok {
		return fmt.Errorf("--lang must be one of: %s", strings.Join(calc.Languages(), ", "))
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func newFormModel(form *calculator.Form, logger zerolog.Logger) tea.Model {
	return tui.NewModel(form, generator.New(), logger)
}

func closeLogger(closer io.Closer) {
	if cerr := closer.Close(); cerr != nil {
		logErrf("failed to close log file: %v\n", cerr)
	}
}

// colorEnabled reports whether w is a terminal that can show styled output.
func colorEnabled(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isTerminal(file)
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
