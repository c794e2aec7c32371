// Package config provides CLI configuration and application logic for kozue.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mazrean/kozue/internal/kozue"
	"github.com/mazrean/kozue/internal/report"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI is the root command configuration with subcommands.
type CLI struct {
	LogLevel string           `kong:"short='l',help='Log level',enum='debug,info,warn,error',default='info'"`
	Generate GenerateCmd      `kong:"cmd,default='withargs',help='Generate binding code (default)'"`
	Check    CheckCmd         `kong:"cmd,help='Report marker diagnostics without writing files'"`
	Version  kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
}

// GenerateCmd is the default command for generating binding code.
type GenerateCmd struct {
	Files []string `kong:"arg,help='Go files to process'"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(cli *CLI) error {
	setupLogger(cli.LogLevel)

	if len(c.Files) == 0 {
		return fmt.Errorf("no files specified")
	}

	slog.Info("Generating injection bindings", "files", c.Files)

	processor := kozue.NewProcessor()
	return runProcessor(processor, c.Files)
}

// CheckCmd reports diagnostics for the given files without generating.
type CheckCmd struct {
	Files []string `kong:"arg,help='Go files to check'"`
}

// Run executes the check command.
func (c *CheckCmd) Run(cli *CLI) error {
	setupLogger(cli.LogLevel)

	if len(c.Files) == 0 {
		return fmt.Errorf("no files specified")
	}

	processor := kozue.NewCheckProcessor()
	return runProcessor(processor, c.Files)
}

// runProcessor runs the processor and surfaces diagnostics. Rejected
// markers are fatal to the affected member or type only, so generation
// for the valid remainder has already happened when this reports a
// non-nil error.
func runProcessor(processor *kozue.Processor, files []string) error {
	diags, err := processor.ProcessFiles(files)
	if err != nil {
		return err
	}

	if n := report.NewReporter(os.Stderr).Report(diags); n > 0 {
		return fmt.Errorf("%d marker diagnostic(s)", n)
	}

	return nil
}

func Run() error {
	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("kozue"),
		kong.Description("A code generator for kozue tree-scoped value injection"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s) released on %s", version, commit, date),
		},
	)

	return kongCtx.Run(&cli)
}

func setupLogger(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
