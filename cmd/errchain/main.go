package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xgx-io/errchain/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	debug   = false

	// logLevel is shared by the logger and the --debug flag, which is only
	// known once cobra has parsed the arguments.
	logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
)

func main() {
	logger, err := newConsoleLogger(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "errchain",
	Short: "Build and render chained errors",
	Long: `errchain builds chained error values and renders them, mainly to
inspect rendering and allocation behaviour from the command line.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setDebug(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewRenderCmd(logger))
	rootCmd.AddCommand(cli.NewDemoCmd(logger))
}

// setDebug switches the shared log level between debug and warn.
func setDebug(on bool) {
	if on {
		logLevel.SetLevel(zap.DebugLevel)
		return
	}
	logLevel.SetLevel(zap.WarnLevel)
}

// newConsoleLogger returns a console logger on stderr at the given level.
// Without --debug only warnings and errors are shown, so stdout stays
// reserved for rendered chains.
func newConsoleLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = level
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
