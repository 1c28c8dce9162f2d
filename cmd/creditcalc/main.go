package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/creditcalc/internal/config"
	"github.com/iwvelando/creditcalc/internal/request"
	"github.com/iwvelando/creditcalc/internal/solver"
	"github.com/iwvelando/creditcalc/pkg/constants"
	"github.com/iwvelando/creditcalc/pkg/loans"
	"github.com/iwvelando/creditcalc/pkg/mathutil"
	"github.com/iwvelando/creditcalc/pkg/output"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevels maps configured level names onto zap levels.
var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// initializeLogger builds the stderr (or file) logger from configuration; a
// non-empty logLevelOverride from the CLI replaces the configured level.
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = constants.DefaultLogLevel
	}
	zapLevel, ok := logLevels[level]
	if !ok {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var zapConfig zap.Config
	switch loggingConfig.Format {
	case constants.LogFormatConsole, "":
		zapConfig = zap.NewDevelopmentConfig()
		// Console logs carry no stack traces.
		zapConfig.DisableStacktrace = true
	case constants.LogFormatJSON:
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", loggingConfig.Format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if path := loggingConfig.OutputFile; path != "" {
		if err := ensureLogFile(path); err != nil {
			return nil, err
		}
		zapConfig.OutputPaths = []string{path}
		zapConfig.ErrorOutputPaths = []string{path}
	}

	return zapConfig.Build(zap.Fields(zap.String("app", "creditcalc")))
}

// ensureLogFile creates the log file and its directory so a bad path fails
// before any calculation runs.
func ensureLogFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %v", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %v", path, err)
	}
	return file.Close()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one calculation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := request.NewFlags("creditcalc")
	fs := flags.FlagSet()
	configLocation := fs.String("config", "", "path to configuration file (default "+constants.DefaultConfigFile+" if present)")
	logLevel := fs.String("log-level", "", "log level override (debug, info, warn, error)")
	outputFormat := fs.String("output-format", "", "output format override: plain, grouped")

	parseErr := flags.Parse(args)
	if errors.Is(parseErr, pflag.ErrHelp) {
		fmt.Fprintf(stdout, "Usage of creditcalc:\n")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}

	configPath, required := *configLocation, true
	if configPath == "" {
		configPath, required = constants.DefaultConfigFile, false
	}
	conf, err := config.LoadConfiguration(configPath, required)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", configPath, err)
		return 1
	}

	// CLI overrides take precedence over config
	if *outputFormat != "" {
		conf.Output.Format = *outputFormat
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid configuration\", \"error\": \"%v\"}\n", err)
		return 1
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	var req request.LoanRequest
	err = parseErr
	if err == nil {
		req, err = flags.Request()
	}
	if err != nil {
		logger.Debug("rejected parameters",
			zap.String("op", "main"),
			zap.Error(err),
		)
		fmt.Fprintln(stdout, constants.IncorrectParametersMessage)
		return 0
	}

	result, err := solver.Solve(logger, req)
	if err != nil {
		logger.Debug("failed to solve loan",
			zap.String("op", "main"),
			zap.Error(err),
		)
		fmt.Fprintln(stdout, solveFailureMessage(err))
		return 1
	}

	opts := output.Options{Format: conf.Output.Format, MonthLabelBase: conf.Output.MonthLabelBase}
	if err := output.Render(stdout, result, opts); err != nil {
		logger.Error("failed to write report",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return 1
	}
	return 0
}

// solveFailureMessage picks the user-facing line for a failed calculation.
func solveFailureMessage(err error) string {
	switch {
	case errors.Is(err, loans.ErrNeverRepaid):
		return constants.NeverRepaidMessage
	case errors.Is(err, mathutil.ErrOutOfRange):
		return constants.OutOfRangeMessage
	default:
		return constants.CalculationFailedMessage
	}
}
