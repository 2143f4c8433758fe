package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agbru/mpkernel/internal/calibration"
	"github.com/agbru/mpkernel/internal/cli"
	"github.com/agbru/mpkernel/internal/config"
	apperrors "github.com/agbru/mpkernel/internal/errors"
	"github.com/agbru/mpkernel/internal/kernel"
	"github.com/agbru/mpkernel/internal/logging"
	"github.com/agbru/mpkernel/internal/metrics"
	"github.com/agbru/mpkernel/internal/ui"
	"github.com/agbru/mpkernel/internal/verify"
)

// Application represents the mpcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	// Gatherer is the source of the -metrics dump.
	Gatherer prometheus.Gatherer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger used by verification and calibration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithGatherer sets the registry dumped by -metrics.
func WithGatherer(g prometheus.Gatherer) AppOption {
	return func(a *Application) { a.Gatherer = g }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "mpcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter, Gatherer: prometheus.DefaultGatherer}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "mpcalc")
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	if a.Config.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var err error
	switch a.Config.Mode() {
	case "calibrate":
		err = a.runCalibration(ctx, out)
	case "verify":
		a.applyThreshold()
		err = a.runVerify(ctx, out)
	default:
		a.applyThreshold()
		err = a.runCompute(out)
	}

	if a.Config.Metrics {
		if mErr := metrics.WriteText(out, a.Gatherer); mErr != nil {
			a.Logger.Error("metrics dump failed", mErr)
		}
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: a.Config.Mode(), Limit: a.Config.Timeout}
		}
		cli.DisplayError(a.ErrWriter, err)
	}
	return apperrors.ExitCodeFor(err)
}

// applyThreshold installs the Karatsuba threshold chosen by the flag,
// environment or cached calibration profile.
func (a *Application) applyThreshold() {
	profileThreshold := 0
	if a.Config.KaratsubaThreshold == 0 {
		cached, err := calibration.LoadCachedThreshold(a.Config.CalibrationProfile)
		if err != nil {
			a.Logger.Debug("no calibration profile", logging.Err(err))
		}
		if cached.Stale {
			a.Logger.Info("calibration profile is old, consider running -calibrate again",
				logging.Duration("age", cached.Age.Round(time.Hour)))
		}
		profileThreshold = cached.Threshold
	}
	threshold := config.ResolveKaratsubaThreshold(a.Config, profileThreshold)
	kernel.SetKaratsubaThreshold(threshold)
	a.Logger.Debug("karatsuba threshold", logging.Int("words", kernel.KaratsubaThreshold()))
}

// runCompute evaluates a single operation.
func (a *Application) runCompute(out io.Writer) error {
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	res, err := Evaluate(a.Config)
	if err != nil {
		return err
	}
	if a.Config.Quiet {
		cli.DisplayQuietResult(out, res)
		return nil
	}
	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, kernel.KaratsubaThreshold(), out)
	}
	cli.DisplayComputeResult(out, res, a.Config.Verbose)
	if a.Config.Verbose {
		cli.DisplayMemoryStats(out, collector.Snapshot().Since(before))
	}
	return nil
}

// runVerify runs every registered check.
func (a *Application) runVerify(ctx context.Context, out io.Writer) error {
	checks := verify.Checks()
	opts := verify.Options{Rounds: a.Config.Rounds, Seed: a.Config.Seed, Logger: a.Logger}

	var reporter verify.Reporter = verify.NullReporter{}
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, kernel.KaratsubaThreshold(), out)
		progress := cli.NewVerifyProgress(len(checks), a.ErrWriter)
		progress.Start()
		defer progress.Stop()
		reporter = progress
	}

	results := verify.Execute(ctx, checks, opts, reporter)
	if !a.Config.Quiet {
		cli.DisplayVerifyReport(out, results)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return verify.Failed(results)
}

// runCalibration measures the cutover and saves the profile.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) error {
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, kernel.KaratsubaThreshold(), out)
	}
	calibrator := calibration.NewCalibrator(a.Logger)
	if a.Config.CalibrateQuick {
		calibrator.Sizes = calibration.GenerateQuickCandidateSizes()
	}

	var onStep func(done, total int)
	if !a.Config.Quiet {
		progress := cli.NewStepProgress("Calibrating", a.ErrWriter)
		progress.Start()
		defer progress.Stop()
		onStep = func(done, total int) { progress.Update(done, total, "") }
	}

	profile, err := calibrator.Run(ctx, onStep)
	if err != nil {
		return apperrors.WrapError(err, "calibration failed")
	}
	path := a.Config.CalibrationProfile
	if path == "" {
		path = calibration.GetDefaultProfilePath()
	}
	if err := profile.SaveProfile(path); err != nil {
		return err
	}
	a.Logger.Info("calibration profile saved",
		logging.String("path", path),
		logging.Int("karatsuba_threshold", profile.KaratsubaThreshold),
	)
	if a.Config.Quiet {
		fmt.Fprintln(out, profile.KaratsubaThreshold)
		return nil
	}
	calibration.PrintResults(out, profile, path)
	return nil
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
