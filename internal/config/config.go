// Package config provides the configuration management for the mpcalc
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments and environment overrides, and
// performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/mpkernel/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by mpcalc.
	EnvPrefix = "MPCALC_"
)

// Supported operations.
const (
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpSqr = "sqr"
	OpDiv = "div"
	OpMod = "mod"
	OpGCD = "gcd"
	OpShl = "shl"
	OpShr = "shr"
)

// Operations lists every operation accepted by -op, in display order.
var Operations = []string{OpAdd, OpSub, OpMul, OpSqr, OpDiv, OpMod, OpGCD, OpShl, OpShr}

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultOp is the default operation.
	DefaultOp = OpMul
	// DefaultBase is the default radix for operands and results.
	DefaultBase = 10
	// DefaultRounds is the default number of random cases per verification check.
	DefaultRounds = 200
	// DefaultSeed is the default verification seed.
	DefaultSeed uint64 = 1
	// DefaultTimeout is the default time limit for a run.
	DefaultTimeout = 5 * time.Minute
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Op is the operation to evaluate in compute mode.
	Op string
	// A is the first operand, in Base.
	A string
	// B is the second operand, in Base. For shl and shr it is the shift
	// distance in decimal.
	B string
	// Base is the radix used to parse operands and print results (10 or 16).
	Base int
	// Verify runs the self-verification checks instead of computing.
	Verify bool
	// Rounds is the number of random cases per verification check.
	Rounds int
	// Seed makes verification runs reproducible.
	Seed uint64
	// Calibrate runs the multiplication cutover benchmark and saves a profile.
	Calibrate bool
	// CalibrateQuick calibrates over a reduced set of sizes. It implies
	// Calibrate.
	CalibrateQuick bool
	// CalibrationProfile is the path of the calibration profile. Empty means
	// the default path in the user's home directory.
	CalibrationProfile string
	// KaratsubaThreshold overrides the multiplication cutover in words.
	// Zero means use the calibration profile or the built-in default.
	KaratsubaThreshold int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet prints only the result.
	Quiet bool
	// Verbose prints operand sizes and timings alongside the result.
	Verbose bool
	// Debug enables debug-level logging.
	Debug bool
	// NoColor disables colored output. NO_COLOR is honoured too.
	NoColor bool
	// Metrics prints the Prometheus metrics of the run to stdout at exit.
	Metrics bool
}

// Mode returns the run mode selected by the configuration.
func (c AppConfig) Mode() string {
	switch {
	case c.Calibrate || c.CalibrateQuick:
		return "calibrate"
	case c.Verify:
		return "verify"
	default:
		return "compute"
	}
}

// NeedsSecondOperand reports whether Op consumes B.
func (c AppConfig) NeedsSecondOperand() bool {
	return c.Op != OpSqr
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Returns:
//   - error: A ConfigError or ValidationError if the configuration is
//     invalid, nil otherwise.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.KaratsubaThreshold < 0 {
		return apperrors.NewConfigError("karatsuba threshold cannot be negative: %d", c.KaratsubaThreshold)
	}
	if c.Rounds <= 0 {
		return apperrors.NewConfigError("rounds must be strictly positive: %d", c.Rounds)
	}
	if c.Base != 10 && c.Base != 16 {
		return apperrors.ValidationError{Field: "base", Message: fmt.Sprintf("must be 10 or 16, got %d", c.Base)}
	}
	if c.Verify && (c.Calibrate || c.CalibrateQuick) {
		return apperrors.NewConfigError("-verify and -calibrate are mutually exclusive")
	}
	if c.Mode() != "compute" {
		return nil
	}
	if !slices.Contains(Operations, c.Op) {
		return apperrors.NewConfigError("unrecognized operation: '%s'. Valid operations are: [%s]", c.Op, strings.Join(Operations, ", "))
	}
	if c.A == "" {
		return apperrors.ValidationError{Field: "a", Message: "operand is required"}
	}
	if c.NeedsSecondOperand() && c.B == "" {
		return apperrors.ValidationError{Field: "b", Message: fmt.Sprintf("operand is required for %s", c.Op)}
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Operands may be given with -a/-b or as the first two positional arguments.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", DefaultOp, fmt.Sprintf("Operation to evaluate: one of [%s].", strings.Join(Operations, ", ")))
	fs.StringVar(&config.A, "a", "", "First operand.")
	fs.StringVar(&config.B, "b", "", "Second operand (shift distance for shl/shr).")
	fs.IntVar(&config.Base, "base", DefaultBase, "Radix of operands and results: 10 or 16.")
	fs.BoolVar(&config.Verify, "verify", false, "Run the arithmetic self-verification checks.")
	fs.IntVar(&config.Rounds, "rounds", DefaultRounds, "Random cases per verification check.")
	fs.Uint64Var(&config.Seed, "seed", DefaultSeed, "Seed for the verification case generator.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Benchmark the Karatsuba cutover and save a calibration profile.")
	fs.BoolVar(&config.CalibrateQuick, "calibrate-quick", false, "Like -calibrate, over fewer operand sizes.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path to calibration profile file (default: ~/.mpcalc_calibration.json).")
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba-threshold", 0, "Operand size in words at which Karatsuba replaces schoolbook multiplication.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Show operand sizes and timings.")
	fs.BoolVar(&config.Debug, "debug", false, "Enable debug logging.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics at exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	if config.A == "" && fs.NArg() > 0 {
		config.A = fs.Arg(0)
	}
	if config.B == "" && fs.NArg() > 1 {
		config.B = fs.Arg(1)
	}

	config.Op = strings.ToLower(config.Op)
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(apperrors.NewConfigError("invalid configuration"), err)
	}
	return config, nil
}
