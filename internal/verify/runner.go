package verify

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/mpkernel/internal/errors"
	"github.com/agbru/mpkernel/internal/logging"
)

// Check is a named property of the arithmetic kernel.
type Check struct {
	// Name identifies the check in reports, metrics and mismatch errors.
	Name string
	// Run evaluates the property. It returns a MismatchError built with
	// Case.Mismatch on the first disagreeing case.
	Run func(c *Case) error
}

// Result is the outcome of one check.
type Result struct {
	// Name is the check name.
	Name string
	// Cases is the number of cases the check evaluated.
	Cases int
	// Duration is the wall time the check took.
	Duration time.Duration
	// Err is nil when the property held for every case.
	Err error
}

// Options controls a verification run.
type Options struct {
	// Rounds is the number of random cases per check. Exhaustive and
	// scenario checks ignore it.
	Rounds int
	// Seed determines every random case; equal seeds give equal runs.
	Seed uint64
	// Parallelism bounds the number of checks running at once. Zero means
	// GOMAXPROCS.
	Parallelism int
	// Logger receives per-check debug output. Nil discards it.
	Logger logging.Logger
}

// Case is the state handed to a running check: its random source, its
// round budget and the run's context.
type Case struct {
	ctx    context.Context
	name   string
	rounds int
	n      int

	// Rand is the check's deterministic random source.
	Rand *rand.Rand
}

func newCase(ctx context.Context, name string, opts Options) *Case {
	h := fnv.New64a()
	h.Write([]byte(name))
	return &Case{
		ctx:    ctx,
		name:   name,
		rounds: opts.Rounds,
		Rand:   rand.New(rand.NewPCG(opts.Seed, h.Sum64())),
	}
}

// Next advances to the next random case. It returns false once the round
// budget is spent or the context is done.
func (c *Case) Next() bool {
	if c.n >= c.rounds || c.ctx.Err() != nil {
		return false
	}
	c.n++
	return true
}

// Count records n cases evaluated outside of Next, for exhaustive sweeps.
// It returns the context's error so long sweeps can stop early.
func (c *Case) Count(n int) error {
	c.n += n
	return c.ctx.Err()
}

// Err returns the context's error, if any.
func (c *Case) Err() error {
	return c.ctx.Err()
}

// Mismatch builds the error reporting a disagreeing case.
func (c *Case) Mismatch(format string, args ...any) error {
	return apperrors.MismatchError{Check: c.name, Detail: fmt.Sprintf(format, args...)}
}

var (
	registryMu sync.RWMutex
	registry   []Check
)

// RegisterCheck adds a check to the default set. Checks run in registration
// order when Parallelism is 1.
func RegisterCheck(c Check) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, c)
}

// Checks returns the registered checks.
func Checks() []Check {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]Check(nil), registry...)
}

// Execute runs the checks concurrently and returns one Result per check,
// in the order given. A failing check does not stop the others; a done
// context does.
func Execute(ctx context.Context, checks []Check, opts Options, reporter Reporter) []Result {
	if reporter == nil {
		reporter = NullReporter{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	results := make([]Result, len(checks))
	for i, chk := range checks {
		g.Go(func() error {
			reporter.CheckStarted(chk.Name)
			results[i] = runCheck(ctx, chk, opts)
			reporter.CheckFinished(results[i])
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func runCheck(ctx context.Context, chk Check, opts Options) (res Result) {
	tracer := otel.Tracer("verify")
	ctx, span := tracer.Start(ctx, "Check")
	span.SetAttributes(attribute.String("check", chk.Name))
	defer span.End()

	c := newCase(ctx, chk.Name, opts)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Err = apperrors.CalculationError{Op: chk.Name, Cause: fmt.Errorf("panic: %v", r)}
		}
		res.Name = chk.Name
		res.Cases = c.n
		res.Duration = time.Since(start)

		status := "pass"
		switch {
		case res.Err == nil:
		case apperrors.IsContextError(res.Err):
			// Interrupted, not wrong.
			status = "canceled"
		default:
			status = "fail"
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
		}
		span.SetAttributes(attribute.Int("cases", res.Cases))
		checksTotal.WithLabelValues(chk.Name, status).Inc()
		checkCases.WithLabelValues(chk.Name).Add(float64(res.Cases))
		checkDuration.WithLabelValues(chk.Name).Observe(res.Duration.Seconds())

		opts.Logger.Debug("check completed",
			logging.String("check", chk.Name),
			logging.Int("cases", res.Cases),
			logging.Duration("duration", res.Duration),
			logging.String("status", status),
		)
	}()

	res.Err = chk.Run(c)
	return res
}

// Failed joins the errors of every failing result, or returns nil when all
// checks passed.
func Failed(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
