//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

package verify

// Reporter receives check lifecycle events from Execute. Checks run
// concurrently, so implementations must be safe for concurrent use.
type Reporter interface {
	// CheckStarted is called before a check runs.
	CheckStarted(name string)
	// CheckFinished is called once per check with its outcome.
	CheckFinished(result Result)
}

// NullReporter discards every event. Useful for quiet mode or testing.
type NullReporter struct{}

// CheckStarted does nothing.
func (NullReporter) CheckStarted(string) {}

// CheckFinished does nothing.
func (NullReporter) CheckFinished(Result) {}
