package bank

import "log"

// Outcome represents the observable outcome of a single transaction
type Outcome struct {
	Account string
	Op      Op
	Amount  int64
	Balance int64
	Err     error
}

// Reporter is a reporting collaborator which receives transaction
// outcomes from the client
type Reporter interface {
	Report(o Outcome)
}

// NewLogReporter constructs a reporter which writes outcomes to the
// provided logger (log.Default() if nil)
func NewLogReporter(l *log.Logger) *LogReporter {
	if l == nil {
		l = log.Default()
	}

	return &LogReporter{
		logger: l,
	}
}

// LogReporter is a log backed Reporter implementation
type LogReporter struct {
	logger *log.Logger
}

// Report logs the transaction outcome
func (r *LogReporter) Report(o Outcome) {
	if o.Err != nil {
		r.logger.Printf(
			"%s failed | account: #%s | amount: %d | reason: %v",
			o.Op, o.Account, o.Amount, o.Err,
		)

		return
	}

	r.logger.Printf(
		"%s ok | account: #%s | amount: %d | balance: %d",
		o.Op, o.Account, o.Amount, o.Balance,
	)
}
