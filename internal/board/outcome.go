package board

// Status classifies how a board operation ended.
type Status string

const (
	// StatusApplied means the remote write succeeded and local state was
	// reconciled.
	StatusApplied Status = "applied"
	// StatusSkipped means the operation was not attempted (validation or a
	// recognized no-op) and state is unchanged.
	StatusSkipped Status = "skipped"
	// StatusFailed means the remote write failed and local state was left
	// in its prior consistent form.
	StatusFailed Status = "failed"
	// StatusPartial means some of the operation's independent writes
	// succeeded and some failed; the successes are reflected locally.
	StatusPartial Status = "partial"
)

// Outcome is the explicit result of a board operation. Failures are never
// raised across the board boundary as errors; callers inspect the outcome
// and decide whether to retry, surface, or ignore.
type Outcome struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
	err    error
}

// Err returns the underlying cause for skipped, failed, or partial
// outcomes, nil for applied ones.
func (o Outcome) Err() error {
	return o.err
}

// Applied reports whether the operation fully took effect.
func (o Outcome) Applied() bool {
	return o.Status == StatusApplied
}

func applied() Outcome {
	return Outcome{Status: StatusApplied}
}

func skipped(err error) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason(err), err: err}
}

func failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason(err), err: err}
}

func partial(err error) Outcome {
	return Outcome{Status: StatusPartial, Reason: reason(err), err: err}
}

func reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
