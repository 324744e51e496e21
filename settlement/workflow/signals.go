package workflow

const (
	// Signal names
	TriggerSweepSignalName = "trigger-sweep"
)

// TriggerSweepSignal asks a running order-settlement workflow to sweep now
// instead of waiting for its next poll, e.g. right after a new approval.
type TriggerSweepSignal struct {
	Reason string `json:"reason"`
}
