package core

// Metrics records ledger activity for monitoring
type Metrics interface {
	// ObserveTransition records one ledger transition with its outcome label
	ObserveTransition(operation string, outcome string, duration Duration)
	// IncConflictRetry counts a unit of work retried after a conflict
	IncConflictRetry(operation string)
	// ObserveBatch records a bulk action and how many records it transitioned
	ObserveBatch(action string, requested int, transitioned int)
}
