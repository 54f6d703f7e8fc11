package duplicate

// batchSize returns how many successful checksum-store insertions the
// orchestrator should accept before flushing to disk during Phase B.
// Bounds write amplification on small runs while still checkpointing after
// a bounded wall-clock interval on large ones.
func batchSize(numCandidates int) int {
	b := numCandidates / 500
	if b < 100 {
		return 100
	}
	return b
}
