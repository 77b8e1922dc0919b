package reminder

import "context"

// UseCase runs the scheduled digest jobs. The scheduler itself is external
// and triggers them over HTTP.
type UseCase interface {
	// Run dispatches to the job named by job.
	Run(ctx context.Context, job Job) (Report, error)
	// MorningDigest tells each active user what is due today or undated.
	MorningDigest(ctx context.Context) (Report, error)
	// EveningSummary tells each active user their done and open counts.
	EveningSummary(ctx context.Context) (Report, error)
	// SupervisorSummary sends managers the per-user counts for today.
	SupervisorSummary(ctx context.Context) (Report, error)
}
