package reminder

// Job names a digest job as used in the cron route.
type Job string

const (
	JobMorning    Job = "morning"
	JobEvening    Job = "evening"
	JobSupervisor Job = "supervisor"
)

// Report counts what a job sent.
type Report struct {
	Job        Job `json:"job"`
	Recipients int `json:"recipients"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
}

// UserStats are one user's counts in the supervisor summary.
type UserStats struct {
	Name      string
	Role      string
	NewToday  int
	DoneToday int
	Overdue   int
}
