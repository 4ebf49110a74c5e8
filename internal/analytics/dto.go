package analytics

type SummaryResponse struct {
	CertificatesCount          int64   `json:"certificates_count"`
	ProjectsCount              int64   `json:"projects_count"`
	GoalsCount                 int64   `json:"goals_count"`
	GoalsCompletedCount        int64   `json:"goals_completed_count"`
	GoalsInProgressCount       int64   `json:"goals_in_progress_count"`
	GoalsCompletionRatePercent float64 `json:"goals_completion_rate_percent"`
}
