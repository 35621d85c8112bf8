// Package job contains the scheduled maintenance jobs of the panel. Jobs
// never participate in request handling.
package job

import (
	"github.com/Jivang0/mlproject/database"
	"github.com/Jivang0/mlproject/logger"
)

// CheckpointJob folds the SQLite WAL back into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
