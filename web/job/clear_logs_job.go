package job

import (
	"os"
	"path/filepath"

	"github.com/Jivang0/mlproject/config"
	"github.com/Jivang0/mlproject/logger"
)

// ClearLogsJob truncates the application log file so it cannot grow without
// bound between restarts.
type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run implements cron.Job.
func (j *ClearLogsJob) Run() {
	logPath := filepath.Join(config.GetLogFolder(), config.GetName()+".log")
	if err := os.Truncate(logPath, 0); err != nil && !os.IsNotExist(err) {
		logger.Warning("clear logs job err:", err)
	}
}
