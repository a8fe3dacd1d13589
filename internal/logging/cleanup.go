package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup deletes system_logs rows older than the retention window
// once a day. Returns a stop function for shutdown.
func StartCleanup(db *gorm.DB, retentionDays int) func() {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	done := make(chan struct{})
	ticker := time.NewTicker(24 * time.Hour)

	go func() {
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -retentionDays)
				ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
				res := db.WithContext(ctx).
					Where("created_at < ?", cutoff).
					Delete(&models.SystemLog{})
				cancel()
				if res.Error != nil {
					slog.Error("log cleanup failed", "error", res.Error)
				} else if res.RowsAffected > 0 {
					slog.Info("log cleanup", "deleted", res.RowsAffected)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
