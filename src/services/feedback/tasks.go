package feedback

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"

	DB "feedback-backend/src/database"
)

const TypeRefreshStats = "stats:refresh"

type RefreshStatsPayload struct {
	FormID string `json:"form_id"`
}

func NewRefreshStatsTask(formID string) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshStatsPayload{FormID: formID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshStats, payload), nil
}

// enqueueStatsRefresh queues a snapshot rebuild for the form. Skipped
// silently when the worker infrastructure is not running; the stats
// endpoint then computes live.
func enqueueStatsRefresh(formID string) {
	if DB.AsynqClient == nil {
		return
	}

	task, err := NewRefreshStatsTask(formID)
	if err != nil {
		log.Println("[stats] failed to build refresh task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		log.Println("[stats] failed to enqueue refresh task:", err)
	}
}

// HandleRefreshStatsTask recomputes the form's statistics and stores the
// snapshot in Redis.
func HandleRefreshStatsTask(ctx context.Context, t *asynq.Task) error {
	var payload RefreshStatsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("[stats] payload decode error:", err)
		return err
	}

	stats, err := computeLiveStats(ctx, payload.FormID)
	if err != nil {
		log.Printf("[stats] failed to compute snapshot form=%s: %v", payload.FormID, err)
		return err
	}

	storeStatsSnapshot(payload.FormID, stats)
	log.Printf("[stats] snapshot refreshed form=%s submissions=%d", payload.FormID, stats.TotalSubmissions)
	return nil
}

// RegisterFeedbackHandlers binds this package's task handlers onto the
// worker mux.
func RegisterFeedbackHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeRefreshStats, HandleRefreshStatsTask)
}
