package jobs

import (
	"log"

	"github.com/hibiken/asynq"

	"feedback-backend/src/database"
	"feedback-backend/src/services/feedback"
)

// StartWorker runs the asynq worker processing background tasks. Call in
// a goroutine after Redis is initialized; returns immediately when Redis
// is not configured.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	feedback.RegisterFeedbackHandlers(mux)

	log.Println("✅ Background worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Background worker stopped:", err)
	}
}
