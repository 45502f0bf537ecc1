package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-FitForm/src/database"
	"Backend-FitForm/src/services/uploads"

	"github.com/hibiken/asynq"
)

// HandleCleanupImageTask deletes an orphaned upload. A file that is already
// gone is not an error, the task just completes.
func HandleCleanupImageTask(ctx context.Context, t *asynq.Task) error {
	var payload ImagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if err := uploads.RemoveImage(payload.Name); err != nil {
		log.Println("❌ Failed to remove orphaned image:", err)
		return err
	}

	log.Println("✅ Orphaned image removed:", payload.Name)
	return nil
}

// StartWorker runs the background task server next to the API. It is a
// no-op without Redis.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCleanupImage, HandleCleanupImageTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Background worker stopped:", err)
	}
}
