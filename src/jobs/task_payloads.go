package jobs

import (
	"encoding/json"
	"log"

	"Backend-FitForm/src/database"

	"github.com/hibiken/asynq"
)

const TypeCleanupImage = "image:cleanup"

type ImagePayload struct {
	Name string `json:"name"`
}

func NewCleanupImageTask(name string) (*asynq.Task, error) {
	payload, err := json.Marshal(ImagePayload{Name: name})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCleanupImage, payload), nil
}

// EnqueueCleanupImage schedules deletion of an uploaded image that no draft
// or record references anymore. Without Redis the task is skipped; the file
// just stays on disk.
func EnqueueCleanupImage(name string) {
	if name == "" {
		return
	}
	if database.AsynqClient == nil {
		log.Println("⚠️ Asynq not available, skipping image cleanup for", name)
		return
	}

	task, err := NewCleanupImageTask(name)
	if err != nil {
		log.Println("❌ Failed to build cleanup task:", err)
		return
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("❌ Failed to enqueue cleanup task:", err)
	}
}
