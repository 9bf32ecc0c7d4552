package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-ClassPulse/src/database"
	"Backend-ClassPulse/src/services/users/email"

	"github.com/hibiken/asynq"
)

func HandleResetPasswordEmailTask(ctx context.Context, t *asynq.Task) error {
	var payload ResetPasswordEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if err := email.SendResetPassword(payload.To, payload.Name, payload.Token); err != nil {
		log.Println("❌ Failed to send reset email to", payload.To, ":", err)
		return err
	}

	log.Println("✅ Reset email sent to", payload.To)
	return nil
}

// StartWorker runs the Asynq server that delivers queued emails. Call it in
// a goroutine from main; it is a no-op without Redis.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Asynq worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeResetPasswordEmail, HandleResetPasswordEmailTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
