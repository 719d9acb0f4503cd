package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	providerRepo "quickfind/database/repository/provider"
	"quickfind/models"
	"quickfind/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
)

// InitSolicitationWorker runs the async dispatch worker in background. It is
// the notification path that fans a quickfind request toward a provider; the
// HTTP caller never blocks on it.
func InitSolicitationWorker(providers providerRepo.ProviderRepository) {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSolicitationSend, handleSolicitationTask(providers))

	go func() {
		log.Println("[DispatchWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DispatchWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DispatchWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSolicitationTask(providers providerRepo.ProviderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SolicitationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DispatchWorker] invalid payload: %v", err)
			return err
		}

		provider, err := providers.GetByID(p.ProviderID)
		if err != nil {
			return fmt.Errorf("solicitation %s: %w", p.RequestID, err)
		}
		if provider.FCMToken == "" {
			// Nothing to deliver to; the request evaporates, as designed.
			log.Printf("[DispatchWorker] provider %s has no device token, dropping request %s", p.ProviderID, p.RequestID)
			return nil
		}

		body := "A client nearby wants to book you. Respond to send your offer."
		if p.ClientName != "" {
			body = p.ClientName + " wants to book you. Respond to send your offer."
		}
		msg := &messaging.Message{
			Token: provider.FCMToken,
			Notification: &messaging.Notification{
				Title: "New QuickFind request",
				Body:  body,
			},
			Data: map[string]string{
				"type":      "quickfind_request",
				"requestId": p.RequestID,
				"category":  p.Category,
			},
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			return fmt.Errorf("failed to push solicitation %s: %w", p.RequestID, err)
		}
		return nil
	}
}
