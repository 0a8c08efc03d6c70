package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const TypeSignupMail = "mail:signup"

type signupMailPayload struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// MailQueue hands signup mails to an asynq worker when redis is configured
// and falls back to sending them inline when it isn't. SMTP talks to the
// outside world and has no business blocking a signup request.
type MailQueue struct {
	client *asynq.Client
	server *asynq.Server
}

func NewMailQueue() *MailQueue {
	q := &MailQueue{}

	if !viper.GetBool("cache.redis.enabled") {
		return q
	}

	opt := asynq.RedisClientOpt{Addr: viper.GetString("cache.redis.addr")}

	q.client = asynq.NewClient(opt)
	q.server = asynq.NewServer(opt, asynq.Config{
		Concurrency: 2,
	})

	return q
}

// EnqueueSignupMail schedules (or directly performs) delivery of a signup link
func (q *MailQueue) EnqueueSignupMail(token, email string) error {
	if q.client == nil {
		return SendSignupMail(token, email)
	}

	payload, err := json.Marshal(signupMailPayload{Token: token, Email: email})
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload, %w", err)
	}

	_, err = q.client.Enqueue(asynq.NewTask(TypeSignupMail, payload), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue signup mail, %w", err)
	}

	return nil
}

// StartWorker runs the asynq consumer in the background. A no-op without redis.
func (q *MailQueue) StartWorker() {
	if q.server == nil {
		return
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSignupMail, handleSignupMailTask)

	go func() {
		if err := q.server.Run(mux); err != nil {
			zap.L().Error("Mail worker stopped", zap.Error(err))
		}
	}()
}

func handleSignupMailTask(_ context.Context, t *asynq.Task) error {
	var p signupMailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal mail payload, %w", err)
	}

	return SendSignupMail(p.Token, p.Email)
}
