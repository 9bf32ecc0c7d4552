package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeResetPasswordEmail = "email:reset_password"

type ResetPasswordEmailPayload struct {
	To    string `json:"to"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func NewResetPasswordEmailTask(to, name, token string) (*asynq.Task, error) {
	payload, err := json.Marshal(ResetPasswordEmailPayload{To: to, Name: name, Token: token})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeResetPasswordEmail, payload), nil
}
