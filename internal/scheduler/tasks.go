package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskOutreachBatchSend = "outreach.batch.send"

type OutreachBatchPayload struct {
	LeadIDs []string `json:"leadIds"`
}

func NewOutreachBatchTask(payload OutreachBatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOutreachBatchSend, data), nil
}

func ParseOutreachBatchPayload(task *asynq.Task) (OutreachBatchPayload, error) {
	var payload OutreachBatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return OutreachBatchPayload{}, err
	}
	return payload, nil
}
