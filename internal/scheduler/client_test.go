package scheduler

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
)

type testSchedulerConfig struct {
	redisURL string
}

func (c testSchedulerConfig) GetRedisURL() string       { return c.redisURL }
func (c testSchedulerConfig) GetRedisTLSInsecure() bool { return false }
func (c testSchedulerConfig) GetAsynqQueueName() string { return "outreach" }
func (c testSchedulerConfig) GetAsynqConcurrency() int  { return 1 }

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(testSchedulerConfig{}); err == nil {
		t.Fatal("expected error without redis url")
	}
}

func TestEnqueueOutreachBatch(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewClient(testSchedulerConfig{redisURL: "redis://" + srv.Addr()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	taskID, err := client.EnqueueOutreachBatch(context.Background(), []uuid.UUID{uuid.New(), uuid.New()})
	if err != nil {
		t.Fatalf("EnqueueOutreachBatch: %v", err)
	}
	if taskID == "" {
		t.Fatal("expected a task id")
	}
}

func TestOutreachBatchPayloadRoundTrip(t *testing.T) {
	ids := []string{uuid.NewString(), uuid.NewString()}

	task, err := NewOutreachBatchTask(OutreachBatchPayload{LeadIDs: ids})
	if err != nil {
		t.Fatalf("NewOutreachBatchTask: %v", err)
	}
	if task.Type() != TaskOutreachBatchSend {
		t.Fatalf("task type = %s", task.Type())
	}

	payload, err := ParseOutreachBatchPayload(task)
	if err != nil {
		t.Fatalf("ParseOutreachBatchPayload: %v", err)
	}
	if len(payload.LeadIDs) != 2 || payload.LeadIDs[0] != ids[0] {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
