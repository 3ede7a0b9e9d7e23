// Package scheduler provides the asynq client and worker used to run
// outreach batches in the background.
package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"

	"outreach_backend/platform/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueOutreachBatch queues a batch for the background worker and returns
// the task id.
func (c *Client) EnqueueOutreachBatch(ctx context.Context, leadIDs []uuid.UUID) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("scheduler client not configured")
	}

	payload := OutreachBatchPayload{LeadIDs: make([]string, 0, len(leadIDs))}
	for _, id := range leadIDs {
		payload.LeadIDs = append(payload.LeadIDs, id.String())
	}

	task, err := NewOutreachBatchTask(payload)
	if err != nil {
		return "", err
	}

	info, err := c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
