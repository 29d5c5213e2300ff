package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(_ context.Context, a models.AuditLog) error {
	evt := s.log.Info().
		Str("audit_id", a.ID).
		Str("action", a.Action).
		Str("entity", a.Entity).
		Time("at", a.CreatedAt)
	if a.RequestID != "" {
		evt = evt.Str("request_id", a.RequestID)
	}
	if a.EntityID != nil {
		evt = evt.Uint("entity_id", *a.EntityID)
	}
	if a.Metadata != "" {
		evt = evt.RawJSON("metadata", []byte(a.Metadata))
	}
	evt.Msg("audit")
	return nil
}

const DefaultRedisKey = "doctor-booking:audit"

// RedisSink appends JSON records to a capped Redis list.
type RedisSink struct {
	client *redis.Client
	key    string
	max    int64
}

func NewRedisSink(client *redis.Client, key string, max int64) *RedisSink {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSink{client: client, key: key, max: max}
}

func (s *RedisSink) Write(ctx context.Context, a models.AuditLog) error {
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode audit log: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, b)
	if s.max > 0 {
		pipe.LTrim(ctx, s.key, 0, s.max-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis audit sink: %w", err)
	}
	return nil
}

// NewRedisClient parses url and checks the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
