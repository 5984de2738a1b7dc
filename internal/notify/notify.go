// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

const keyPrefix = "notify:"

// Notification is one transient status message. Notifications are
// independent: they never queue or merge, and each expires on its own.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Reporter writes notifications to Valkey with a per-entry TTL.
type Reporter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReporter returns a Reporter. A non-positive ttl falls back to DefaultTTL.
func NewReporter(client *redis.Client, ttl time.Duration) *Reporter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Reporter{client: client, ttl: ttl}
}

// Notify stores a notification. Reporting is best-effort: a Valkey failure
// is logged and swallowed so it can never fail the operation being reported.
func (r *Reporter) Notify(ctx context.Context, kind Kind, message string) {
	n := Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(n)
	if err != nil {
		slog.Error("marshal notification", "error", err)
		return
	}

	if err := r.client.Set(ctx, keyPrefix+n.ID.String(), payload, r.ttl).Err(); err != nil {
		slog.Error("store notification", "error", err, "kind", kind)
	}
}

// Success reports a successful operation.
func (r *Reporter) Success(ctx context.Context, message string) {
	r.Notify(ctx, KindSuccess, message)
}

// Error reports a failed operation.
func (r *Reporter) Error(ctx context.Context, message string) {
	r.Notify(ctx, KindError, message)
}

// Pending returns the notifications that have not yet expired, oldest first.
func (r *Reporter) Pending(ctx context.Context) ([]Notification, error) {
	var notifications []Notification

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		payload, err := r.client.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			// Expired between SCAN and GET.
			continue
		}
		if err != nil {
			return nil, err
		}

		var n Notification
		if err := json.Unmarshal([]byte(payload), &n); err != nil {
			slog.Warn("skipping malformed notification", "key", iter.Val(), "error", err)
			continue
		}
		notifications = append(notifications, n)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.Before(notifications[j].CreatedAt)
	})
	return notifications, nil
}
