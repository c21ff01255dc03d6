package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/errs"
)

// sessionRecord is the JSON layout of one session key.
type sessionRecord struct {
	Identifier      string    `json:"identifier"`
	Channel         string    `json:"channel"`
	State           string    `json:"state"`
	CodeHash        string    `json:"codeHash,omitempty"`
	IssuedAt        time.Time `json:"issuedAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
	CooldownUntil   time.Time `json:"cooldownUntil"`
	AttemptCount    int       `json:"attemptCount"`
	IssueCount      int       `json:"issueCount"`
	WindowStartedAt time.Time `json:"windowStartedAt"`
}

// RedisStore keeps one JSON value per identifier and lets Redis expire it.
type RedisStore struct {
	redis  redis.Cmdable
	prefix string
	tracer trace.Tracer
}

func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	if client == nil {
		panic("sessionstore: redis client cannot be nil")
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
		tracer: otel.Tracer("salon-booking/infra/sessionstore"),
	}
}

func (s *RedisStore) Load(ctx context.Context, identifier auth.Identifier) (*auth.Session, error) {
	ctx, span := s.tracer.Start(ctx, "sessionstore.load")
	defer span.End()

	data, err := s.redis.Get(ctx, s.key(identifier)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, errs.Wrap(err, "sessionstore: failed to load session")
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		span.RecordError(err)
		return nil, errs.Wrap(err, "sessionstore: failed to decode session")
	}
	return rec.toDomain()
}

func (s *RedisStore) Save(ctx context.Context, session *auth.Session, ttl time.Duration) error {
	ctx, span := s.tracer.Start(ctx, "sessionstore.save")
	defer span.End()

	data, err := json.Marshal(recordFrom(session))
	if err != nil {
		span.RecordError(err)
		return errs.Wrap(err, "sessionstore: failed to encode session")
	}
	if err := s.redis.Set(ctx, s.key(session.Identifier()), data, ttl).Err(); err != nil {
		span.RecordError(err)
		return errs.Wrap(err, "sessionstore: failed to persist session")
	}
	return nil
}

func (s *RedisStore) key(identifier auth.Identifier) string {
	if s.prefix == "" {
		return "otp:" + identifier.Value()
	}
	return s.prefix + ":otp:" + identifier.Value()
}

func recordFrom(session *auth.Session) sessionRecord {
	return sessionRecord{
		Identifier:      session.Identifier().Value(),
		Channel:         session.Identifier().Channel().String(),
		State:           string(session.State()),
		CodeHash:        session.CodeHash(),
		IssuedAt:        session.IssuedAt(),
		ExpiresAt:       session.ExpiresAt(),
		CooldownUntil:   session.CooldownUntil(),
		AttemptCount:    session.AttemptCount(),
		IssueCount:      session.IssueCount(),
		WindowStartedAt: session.WindowStartedAt(),
	}
}

func (r sessionRecord) toDomain() (*auth.Session, error) {
	channel, err := auth.NewChannel(r.Channel)
	if err != nil {
		return nil, errs.Wrap(err, "sessionstore: corrupt session channel")
	}
	id, err := auth.NewIdentifier(r.Identifier, channel)
	if err != nil {
		return nil, errs.Wrap(err, "sessionstore: corrupt session identifier")
	}
	state := auth.State(r.State)
	if !state.IsValid() {
		return nil, errs.Newf("sessionstore: corrupt session state %q", r.State)
	}
	return auth.ReconstructSession(
		id,
		state,
		r.CodeHash,
		r.IssuedAt,
		r.ExpiresAt,
		r.CooldownUntil,
		r.AttemptCount,
		r.IssueCount,
		r.WindowStartedAt,
	), nil
}
