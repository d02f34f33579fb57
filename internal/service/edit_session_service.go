package service

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/redis/go-redis/v9"
)

// Entity kinds tracked by the edit session service.
const (
	EditTargetCertificate = "certificate"
	EditTargetUser        = "user"
)

// editSessionTTL bounds how long an abandoned edit stays pending.
const editSessionTTL = 30 * time.Minute

// EditSessionService tracks which record an operator is currently editing.
// Each operator holds at most one edit target per entity kind: beginning an
// edit while another is pending silently replaces it, so two pending edits
// can never be merged.
type EditSessionService interface {
	BeginEdit(ctx context.Context, operatorID, entityKind, identity string) error
	CurrentEdit(ctx context.Context, operatorID, entityKind string) (string, bool, error)
	ClearEdit(ctx context.Context, operatorID, entityKind string) error
	// ClearIfEditing drops the pending edit only when it targets identity,
	// e.g. when the record under edit gets deleted.
	ClearIfEditing(ctx context.Context, operatorID, entityKind, identity string) error
}

type editSessionService struct {
	redisClient *redis.Client
}

func NewEditSessionService(redisClient *redis.Client) EditSessionService {
	return &editSessionService{redisClient: redisClient}
}

func editKey(operatorID, entityKind string) string {
	return fmt.Sprintf("edit_target:%s:%s", operatorID, entityKind)
}

func (s *editSessionService) BeginEdit(ctx context.Context, operatorID, entityKind, identity string) error {
	return s.redisClient.Set(ctx, editKey(operatorID, entityKind), identity, editSessionTTL).Err()
}

func (s *editSessionService) CurrentEdit(ctx context.Context, operatorID, entityKind string) (string, bool, error) {
	identity, err := s.redisClient.Get(ctx, editKey(operatorID, entityKind)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return identity, true, nil
}

func (s *editSessionService) ClearEdit(ctx context.Context, operatorID, entityKind string) error {
	return s.redisClient.Del(ctx, editKey(operatorID, entityKind)).Err()
}

func (s *editSessionService) ClearIfEditing(ctx context.Context, operatorID, entityKind, identity string) error {
	current, ok, err := s.CurrentEdit(ctx, operatorID, entityKind)
	if err != nil || !ok {
		return err
	}
	if current != identity {
		return nil
	}
	return s.ClearEdit(ctx, operatorID, entityKind)
}
