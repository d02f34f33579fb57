package usecase

import (
	"context"
	"io"
	"sync"

	"pediatric-gastro-api/internal/delivery/http/middleware"
	"pediatric-gastro-api/internal/service"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func operatorContext(operatorID string) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, operatorID)
}

// fakeEditSessions is an in-process stand-in for the redis-backed edit
// session service.
type fakeEditSessions struct {
	mu      sync.Mutex
	targets map[string]string
}

var _ service.EditSessionService = (*fakeEditSessions)(nil)

func newFakeEditSessions() *fakeEditSessions {
	return &fakeEditSessions{targets: make(map[string]string)}
}

func (f *fakeEditSessions) key(operatorID, entityKind string) string {
	return operatorID + ":" + entityKind
}

func (f *fakeEditSessions) BeginEdit(ctx context.Context, operatorID, entityKind, identity string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.targets[f.key(operatorID, entityKind)] = identity
	return nil
}

func (f *fakeEditSessions) CurrentEdit(ctx context.Context, operatorID, entityKind string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.targets[f.key(operatorID, entityKind)]
	return identity, ok, nil
}

func (f *fakeEditSessions) ClearEdit(ctx context.Context, operatorID, entityKind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.targets, f.key(operatorID, entityKind))
	return nil
}

func (f *fakeEditSessions) ClearIfEditing(ctx context.Context, operatorID, entityKind, identity string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := f.key(operatorID, entityKind)
	if f.targets[key] == identity {
		delete(f.targets, key)
	}
	return nil
}
