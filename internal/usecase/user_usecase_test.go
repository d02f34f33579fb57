package usecase

import (
	"context"
	"testing"

	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/repository/memory"
	"pediatric-gastro-api/internal/service"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture() (UserUsecase, *memory.UserStore, *fakeEditSessions, *memory.AuditLogStore) {
	log := testLogger()
	userStore := memory.NewUserStore()
	auditStore := memory.NewAuditLogStore()
	editSessions := newFakeEditSessions()
	uc := NewUserUsecase(log, userStore, service.NewAuditService(log, auditStore), editSessions)
	return uc, userStore, editSessions, auditStore
}

func createUserRequest(email string) *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		FullName:        "Dra. Paulina Robles",
		Email:           email,
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Specialty:       "Gastroenterología Pediátrica",
	}
}

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	uc, _, _, _ := newUserFixture()
	ctx := context.Background()

	first, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)
	assert.Equal(t, "USR001", first.ID)

	second, err := uc.CreateUser(ctx, createUserRequest("b@clinica.ec"))
	assert.NoError(t, err)
	assert.Equal(t, "USR002", second.ID)

	// The default role is doctor when none is submitted.
	assert.Equal(t, "doctor", first.Role)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	uc, _, _, _ := newUserFixture()
	ctx := context.Background()

	_, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)

	_, err = uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestCreateUserHashesPassword(t *testing.T) {
	uc, userStore, _, _ := newUserFixture()
	ctx := context.Background()

	created, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)

	stored, err := userStore.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
}

func TestUpdateUserKeepsIdentityAndEmptyPassword(t *testing.T) {
	uc, userStore, _, _ := newUserFixture()
	ctx := context.Background()

	created, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)

	before, err := userStore.FindByID(ctx, created.ID)
	assert.NoError(t, err)

	updated, err := uc.UpdateUser(ctx, created.ID, &dto.UpdateUserRequest{
		FullName: "Dra. Paulina Robles Vega",
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Dra. Paulina Robles Vega", updated.FullName)

	// An empty password on edit keeps the stored credential.
	after, err := userStore.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
}

func TestUpdateUserReplacesPassword(t *testing.T) {
	uc, userStore, _, _ := newUserFixture()
	ctx := context.Background()

	created, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)

	_, err = uc.UpdateUser(ctx, created.ID, &dto.UpdateUserRequest{
		Password:        "newsecret",
		ConfirmPassword: "newsecret",
	})
	assert.NoError(t, err)

	stored, err := userStore.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")))
}

func TestUpdateUserMissing(t *testing.T) {
	uc, _, _, _ := newUserFixture()

	_, err := uc.UpdateUser(context.Background(), "USR999", &dto.UpdateUserRequest{FullName: "X Y"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserIsIdempotent(t *testing.T) {
	uc, _, _, _ := newUserFixture()
	ctx := context.Background()

	created, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteUser(ctx, created.ID))
	_, err = uc.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Removing the same record again is still a success.
	assert.NoError(t, uc.DeleteUser(ctx, created.ID))
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	uc, _, _, _ := newUserFixture()
	ctx := context.Background()

	first, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)
	assert.NoError(t, uc.DeleteUser(ctx, first.ID))

	second, err := uc.CreateUser(ctx, createUserRequest("b@clinica.ec"))
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestBeginEditReplacesPendingTarget(t *testing.T) {
	uc, _, editSessions, _ := newUserFixture()
	ctx := operatorContext("USR001")

	first, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)
	second, err := uc.CreateUser(ctx, createUserRequest("b@clinica.ec"))
	assert.NoError(t, err)

	_, err = uc.BeginEdit(ctx, first.ID)
	assert.NoError(t, err)
	_, err = uc.BeginEdit(ctx, second.ID)
	assert.NoError(t, err)

	// Only the most recent target is pending.
	target, ok, err := editSessions.CurrentEdit(ctx, "USR001", service.EditTargetUser)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, second.ID, target)
}

func TestUpdateClearsMatchingEditSession(t *testing.T) {
	uc, _, editSessions, _ := newUserFixture()
	ctx := operatorContext("USR001")

	created, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)

	_, err = uc.BeginEdit(ctx, created.ID)
	assert.NoError(t, err)

	_, err = uc.UpdateUser(ctx, created.ID, &dto.UpdateUserRequest{FullName: "Nuevo Nombre"})
	assert.NoError(t, err)

	_, ok, err := editSessions.CurrentEdit(ctx, "USR001", service.EditTargetUser)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUserMutationsAreAudited(t *testing.T) {
	uc, _, _, auditStore := newUserFixture()
	ctx := operatorContext("USR001")

	created, err := uc.CreateUser(ctx, createUserRequest("a@clinica.ec"))
	assert.NoError(t, err)
	_, err = uc.UpdateUser(ctx, created.ID, &dto.UpdateUserRequest{FullName: "Nuevo Nombre"})
	assert.NoError(t, err)
	assert.NoError(t, uc.DeleteUser(ctx, created.ID))

	logs, err := auditStore.FindAll(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, logs, 3)

	// Newest first.
	assert.Equal(t, "user.delete", logs[0].Action)
	assert.Equal(t, "user.update", logs[1].Action)
	assert.Equal(t, "user.create", logs[2].Action)
}
