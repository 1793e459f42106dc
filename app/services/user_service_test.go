package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/app/models"
	"bistro/app/services"
	"bistro/pkg/apperr"
)

// userStoreStub is an in-memory UserStore keyed by email.
type userStoreStub struct {
	byEmail  map[string]models.User
	inserted []models.User
	findErr  error
}

func newUserStoreStub(users ...models.User) *userStoreStub {
	s := &userStoreStub{byEmail: map[string]models.User{}}
	for _, u := range users {
		s.byEmail[u.Email] = u
	}
	return s
}

func (s *userStoreStub) FindByEmail(_ context.Context, email string) (models.User, error) {
	if s.findErr != nil {
		return models.User{}, s.findErr
	}
	u, ok := s.byEmail[email]
	if !ok {
		return models.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (s *userStoreStub) Insert(_ context.Context, user models.User) (string, error) {
	s.inserted = append(s.inserted, user)
	s.byEmail[user.Email] = user
	return primitive.NewObjectID().Hex(), nil
}

func (s *userStoreStub) All(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(s.byEmail))
	for _, u := range s.byEmail {
		users = append(users, u)
	}
	return users, nil
}

func (s *userStoreStub) DeleteByID(_ context.Context, id string) (int64, error) {
	return 1, nil
}

func (s *userStoreStub) PromoteToAdmin(_ context.Context, id string) (int64, error) {
	for email, u := range s.byEmail {
		if u.ID.Hex() == id {
			u.UserRole = models.AdminRole
			s.byEmail[email] = u
			return 1, nil
		}
	}
	return 0, nil
}

func TestRegisterNewUser(t *testing.T) {
	store := newUserStoreStub()
	svc := services.NewUserService(store)

	result, err := svc.Register(context.Background(), models.User{Name: "Alice", Email: "alice@example.com"})

	require.NoError(t, err)
	require.NotNil(t, result.InsertedID)
	assert.Len(t, store.inserted, 1)
	assert.Empty(t, result.Message)
}

func TestRegisterDuplicateIsNoOp(t *testing.T) {
	store := newUserStoreStub(models.User{Name: "Alice", Email: "alice@example.com"})
	svc := services.NewUserService(store)

	result, err := svc.Register(context.Background(), models.User{Name: "Alice Again", Email: "alice@example.com"})

	require.NoError(t, err)
	assert.Nil(t, result.InsertedID, "duplicate registration reports the null sentinel")
	assert.Equal(t, "user already exist", result.Message)
	assert.Empty(t, store.inserted, "no second record may be created")
}

func TestRegisterStripsRoleFromPayload(t *testing.T) {
	store := newUserStoreStub()
	svc := services.NewUserService(store)

	_, err := svc.Register(context.Background(), models.User{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		UserRole: models.AdminRole,
	})

	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.Empty(t, store.inserted[0].UserRole, "registration can never grant a role")
}

func TestRegisterRequiresEmail(t *testing.T) {
	svc := services.NewUserService(newUserStoreStub())

	_, err := svc.Register(context.Background(), models.User{Name: "No Email"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestIsAdminEmailMismatchForbidden(t *testing.T) {
	svc := services.NewUserService(newUserStoreStub())

	_, err := svc.IsAdmin(context.Background(), "alice@example.com", "bob@example.com")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestIsAdminMissingUserIsFalse(t *testing.T) {
	svc := services.NewUserService(newUserStoreStub())

	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@example.com", "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestIsAdminReflectsPromotion(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Name: "Bob", Email: "bob@example.com"}
	store := newUserStoreStub(user)
	svc := services.NewUserService(store)

	isAdmin, err := svc.IsAdmin(context.Background(), user.Email, user.Email)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	modified, err := svc.Promote(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	// The promotion is visible on the very next check: nothing about the
	// role is cached in a token.
	isAdmin, err = svc.IsAdmin(context.Background(), user.Email, user.Email)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}
