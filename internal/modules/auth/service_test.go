package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelhub/internal/domain"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7
	}
	return args.Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeJWT{})

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Arjun@Gmail.com",
		Password: "password123",
		Name:     "Arjun",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, result.User.Role)
	assert.Equal(t, "arjun@gmail.com", result.User.Email)
	assert.Equal(t, "token", result.Token)
	assert.NotEqual(t, "password123", result.User.PasswordHash)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "arjun@gmail.com").
		Return(&domain.User{ID: 7, Email: "arjun@gmail.com", PasswordHash: string(hash)}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "arjun@gmail.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	svc := NewService(users, fakeJWT{})

	users.On("GetByEmail", mock.Anything, "nobody@gmail.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@gmail.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
