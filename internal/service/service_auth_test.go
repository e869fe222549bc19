package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/mock"
	"github.com/MKhiriev/go-crm-front/internal/store"
	"github.com/MKhiriev/go-crm-front/internal/validators"
	"github.com/MKhiriev/go-crm-front/models"
)

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "test-issuer",
	TokenDuration: time.Hour,
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost
	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Username: "admin", PasswordHash: hashed(t, "correct horse")}
	repo.EXPECT().FindUserByUsername(ctx, "admin").Return(stored, nil)

	user, err := svc.Login(ctx, " admin ", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "admin").
		Return(models.User{UserID: 1, Username: "admin", PasswordHash: hashed(t, "correct horse")}, nil)

	_, err := svc.Login(ctx, "admin", "battery staple")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, "ghost", "whatever1")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	repo.EXPECT().FindUserByUsername(ctx, "admin").Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, "admin", "whatever1")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	for _, tc := range [][2]string{{"", "pw"}, {"admin", ""}, {"   ", "pw"}} {
		_, err := svc.Login(context.Background(), tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

// ── CreateAdmin ──────────────────────────────────────────────────────────────

func TestAuthService_CreateAdmin_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "admin", u.Username)
			assert.True(t, u.IsAdmin)
			assert.Empty(t, u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
			u.UserID = 1
			return u, nil
		},
	)

	created, err := svc.CreateAdmin(ctx, "admin", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_CreateAdmin_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateAdmin(context.Background(), "", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateAdmin(context.Background(), "admin", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.CreateAdmin(context.Background(), "admin", strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPasswordTooLong)
}

func TestAuthService_CreateAdmin_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.CreateAdmin(context.Background(), "admin", "s3cret-pass")
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Username: "admin"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "admin", parsed.Username)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingKey(t *testing.T) {
	svc := NewAuthService(nil, config.Auth{TokenIssuer: "iss", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
