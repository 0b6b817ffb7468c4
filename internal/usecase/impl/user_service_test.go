package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quoteapi/internal/domain/entity"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/repository"
	mockRepo "quoteapi/internal/mocks/repository"
	mockSvc "quoteapi/internal/mocks/service"
	"quoteapi/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Logger:       newDiscardLogger(),
	})

	return f
}

func existingUser() *entity.User {
	return &entity.User{ID: 1, Username: "alice", DisplayedName: "Alice", PasswordHash: "stored_hash"}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Username: "  alice ", DisplayedName: " Alice ", Password: "Valid123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength("Valid123!").Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "Valid123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "Alice", user.DisplayedName)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = 7
		}).
		Return(nil)
	fx.tokenService.EXPECT().IssueToken(int64(7)).Return("signed.token.value", nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, int64(7), output.User.ID)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	weak := domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	fx.hasher.EXPECT().ValidatePasswordStrength("NoDigits!").Return(weak)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "alice", DisplayedName: "Alice", Password: "NoDigits!"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Contains(t, err.Error(), "at least one number")
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Valid123!").Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(existingUser(), nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", DisplayedName: "Alice", Password: "Valid123!"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashCancelled(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("Valid123!").Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, "Valid123!").Return("", context.Canceled)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", DisplayedName: "Alice", Password: "Valid123!"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(existingUser(), nil)
		fx.hasher.EXPECT().Check(ctx, "Valid123!", "stored_hash").Return(true, nil)
		fx.tokenService.EXPECT().IssueToken(int64(1)).Return("tok", nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: " alice", Password: "Valid123!"})
		require.NoError(t, err)
		assert.Equal(t, "tok", output.Token)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "Valid123!"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(existingUser(), nil)
		fx.hasher.EXPECT().Check(ctx, "Wrong123!", "stored_hash").Return(false, nil)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "Wrong123!"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(existingUser(), nil)
		fx.hasher.EXPECT().Check(ctx, "Valid123!", "stored_hash").
			Return(false, errors.WithStack(domainerrors.ErrPreconditionViolation.WithDetails("stored password hash: unexpected number of fields")))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "Valid123!"})
		assert.ErrorIs(t, err, domainerrors.ErrPreconditionViolation)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, errors.New("connection reset"))

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "Valid123!"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_GetInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(existingUser(), nil)

		info, err := fx.service.GetInfo(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, &entity.UserInfo{ID: 1, Username: "alice", DisplayedName: "Alice"}, info)
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetInfo(ctx, 1)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_ChangeInfo(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(existingUser(), nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 1 && u.DisplayedName == "Alice Liddell" && u.PasswordHash == "stored_hash"
		})).
		Return(nil)

	err := fx.service.ChangeInfo(ctx, &usecase.ChangeInfoInput{UserID: 1, DisplayedName: " Alice Liddell "})
	assert.NoError(t, err)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(existingUser(), nil)
		fx.hasher.EXPECT().Check(ctx, "Valid123!", "stored_hash").Return(true, nil)
		fx.hasher.EXPECT().ValidatePasswordStrength("Better456?").Return(nil)
		fx.hasher.EXPECT().Hash(ctx, "Better456?").Return("new_hash", nil)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new_hash" })).
			Return(nil)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: 1, CurrentPassword: "Valid123!", NewPassword: "Better456?"})
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(existingUser(), nil)
		fx.hasher.EXPECT().Check(ctx, "Wrong123!", "stored_hash").Return(false, nil)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: 1, CurrentPassword: "Wrong123!", NewPassword: "Better456?"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("weak new password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(existingUser(), nil)
		fx.hasher.EXPECT().Check(ctx, "Valid123!", "stored_hash").Return(true, nil)
		fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength.WithDetails("password must be between 8 and 64 characters long"))

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: 1, CurrentPassword: "Valid123!", NewPassword: "weak"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes quotes then user", func(t *testing.T) {
		fx := createTestUserService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txQuoteRepo := mockRepo.NewMockQuoteRepository(t)
		expectTransaction(fx.txManager, factory)

		factory.EXPECT().UserRepo().Return(txUserRepo)
		factory.EXPECT().QuoteRepo().Return(txQuoteRepo)
		txUserRepo.EXPECT().FindByID(ctx, int64(1)).Return(existingUser(), nil)
		quotesDeleted := txQuoteRepo.EXPECT().DeleteByUserID(ctx, int64(1)).Return(nil)
		txUserRepo.EXPECT().Delete(ctx, int64(1)).Return(nil).NotBefore(quotesDeleted.Call)

		assert.NoError(t, fx.service.DeleteAccount(ctx, 1))
	})

	t.Run("quote deletion failure keeps user", func(t *testing.T) {
		fx := createTestUserService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txQuoteRepo := mockRepo.NewMockQuoteRepository(t)
		expectTransaction(fx.txManager, factory)

		factory.EXPECT().UserRepo().Return(txUserRepo)
		factory.EXPECT().QuoteRepo().Return(txQuoteRepo)
		txUserRepo.EXPECT().FindByID(ctx, int64(1)).Return(existingUser(), nil)
		txQuoteRepo.EXPECT().DeleteByUserID(ctx, int64(1)).Return(errors.New("deadlock detected"))

		err := fx.service.DeleteAccount(ctx, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deadlock detected")
	})
}
