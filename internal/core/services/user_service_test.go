package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FinHubBR/finhub_backend/internal/apperrors"
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/core/services"
	"github.com/FinHubBR/finhub_backend/internal/dto"
	"github.com/FinHubBR/finhub_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock implementation of the user repository facade.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegisterUser() {
	req := dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "s3cretpass"}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.RegisterUser(suite.ctx, req)
	suite.Require().NoError(err)

	suite.NotEmpty(user.UserID)
	suite.Equal(req.Name, user.Name)
	suite.Equal(domain.ProviderLocal, user.Provider)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.Equal(user.UserID, user.CreatedBy, "first user action is attributed to itself")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUserDuplicateEmail() {
	req := dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "s3cretpass"}
	existing := &domain.User{UserID: "u1", Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, req.Email).Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(suite.ctx, req)
	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("s3cretpass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Email: "maria@example.com", PasswordHash: hash, Provider: domain.ProviderLocal}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, stored.Email).Return(stored, nil)

	user, err := suite.service.AuthenticateUser(suite.ctx, stored.Email, "s3cretpass")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, stored.Email, "wrongpass")
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUnknownEmailIsUnauthorized() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "ghost@example.com", "whatever")
	// Indistinguishable from a wrong password.
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUserHasNoPassword() {
	stored := &domain.User{UserID: "u1", Email: "maria@example.com", Provider: domain.ProviderGoogle}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, stored.Email).Return(stored, nil).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, stored.Email, "anything")
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUserReturnsExisting() {
	stored := &domain.User{UserID: "u1", Email: "maria@example.com", Provider: domain.ProviderGoogle}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(suite.ctx, stored.Email, "Maria")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUserCreatesOnFirstSignIn() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(suite.ctx, "new@example.com", "Novo Usuário")
	suite.Require().NoError(err)
	suite.Equal(domain.ProviderGoogle, user.Provider)
	suite.Empty(user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser() {
	stored := &domain.User{UserID: "u1", Email: "maria@example.com"}

	suite.mockRepo.On("FindUserByID", suite.ctx, "u1").Return(stored, nil).Once()
	suite.mockRepo.On("MarkUserDeleted", suite.ctx, "u1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteUser(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUserNotFound() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(suite.ctx, "ghost")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
