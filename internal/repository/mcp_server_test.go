//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"workspace-backend/internal/database/models"
	"workspace-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MCPServerRepositoryTestSuite tests the MCPServerRepository
type MCPServerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MCPServerRepository
	userRepo      *UserRepository
	secretRepo    *SecretRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	user          *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *MCPServerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMCPServerRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.secretRepo = NewSecretRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *MCPServerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MCPServerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.user = suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(suite.ctx, suite.user))
}

// TearDownTest runs after each test
func (suite *MCPServerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests that defaults are stored and an explicit false survives the column default
func (suite *MCPServerRepositoryTestSuite) TestCreate() {
	server := suite.factories.MCPServer.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, server))

	stored, err := suite.repo.GetOwned(suite.ctx, server.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.True(stored.Enabled)
	suite.Equal(models.MCPStatusUnknown, stored.Status)
	suite.Nil(stored.LastChecked)
	suite.Nil(stored.LastError)

	disabled := suite.factories.MCPServer.WithEnabled(suite.user.ID, false)
	suite.Require().NoError(suite.repo.Create(suite.ctx, disabled))

	stored, err = suite.repo.GetOwned(suite.ctx, disabled.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.False(stored.Enabled)
}

// TestListByUser tests newest-first ordering, the enabled filter and isolation
func (suite *MCPServerRepositoryTestSuite) TestListByUser() {
	other := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(suite.ctx, other))

	first := suite.factories.MCPServer.WithName(suite.user.ID, "first")
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	time.Sleep(5 * time.Millisecond)
	second := suite.factories.MCPServer.WithEnabled(suite.user.ID, false)
	suite.Require().NoError(suite.repo.Create(suite.ctx, second))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.MCPServer.Create(other.ID)))

	all, err := suite.repo.ListByUser(suite.ctx, suite.user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(second.ID, all[0].ID)
	suite.Equal(first.ID, all[1].ID)

	enabled, err := suite.repo.ListEnabledByUser(suite.ctx, suite.user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(enabled, 1)
	suite.Equal(first.ID, enabled[0].ID)
}

// TestToggleOwned tests that toggling flips the flag and is scoped to the owner
func (suite *MCPServerRepositoryTestSuite) TestToggleOwned() {
	server := suite.factories.MCPServer.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, server))

	suite.Require().NoError(suite.repo.ToggleOwned(suite.ctx, server.ID, suite.user.ID))
	stored, err := suite.repo.GetOwned(suite.ctx, server.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.False(stored.Enabled)

	suite.Require().NoError(suite.repo.ToggleOwned(suite.ctx, server.ID, suite.user.ID))
	stored, err = suite.repo.GetOwned(suite.ctx, server.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.True(stored.Enabled)

	suite.ErrorIs(suite.repo.ToggleOwned(suite.ctx, server.ID, "someone-else"), gorm.ErrRecordNotFound)
}

// TestUpdateStatus tests recording connection test outcomes
func (suite *MCPServerRepositoryTestSuite) TestUpdateStatus() {
	server := suite.factories.MCPServer.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, server))

	msg := "Server responded with status 503"
	checkedAt := time.Now().UTC().Truncate(time.Millisecond)
	suite.Require().NoError(suite.repo.UpdateStatus(suite.ctx, server.ID, suite.user.ID, models.MCPStatusError, &msg, checkedAt))

	stored, err := suite.repo.GetOwned(suite.ctx, server.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.MCPStatusError, stored.Status)
	suite.Require().NotNil(stored.LastError)
	suite.Equal(msg, *stored.LastError)
	suite.Require().NotNil(stored.LastChecked)
	suite.WithinDuration(checkedAt, *stored.LastChecked, time.Second)

	// a later success clears the error
	suite.Require().NoError(suite.repo.UpdateStatus(suite.ctx, server.ID, suite.user.ID, models.MCPStatusConnected, nil, time.Now()))
	stored, err = suite.repo.GetOwned(suite.ctx, server.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.MCPStatusConnected, stored.Status)
	suite.Nil(stored.LastError)

	suite.ErrorIs(suite.repo.UpdateStatus(suite.ctx, server.ID, "someone-else", models.MCPStatusConnected, nil, time.Now()), gorm.ErrRecordNotFound)
}

// TestUpdateOwned_ClearSecret tests that a nil pointer in the patch clears the column
func (suite *MCPServerRepositoryTestSuite) TestUpdateOwned_ClearSecret() {
	secret := suite.factories.Secret.Create(suite.user.ID)
	suite.Require().NoError(suite.secretRepo.Create(suite.ctx, secret))
	server := suite.factories.MCPServer.WithSecret(suite.user.ID, secret.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, server))

	var cleared *string
	suite.Require().NoError(suite.repo.UpdateOwned(suite.ctx, server.ID, suite.user.ID, map[string]interface{}{
		"auth_secret_id": cleared,
		"updated_at":     time.Now(),
	}))

	stored, err := suite.repo.GetOwned(suite.ctx, server.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.Nil(stored.AuthSecretID)
}

// TestSecretDeletionDetaches tests that deleting a secret keeps the server but drops the reference
func (suite *MCPServerRepositoryTestSuite) TestSecretDeletionDetaches() {
	secret := suite.factories.Secret.Create(suite.user.ID)
	suite.Require().NoError(suite.secretRepo.Create(suite.ctx, secret))
	server := suite.factories.MCPServer.WithSecret(suite.user.ID, secret.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, server))

	suite.Require().NoError(suite.baseTestSuite.DB.Delete(&models.Secret{}, "id = ?", secret.ID).Error)

	stored, err := suite.repo.GetOwned(suite.ctx, server.ID, suite.user.ID)
	suite.Require().NoError(err)
	suite.Nil(stored.AuthSecretID)
}

// TestDeleteOwned tests deleting servers scoped to the owner
func (suite *MCPServerRepositoryTestSuite) TestDeleteOwned() {
	server := suite.factories.MCPServer.Create(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, server))

	suite.ErrorIs(suite.repo.DeleteOwned(suite.ctx, server.ID, "someone-else"), gorm.ErrRecordNotFound)
	suite.Require().NoError(suite.repo.DeleteOwned(suite.ctx, server.ID, suite.user.ID))
	suite.ErrorIs(suite.repo.DeleteOwned(suite.ctx, server.ID, suite.user.ID), gorm.ErrRecordNotFound)
}

// TestMCPServerRepositoryTestSuite runs the test suite
func TestMCPServerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MCPServerRepositoryTestSuite))
}
