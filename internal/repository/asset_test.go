package repository

import (
	"testing"

	"equipment-assignment-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssetRepositoryTestSuite tests the AssetRepository
type AssetRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssetRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssetRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssetRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssetRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssetRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssetRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests inserting and retrieving an asset
func (suite *AssetRepositoryTestSuite) TestCreateAndGetByID() {
	asset := suite.factories.Asset.Create()

	suite.NoError(suite.repo.Create(asset))
	retrieved, err := suite.repo.GetByID(asset.ID)

	suite.NoError(err)
	suite.Equal(asset.InternalID, retrieved.InternalID)
	suite.True(asset.UsageHours.Equal(retrieved.UsageHours))
}

// TestGetByInternalID tests lookup by fleet identifier
func (suite *AssetRepositoryTestSuite) TestGetByInternalID() {
	asset := suite.factories.Asset.WithInternalID("EQ-100")
	suite.NoError(suite.repo.Create(asset))

	retrieved, err := suite.repo.GetByInternalID("EQ-100")

	suite.NoError(err)
	suite.Equal(asset.ID, retrieved.ID)
}

// TestGetByInternalIDNotFound tests lookup of a missing fleet identifier
func (suite *AssetRepositoryTestSuite) TestGetByInternalIDNotFound() {
	retrieved, err := suite.repo.GetByInternalID("EQ-999")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestDuplicateInternalIDRejected tests the unique index on the fleet identifier
func (suite *AssetRepositoryTestSuite) TestDuplicateInternalIDRejected() {
	suite.NoError(suite.repo.Create(suite.factories.Asset.WithInternalID("EQ-200")))

	err := suite.repo.Create(suite.factories.Asset.WithInternalID("EQ-200"))

	suite.Error(err)
}

// TestGetAll tests ordering by fleet identifier
func (suite *AssetRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Asset.WithInternalID("EQ-300")))
	suite.NoError(suite.repo.Create(suite.factories.Asset.WithInternalID("EQ-100")))

	assets, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(assets, 2)
	suite.Equal("EQ-100", assets[0].InternalID)
	suite.Equal("EQ-300", assets[1].InternalID)
}

// TestUpdate tests saving changed asset fields
func (suite *AssetRepositoryTestSuite) TestUpdate() {
	asset := suite.factories.Asset.Create()
	suite.NoError(suite.repo.Create(asset))

	asset.UsageHours = decimal.NewFromFloat(1850.5)
	asset.Model = "330D"
	suite.NoError(suite.repo.Update(asset))

	retrieved, err := suite.repo.GetByID(asset.ID)
	suite.NoError(err)
	suite.Equal("330D", retrieved.Model)
	suite.True(decimal.NewFromFloat(1850.5).Equal(retrieved.UsageHours))
}

// TestDelete tests deleting an asset
func (suite *AssetRepositoryTestSuite) TestDelete() {
	asset := suite.factories.Asset.Create()
	suite.NoError(suite.repo.Create(asset))

	suite.NoError(suite.repo.Delete(asset.ID))

	_, err := suite.repo.GetByID(asset.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteMissingIsNoError tests deleting a non-existent asset
func (suite *AssetRepositoryTestSuite) TestDeleteMissingIsNoError() {
	suite.NoError(suite.repo.Delete(uuid.New()))
}

func TestAssetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssetRepositoryTestSuite))
}
