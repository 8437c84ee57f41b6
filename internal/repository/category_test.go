package repository

import (
	"testing"

	"equipment-assignment-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CategoryRepositoryTestSuite tests the CategoryRepository
type CategoryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CategoryRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CategoryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCategoryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CategoryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CategoryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CategoryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests inserting and retrieving a category
func (suite *CategoryRepositoryTestSuite) TestCreateAndGetByID() {
	category := suite.factories.Category.WithName("Excavator")

	suite.NoError(suite.repo.Create(category))
	retrieved, err := suite.repo.GetByID(category.ID)

	suite.NoError(err)
	suite.Equal("Excavator", retrieved.Name)
}

// TestGetByName tests lookup by name
func (suite *CategoryRepositoryTestSuite) TestGetByName() {
	category := suite.factories.Category.WithName("Generator")
	suite.NoError(suite.repo.Create(category))

	retrieved, err := suite.repo.GetByName("Generator")

	suite.NoError(err)
	suite.Equal(category.ID, retrieved.ID)
}

// TestGetByNameNotFound tests lookup of a missing name
func (suite *CategoryRepositoryTestSuite) TestGetByNameNotFound() {
	retrieved, err := suite.repo.GetByName("Hovercraft")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestDuplicateNameRejected tests the unique index on the name
func (suite *CategoryRepositoryTestSuite) TestDuplicateNameRejected() {
	suite.NoError(suite.repo.Create(suite.factories.Category.WithName("Loader")))

	err := suite.repo.Create(suite.factories.Category.WithName("Loader"))

	suite.Error(err)
}

// TestGetAll tests retrieving all categories
func (suite *CategoryRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Category.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Category.Create()))

	categories, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(categories, 2)
}

// TestUpdate tests renaming a category
func (suite *CategoryRepositoryTestSuite) TestUpdate() {
	category := suite.factories.Category.WithName("Compressor")
	suite.NoError(suite.repo.Create(category))

	category.Name = "Light Tower"
	suite.NoError(suite.repo.Update(category))

	retrieved, err := suite.repo.GetByID(category.ID)
	suite.NoError(err)
	suite.Equal("Light Tower", retrieved.Name)
}

// TestDelete tests deleting a category
func (suite *CategoryRepositoryTestSuite) TestDelete() {
	category := suite.factories.Category.Create()
	suite.NoError(suite.repo.Create(category))

	suite.NoError(suite.repo.Delete(category.ID))

	_, err := suite.repo.GetByID(category.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}
