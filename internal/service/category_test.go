package service_test

import (
	"testing"

	"equipment-assignment-backend/internal/database/models"
	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/mocks"
	"equipment-assignment-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCategoryRepo *mocks.MockCategoryRepositoryInterface
	categoryService  *service.CategoryService
	validator        *validator.Validate
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.categoryService = service.NewCategoryService(suite.mockCategoryRepo, suite.validator)
}

func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	suite.mockCategoryRepo.EXPECT().GetByName("Excavator").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCategoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Category) error {
		c.ID = uuid.New()
		return nil
	})

	resp, err := suite.categoryService.CreateCategory(&service.CreateLookupRequest{Name: "Excavator"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Excavator", resp.Name)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	existing := &models.Category{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Excavator"}
	suite.mockCategoryRepo.EXPECT().GetByName("Excavator").Return(existing, nil)

	resp, err := suite.categoryService.CreateCategory(&service.CreateLookupRequest{Name: "Excavator"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryExists)
}

func (suite *CategoryServiceTestSuite) TestGetAllCategories_Success() {
	categories := []models.Category{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Excavator"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Generator"},
	}
	suite.mockCategoryRepo.EXPECT().GetAll().Return(categories, nil)

	resp, err := suite.categoryService.GetAllCategories()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
}

func (suite *CategoryServiceTestSuite) TestRenameCategory_NotFound() {
	id := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.categoryService.RenameCategory(id, &service.RenameLookupRequest{Name: "Loader"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	category := &models.Category{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Excavator"}
	suite.mockCategoryRepo.EXPECT().GetByID(category.ID).Return(category, nil)
	suite.mockCategoryRepo.EXPECT().Delete(category.ID).Return(nil)

	err := suite.categoryService.DeleteCategory(category.ID)

	assert.NoError(suite.T(), err)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
