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

type OperativeUnitServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUnitRepo *mocks.MockOperativeUnitRepositoryInterface
	unitService  *service.OperativeUnitService
	validator    *validator.Validate
}

func (suite *OperativeUnitServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUnitRepo = mocks.NewMockOperativeUnitRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.unitService = service.NewOperativeUnitService(suite.mockUnitRepo, suite.validator)
}

func (suite *OperativeUnitServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OperativeUnitServiceTestSuite) TestCreateUnit_Success() {
	suite.mockUnitRepo.EXPECT().GetByName("North Operations").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUnitRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.OperativeUnit) error {
		u.ID = uuid.New()
		return nil
	})

	resp, err := suite.unitService.CreateUnit(&service.CreateLookupRequest{Name: "North Operations"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "North Operations", resp.Name)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
}

func (suite *OperativeUnitServiceTestSuite) TestCreateUnit_DuplicateName() {
	existing := &models.OperativeUnit{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "North Operations"}
	suite.mockUnitRepo.EXPECT().GetByName("North Operations").Return(existing, nil)

	resp, err := suite.unitService.CreateUnit(&service.CreateLookupRequest{Name: "North Operations"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOperativeUnitExists)
}

func (suite *OperativeUnitServiceTestSuite) TestCreateUnit_EmptyName() {
	resp, err := suite.unitService.CreateUnit(&service.CreateLookupRequest{Name: ""})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *OperativeUnitServiceTestSuite) TestGetAllUnits_Success() {
	units := []models.OperativeUnit{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Logistics"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Maintenance"},
	}
	suite.mockUnitRepo.EXPECT().GetAll().Return(units, nil)

	resp, err := suite.unitService.GetAllUnits()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Logistics", resp[0].Name)
}

func (suite *OperativeUnitServiceTestSuite) TestRenameUnit_Success() {
	unit := &models.OperativeUnit{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Old Name"}
	suite.mockUnitRepo.EXPECT().GetByID(unit.ID).Return(unit, nil)
	suite.mockUnitRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.OperativeUnit) error {
		assert.Equal(suite.T(), "New Name", u.Name)
		return nil
	})

	resp, err := suite.unitService.RenameUnit(unit.ID, &service.RenameLookupRequest{Name: "New Name"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", resp.Name)
}

func (suite *OperativeUnitServiceTestSuite) TestRenameUnit_NotFound() {
	id := uuid.New()
	suite.mockUnitRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.unitService.RenameUnit(id, &service.RenameLookupRequest{Name: "New Name"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOperativeUnitNotFound)
}

func (suite *OperativeUnitServiceTestSuite) TestDeleteUnit_Success() {
	unit := &models.OperativeUnit{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Logistics"}
	suite.mockUnitRepo.EXPECT().GetByID(unit.ID).Return(unit, nil)
	suite.mockUnitRepo.EXPECT().Delete(unit.ID).Return(nil)

	err := suite.unitService.DeleteUnit(unit.ID)

	assert.NoError(suite.T(), err)
}

func (suite *OperativeUnitServiceTestSuite) TestDeleteUnit_NotFound() {
	id := uuid.New()
	suite.mockUnitRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.unitService.DeleteUnit(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOperativeUnitNotFound)
}

func TestOperativeUnitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OperativeUnitServiceTestSuite))
}
