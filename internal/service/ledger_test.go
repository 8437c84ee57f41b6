package service_test

import (
	"errors"
	"testing"
	"time"

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

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRequestRepo  *mocks.MockRequestRepositoryInterface
	mockRecordRepo   *mocks.MockFulfillmentRecordRepositoryInterface
	mockAssetRepo    *mocks.MockAssetRepositoryInterface
	mockUnitRepo     *mocks.MockOperativeUnitRepositoryInterface
	mockCategoryRepo *mocks.MockCategoryRepositoryInterface
	ledgerService    *service.LedgerService
	validator        *validator.Validate
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRequestRepo = mocks.NewMockRequestRepositoryInterface(suite.ctrl)
	suite.mockRecordRepo = mocks.NewMockFulfillmentRecordRepositoryInterface(suite.ctrl)
	suite.mockAssetRepo = mocks.NewMockAssetRepositoryInterface(suite.ctrl)
	suite.mockUnitRepo = mocks.NewMockOperativeUnitRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.ledgerService = service.NewLedgerService(
		suite.mockRequestRepo,
		suite.mockRecordRepo,
		suite.mockAssetRepo,
		suite.mockUnitRepo,
		suite.mockCategoryRepo,
		suite.validator,
	)
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// makeRequest builds a pending request with loaded lookup relations
func (suite *LedgerServiceTestSuite) makeRequest(quantity int) *models.Request {
	unitID := uuid.New()
	categoryID := uuid.New()
	return &models.Request{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		RequestDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		OperativeUnitID: unitID,
		CategoryID:      categoryID,
		Description:     "Hydraulic excavator",
		Capacity:        "20 ton",
		Quantity:        quantity,
		NeedDate:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:          models.RequestStatusPending,
		OperativeUnit:   models.OperativeUnit{BaseModel: models.BaseModel{ID: unitID}, Name: "North Operations"},
		Category:        models.Category{BaseModel: models.BaseModel{ID: categoryID}, Name: "Excavator"},
	}
}

// ownedRecord builds an OWNED fulfillment record for the given request
func ownedRecord(requestID uuid.UUID, asset *models.Asset) models.FulfillmentRecord {
	availability := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return models.FulfillmentRecord{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		RequestID:        requestID,
		Channel:          models.ChannelOwned,
		Quantity:         1,
		ManagedAt:        time.Now(),
		AssetID:          &asset.ID,
		AvailabilityDate: &availability,
		Asset:            asset,
	}
}

// ------------------------------
// CreateRequest
// ------------------------------

func (suite *LedgerServiceTestSuite) TestCreateRequest_Success() {
	request := suite.makeRequest(3)

	suite.mockUnitRepo.EXPECT().GetByID(request.OperativeUnitID).Return(&request.OperativeUnit, nil)
	suite.mockCategoryRepo.EXPECT().GetByID(request.CategoryID).Return(&request.Category, nil)
	suite.mockRequestRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Request) error {
		assert.Equal(suite.T(), models.RequestStatusPending, r.Status)
		assert.Equal(suite.T(), 3, r.Quantity)
		r.ID = request.ID
		return nil
	})
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)

	resp, err := suite.ledgerService.CreateRequest(&service.CreateRequestRequest{
		RequestDate:     "2026-03-10",
		OperativeUnitID: request.OperativeUnitID,
		CategoryID:      request.CategoryID,
		Description:     "Hydraulic excavator",
		Capacity:        "20 ton",
		Quantity:        3,
		NeedDate:        "2026-05-01",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), models.RequestStatusPending, resp.Status)
	assert.Equal(suite.T(), 0, resp.Fulfilled)
	assert.Equal(suite.T(), 3, resp.Remaining)
	assert.Equal(suite.T(), "North Operations", resp.OperativeUnit)
}

func (suite *LedgerServiceTestSuite) TestCreateRequest_BadDate() {
	request := suite.makeRequest(1)
	resp, err := suite.ledgerService.CreateRequest(&service.CreateRequestRequest{
		RequestDate:     "10/03/2026",
		OperativeUnitID: request.OperativeUnitID,
		CategoryID:      request.CategoryID,
		Description:     "Excavator",
		Quantity:        1,
		NeedDate:        "2026-05-01",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *LedgerServiceTestSuite) TestCreateRequest_UnitNotFound() {
	request := suite.makeRequest(1)
	suite.mockUnitRepo.EXPECT().GetByID(request.OperativeUnitID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.ledgerService.CreateRequest(&service.CreateRequestRequest{
		RequestDate:     "2026-03-10",
		OperativeUnitID: request.OperativeUnitID,
		CategoryID:      request.CategoryID,
		Description:     "Excavator",
		Quantity:        1,
		NeedDate:        "2026-05-01",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOperativeUnitNotFound)
}

// ------------------------------
// AssignOwned
// ------------------------------

func (suite *LedgerServiceTestSuite) TestAssignOwned_Partial() {
	request := suite.makeRequest(3)
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-001", Brand: "Caterpillar", Model: "320D"}

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	suite.mockAssetRepo.EXPECT().GetByID(asset.ID).Return(asset, nil)
	suite.mockRecordRepo.EXPECT().
		CreateBatchWithStatus(gomock.Any(), request.ID, models.RequestStatusPartial).
		DoAndReturn(func(records []models.FulfillmentRecord, requestID uuid.UUID, status models.RequestStatus) error {
			assert.Len(suite.T(), records, 1)
			assert.Equal(suite.T(), models.ChannelOwned, records[0].Channel)
			assert.Equal(suite.T(), 1, records[0].Quantity)
			assert.Equal(suite.T(), asset.ID, *records[0].AssetID)
			return nil
		})

	updated := *request
	updated.Status = models.RequestStatusPartial
	updated.FulfillmentRecords = []models.FulfillmentRecord{ownedRecord(request.ID, asset)}
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(&updated, nil)

	resp, err := suite.ledgerService.AssignOwned(request.ID, &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{
			{AssetID: &asset.ID, AvailabilityDate: "2026-04-01"},
		},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusPartial, resp.Status)
	assert.Equal(suite.T(), 1, resp.Fulfilled)
	assert.Equal(suite.T(), 2, resp.Remaining)
	assert.Len(suite.T(), resp.Records, 1)
	assert.Equal(suite.T(), "EQ-001", resp.Records[0].AssetInternalID)
}

func (suite *LedgerServiceTestSuite) TestAssignOwned_FillingQuantityCompletes() {
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-002", Brand: "Komatsu", Model: "PC200"}
	request := suite.makeRequest(2)
	request.Status = models.RequestStatusPartial
	request.FulfillmentRecords = []models.FulfillmentRecord{ownedRecord(request.ID, asset)}

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	suite.mockAssetRepo.EXPECT().GetByID(asset.ID).Return(asset, nil)
	suite.mockRecordRepo.EXPECT().
		CreateBatchWithStatus(gomock.Any(), request.ID, models.RequestStatusCompleted).
		Return(nil)

	updated := *request
	updated.Status = models.RequestStatusCompleted
	updated.FulfillmentRecords = append(updated.FulfillmentRecords, ownedRecord(request.ID, asset))
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(&updated, nil)

	resp, err := suite.ledgerService.AssignOwned(request.ID, &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{
			{AssetID: &asset.ID, AvailabilityDate: "2026-04-01"},
		},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusCompleted, resp.Status)
	assert.Equal(suite.T(), 0, resp.Remaining)
}

func (suite *LedgerServiceTestSuite) TestAssignOwned_ExceedsRemaining() {
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-003", Brand: "Volvo", Model: "EC220"}
	request := suite.makeRequest(1)
	request.Status = models.RequestStatusPartial
	request.FulfillmentRecords = []models.FulfillmentRecord{ownedRecord(request.ID, asset)}

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)

	resp, err := suite.ledgerService.AssignOwned(request.ID, &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{
			{AssetID: &asset.ID, AvailabilityDate: "2026-04-01"},
		},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentExceedsTotal)
}

func (suite *LedgerServiceTestSuite) TestAssignOwned_MissingAvailabilityDate() {
	request := suite.makeRequest(2)
	assetID := uuid.New()

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)

	resp, err := suite.ledgerService.AssignOwned(request.ID, &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{
			{AssetID: &assetID},
		},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAvailabilityDateNeeded)
}

func (suite *LedgerServiceTestSuite) TestAssignOwned_RequestNotFound() {
	requestID := uuid.New()
	assetID := uuid.New()
	suite.mockRequestRepo.EXPECT().GetWithRecords(requestID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.ledgerService.AssignOwned(requestID, &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{
			{AssetID: &assetID, AvailabilityDate: "2026-04-01"},
		},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestNotFound)
}

func (suite *LedgerServiceTestSuite) TestAssignOwned_NoItems() {
	resp, err := suite.ledgerService.AssignOwned(uuid.New(), &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{},
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestAssignOwned_RegistersInlineAsset() {
	request := suite.makeRequest(2)

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	// Internal id is normalized to uppercase before the lookup
	suite.mockAssetRepo.EXPECT().GetByInternalID("EQ-100").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAssetRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Asset) error {
		assert.Equal(suite.T(), "EQ-100", a.InternalID)
		assert.Equal(suite.T(), "Caterpillar", a.Brand)
		a.ID = uuid.New()
		return nil
	})
	suite.mockRecordRepo.EXPECT().
		CreateBatchWithStatus(gomock.Any(), request.ID, models.RequestStatusPartial).
		Return(nil)

	updated := *request
	updated.Status = models.RequestStatusPartial
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(&updated, nil)

	resp, err := suite.ledgerService.AssignOwned(request.ID, &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{
			{
				NewAsset: &service.NewAssetPayload{
					InternalID: " eq-100 ",
					Brand:      "Caterpillar",
					Model:      "320D",
				},
				AvailabilityDate: "2026-04-01",
			},
		},
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *LedgerServiceTestSuite) TestAssignOwned_ReusesExistingInternalID() {
	request := suite.makeRequest(2)
	existing := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-200", Brand: "Volvo", Model: "L60"}

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	suite.mockAssetRepo.EXPECT().GetByInternalID("EQ-200").Return(existing, nil)
	suite.mockRecordRepo.EXPECT().
		CreateBatchWithStatus(gomock.Any(), request.ID, models.RequestStatusPartial).
		DoAndReturn(func(records []models.FulfillmentRecord, requestID uuid.UUID, status models.RequestStatus) error {
			assert.Equal(suite.T(), existing.ID, *records[0].AssetID)
			return nil
		})

	updated := *request
	updated.Status = models.RequestStatusPartial
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(&updated, nil)

	_, err := suite.ledgerService.AssignOwned(request.ID, &service.AssignOwnedRequest{
		Items: []service.OwnedAssignmentItem{
			{
				NewAsset: &service.NewAssetPayload{
					InternalID: "EQ-200",
					Brand:      "Volvo",
					Model:      "L60",
				},
				AvailabilityDate: "2026-04-01",
			},
		},
	})

	assert.NoError(suite.T(), err)
}

// ------------------------------
// AssignRental
// ------------------------------

func (suite *LedgerServiceTestSuite) TestAssignRental_Partial() {
	request := suite.makeRequest(3)

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	suite.mockRecordRepo.EXPECT().
		CreateBatchWithStatus(gomock.Any(), request.ID, models.RequestStatusPartial).
		DoAndReturn(func(records []models.FulfillmentRecord, requestID uuid.UUID, status models.RequestStatus) error {
			assert.Len(suite.T(), records, 2)
			assert.Equal(suite.T(), models.ChannelRental, records[0].Channel)
			assert.Equal(suite.T(), 6, *records[0].RentalMonths)
			assert.Equal(suite.T(), 12, *records[1].RentalMonths)
			return nil
		})

	updated := *request
	updated.Status = models.RequestStatusPartial
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(&updated, nil)

	_, err := suite.ledgerService.AssignRental(request.ID, &service.AssignRentalRequest{
		DurationsMonths: []int{6, 12},
	})

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestAssignRental_FillingQuantityCompletes() {
	request := suite.makeRequest(2)

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	suite.mockRecordRepo.EXPECT().
		CreateBatchWithStatus(gomock.Any(), request.ID, models.RequestStatusCompleted).
		Return(nil)

	updated := *request
	updated.Status = models.RequestStatusCompleted
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(&updated, nil)

	resp, err := suite.ledgerService.AssignRental(request.ID, &service.AssignRentalRequest{
		DurationsMonths: []int{3, 3},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusCompleted, resp.Status)
}

func (suite *LedgerServiceTestSuite) TestAssignRental_InvalidDuration() {
	request := suite.makeRequest(3)
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)

	resp, err := suite.ledgerService.AssignRental(request.ID, &service.AssignRentalRequest{
		DurationsMonths: []int{0},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRentalDuration)
}

func (suite *LedgerServiceTestSuite) TestAssignRental_ExceedsRemaining() {
	request := suite.makeRequest(1)
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)

	resp, err := suite.ledgerService.AssignRental(request.ID, &service.AssignRentalRequest{
		DurationsMonths: []int{6, 6},
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentExceedsTotal)
}

// ------------------------------
// AssignPurchase
// ------------------------------

func (suite *LedgerServiceTestSuite) TestAssignPurchase_ConsumesRemainderStaysPartial() {
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-004", Brand: "JCB", Model: "3CX"}
	request := suite.makeRequest(5)
	request.Status = models.RequestStatusPartial
	request.FulfillmentRecords = []models.FulfillmentRecord{
		ownedRecord(request.ID, asset),
		ownedRecord(request.ID, asset),
	}

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	// Purchase covers the full remainder but never auto-completes
	suite.mockRecordRepo.EXPECT().
		CreateBatchWithStatus(gomock.Any(), request.ID, models.RequestStatusPartial).
		DoAndReturn(func(records []models.FulfillmentRecord, requestID uuid.UUID, status models.RequestStatus) error {
			assert.Len(suite.T(), records, 1)
			assert.Equal(suite.T(), models.ChannelPurchase, records[0].Channel)
			assert.Equal(suite.T(), 3, records[0].Quantity)
			assert.Equal(suite.T(), "Acme Machinery", *records[0].Vendor)
			return nil
		})

	updated := *request
	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(&updated, nil)

	resp, err := suite.ledgerService.AssignPurchase(request.ID, &service.AssignPurchaseRequest{
		Vendor:       "Acme Machinery",
		DeliveryDate: "2026-06-15",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusPartial, resp.Status)
}

func (suite *LedgerServiceTestSuite) TestAssignPurchase_NothingRemaining_NoOp() {
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-005", Brand: "JCB", Model: "3CX"}
	request := suite.makeRequest(1)
	request.Status = models.RequestStatusPartial
	request.FulfillmentRecords = []models.FulfillmentRecord{ownedRecord(request.ID, asset)}

	suite.mockRequestRepo.EXPECT().GetWithRecords(request.ID).Return(request, nil)
	// No batch call: nothing remains to cover

	resp, err := suite.ledgerService.AssignPurchase(request.ID, &service.AssignPurchaseRequest{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusPartial, resp.Status)
	assert.Equal(suite.T(), 0, resp.Remaining)
}

// ------------------------------
// EditRow
// ------------------------------

func (suite *LedgerServiceTestSuite) TestEditRow_RentalRecordFields() {
	requestID := uuid.New()
	months := 6
	record := &models.FulfillmentRecord{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		RequestID:    requestID,
		Channel:      models.ChannelRental,
		Quantity:     1,
		RentalMonths: &months,
	}

	suite.mockRecordRepo.EXPECT().GetByID(record.ID).Return(record, nil)
	suite.mockRequestRepo.EXPECT().Update(requestID, gomock.Any()).DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
		assert.Equal(suite.T(), "Updated description", updates["description"])
		return nil
	})
	suite.mockRecordRepo.EXPECT().Update(record.ID, gomock.Any()).DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
		assert.Equal(suite.T(), 9, updates["rental_months"])
		return nil
	})

	description := "Updated description"
	newMonths := 9
	err := suite.ledgerService.EditRow(record.ID, &service.EditRowRequest{
		Description:  &description,
		RentalMonths: &newMonths,
	})

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestEditRow_ChannelFieldIgnoredOnOtherChannel() {
	requestID := uuid.New()
	record := &models.FulfillmentRecord{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RequestID: requestID,
		Channel:   models.ChannelOwned,
		Quantity:  1,
	}

	suite.mockRecordRepo.EXPECT().GetByID(record.ID).Return(record, nil)
	// Vendor applies only to PURCHASE rows, so no update lands anywhere

	vendor := "Acme Machinery"
	err := suite.ledgerService.EditRow(record.ID, &service.EditRowRequest{
		Vendor: &vendor,
	})

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestEditRow_RequestRow_QuantityNeverRecomputesStatus() {
	request := suite.makeRequest(3)

	suite.mockRecordRepo.EXPECT().GetByID(request.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRequestRepo.EXPECT().Update(request.ID, gomock.Any()).DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
		assert.Equal(suite.T(), 10, updates["quantity"])
		return nil
	})

	quantity := 10
	err := suite.ledgerService.EditRow(request.ID, &service.EditRowRequest{
		Quantity: &quantity,
	})

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestEditRow_VanishedRow_SilentNoOp() {
	rowID := uuid.New()
	suite.mockRecordRepo.EXPECT().GetByID(rowID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRequestRepo.EXPECT().GetByID(rowID).Return(nil, gorm.ErrRecordNotFound)

	description := "gone"
	err := suite.ledgerService.EditRow(rowID, &service.EditRowRequest{Description: &description})

	assert.NoError(suite.T(), err)
}

// ------------------------------
// DeleteRow
// ------------------------------

func (suite *LedgerServiceTestSuite) TestDeleteRow_Record_StatusUntouched() {
	record := &models.FulfillmentRecord{
		BaseModel: models.BaseModel{ID: uuid.New()},
		RequestID: uuid.New(),
		Channel:   models.ChannelRental,
		Quantity:  1,
	}

	suite.mockRecordRepo.EXPECT().GetByID(record.ID).Return(record, nil)
	suite.mockRecordRepo.EXPECT().Delete(record.ID).Return(nil)
	// No status update or recompute expected

	err := suite.ledgerService.DeleteRow(record.ID)

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestDeleteRow_RequestWithRecords_Rejected() {
	request := suite.makeRequest(2)

	suite.mockRecordRepo.EXPECT().GetByID(request.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRequestRepo.EXPECT().CountRecords(request.ID).Return(int64(2), nil)

	err := suite.ledgerService.DeleteRow(request.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestHasRecords)
}

func (suite *LedgerServiceTestSuite) TestDeleteRow_RequestWithoutRecords() {
	request := suite.makeRequest(2)

	suite.mockRecordRepo.EXPECT().GetByID(request.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRequestRepo.EXPECT().CountRecords(request.ID).Return(int64(0), nil)
	suite.mockRequestRepo.EXPECT().Delete(request.ID).Return(nil)

	err := suite.ledgerService.DeleteRow(request.ID)

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestDeleteRow_Vanished_SilentNoOp() {
	rowID := uuid.New()
	suite.mockRecordRepo.EXPECT().GetByID(rowID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRequestRepo.EXPECT().GetByID(rowID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.ledgerService.DeleteRow(rowID)

	assert.NoError(suite.T(), err)
}

// ------------------------------
// MarkCompleted / RevertCompleted
// ------------------------------

func (suite *LedgerServiceTestSuite) TestMarkCompleted_ClosesRegardlessOfFulfillment() {
	request := suite.makeRequest(5)

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRequestRepo.EXPECT().UpdateStatus(request.ID, models.RequestStatusCompleted).Return(nil)

	err := suite.ledgerService.MarkCompleted(request.ID)

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestMarkCompleted_Vanished_SilentNoOp() {
	requestID := uuid.New()
	suite.mockRequestRepo.EXPECT().GetByID(requestID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.ledgerService.MarkCompleted(requestID)

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestRevertCompleted_ReopensAsPartial() {
	request := suite.makeRequest(5)
	request.Status = models.RequestStatusCompleted

	suite.mockRequestRepo.EXPECT().GetByID(request.ID).Return(request, nil)
	suite.mockRequestRepo.EXPECT().UpdateStatus(request.ID, models.RequestStatusPartial).Return(nil)

	err := suite.ledgerService.RevertCompleted(request.ID)

	assert.NoError(suite.T(), err)
}

func (suite *LedgerServiceTestSuite) TestRevertCompleted_Vanished_SilentNoOp() {
	requestID := uuid.New()
	suite.mockRequestRepo.EXPECT().GetByID(requestID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.ledgerService.RevertCompleted(requestID)

	assert.NoError(suite.T(), err)
}

// ------------------------------
// ListRows (flattened dashboard view)
// ------------------------------

func (suite *LedgerServiceTestSuite) TestListRows_SyntheticPendingRemainder() {
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-006", Brand: "Caterpillar", Model: "D6"}
	request := suite.makeRequest(3)
	request.Status = models.RequestStatusPartial
	request.FulfillmentRecords = []models.FulfillmentRecord{ownedRecord(request.ID, asset)}

	suite.mockRequestRepo.EXPECT().GetAll().Return([]models.Request{*request}, nil)

	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Total)

	recordRow := resp.Rows[0]
	assert.Equal(suite.T(), service.RowStatusOwned, recordRow.Status)
	assert.Equal(suite.T(), 1, recordRow.Quantity)
	assert.Equal(suite.T(), "EQ-006", recordRow.AssetInternalID)
	assert.NotNil(suite.T(), recordRow.RecordID)

	pendingRow := resp.Rows[1]
	assert.Equal(suite.T(), service.RowStatusPending, pendingRow.Status)
	assert.Equal(suite.T(), 2, pendingRow.Quantity)
	assert.Equal(suite.T(), 3, pendingRow.TotalQuantity)
	assert.Equal(suite.T(), request.ID, pendingRow.RowID)
	assert.Nil(suite.T(), pendingRow.RecordID)
}

func (suite *LedgerServiceTestSuite) TestListRows_CompletedRequestHidesRemainder() {
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-007", Brand: "Komatsu", Model: "WA320"}
	request := suite.makeRequest(3)
	request.Status = models.RequestStatusCompleted
	request.FulfillmentRecords = []models.FulfillmentRecord{ownedRecord(request.ID, asset)}

	suite.mockRequestRepo.EXPECT().GetAll().Return([]models.Request{*request}, nil)

	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{})

	assert.NoError(suite.T(), err)
	// Only the record row: completed requests never show a pending remainder
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), service.RowStatusCompleted, resp.Rows[0].Status)
}

func (suite *LedgerServiceTestSuite) TestListRows_FreshRequestSingleRow() {
	request := suite.makeRequest(4)

	suite.mockRequestRepo.EXPECT().GetAll().Return([]models.Request{*request}, nil)

	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), service.RowStatusPending, resp.Rows[0].Status)
	assert.Equal(suite.T(), 4, resp.Rows[0].Quantity)
}

func (suite *LedgerServiceTestSuite) TestListRows_CompletedRequestWithoutRecordsStillVisible() {
	request := suite.makeRequest(4)
	request.Status = models.RequestStatusCompleted

	suite.mockRequestRepo.EXPECT().GetAll().Return([]models.Request{*request}, nil)

	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), service.RowStatusCompleted, resp.Rows[0].Status)
	assert.Equal(suite.T(), request.ID, resp.Rows[0].RowID)
	assert.Equal(suite.T(), 4, resp.Rows[0].Quantity)
	assert.Nil(suite.T(), resp.Rows[0].RecordID)
}

func (suite *LedgerServiceTestSuite) TestListRows_StatusFilter() {
	asset := &models.Asset{BaseModel: models.BaseModel{ID: uuid.New()}, InternalID: "EQ-008", Brand: "Volvo", Model: "A25"}
	request := suite.makeRequest(3)
	request.Status = models.RequestStatusPartial
	request.FulfillmentRecords = []models.FulfillmentRecord{ownedRecord(request.ID, asset)}

	suite.mockRequestRepo.EXPECT().GetAll().Return([]models.Request{*request}, nil)

	status := service.RowStatusPending
	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{Status: &status})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), service.RowStatusPending, resp.Rows[0].Status)
}

func (suite *LedgerServiceTestSuite) TestListRows_SearchFilter() {
	first := suite.makeRequest(1)
	first.Description = "Tower crane for high rise"
	second := suite.makeRequest(1)
	second.Description = "Portable generator"

	suite.mockRequestRepo.EXPECT().GetAll().Return([]models.Request{*first, *second}, nil)

	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{Search: "crane"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), "Tower crane for high rise", resp.Rows[0].Description)
}

func (suite *LedgerServiceTestSuite) TestListRows_UnitFilter() {
	first := suite.makeRequest(1)
	second := suite.makeRequest(1)

	suite.mockRequestRepo.EXPECT().GetAll().Return([]models.Request{*first, *second}, nil)

	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{OperativeUnitID: &first.OperativeUnitID})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), first.ID, resp.Rows[0].RequestID)
}

func (suite *LedgerServiceTestSuite) TestListRows_RepositoryError() {
	suite.mockRequestRepo.EXPECT().GetAll().Return(nil, errors.New("db failed"))

	resp, err := suite.ledgerService.ListRows(service.ListRowsFilters{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to list requests")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
