package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"equipment-assignment-backend/internal/api/handlers"
	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/mocks"
	"equipment-assignment-backend/internal/service"
	"equipment-assignment-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCategoryServiceInterface
	router      *gin.Engine
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCategoryServiceInterface(suite.ctrl)

	handler := handlers.NewCategoryHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/api/v1/categories", handler.CreateCategory)
	suite.router.GET("/api/v1/categories", handler.ListCategories)
	suite.router.PUT("/api/v1/categories/:id", handler.RenameCategory)
	suite.router.DELETE("/api/v1/categories/:id", handler.DeleteCategory)
}

func (suite *CategoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CategoryHandlerTestSuite) performJSON(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	resp := &service.LookupResponse{ID: uuid.New(), Name: "Excavator"}
	suite.mockService.EXPECT().CreateCategory(gomock.Any()).Return(resp, nil)

	w := suite.performJSON(http.MethodPost, "/api/v1/categories", service.CreateLookupRequest{Name: "Excavator"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.LookupResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Excavator", got.Name)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Duplicate() {
	suite.mockService.EXPECT().CreateCategory(gomock.Any()).Return(nil, apperrors.ErrCategoryExists)

	w := suite.performJSON(http.MethodPost, "/api/v1/categories", service.CreateLookupRequest{Name: "Excavator"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already exists")
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_InvalidBody() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Success() {
	categories := []service.LookupResponse{
		{ID: uuid.New(), Name: "Excavator"},
		{ID: uuid.New(), Name: "Generator"},
	}
	suite.mockService.EXPECT().GetAllCategories().Return(categories, nil)

	w := suite.performJSON(http.MethodGet, "/api/v1/categories", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []service.LookupResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 2)
}

func (suite *CategoryHandlerTestSuite) TestRenameCategory_Success() {
	id := uuid.New()
	resp := &service.LookupResponse{ID: id, Name: "Loader"}
	suite.mockService.EXPECT().RenameCategory(id, gomock.Any()).Return(resp, nil)

	w := suite.performJSON(http.MethodPut, "/api/v1/categories/"+id.String(), service.RenameLookupRequest{Name: "Loader"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestRenameCategory_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().RenameCategory(id, gomock.Any()).Return(nil, apperrors.ErrCategoryNotFound)

	w := suite.performJSON(http.MethodPut, "/api/v1/categories/"+id.String(), service.RenameLookupRequest{Name: "Loader"})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestRenameCategory_InvalidUUID() {
	w := suite.performJSON(http.MethodPut, "/api/v1/categories/not-a-uuid", service.RenameLookupRequest{Name: "Loader"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteCategory(id).Return(nil)

	w := suite.performJSON(http.MethodDelete, "/api/v1/categories/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteCategory(id).Return(apperrors.ErrCategoryNotFound)

	w := suite.performJSON(http.MethodDelete, "/api/v1/categories/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
