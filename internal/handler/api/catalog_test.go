//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"carevacay/internal/domain/catalog"
	"carevacay/internal/handler/api"
	reqdto "carevacay/internal/handler/dto/request"
	resdto "carevacay/internal/handler/dto/response"
	"carevacay/internal/pkg/errs"
	"carevacay/internal/usecase/queries"
	commontest "carevacay/tests/common/httptest"
	queriesmock "carevacay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.POST("/search", s.handler.Search)
	s.router.GET("/properties/:id", s.handler.GetProperty)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestSearch() {
	url := "/search"

	s.Run("passes the filters through and returns the page", func() {
		result := &queries.SearchResult{
			Properties: []*queries.PropertyView{
				{ID: uuid.New(), Title: "Accessible Queenslander", City: "Brisbane"},
			},
			Total: 1,
		}
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any(), catalog.SortPriceLow).Return(result, nil)

		reqBody := reqdto.SearchRequest{Location: "Brisbane", Sort: "price-low"}
		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.SearchResponse
		commontest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(1, resp.Total)
		s.Require().Len(resp.Properties, 1)
		s.Equal("Accessible Queenslander", resp.Properties[0].Title)
	})

	s.Run("unknown sort key falls back to newest", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any(), catalog.SortNewest).
			Return(&queries.SearchResult{Properties: []*queries.PropertyView{}}, nil)

		reqBody := reqdto.SearchRequest{Sort: "popularity"}
		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.SearchResponse
		commontest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Zero(resp.Total)
	})

	s.Run("non JSON body fails binding", func() {
		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object")
		commontest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CatalogHandlerTestSuite) TestGetProperty() {
	s.Run("returns the entry", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetProperty(gomock.Any(), id).
			Return(&queries.PropertyView{ID: id, Title: "Coastal SIL Home"}, nil)

		w := commontest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+id.String(), nil)

		var resp resdto.PropertyResponse
		commontest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Coastal SIL Home", resp.Title)
	})

	s.Run("bad id is a 400", func() {
		w := commontest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/not-a-uuid", nil)
		commontest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid property ID")
	})

	s.Run("unknown id is a 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetProperty(gomock.Any(), id).Return(nil, errs.ErrPropertyNotFound)

		w := commontest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/"+id.String(), nil)
		commontest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Property not found")
	})
}
