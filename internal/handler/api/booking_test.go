//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockQueries)

	s.router.POST("/bookings/quote", s.handler.Quote)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validQuoteRequest() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		PropertyID: uuid.New(),
		CheckIn:    "2025-07-10",
		CheckOut:   "2025-07-13",
		Guests:     2,
	}
}

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"

	s.Run("success returns the breakdown", func() {
		reqBody := validQuoteRequest()
		view := &queries.QuoteView{
			PropertyID:       reqBody.PropertyID,
			Nights:           3,
			SubtotalCents:    30000,
			CleaningFeeCents: 5000,
			TotalCents:       35000,
		}
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(view, nil)

		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.QuoteResponse
		commontest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(3, resp.Nights)
		s.Equal(int64(35000), resp.TotalCents)
	})

	s.Run("missing fields fail binding", func() {
		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"check_in": "2025-07-10",
		})
		commontest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("malformed dates are rejected before the usecase", func() {
		reqBody := validQuoteRequest()
		reqBody.CheckIn = "10/07/2025"
		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		commontest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "ISO formatted")
	})

	s.Run("unknown property maps to 404", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, errs.ErrPropertyNotFound)

		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteRequest())
		commontest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Property not found")
	})

	s.Run("zero guests reaches the usecase and gets the coded error", func() {
		reqBody := validQuoteRequest()
		reqBody.Guests = 0
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, errs.ErrGuestCountExceeded)

		w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		commontest.AssertErrorCodeResponse(s.T(), w, http.StatusUnprocessableEntity, api.CodeGuestCountExceeded)
	})

	s.Run("validation errors carry machine readable codes", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{name: "invalid date range", err: errs.ErrInvalidDateRange, wantStatus: http.StatusBadRequest, wantCode: api.CodeInvalidDateRange},
			{name: "stay too short", err: errs.ErrStayTooShort, wantStatus: http.StatusUnprocessableEntity, wantCode: api.CodeStayTooShort},
			{name: "stay too long", err: errs.ErrStayTooLong, wantStatus: http.StatusUnprocessableEntity, wantCode: api.CodeStayTooLong},
			{name: "guest count", err: errs.ErrGuestCountExceeded, wantStatus: http.StatusUnprocessableEntity, wantCode: api.CodeGuestCountExceeded},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				w := commontest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteRequest())
				commontest.AssertErrorCodeResponse(s.T(), w, tc.wantStatus, tc.wantCode)
			})
		}
	})
}
