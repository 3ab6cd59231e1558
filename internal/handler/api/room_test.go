//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRoomQueries
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockQueries)

	s.router.GET("/rooms", s.handler.ListRooms)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	url := "/rooms"

	s.Run("success: returns 200 OK with available rooms", func() {
		views := []*queries.RoomView{
			builder.NewRoomBuilder().WithNumber("101").BuildView(),
			builder.NewRoomBuilder().WithNumber("201").WithType("deluxe").WithPrice(200).BuildView(),
		}

		s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("101", response[0].RoomNumber)
		s.Equal("deluxe", response[1].RoomType)
		s.Equal(int32(200), response[1].PricePerNight)
	})

	s.Run("success: empty inventory yields an empty list", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return([]*queries.RoomView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
