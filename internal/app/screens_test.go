package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/cinetix/theater-booking-api/api"
	"github.com/cinetix/theater-booking-api/internal/domain"
	"github.com/cinetix/theater-booking-api/internal/mocks"
	"github.com/cinetix/theater-booking-api/internal/validator"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScreensTestSuite struct {
	suite.Suite
	app        *Application
	screenRepo *mocks.MockScreenRepo
}

func (s *ScreensTestSuite) SetupTest() {
	s.screenRepo = new(mocks.MockScreenRepo)

	s.app = newTestApplication(func(a *Application) {
		a.screenRepo = s.screenRepo
	})
}

func TestScreensSuite(t *testing.T) {
	suite.Run(t, new(ScreensTestSuite))
}

func (s *ScreensTestSuite) TestCreateScreen() {
	validRequest := api.CreateScreenRequest{
		ScreenNumber: 4,
		SeatTypes: []api.SeatBlockRequest{
			{SeatType: "PLATINUM", Rows: 2, Columns: 5, Order: 1},
			{SeatType: "GOLD", Rows: 5, Columns: 5, Order: 2},
			{SeatType: "SILVER", Rows: 8, Columns: 5, Order: 3},
		},
	}

	tests := []struct {
		name           string
		request        api.CreateScreenRequest
		setupMocks     func()
		wantStatus     int
		wantResponse   *api.ScreenResponse
		wantErrMessage string
	}{
		{
			name: "should fail when seat type is unknown",
			request: api.CreateScreenRequest{
				ScreenNumber: 4,
				SeatTypes: []api.SeatBlockRequest{
					{SeatType: "DIAMOND", Rows: 2, Columns: 5, Order: 1},
				},
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrSeatType,
		},
		{
			name: "should fail when a block has no rows",
			request: api.CreateScreenRequest{
				ScreenNumber: 4,
				SeatTypes: []api.SeatBlockRequest{
					{SeatType: "GOLD", Columns: 5, Order: 1},
				},
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:    "should fail when block orders are not a dense sequence",
			request: validRequest,
			setupMocks: func() {
				s.screenRepo.On("CreateWithSeats", mock.Anything, 4, mock.Anything).
					Return(nil, domain.ErrInvalidBlockOrder)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrInvalidBlockOrder.Error(),
		},
		{
			name:    "should fail when screen number is already taken",
			request: validRequest,
			setupMocks: func() {
				s.screenRepo.On("CreateWithSeats", mock.Anything, 4, mock.Anything).
					Return(nil, domain.ErrScreenNumberTaken)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrScreenNumberTaken.Error(),
		},
		{
			name:    "should fail when database error occurs",
			request: validRequest,
			setupMocks: func() {
				s.screenRepo.On("CreateWithSeats", mock.Anything, 4, mock.Anything).
					Return(nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:    "should create screen with valid input",
			request: validRequest,
			setupMocks: func() {
				s.screenRepo.On("CreateWithSeats", mock.Anything, 4, []domain.SeatBlock{
					{SeatType: domain.SeatTypePlatinum, Rows: 2, Columns: 5, Order: 1},
					{SeatType: domain.SeatTypeGold, Rows: 5, Columns: 5, Order: 2},
					{SeatType: domain.SeatTypeSilver, Rows: 8, Columns: 5, Order: 3},
				}).Return(&domain.Screen{
					ID:           1,
					ScreenNumber: 4,
					TotalSeat:    75,
					SeatTypes: []domain.SeatTypeClass{
						{ID: 1, ScreenID: 1, SeatType: domain.SeatTypePlatinum},
						{ID: 2, ScreenID: 1, SeatType: domain.SeatTypeGold},
						{ID: 3, ScreenID: 1, SeatType: domain.SeatTypeSilver},
					},
				}, nil)
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.ScreenResponse{
				Id:           1,
				ScreenNumber: 4,
				TotalSeat:    75,
				SeatTypes: []api.SeatTypeInfo{
					{Id: 1, SeatType: "PLATINUM"},
					{Id: 2, SeatType: "GOLD"},
					{Id: 3, SeatType: "SILVER"},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.screenRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/screens", tt.request)
			s.app.CreateScreen(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.ScreenResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *ScreensTestSuite) TestListScreens() {
	s.Run("should return all screens", func() {
		s.SetupTest()

		s.screenRepo.On("GetAll", mock.Anything).Return([]domain.Screen{
			{ID: 1, ScreenNumber: 1, TotalSeat: 75},
			{ID: 2, ScreenNumber: 2, TotalSeat: 120},
		}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/screens", nil)
		s.app.ListScreens(w, r)

		s.Equal(http.StatusOK, w.Code)

		var response api.ScreenListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
		s.Len(response.Screens, 2)
		s.Equal(120, response.Screens[1].TotalSeat)
	})

	s.Run("should fail when database error occurs", func() {
		s.SetupTest()

		s.screenRepo.On("GetAll", mock.Anything).Return(nil, fmt.Errorf("database error"))

		w, r := executeRequest(s.T(), http.MethodGet, "/screens", nil)
		s.app.ListScreens(w, r)

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *ScreensTestSuite) TestDeleteScreen() {
	tests := []struct {
		name       string
		screenID   string
		setupMocks func()
		wantStatus int
	}{
		{
			name:       "should fail when screen ID is not a positive integer",
			screenID:   "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "should fail when screen does not exist",
			screenID: "99",
			setupMocks: func() {
				s.screenRepo.On("Delete", mock.Anything, 99).Return(domain.ErrRecordNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:     "should delete screen",
			screenID: "1",
			setupMocks: func() {
				s.screenRepo.On("Delete", mock.Anything, 1).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.screenRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodDelete, "/screens/"+tt.screenID, nil)
			r = withURLParams(r, map[string]string{"screenId": tt.screenID})
			s.app.DeleteScreen(w, r)

			s.Equal(tt.wantStatus, w.Code)
		})
	}
}
