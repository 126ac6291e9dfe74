//go:build unit

package dashboard_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"starclip/dashboard"
	"starclip/domain/availability"
	dashboardmock "starclip/tests/mock/dashboard"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityEditorTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockAPI  *dashboardmock.MockAvailabilityAPI
	editor   *dashboard.AvailabilityEditor
}

func (s *AvailabilityEditorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = dashboardmock.NewMockAvailabilityAPI(s.mockCtrl)
	s.editor = dashboard.NewAvailabilityEditor(s.mockAPI, slog.New(slog.DiscardHandler))
}

func (s *AvailabilityEditorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityEditorSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityEditorTestSuite))
}

func (s *AvailabilityEditorTestSuite) load(week availability.Week) {
	s.mockAPI.EXPECT().FetchAvailability(gomock.Any()).Return(week, nil).Times(1)
	s.Require().NoError(s.editor.Load(context.Background()))
}

func (s *AvailabilityEditorTestSuite) TestEditBeforeLoad() {
	s.Require().ErrorIs(s.editor.Toggle(1), dashboard.ErrScheduleNotLoaded)
	s.Require().ErrorIs(s.editor.SetMaxRequests(1, 3), dashboard.ErrScheduleNotLoaded)
	s.Require().ErrorIs(s.editor.Save(context.Background()), dashboard.ErrScheduleNotLoaded)
}

func (s *AvailabilityEditorTestSuite) TestToggleRules() {
	s.load(availability.DefaultWeek())

	// off forces zero capacity
	s.Require().NoError(s.editor.Toggle(2))
	draft := s.editor.Draft()
	s.False(draft[2].Available)
	s.Equal(0, draft[2].MaxRequests)

	// back on restores the default, not the previous value
	s.Require().NoError(s.editor.SetMaxRequests(3, 18))
	s.Require().NoError(s.editor.Toggle(3))
	s.Require().NoError(s.editor.Toggle(3))
	draft = s.editor.Draft()
	s.True(draft[3].Available)
	s.Equal(availability.DefaultMaxRequests, draft[3].MaxRequests)
}

func (s *AvailabilityEditorTestSuite) TestSetMaxRequestsClampsAndGuards() {
	s.load(availability.DefaultWeek())

	s.Require().NoError(s.editor.SetMaxRequests(0, 99))
	s.Equal(availability.MaxMaxRequests, s.editor.Draft()[0].MaxRequests)

	s.Require().NoError(s.editor.SetMaxRequests(0, -5))
	s.Equal(0, s.editor.Draft()[0].MaxRequests)

	s.Require().NoError(s.editor.Toggle(4))
	s.Require().ErrorIs(s.editor.SetMaxRequests(4, 3), dashboard.ErrDayUnavailable)

	s.Require().ErrorIs(s.editor.SetMaxRequests(9, 3), availability.ErrInvalidDay)
}

func (s *AvailabilityEditorTestSuite) TestResetRestoresSnapshot() {
	s.load(availability.DefaultWeek())

	s.Require().NoError(s.editor.Toggle(1))
	s.Require().NoError(s.editor.SetMaxRequests(5, 12))
	s.True(s.editor.Dirty())

	s.editor.Reset()
	s.False(s.editor.Dirty())
	s.Equal(availability.DefaultWeek(), s.editor.Draft())
}

func (s *AvailabilityEditorTestSuite) TestSavePersistsDraftAndRebasesSnapshot() {
	s.load(availability.DefaultWeek())
	s.Require().NoError(s.editor.SetMaxRequests(6, 2))

	want := availability.DefaultWeek()
	want[6].MaxRequests = 2

	s.mockAPI.EXPECT().SaveAvailability(gomock.Any(), want).Return(want, nil).Times(1)

	s.Require().NoError(s.editor.Save(context.Background()))
	s.False(s.editor.Dirty())
	s.Equal(want, s.editor.Draft())

	// resetting after a save keeps the saved schedule
	s.editor.Reset()
	s.Equal(want, s.editor.Draft())
}

func (s *AvailabilityEditorTestSuite) TestFailedSaveKeepsDraftAndNotice() {
	s.load(availability.DefaultWeek())
	s.Require().NoError(s.editor.Toggle(0))

	s.mockAPI.EXPECT().
		SaveAvailability(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(1)

	s.Require().Error(s.editor.Save(context.Background()))
	s.True(s.editor.Dirty())
	s.NotEmpty(s.editor.Notice())

	draft := s.editor.Draft()
	s.False(draft[0].Available)
}
