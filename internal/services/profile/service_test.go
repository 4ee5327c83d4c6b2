package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wordparty/wordparty/internal/dependencies/mocks"
	"github.com/wordparty/wordparty/internal/storage/memory"
	"github.com/wordparty/wordparty/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(memory.New(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestKeyFoldsCase() {
	s.Equal("alice", Key("Alice"))
	s.Equal("alice", Key("  ALICE  "))
}

func (s *ServiceSuite) TestTouchCreatesProfile() {
	p, err := s.service.Touch(s.ctx, "Alice", "cat")
	s.Require().NoError(err)
	s.Equal("alice", p.Username)
	s.Equal("cat", p.Avatar)
	s.Equal(0, p.GamesPlayed)
	s.Equal(s.clock.Now(), p.CreatedAt)
}

func (s *ServiceSuite) TestTouchUpdatesAvatar() {
	_, err := s.service.Touch(s.ctx, "alice", "cat")
	s.Require().NoError(err)

	p, err := s.service.Touch(s.ctx, "ALICE", "dog")
	s.Require().NoError(err)
	s.Equal("dog", p.Avatar)

	// Empty avatar keeps the stored one
	p, err = s.service.Touch(s.ctx, "alice", "")
	s.Require().NoError(err)
	s.Equal("dog", p.Avatar)
}

func (s *ServiceSuite) TestRecordResult() {
	_, err := s.service.Touch(s.ctx, "alice", "")
	s.Require().NoError(err)

	s.Require().NoError(s.service.RecordResult(s.ctx, "alice", true))
	s.Require().NoError(s.service.RecordResult(s.ctx, "alice", true))
	s.Require().NoError(s.service.RecordResult(s.ctx, "alice", false))

	p, err := s.service.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(2, p.Wins)
	s.Equal(1, p.Losses)
	s.Equal(3, p.GamesPlayed)
}

func (s *ServiceSuite) TestRecordResultCreatesMissingProfile() {
	s.Require().NoError(s.service.RecordResult(s.ctx, "newbie", false))

	p, err := s.service.Get(s.ctx, "newbie")
	s.Require().NoError(err)
	s.Equal(0, p.Wins)
	s.Equal(1, p.Losses)
	s.Equal(1, p.GamesPlayed)
}

func (s *ServiceSuite) TestBanFlag() {
	_, err := s.service.Touch(s.ctx, "mallory", "")
	s.Require().NoError(err)

	banned, err := s.service.IsBanned(s.ctx, "mallory")
	s.Require().NoError(err)
	s.False(banned)

	s.Require().NoError(s.service.SetBanned(s.ctx, "Mallory", true))

	banned, err = s.service.IsBanned(s.ctx, "MALLORY")
	s.Require().NoError(err)
	s.True(banned)
}

func (s *ServiceSuite) TestIsBannedUnknownUser() {
	banned, err := s.service.IsBanned(s.ctx, "ghost")
	s.Require().NoError(err)
	s.False(banned)
}

func (s *ServiceSuite) TestSetBannedUnknownUserFails() {
	s.Error(s.service.SetBanned(s.ctx, "ghost", true))
}

func (s *ServiceSuite) TestMaintenanceMode() {
	enabled, err := s.service.MaintenanceMode(s.ctx)
	s.Require().NoError(err)
	s.False(enabled)

	s.Require().NoError(s.service.SetMaintenanceMode(s.ctx, true))

	enabled, err = s.service.MaintenanceMode(s.ctx)
	s.Require().NoError(err)
	s.True(enabled)
}

func (s *ServiceSuite) TestList() {
	_, err := s.service.Touch(s.ctx, "alice", "")
	s.Require().NoError(err)
	_, err = s.service.Touch(s.ctx, "bob", "")
	s.Require().NoError(err)

	profiles, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(profiles, 2)
}
