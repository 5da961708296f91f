package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo  func() Repository
	teardown func()
	repo     Repository
	ctx      context.Context
	testNow  time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
	s.testNow = time.Date(2024, 5, 30, 18, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.teardown != nil {
		s.teardown()
	}
}

func (s *RepositoryTestSuite) newSession(date string, memberIDs ...string) *models.Session {
	members := make([]models.Member, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, models.Member{ID: id, Name: "Member " + id})
	}
	slot := models.Slot{Date: date, Time: "19:00"}
	return &models.Session{
		ID:        slot.Key(),
		Date:      slot.Date,
		Time:      slot.Time,
		Members:   members,
		CreatedAt: s.testNow,
		Status:    models.SessionStatusScheduled,
	}
}

func (s *RepositoryTestSuite) TestSaveAndGetSession() {
	session := s.newSession("2024-06-01", "1", "2", "3")

	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: session})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "2024-06-01-19:00"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("2024-06-01-19:00", retrieved.ID)
	s.Equal("2024-06-01", retrieved.Date)
	s.Equal("19:00", retrieved.Time)
	s.Equal(models.SessionStatusScheduled, retrieved.Status)
	s.Len(retrieved.Members, 3)
	s.Equal("Member 1", retrieved.Members[0].Name)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
	s.False(retrieved.HasCalendarEvent())
}

func (s *RepositoryTestSuite) TestGetNonExistentSession() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "2024-06-01-19:00"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RepositoryTestSuite) TestSaveReplacesAndMovesToEnd() {
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession("2024-06-01", "1", "2", "3")}))
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession("2024-06-02", "1", "2", "3")}))

	// Replace the first session with a different member list
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession("2024-06-01", "4", "5", "6")}))

	output, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 2)

	s.Equal("2024-06-02-19:00", output.Sessions[0].ID)
	s.Equal("2024-06-01-19:00", output.Sessions[1].ID)

	replaced := output.Sessions[1]
	s.Require().Len(replaced.Members, 3)
	s.Equal("4", replaced.Members[0].ID)
	s.Equal("6", replaced.Members[2].ID)
}

func (s *RepositoryTestSuite) TestSetCalendarEventID() {
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession("2024-06-01", "1", "2", "3")}))
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession("2024-06-02", "1", "2", "3")}))

	updated, err := s.repo.SetCalendarEventID(s.ctx, &SetCalendarEventIDInput{
		SessionID:       "2024-06-01-19:00",
		CalendarEventID: "demo_event_1",
	})
	s.Require().NoError(err)
	s.Equal("demo_event_1", updated.CalendarEventID)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "2024-06-01-19:00"})
	s.Require().NoError(err)
	s.True(retrieved.HasCalendarEvent())
	s.Equal("demo_event_1", retrieved.CalendarEventID)

	// The update happens in place: listing order does not change
	output, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 2)
	s.Equal("2024-06-01-19:00", output.Sessions[0].ID)

	other, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "2024-06-02-19:00"})
	s.Require().NoError(err)
	s.False(other.HasCalendarEvent())

	_, err = s.repo.SetCalendarEventID(s.ctx, &SetCalendarEventIDInput{
		SessionID:       "2024-06-03-19:00",
		CalendarEventID: "demo_event_2",
	})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RepositoryTestSuite) TestReturnedSessionsAreCopies() {
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.newSession("2024-06-01", "1", "2", "3")}))

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "2024-06-01-19:00"})
	s.Require().NoError(err)
	retrieved.Members[0].Name = "Changed"
	retrieved.CalendarEventID = "changed"

	again, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "2024-06-01-19:00"})
	s.Require().NoError(err)
	s.Equal("Member 1", again.Members[0].Name)
	s.False(again.HasCalendarEvent())
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	s.ErrorIs(s.repo.SaveSession(s.ctx, nil), ErrNilInput)
	s.ErrorIs(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: &models.Session{}}), ErrMissingSessionID)

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{})
	s.ErrorIs(err, ErrMissingSessionID)
}

func (s *RepositoryTestSuite) TestListEmpty() {
	output, err := s.repo.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(output.Sessions)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() Repository {
			return NewMemory()
		},
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	rs := &RepositoryTestSuite{}
	rs.newRepo = func() Repository {
		mr, err := miniredis.Run()
		if err != nil {
			t.Fatalf("failed to start miniredis: %v", err)
		}
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		rs.teardown = func() {
			client.Close()
			mr.Close()
		}

		repo, err := NewRedis(&Config{
			RedisClient: client,
			Namespace:   "sessionsync:test-run:",
		})
		if err != nil {
			t.Fatalf("failed to create redis repository: %v", err)
		}
		return repo
	}
	suite.Run(t, rs)
}

func TestRedisRepository_Purge(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := NewRedis(&Config{
		RedisClient: client,
		Namespace:   "sessionsync:test-run:",
	})
	if err != nil {
		t.Fatalf("failed to create redis repository: %v", err)
	}

	ctx := context.Background()
	err = repo.SaveSession(ctx, &SaveSessionInput{Session: &models.Session{
		ID:     "2024-06-01-19:00",
		Date:   "2024-06-01",
		Time:   "19:00",
		Status: models.SessionStatusScheduled,
	}})
	if err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	if err := repo.Purge(ctx); err != nil {
		t.Fatalf("failed to purge: %v", err)
	}

	keys := mr.Keys()
	if len(keys) != 0 {
		t.Fatalf("expected no keys after purge, got %v", keys)
	}
}

func TestRedisRepository_SessionsNeverExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := NewRedis(&Config{
		RedisClient: client,
		Namespace:   "sessionsync:test-run:",
	})
	if err != nil {
		t.Fatalf("failed to create redis repository: %v", err)
	}

	ctx := context.Background()
	err = repo.SaveSession(ctx, &SaveSessionInput{Session: &models.Session{
		ID:     "2024-06-01-19:00",
		Date:   "2024-06-01",
		Time:   "19:00",
		Status: models.SessionStatusScheduled,
	}})
	if err != nil {
		t.Fatalf("failed to save session: %v", err)
	}
	if _, err := repo.SetCalendarEventID(ctx, &SetCalendarEventIDInput{
		SessionID:       "2024-06-01-19:00",
		CalendarEventID: "demo_event_1",
	}); err != nil {
		t.Fatalf("failed to set calendar event: %v", err)
	}

	for _, key := range mr.Keys() {
		if ttl := mr.TTL(key); ttl != 0 {
			t.Fatalf("expected %s to have no expiry, got %v", key, ttl)
		}
	}

	mr.FastForward(25 * time.Hour)

	session, err := repo.GetSession(ctx, &GetSessionInput{SessionID: "2024-06-01-19:00"})
	if err != nil {
		t.Fatalf("expected session to survive, got %v", err)
	}
	if session.CalendarEventID != "demo_event_1" {
		t.Fatalf("expected calendar event to survive, got %q", session.CalendarEventID)
	}

	output, err := repo.ListSessions(ctx, &ListSessionsInput{})
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(output.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(output.Sessions))
	}
}
