package event_test

import (
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-management-backend/config"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/event"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/internal/testutil"
	"github.com/sharath018/event-management-backend/utils"
)

type fixture struct {
	svc   *event.Service
	admin *auth.User
	users []*auth.User
}

func newFixture(t *testing.T, mutate func(*config.Config), now time.Time) fixture {
	t.Helper()
	cfg := testutil.Config()
	if mutate != nil {
		mutate(cfg)
	}

	db := testutil.NewDB(t)
	authSvc := testutil.AuthService(db, cfg)
	admin := testutil.MustRegister(t, authSvc, "admin")
	bob := testutil.MustRegister(t, authSvc, "bob")
	carol := testutil.MustRegister(t, authSvc, "carol")

	svc := event.NewService(event.NewRepository(db), cfg, testutil.AuditService(db), notification.NopPublisher{}).
		WithClock(func() time.Time { return now })

	return fixture{svc: svc, admin: admin, users: []*auth.User{bob, carol}}
}

func (f fixture) create(t *testing.T, title, schedule string) *event.Event {
	t.Helper()
	e, err := f.svc.CreateEvent(t.Context(), *f.admin, &event.CreateEventRequest{
		Title:    title,
		Location: "Hall A",
		Schedule: schedule,
		Contact:  "5550100",
	}, "")
	require.NoError(t, err)
	return e
}

func titles(events []event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func TestCreateEventDefaultsAndFlags(t *testing.T) {
	f := newFixture(t, nil, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	e, err := f.svc.CreateEvent(t.Context(), *f.admin, &event.CreateEventRequest{
		Title:       "Go meetup",
		Location:    "Hall A",
		Schedule:    "2026-03-12 18:30:00",
		Contact:     "5550100",
		Refreshment: event.Flag(true),
	}, "")
	require.NoError(t, err)

	got, err := f.svc.GetEventByID(t.Context(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, event.DefaultLogoURL, got.LogoURL)
	assert.True(t, got.Refreshment)

	out := got.JSON(f.svc.Location())
	assert.Equal(t, "2026-03-12 18:30:00", out.Schedule)
	assert.Zero(t, out.Going)
}

func TestCreateEventRejections(t *testing.T) {
	f := newFixture(t, nil, time.Now())

	valid := func() *event.CreateEventRequest {
		return &event.CreateEventRequest{Title: "T", Location: "L", Schedule: "2026-03-12 18:30:00", Contact: "1"}
	}

	_, err := f.svc.CreateEvent(t.Context(), *f.users[0], valid(), "")
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	assert.Equal(t, "You are not an admin", utils.MessageOf(err))

	bad := valid()
	bad.Schedule = "12/03/2026 18:30"
	_, err = f.svc.CreateEvent(t.Context(), *f.admin, bad, "")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	assert.Equal(t, "invalid schedule", utils.MessageOf(err))
}

func TestListEventsByDayWindow(t *testing.T) {
	f := newFixture(t, nil, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	f.create(t, "last week", "2026-03-03 10:00:00")
	f.create(t, "late yesterday", "2026-03-09 23:59:59")
	f.create(t, "midnight today", "2026-03-10 00:00:00")
	f.create(t, "tonight", "2026-03-10 23:59:59")
	f.create(t, "tomorrow", "2026-03-11 00:00:00")
	f.create(t, "next month", "2026-04-01 09:00:00")

	cases := map[event.Window][]string{
		event.WindowPast:   {"last week", "late yesterday"},
		event.WindowToday:  {"midnight today", "tonight"},
		event.WindowFuture: {"tomorrow", "next month"},
	}
	for when, want := range cases {
		events, err := f.svc.ListEvents(t.Context(), when)
		require.NoError(t, err)
		assert.Equal(t, want, titles(events), "window %d", when)
	}

	_, err := f.svc.ListEvents(t.Context(), event.Window(3))
	assert.Equal(t, "Invalid query body", utils.MessageOf(err))
}

func TestListEventsUsesConfiguredTimezone(t *testing.T) {
	// 20:00 UTC is already 01:30 the next day in Kolkata
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	f := newFixture(t, func(c *config.Config) { c.Timezone = "Asia/Kolkata" }, now)

	f.create(t, "evening", "2026-03-10 23:00:00")
	f.create(t, "morning", "2026-03-11 09:00:00")

	today, err := f.svc.ListEvents(t.Context(), event.WindowToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"morning"}, titles(today))

	past, err := f.svc.ListEvents(t.Context(), event.WindowPast)
	require.NoError(t, err)
	assert.Equal(t, []string{"evening"}, titles(past))
	assert.Equal(t, "2026-03-10 23:00:00", past[0].JSON(f.svc.Location()).Schedule)
}

func TestJoinEventIgnorePolicy(t *testing.T) {
	f := newFixture(t, nil, time.Now())
	e := f.create(t, "meetup", "2026-03-12 18:30:00")
	bob := *f.users[0]

	joined, err := f.svc.JoinEvent(t.Context(), bob, e.ID, "")
	require.NoError(t, err)
	assert.True(t, joined)

	joined, err = f.svc.JoinEvent(t.Context(), bob, e.ID, "")
	require.NoError(t, err)
	assert.False(t, joined)

	got, err := f.svc.GetEventByID(t.Context(), e.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Going)
}

func TestJoinEventRejectPolicy(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.JoinDuplicatePolicy = config.JoinPolicyReject }, time.Now())
	e := f.create(t, "meetup", "2026-03-12 18:30:00")
	bob := *f.users[0]

	_, err := f.svc.JoinEvent(t.Context(), bob, e.ID, "")
	require.NoError(t, err)

	_, err = f.svc.JoinEvent(t.Context(), bob, e.ID, "")
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Equal(t, "already joined this event", utils.MessageOf(err))

	got, err := f.svc.GetEventByID(t.Context(), e.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Going)
}

func TestJoinAndAttendeesOfMissingEvent(t *testing.T) {
	f := newFixture(t, nil, time.Now())

	_, err := f.svc.JoinEvent(t.Context(), *f.users[0], 999, "")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	_, err = f.svc.Attendees(t.Context(), 999)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestAttendeesMatchGoingCount(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFixture(t, nil, now)
	e := f.create(t, "meetup", "2026-03-10 18:30:00")

	for _, u := range f.users {
		_, err := f.svc.JoinEvent(t.Context(), *u, e.ID, "")
		require.NoError(t, err)
	}

	attendees, err := f.svc.Attendees(t.Context(), e.ID)
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	assert.Equal(t, "Firstbob Last", attendees[0].FullName())
	assert.Equal(t, "Firstcarol Last", attendees[1].FullName())

	events, err := f.svc.ListEvents(t.Context(), event.WindowToday)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.EqualValues(t, len(attendees), events[0].Going)
}

func TestConcurrentJoinsKeepOneRow(t *testing.T) {
	for _, policy := range []string{config.JoinPolicyIgnore, config.JoinPolicyReject} {
		t.Run(policy, func(t *testing.T) {
			f := newFixture(t, func(c *config.Config) { c.JoinDuplicatePolicy = policy }, time.Now())
			e := f.create(t, "meetup", "2026-03-12 18:30:00")
			bob := *f.users[0]

			const n = 8
			var wg sync.WaitGroup
			joined := make([]bool, n)
			errs := make([]error, n)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					joined[i], errs[i] = f.svc.JoinEvent(t.Context(), bob, e.ID, "")
				}(i)
			}
			wg.Wait()

			added := 0
			for i := 0; i < n; i++ {
				if joined[i] {
					added++
				}
				if errs[i] == nil {
					continue
				}
				assert.Equal(t, config.JoinPolicyReject, policy, "unexpected error: %v", errs[i])
				assert.Equal(t, utils.KindConflict, utils.KindOf(errs[i]))
			}
			assert.Equal(t, 1, added)

			if policy == config.JoinPolicyReject {
				succeeded := 0
				for _, err := range errs {
					if err == nil {
						succeeded++
					}
				}
				assert.Equal(t, 1, succeeded)
			}

			got, err := f.svc.GetEventByID(t.Context(), e.ID)
			require.NoError(t, err)
			assert.EqualValues(t, 1, got.Going)

			attendees, err := f.svc.Attendees(t.Context(), e.ID)
			require.NoError(t, err)
			assert.Len(t, attendees, 1)
		})
	}
}
