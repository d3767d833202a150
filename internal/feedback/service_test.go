package feedback_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/feedback"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/internal/testutil"
)

func setup(t *testing.T) (feedback.Service, *auth.User, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	user := testutil.MustRegister(t, testutil.AuthService(db, testutil.Config()), "alice")
	svc := feedback.NewService(feedback.NewRepository(db), testutil.AuditService(db), notification.NopPublisher{})
	return svc, user, db
}

func TestSubmitOncePerUser(t *testing.T) {
	svc, user, db := setup(t)

	fb, err := svc.Submit(t.Context(), *user, 5, "Great meetup", "")
	require.NoError(t, err)
	assert.False(t, fb.TsSubmit.IsZero())

	_, err = svc.Submit(t.Context(), *user, 1, "changed my mind", "")
	assert.ErrorIs(t, err, feedback.ErrAlreadySubmitted)

	var rows []feedback.Feedback
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Stars)
	assert.Equal(t, "Great meetup", rows[0].Comment)
}

func TestConcurrentSubmissionsKeepOneRow(t *testing.T) {
	svc, user, db := setup(t)

	const n = 6
	var wg sync.WaitGroup
	results := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Submit(t.Context(), *user, i, "", "")
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range results {
		if err == nil {
			accepted++
			continue
		}
		assert.ErrorIs(t, err, feedback.ErrAlreadySubmitted)
	}
	assert.Equal(t, 1, accepted)

	var count int64
	require.NoError(t, db.Model(&feedback.Feedback{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
