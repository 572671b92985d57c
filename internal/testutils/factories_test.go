package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFactorySet(t *testing.T) {
	f := NewFactorySet()

	t.Run("users are unique", func(t *testing.T) {
		a, b := f.User.Create(), f.User.Create()
		assert.NotEqual(t, a.ID, b.ID)
		assert.NotEqual(t, a.Username, b.Username)
		assert.NotEqual(t, a.Email, b.Email)
		assert.True(t, a.IsActive)
		assert.False(t, a.IsStaff)
	})

	t.Run("admin", func(t *testing.T) {
		assert.True(t, f.User.Admin().IsStaff)
	})

	t.Run("pulse log uses the current iso week", func(t *testing.T) {
		user := f.User.Create()
		entry := f.PulseLog.ForUser(user.ID, nil)
		year, week := time.Now().ISOWeek()
		assert.Equal(t, year, entry.Year)
		assert.Equal(t, week, entry.WeekIndex)
		assert.Nil(t, entry.TeamID)
	})

	t.Run("feedback defaults to named", func(t *testing.T) {
		fb := f.Feedback.ForUser(f.User.Create().ID, nil)
		assert.False(t, fb.IsAnonymous)
		assert.NotEmpty(t, fb.Message)
	})
}
