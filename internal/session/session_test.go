package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdoe/resume-builder/internal/types"
)

func TestSession_Lifecycle(t *testing.T) {
	s := New()
	assert.False(t, s.Active())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())

	user := &types.User{Name: "Jane", Email: "jane@example.com"}
	s.Begin("tok-123", user)
	assert.True(t, s.Active())
	assert.Equal(t, "tok-123", s.Token())
	assert.Equal(t, user, s.User())

	s.Clear()
	assert.False(t, s.Active())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

func TestSession_SetUserKeepsToken(t *testing.T) {
	s := New()
	s.Begin("tok-123", &types.User{Name: "Jane"})

	s.SetUser(&types.User{Name: "Jane Doe"})
	assert.Equal(t, "tok-123", s.Token())
	assert.Equal(t, "Jane Doe", s.User().Name)
}

func TestSession_ZeroValueSignedOut(t *testing.T) {
	var s Session
	assert.False(t, s.Active())
	assert.Nil(t, s.User())
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Begin("tok", &types.User{Name: "Jane"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Active()
			_ = s.User()
		}()
	}
	wg.Wait()
	assert.True(t, s.Active())
}
