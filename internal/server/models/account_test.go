package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_Empty(t *testing.T) {
	now := time.Now()
	a := NewAccount("a@b.com", now)

	assert.Equal(t, "a@b.com", a.Email)
	assert.NotNil(t, a.Sessions)
	assert.Empty(t, a.Sessions)
	assert.Empty(t, a.MainStore)
	assert.Equal(t, now, a.CreatedAt)
}

func TestAccount_RemoveSession(t *testing.T) {
	a := NewAccount("a@b.com", time.Now())
	a.AddSession(Session{ID: "s1", Active: true})
	a.AddSession(Session{ID: "s2", Active: true})
	a.AddSession(Session{ID: "s3", Active: true})

	require.True(t, a.RemoveSession("s2"))
	assert.Equal(t, []string{"s1", "s3"}, ids(a))

	// removing again is a no-op
	require.False(t, a.RemoveSession("s2"))
	assert.Equal(t, []string{"s1", "s3"}, ids(a))

	require.False(t, a.RemoveSession("missing"))
}

func TestAccount_FindSession(t *testing.T) {
	a := NewAccount("a@b.com", time.Now())
	a.AddSession(Session{ID: "s1", Active: true})

	s, ok := a.FindSession("s1")
	require.True(t, ok)
	assert.Equal(t, "s1", s.ID)

	_, ok = a.FindSession("s2")
	assert.False(t, ok)
}

func TestAccount_CloneIsDeep(t *testing.T) {
	a := NewAccount("a@b.com", time.Now())
	a.AddSession(Session{ID: "s1", Metadata: map[string]string{MetadataUserAgent: "cli"}})

	c := a.Clone()
	c.Sessions[0].Metadata[MetadataUserAgent] = "changed"
	c.RemoveSession("s1")
	c.MainStore = "m"

	assert.Len(t, a.Sessions, 1)
	assert.Equal(t, "cli", a.Sessions[0].Metadata[MetadataUserAgent])
	assert.Empty(t, a.MainStore)
}

func TestAuthRequest_Expired(t *testing.T) {
	now := time.Now()
	r := &AuthRequest{CreatedAt: now.Add(-20 * time.Minute)}

	assert.True(t, r.Expired(now, 15*time.Minute))
	assert.False(t, r.Expired(now, time.Hour))
	assert.False(t, r.Expired(now, 0))
}

func ids(a *Account) []string {
	out := make([]string, 0, len(a.Sessions))
	for _, s := range a.Sessions {
		out = append(out, s.ID)
	}
	return out
}
