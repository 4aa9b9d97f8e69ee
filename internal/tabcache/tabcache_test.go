// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMissThenHit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok := m.Get(ctx, "doc:members")
	assert.False(t, ok)

	rows := [][]string{{"id"}, {"m1"}}
	m.Set(ctx, "doc:members", rows)

	entry, ok := m.Get(ctx, "doc:members")
	require.True(t, ok)
	assert.Equal(t, rows, entry.Rows)
	assert.WithinDuration(t, time.Now(), entry.FetchedAt, time.Second)
}

func TestMemoryFetchedAtUsesClock(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }

	m.Set(ctx, "doc:news", [][]string{{"slug"}})

	entry, ok := m.Get(ctx, "doc:news")
	require.True(t, ok)
	assert.Equal(t, stamp, entry.FetchedAt)
}

func TestMemoryOverwrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "k", [][]string{{"old"}})
	m.Set(ctx, "k", [][]string{{"new"}})

	entry, ok := m.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, [][]string{{"new"}}, entry.Rows)
}
