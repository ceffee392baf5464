package service

import (
	"fmt"
	"sync"
	"testing"

	"token-recovery-dapp/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeBoard_PostListDismiss(t *testing.T) {
	b := NewNoticeBoard(0, newTestLogger())

	first := b.Post(domain.NoticeLevelInfo, "Success", "Token recovery initialized successfully")
	second := b.Post(domain.NoticeLevelError, "Error", "Please connect your wallet first")

	list := b.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, domain.NoticeLevelError, list[1].Level)
	assert.False(t, list[0].CreatedAt.IsZero())

	assert.True(t, b.Dismiss(first.ID))
	assert.False(t, b.Dismiss(first.ID))
	assert.False(t, b.Dismiss(uuid.New()))

	list = b.List()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestNoticeBoard_DropsOldestWhenFull(t *testing.T) {
	b := NewNoticeBoard(3, newTestLogger())

	for i := 0; i < 5; i++ {
		b.Post(domain.NoticeLevelInfo, "n", fmt.Sprintf("%d", i))
	}

	list := b.List()
	require.Len(t, list, 3)
	assert.Equal(t, "2", list[0].Message)
	assert.Equal(t, "4", list[2].Message)
}

func TestNoticeBoard_ListReturnsCopy(t *testing.T) {
	b := NewNoticeBoard(0, newTestLogger())
	b.Post(domain.NoticeLevelInfo, "a", "b")

	list := b.List()
	list[0].Title = "mutated"
	assert.Equal(t, "a", b.List()[0].Title)
}

func TestNoticeBoard_Concurrent(t *testing.T) {
	b := NewNoticeBoard(10, newTestLogger())

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := b.Post(domain.NoticeLevelInfo, "t", "m")
			b.List()
			b.Dismiss(n.ID)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, len(b.List()), 10)
}
