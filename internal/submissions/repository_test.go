package submissions

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSub(address string) NewSubmission {
	return NewSubmission{Address: address, Timestamp: time.Now().UTC()}
}

func TestStore_AddSingle(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sub, err := store.Add(ctx, newSub("123 Main St"))
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Len(t, sub.ID, idLength)
	assert.Equal(t, "123 Main St", sub.Address)
	assert.Empty(t, sub.Phone)
	assert.Empty(t, sub.Email)
	assert.False(t, sub.Timestamp.IsZero())

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_NewestFirst(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for _, addr := range []string{"A", "B", "C"} {
		_, err := store.Add(ctx, newSub(addr))
		require.NoError(t, err)
	}

	added, err := store.Add(ctx, newSub("D"))
	require.NoError(t, err)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, *added, list[0])
	assert.Equal(t, []string{"D", "C", "B", "A"}, addresses(list))
}

func TestStore_RetentionCap(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 101; i++ {
		_, err := store.Add(ctx, newSub(fmt.Sprintf("Addr %d", i)))
		require.NoError(t, err)
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxSubmissions, count)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, MaxSubmissions)
	assert.Equal(t, "Addr 101", list[0].Address)
	assert.Equal(t, "Addr 2", list[99].Address)
}

func TestStore_RetentionKeepsMostRecentInReverseOrder(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	const n = 250

	for i := 1; i <= n; i++ {
		_, err := store.Add(ctx, newSub(fmt.Sprintf("Addr %d", i)))
		require.NoError(t, err)
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, MaxSubmissions)
	for i, sub := range list {
		assert.Equal(t, fmt.Sprintf("Addr %d", n-i), sub.Address)
	}
	assert.Len(t, store.ids, MaxSubmissions)
}

func TestStore_ListAndCountIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := store.Add(ctx, newSub(fmt.Sprintf("Addr %d", i)))
		require.NoError(t, err)
	}

	first, err := store.List(ctx)
	require.NoError(t, err)
	second, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	c1, _ := store.Count(ctx)
	c2, _ := store.Count(ctx)
	assert.Equal(t, c1, c2)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	_, err := store.Add(ctx, newSub("Original"))
	require.NoError(t, err)

	list, _ := store.List(ctx)
	list[0].Address = "Mutated"

	again, _ := store.List(ctx)
	assert.Equal(t, "Original", again[0].Address)
}

func TestStore_EmptyList(t *testing.T) {
	store := NewInMemoryStore()
	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStore_UniqueIDs(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	seen := make(map[string]struct{})
	for i := 0; i < MaxSubmissions; i++ {
		sub, err := store.Add(ctx, newSub("x"))
		require.NoError(t, err)
		_, dup := seen[sub.ID]
		require.False(t, dup, "duplicate id %s", sub.ID)
		seen[sub.ID] = struct{}{}
	}
}

func TestStore_RetriesOnIDCollision(t *testing.T) {
	ids := []string{"aaaaaaaaa", "aaaaaaaaa", "bbbbbbbbb"}
	next := 0
	store := NewInMemoryStore(WithIDGenerator(func() string {
		id := ids[next]
		next++
		return id
	}))
	ctx := context.Background()

	first, err := store.Add(ctx, newSub("one"))
	require.NoError(t, err)
	second, err := store.Add(ctx, newSub("two"))
	require.NoError(t, err)

	assert.Equal(t, "aaaaaaaaa", first.ID)
	assert.Equal(t, "bbbbbbbbb", second.ID)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = store.Add(ctx, newSub(fmt.Sprintf("w%d-%d", w, i)))
				_, _ = store.List(ctx)
			}
		}(w)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxSubmissions, count)

	list, _ := store.List(ctx)
	seen := make(map[string]struct{}, len(list))
	for _, sub := range list {
		seen[sub.ID] = struct{}{}
	}
	assert.Len(t, seen, MaxSubmissions)
}

func TestRandomIDAlphabet(t *testing.T) {
	id := randomID()
	require.Len(t, id, idLength)
	for _, r := range id {
		assert.Contains(t, idAlphabet, string(r))
	}
}

func TestRandomIDDiscardsBiasedBytes(t *testing.T) {
	// First read is entirely above the sampling limit, second is 0..17.
	src := bytes.Repeat([]byte{255}, idLength*2)
	for i := 0; i < idLength*2; i++ {
		src = append(src, byte(i))
	}

	id, err := randomIDFrom(bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "012345678", id)
}

func TestRandomIDWrapsBelowLimit(t *testing.T) {
	src := bytes.Repeat([]byte{byte(idByteLimit - 1), 36}, idLength)

	id, err := randomIDFrom(bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "z0z0z0z0z", id)
}

func TestRandomIDShortReader(t *testing.T) {
	_, err := randomIDFrom(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func addresses(list []Submission) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Address
	}
	return out
}
