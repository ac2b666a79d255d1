package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/mindset-api/internal/domain"
	"github.com/phrazzld/mindset-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReflection(t *testing.T, date string, score int) domain.Reflection {
	t.Helper()
	r, err := domain.NewReflection(domain.MustParseDate(date), score, "challenge "+date, "learning "+date)
	require.NoError(t, err)
	return *r
}

func TestJournalStore_AddReflection(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	first := mustReflection(t, "2024-01-02", 7)
	second := mustReflection(t, "2024-01-01", 3)

	require.NoError(t, s.AddReflection(first))
	before := len(s.ListReflections())
	require.NoError(t, s.AddReflection(second))

	got := s.ListReflections()
	assert.Len(t, got, before+1)
	assert.Equal(t, second, got[len(got)-1], "last element should be the reflection just added")
	assert.Equal(t, []domain.Reflection{first, second}, got, "insertion order is kept even when dates are out of order")
}

func TestJournalStore_AddReflectionDuplicateDates(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	require.NoError(t, s.AddReflection(mustReflection(t, "2024-01-01", 4)))
	require.NoError(t, s.AddReflection(mustReflection(t, "2024-01-01", 8)))

	got := s.ListReflections()
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].MindsetScore)
	assert.Equal(t, 8, got[1].MindsetScore)
}

func TestJournalStore_AddReflectionRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	err := s.AddReflection(domain.Reflection{Date: domain.MustParseDate("2024-01-01"), MindsetScore: 11})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	assert.True(t, errors.Is(err, domain.ErrMindsetScoreOutOfRange))
	assert.Empty(t, s.ListReflections())
}

func TestJournalStore_AddGoal(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	for i := 0; i < 3; i++ {
		idx, err := s.AddGoal(fmt.Sprintf("goal %d", i), "", domain.MustParseDate("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		assert.Equal(t, 0, s.ListGoals()[idx].Progress)
	}
}

func TestJournalStore_AddGoalEmptyTitle(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	idx, err := s.AddGoal("", "desc", domain.MustParseDate("2024-06-01"))
	assert.Equal(t, -1, idx)
	assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	assert.True(t, errors.Is(err, domain.ErrGoalTitleEmpty))
	assert.Empty(t, s.ListGoals())
}

func TestJournalStore_LearnRustScenario(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	idx, err := s.AddGoal("Learn Rust", "Finish book", domain.MustParseDate("2024-06-01"))
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	goal := s.ListGoals()[0]
	assert.Equal(t, "Learn Rust", goal.Title)
	assert.Equal(t, "Finish book", goal.Description)
	assert.Equal(t, "2024-06-01", goal.TargetDate.String())
	assert.Equal(t, 0, goal.Progress)

	require.NoError(t, s.UpdateGoalProgress(0, 45))
	assert.Equal(t, 45, s.ListGoals()[0].Progress)
}

func TestJournalStore_UpdateGoalProgress(t *testing.T) {
	t.Parallel()

	newStore := func(t *testing.T) *JournalStore {
		s := NewJournalStore()
		for _, title := range []string{"a", "b", "c"} {
			_, err := s.AddGoal(title, "", domain.MustParseDate("2024-06-01"))
			require.NoError(t, err)
		}
		require.NoError(t, s.UpdateGoalProgress(0, 10))
		require.NoError(t, s.UpdateGoalProgress(2, 30))
		return s
	}

	t.Run("in range updates exactly one goal", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		before := s.ListGoals()

		for _, p := range []int{0, 100, 77} {
			require.NoError(t, s.UpdateGoalProgress(1, p))
			after := s.ListGoals()
			assert.Equal(t, p, after[1].Progress)
			assert.Equal(t, before[0], after[0])
			assert.Equal(t, before[2], after[2])
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()
		for _, idx := range []int{-1, 3, 100} {
			s := newStore(t)
			before := s.ListGoals()

			err := s.UpdateGoalProgress(idx, 50)
			require.Error(t, err)
			assert.True(t, errors.Is(err, store.ErrIndexOutOfRange), "index %d", idx)
			assert.True(t, store.IsNotFoundError(err))
			assert.Equal(t, before, s.ListGoals())
		}
	})

	t.Run("progress out of range", func(t *testing.T) {
		t.Parallel()
		for _, p := range []int{-1, 101} {
			s := newStore(t)
			before := s.ListGoals()

			err := s.UpdateGoalProgress(0, p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, store.ErrInvalidValue), "progress %d", p)
			assert.True(t, errors.Is(err, domain.ErrProgressOutOfRange))
			assert.Equal(t, before, s.ListGoals())
		}
	})

	t.Run("index checked before value", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		err := s.UpdateGoalProgress(9, 500)
		assert.True(t, errors.Is(err, store.ErrIndexOutOfRange))
	})
}

func TestJournalStore_SwapGoalProgress(t *testing.T) {
	t.Parallel()

	t.Run("returns the goal before the update", func(t *testing.T) {
		t.Parallel()
		s := NewJournalStore()
		_, err := s.AddGoal("swap", "", domain.MustParseDate("2024-06-01"))
		require.NoError(t, err)
		added := s.ListGoals()[0]

		before, err := s.SwapGoalProgress(0, 40)
		require.NoError(t, err)
		assert.Equal(t, added, before)

		before, err = s.SwapGoalProgress(0, 90)
		require.NoError(t, err)
		assert.Equal(t, 40, before.Progress)
		assert.Equal(t, 90, s.ListGoals()[0].Progress)
	})

	t.Run("failure leaves goal untouched", func(t *testing.T) {
		t.Parallel()
		s := NewJournalStore()
		_, err := s.AddGoal("swap", "", domain.MustParseDate("2024-06-01"))
		require.NoError(t, err)
		require.NoError(t, s.UpdateGoalProgress(0, 25))

		before, err := s.SwapGoalProgress(0, 101)
		require.Error(t, err)
		assert.Equal(t, domain.Goal{}, before)

		_, err = s.SwapGoalProgress(1, 50)
		assert.True(t, errors.Is(err, store.ErrIndexOutOfRange))
		assert.Equal(t, 25, s.ListGoals()[0].Progress)
	})

	t.Run("concurrent swaps form one chain", func(t *testing.T) {
		t.Parallel()
		s := NewJournalStore()
		_, err := s.AddGoal("shared", "", domain.MustParseDate("2024-06-01"))
		require.NoError(t, err)

		const n = 50
		next := make(map[int]int, n)
		var mu sync.Mutex
		var wg sync.WaitGroup
		for p := 1; p <= n; p++ {
			wg.Add(1)
			go func(p int) {
				defer wg.Done()
				before, err := s.SwapGoalProgress(0, p)
				assert.NoError(t, err)
				mu.Lock()
				next[before.Progress] = p
				mu.Unlock()
			}(p)
		}
		wg.Wait()

		require.Len(t, next, n)
		cur := 0
		for i := 0; i < n; i++ {
			p, ok := next[cur]
			require.True(t, ok, "no swap started from %d", cur)
			cur = p
		}
		assert.Equal(t, s.ListGoals()[0].Progress, cur)
	})
}

func TestJournalStore_GoalIndexByID(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	_, err := s.AddGoal("first", "", domain.MustParseDate("2024-06-01"))
	require.NoError(t, err)
	_, err = s.AddGoal("second", "", domain.MustParseDate("2024-07-01"))
	require.NoError(t, err)

	goals := s.ListGoals()
	idx, err := s.GoalIndexByID(goals[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = s.GoalIndexByID(uuid.New())
	assert.True(t, errors.Is(err, store.ErrGoalNotFound))
}

func TestJournalStore_ListsAreCopies(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	require.NoError(t, s.AddReflection(mustReflection(t, "2024-01-01", 5)))
	_, err := s.AddGoal("goal", "", domain.MustParseDate("2024-06-01"))
	require.NoError(t, err)

	reflections := s.ListReflections()
	reflections[0].MindsetScore = 1
	goals := s.ListGoals()
	goals[0].Progress = 99

	assert.Equal(t, 5, s.ListReflections()[0].MindsetScore)
	assert.Equal(t, 0, s.ListGoals()[0].Progress)
}

func TestJournalStore_EmptyStore(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	assert.NotNil(t, s.ListReflections())
	assert.Empty(t, s.ListReflections())
	assert.Empty(t, s.ListGoals())
	assert.Empty(t, s.ListAchievements())

	snap := s.Snapshot()
	assert.NotNil(t, snap.Reflections)
	assert.NotNil(t, snap.Goals)
	assert.NotNil(t, snap.Achievements)
}

func TestJournalStore_Snapshot(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()

	r := mustReflection(t, "2024-01-01", 6)
	require.NoError(t, s.AddReflection(r))
	_, err := s.AddGoal("goal", "desc", domain.MustParseDate("2024-06-01"))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, []domain.Reflection{r}, snap.Reflections)
	require.Len(t, snap.Goals, 1)
	assert.Equal(t, "goal", snap.Goals[0].Title)
	assert.Empty(t, snap.Achievements)
}

func TestJournalStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	s := NewJournalStore()
	_, err := s.AddGoal("shared", "", domain.MustParseDate("2024-06-01"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(score int) {
			defer wg.Done()
			_ = s.AddReflection(mustReflection(t, "2024-01-01", score%10+1))
		}(i)
		go func(p int) {
			defer wg.Done()
			_ = s.UpdateGoalProgress(0, p)
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, s.ListReflections(), 50)
}
