package activity

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/todo-tracker/events"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)            {}
func (m *mockLogger) Info(msg string, args ...any)             {}
func (m *mockLogger) Warn(msg string, args ...any)             {}
func (m *mockLogger) Error(msg string, args ...any)            {}
func (m *mockLogger) With(args ...any) types.Logger          { return m }
func (m *mockLogger) WithError(err error) types.Logger       { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

func TestLog_EvictsOldest(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.Append(Entry{EntityID: fmt.Sprintf("e%d", i)})
	}

	assert.Equal(t, 3, l.Len())
	recent := l.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "e4", recent[0].EntityID)
	assert.Equal(t, "e2", recent[2].EntityID)

	assert.Len(t, l.Recent(2), 2)
	assert.Len(t, l.Recent(10), 3)
}

func TestLog_DefaultCapacity(t *testing.T) {
	l := NewLog(0)
	for i := 0; i < DefaultCapacity+10; i++ {
		l.Append(Entry{})
	}
	assert.Equal(t, DefaultCapacity, l.Len())
}

func TestLog_ConcurrentAppend(t *testing.T) {
	l := NewLog(1000)
	var wg sync.WaitGroup
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				l.Append(Entry{Type: "x"})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 500, l.Len())
}

func TestModule_RecordsEvents(t *testing.T) {
	m := NewModule(10, &mockLogger{})
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, m.handleCategoryCreated(ctx, events.CategoryCreatedEvent{CategoryID: "c1", Name: "Work", CreatedAt: now}, nil))
	require.NoError(t, m.handleTaskCreated(ctx, events.TaskCreatedEvent{TaskID: "t1", Title: "Report", Priority: "HIGH", CreatedAt: now}, nil))
	require.NoError(t, m.handleTaskCategoryAssigned(ctx, events.TaskCategoryAssignedEvent{TaskID: "t1", CategoryID: "c1", CategoryName: "Work", AssignedAt: now}, nil))
	require.NoError(t, m.handleTaskCompleted(ctx, events.TaskCompletedEvent{TaskID: "t1", Title: "Report", CompletedAt: now}, nil))
	require.NoError(t, m.handleTaskDeleted(ctx, events.TaskDeletedEvent{TaskID: "t1", Title: "Report", DeletedAt: now}, nil))
	require.NoError(t, m.handleCategoryDeleted(ctx, events.CategoryDeletedEvent{CategoryID: "c1", Name: "Work", DeletedAt: now}, nil))

	resp, err := m.listActivity(ctx, ListActivityRequest{}, nil)
	require.NoError(t, err)
	require.Equal(t, 6, resp.Total)
	assert.Equal(t, "category_deleted", resp.Entries[0].Type)
	assert.Equal(t, "category_created", resp.Entries[5].Type)
	assert.Equal(t, "Task 'Report' created with priority HIGH", resp.Entries[4].Message)

	limited, err := m.listActivity(ctx, ListActivityRequest{Limit: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, limited.Total)
}
