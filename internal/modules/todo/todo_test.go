package todo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
	"toolbox/internal/modules/todo"
	"toolbox/internal/store"
	"toolbox/internal/testutil"
)

func TestList(t *testing.T) {
	var l todo.List
	a, err := l.Add("write tests", time.Now())
	require.NoError(t, err)
	b, err := l.Add("ship", time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	_, err = l.Add("   ", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = l.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Pending())

	_, err = l.Remove(3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	removed, err := l.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "write tests", removed.Title)
	require.Len(t, l.Tasks, 1)
	assert.Equal(t, "ship", l.Tasks[0].Title)
}

func TestRun_Session(t *testing.T) {
	env, out := testutil.NewEnv(t, "add\nbuy milk\nadd\ncall mom\ndone\n2\nlist\nexit\n")
	require.NoError(t, todo.New().Run(t.Context(), env))

	l, ok, err := store.Load[todo.List](env.Results.Path("todo.json"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, l.Tasks, 2)
	assert.False(t, l.Tasks[0].Done)
	assert.True(t, l.Tasks[1].Done)
	assert.Contains(t, out.String(), "[x] call mom")
	assert.Contains(t, out.String(), "1 pending")

	env2, _ := testutil.WithInput(env, "remove\n1\n")
	require.NoError(t, todo.New().Run(t.Context(), env2))
	l, _, err = store.Load[todo.List](env.Results.Path("todo.json"))
	require.NoError(t, err)
	require.Len(t, l.Tasks, 1)
	assert.Equal(t, "call mom", l.Tasks[0].Title)
}

func TestRun_SavesAfterUnknownCommands(t *testing.T) {
	env, _ := testutil.NewEnv(t, "add\nbuy milk\nx\nx\nx\nx\nx\n")
	require.NoError(t, todo.New().Run(t.Context(), env))

	l, ok, err := store.Load[todo.List](env.Results.Path("todo.json"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, l.Tasks, 1)
	assert.Equal(t, "buy milk", l.Tasks[0].Title)
}
