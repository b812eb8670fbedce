package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoman/internal/model"
	"github.com/idilsaglam/todoman/internal/todo"
)

var first3 = []string{"first", "second", "third"}

func Test_ParseAction(t *testing.T) {
	t.Parallel()

	tests := map[string]Action{
		"1":     ActionCreate,
		"2\n":   ActionEdit,
		"3\r\n": ActionDelete,
		"4\r":   ActionList,
		"5":     ActionComplete,
		"6":     ActionExit,
		"":      ActionInvalid,
		"\n":    ActionInvalid,
		"7":     ActionInvalid,
		" 1":    ActionInvalid,
		"1 ":    ActionInvalid,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseAction(in), "%q", in)
	}
	assert.Equal(t, ActionInvalid, ParseAction("create"))
	assert.Equal(t, "exit", ActionExit.String())
	assert.Equal(t, "invalid", Action(99).String())
}

func Test_List_Reads_One_Line_And_Leaves_List(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	ts.in.push("")

	require.NoError(t, ts.listTodos())
	assert.Equal(t, first3, ts.texts())
	assert.Contains(t, ts.out.String(), "completed: false | text: second")

	err := ts.listTodos()
	require.ErrorIs(t, err, todo.ErrIO)
	assert.Equal(t, 3, ts.List().Len())
}

func Test_List_Uses_ListView_When_Set(t *testing.T) {
	t.Parallel()

	var shown []model.Todo
	ts := newTestSession(t, first3, SessionOptions{
		ListView: func(items []model.Todo) error {
			shown = items
			return nil
		},
	})

	require.NoError(t, ts.listTodos())
	assert.Len(t, shown, 3)
	assert.Empty(t, ts.in.prompts)
}

func Test_Create(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	ts.in.push("Foo", "Bar", "   ")

	require.NoError(t, ts.create())
	require.NoError(t, ts.create())
	assert.Equal(t, []string{"first", "second", "third", "Foo", "Bar"}, ts.texts())
	assert.False(t, ts.List().Items()[4].Completed)

	err := ts.create()
	require.ErrorIs(t, err, todo.ErrEmptyText)

	err = ts.create()
	require.ErrorIs(t, err, todo.ErrIO)
	assert.Equal(t, 5, ts.List().Len())
	assert.Equal(t, 2, ts.pauses)
	assert.Contains(t, ts.out.String(), "Successfully added new todo!")
}

func Test_Complete(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	ts.in.push("1", "3")

	require.NoError(t, ts.complete())
	require.NoError(t, ts.complete())

	want := []model.Todo{
		{Text: "first", Completed: true},
		{Text: "second"},
		{Text: "third", Completed: true},
	}
	assert.Empty(t, cmp.Diff(want, ts.List().Items()))
	assert.Contains(t, ts.out.String(), "# 1: completed: false | text: first")

	// closed stream
	require.ErrorIs(t, ts.complete(), todo.ErrIO)

	ts.in.push("4")
	require.ErrorIs(t, ts.complete(), todo.ErrSelection)

	ts.in.push("0")
	require.ErrorIs(t, ts.complete(), todo.ErrSelection)

	ts.in.push("abc")
	require.ErrorIs(t, ts.complete(), todo.ErrParse)

	assert.Empty(t, cmp.Diff(want, ts.List().Items()))
}

func Test_Delete_Swap_Removes(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	ts.in.push("1")

	require.NoError(t, ts.remove())
	assert.Equal(t, []string{"third", "second"}, ts.texts())

	ts.in.push("2")
	require.NoError(t, ts.remove())
	assert.Equal(t, []string{"third"}, ts.texts())

	require.ErrorIs(t, ts.remove(), todo.ErrIO)

	ts.in.push("2")
	require.ErrorIs(t, ts.remove(), todo.ErrSelection)
	assert.Equal(t, []string{"third"}, ts.texts())
}

func Test_Delete_Stable_Keeps_Order(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{StableDelete: true})
	ts.in.push("1")

	require.NoError(t, ts.remove())
	assert.Equal(t, []string{"second", "third"}, ts.texts())
}

func Test_Edit(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	get := func() model.Todo {
		it, err := ts.List().Get(1)
		require.NoError(t, err)
		return it
	}

	ts.in.push("1", "T", "first edited")
	require.NoError(t, ts.edit())
	assert.Equal(t, model.Todo{Text: "first edited"}, get())

	ts.in.push("1", "t", "first edited again")
	require.NoError(t, ts.edit())
	assert.Equal(t, model.Todo{Text: "first edited again"}, get())

	ts.in.push("1", "C")
	require.NoError(t, ts.edit())
	assert.Equal(t, model.Todo{Text: "first edited again", Completed: true}, get())

	ts.in.push("1", "c")
	require.NoError(t, ts.edit())
	assert.Equal(t, model.Todo{Text: "first edited again"}, get())

	require.ErrorIs(t, ts.edit(), todo.ErrIO)

	ts.in.push("4")
	require.ErrorIs(t, ts.edit(), todo.ErrSelection)

	ts.in.push("1", "f")
	require.ErrorIs(t, ts.edit(), todo.ErrSelection)

	ts.in.push("1", "T", "")
	require.ErrorIs(t, ts.edit(), todo.ErrEmptyText)

	assert.Equal(t, model.Todo{Text: "first edited again"}, get())
	assert.Equal(t, 3, ts.List().Len())

	out := ts.out.String()
	assert.Contains(t, out, "Current text: first")
	assert.Contains(t, out, "Successfully updated TODO. New text: first edited again")
	assert.Contains(t, out, "Successfully toggled completed state. New state: true")
}

func Test_Run_Reports_Invalid_And_Exits(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	ts.in.push("9", "", "6")

	require.NoError(t, ts.Run())

	out := ts.out.String()
	assert.Contains(t, out, "Available Actions:")
	assert.Contains(t, out, "invalid selection")
	assert.Equal(t, first3, ts.texts())
	assert.Equal(t, 2, ts.pauses)
}

func Test_Run_Recovers_From_Bad_Index(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	ts.in.push("5", "x", "5", "1", "3", "2", "6")

	require.NoError(t, ts.Run())

	want := []model.Todo{
		{Text: "first", Completed: true},
		{Text: "third"},
	}
	assert.Empty(t, cmp.Diff(want, ts.List().Items()))
	assert.Contains(t, ts.out.String(), `invalid number "x"`)
}

func Test_Run_Stops_On_Closed_Input(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, first3, SessionOptions{})
	ts.in.push("1")

	err := ts.Run()
	require.ErrorIs(t, err, todo.ErrIO)
	assert.Equal(t, first3, ts.texts())
}

func Test_Dispatch_Exit(t *testing.T) {
	t.Parallel()

	ts := newTestSession(t, nil, SessionOptions{})
	state, err := ts.Dispatch(ActionExit)

	require.NoError(t, err)
	assert.Equal(t, StateExiting, state)

	state, err = ts.Dispatch(ActionInvalid)
	assert.Equal(t, StateRunning, state)
	assert.ErrorIs(t, err, todo.ErrSelection)
}
