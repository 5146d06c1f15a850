package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAction struct {
	typetag      string
	executeErr   error
	revertErr    error
	executeCalls int
	revertCalls  int
}

func (a *testAction) Typetag() string               { return a.typetag }
func (a *testAction) DescribeExecute() []Description { return []Description{{Description: "execute " + a.typetag}} }
func (a *testAction) DescribeRevert() []Description  { return []Description{{Description: "revert " + a.typetag}} }
func (a *testAction) TracingSynopsis() string        { return a.typetag }
func (a *testAction) Execute(ctx context.Context) error {
	a.executeCalls++
	return a.executeErr
}
func (a *testAction) Revert(ctx context.Context) error {
	a.revertCalls++
	return a.revertErr
}

func TestTryExecuteNoopOnCompleted(t *testing.T) {
	a := &testAction{typetag: "t"}
	s := NewStatefulAction[Action](a)
	s.State = StateCompleted

	err := s.TryExecute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, a.executeCalls)
	assert.Equal(t, StateCompleted, s.State)
}

func TestTryRevertNoopOnUncompleted(t *testing.T) {
	a := &testAction{typetag: "t"}
	s := NewStatefulAction[Action](a)

	err := s.TryRevert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, a.revertCalls)
	assert.Equal(t, StateUncompleted, s.State)
}

func TestTryExecuteSetsCompletedOnSuccess(t *testing.T) {
	a := &testAction{typetag: "t"}
	s := NewStatefulAction[Action](a)

	require.NoError(t, s.TryExecute(context.Background()))
	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, 1, a.executeCalls)
}

func TestTryExecuteLeavesStateOnFailure(t *testing.T) {
	boom := assert.AnError
	a := &testAction{typetag: "t", executeErr: boom}
	s := NewStatefulAction[Action](a)

	err := s.TryExecute(context.Background())
	assert.Equal(t, boom, err)
	assert.Equal(t, StateUncompleted, s.State)
}

func TestDirectExecuteRejectsCompleted(t *testing.T) {
	a := &testAction{typetag: "t"}
	s := NewStatefulAction[Action](a)
	s.State = StateCompleted

	err := s.Execute(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyExecuted)
}

func TestDirectRevertRejectsUncompleted(t *testing.T) {
	a := &testAction{typetag: "t"}
	s := NewStatefulAction[Action](a)

	err := s.Revert(context.Background())
	assert.ErrorIs(t, err, ErrNotExecuted)
}
