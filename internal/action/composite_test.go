package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeExecuteWalksForward(t *testing.T) {
	a := &testAction{typetag: "a"}
	b := &testAction{typetag: "b"}
	c := NewComposite("group", "do a and b", a, b)

	require.NoError(t, c.Execute(context.Background()))
	assert.Equal(t, 1, a.executeCalls)
	assert.Equal(t, 1, b.executeCalls)
	assert.Equal(t, StateCompleted, c.Actions[0].State)
	assert.Equal(t, StateCompleted, c.Actions[1].State)
}

func TestCompositePartialFailureReportsProgress(t *testing.T) {
	a := &testAction{typetag: "a"}
	b := &testAction{typetag: "b", executeErr: assert.AnError}
	c := NewComposite("group", "do a and b", a, b)

	err := c.Execute(context.Background())
	assert.Error(t, err)
	assert.True(t, c.PartiallyCompleted())

	s := NewStatefulAction[Action](c)
	err = s.TryExecute(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateProgress, s.State)
}

func TestCompositeRevertWalksBackward(t *testing.T) {
	var order []string
	a := &orderTrackingAction{tag: "a", order: &order}
	b := &orderTrackingAction{tag: "b", order: &order}
	c := NewComposite("group", "", a, b)
	for _, sub := range c.Actions {
		sub.State = StateCompleted
	}

	require.NoError(t, c.Revert(context.Background()))
	assert.Equal(t, []string{"b", "a"}, order)
}

type orderTrackingAction struct {
	tag   string
	order *[]string
}

func (a *orderTrackingAction) Typetag() string               { return a.tag }
func (a *orderTrackingAction) DescribeExecute() []Description { return nil }
func (a *orderTrackingAction) DescribeRevert() []Description  { return nil }
func (a *orderTrackingAction) TracingSynopsis() string        { return a.tag }
func (a *orderTrackingAction) Execute(context.Context) error  { return nil }
func (a *orderTrackingAction) Revert(context.Context) error {
	*a.order = append(*a.order, a.tag)
	return nil
}
