package action

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type marshalTestAction struct {
	Value string `json:"value"`
}

func (a *marshalTestAction) Typetag() string                 { return "marshal_test" }
func (a *marshalTestAction) DescribeExecute() []Description   { return nil }
func (a *marshalTestAction) DescribeRevert() []Description    { return nil }
func (a *marshalTestAction) TracingSynopsis() string          { return "marshal_test" }
func (a *marshalTestAction) Execute(ctx context.Context) error { return nil }
func (a *marshalTestAction) Revert(ctx context.Context) error  { return nil }

func init() {
	Register("marshal_test", func() Action { return &marshalTestAction{} })
}

func TestStatefulActionRoundTripsThroughInterface(t *testing.T) {
	s := NewStatefulAction[Action](&marshalTestAction{Value: "hello"})
	s.State = StateCompleted

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var out StatefulAction[Action]
	require.NoError(t, json.Unmarshal(data, &out))

	assert := require.New(t)
	assert.Equal(StateCompleted, out.State)
	assert.Equal("marshal_test", out.Action.Typetag())
	concrete, ok := out.Action.(*marshalTestAction)
	assert.True(ok)
	assert.Equal("hello", concrete.Value)
}

func TestStatefulActionRoundTripsThroughConcreteType(t *testing.T) {
	s := NewStatefulAction[*marshalTestAction](&marshalTestAction{Value: "world"})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var out StatefulAction[*marshalTestAction]
	require.NoError(t, json.Unmarshal(data, &out))

	require.Equal(t, "world", out.Action.Value)
	require.Equal(t, StateUncompleted, out.State)
}

func TestUnknownTypetagFailsToUnmarshal(t *testing.T) {
	data := []byte(`{"typetag":"does-not-exist","payload":{},"state":"uncompleted"}`)
	var out StatefulAction[Action]
	err := json.Unmarshal(data, &out)
	require.Error(t, err)
}

func TestCompositeWithCustomTagRoundTrips(t *testing.T) {
	inner := &marshalTestAction{Value: "hello"}
	composite := NewComposite("daemon", "do the daemon thing", inner)
	s := NewStatefulAction[Action](composite)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var out StatefulAction[Action]
	require.NoError(t, json.Unmarshal(data, &out))

	got, ok := out.Action.(*CompositeAction)
	require.True(t, ok)
	require.Equal(t, "daemon", got.Tag)
	require.Len(t, got.Actions, 1)
}
