package action

import "encoding/json"

// envelope is the on-disk shape of a StatefulAction: typetag picks the
// concrete variant out of the registry, payload is that variant's own
// fields, state is the lifecycle state.
type envelope struct {
	Typetag string          `json:"typetag"`
	Payload json.RawMessage `json:"payload"`
	State   State           `json:"state"`
}

// MarshalJSON writes the StatefulAction as {typetag, payload, state}. It
// works for both a homogeneous StatefulAction[Action] (the shape every
// InstallPlan actually stores) and a StatefulAction[SomeConcreteVariant]
// used directly in variant-specific tests.
func (s StatefulAction[A]) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(s.Action)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		Typetag: s.Action.Typetag(),
		Payload: payload,
		State:   s.State,
	})
}

// UnmarshalJSON reads the envelope back. When A is the Action interface
// itself, the typetag is used to look up a concrete factory in the
// registry before unmarshaling the payload into it; when A is already a
// concrete variant type, the payload is unmarshaled directly into it.
func (s *StatefulAction[A]) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	s.State = env.State

	var zero A
	if ifacePtr, ok := any(&zero).(*Action); ok {
		concrete, err := New(env.Typetag)
		if err != nil {
			return err
		}
		if len(env.Payload) > 0 {
			if err := json.Unmarshal(env.Payload, concrete); err != nil {
				return err
			}
		}
		*ifacePtr = concrete
		s.Action = zero
		return nil
	}

	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &zero); err != nil {
			return err
		}
	}
	s.Action = zero
	return nil
}
