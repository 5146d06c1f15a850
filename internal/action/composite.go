package action

import "context"

// ProgressCapable is implemented by actions whose internal sub-list can be
// partially complete, so the wrapping StatefulAction can record
// StateProgress rather than collapsing back to StateUncompleted on a
// mid-list failure. Only CompositeAction implements it; leaves never do.
type ProgressCapable interface {
	// PartiallyCompleted reports whether at least one but not all
	// sub-actions are currently StateCompleted.
	PartiallyCompleted() bool
}

// CompositeAction is an action whose implementation is an ordered list of
// sub-actions; it delegates Execute/Revert to them and is otherwise
// indistinguishable from a leaf action to the engine. Composites compose
// arbitrarily (a composite's sub-actions may themselves be composites).
type CompositeAction struct {
	Tag         string                   `json:"tag"`
	Description string                   `json:"description"`
	Actions     []*StatefulAction[Action] `json:"actions"`
}

// NewComposite builds a CompositeAction over freshly planned sub-actions.
func NewComposite(tag, description string, subActions ...Action) *CompositeAction {
	wrapped := make([]*StatefulAction[Action], len(subActions))
	for i, a := range subActions {
		wrapped[i] = NewStatefulAction[Action](a)
	}
	return &CompositeAction{Tag: tag, Description: description, Actions: wrapped}
}

// Typetag is always "composite": every CompositeAction, regardless of its
// own Tag (a caller-chosen sub-identifier used only for the tracing-label
// fallback below), dispatches through the single factory registered in
// init(). Returning c.Tag here instead would make the registry miss on
// unmarshal for any composite whose Tag isn't literally "composite".
func (c *CompositeAction) Typetag() string { return "composite" }

// DescribeExecute concatenates sub-action execute descriptions in walk
// order.
func (c *CompositeAction) DescribeExecute() []Description {
	var out []Description
	for _, sub := range c.Actions {
		out = append(out, sub.DescribeExecute()...)
	}
	return out
}

// DescribeRevert concatenates sub-action revert descriptions in walk
// order, which for Revert is reverse sub-list order.
func (c *CompositeAction) DescribeRevert() []Description {
	var out []Description
	for i := len(c.Actions) - 1; i >= 0; i-- {
		out = append(out, c.Actions[i].DescribeRevert()...)
	}
	return out
}

// TracingSynopsis returns the composite's own description, falling back to
// its caller-chosen Tag (not Typetag, which is always "composite").
func (c *CompositeAction) TracingSynopsis() string {
	if c.Description != "" {
		return c.Description
	}
	if c.Tag != "" {
		return c.Tag
	}
	return "composite"
}

// Execute walks sub-actions forward, calling TryExecute on each. If the
// first sub-action succeeds but a subsequent one fails, the caller
// observes PartiallyCompleted() == true and the wrapping StatefulAction
// records StateProgress.
func (c *CompositeAction) Execute(ctx context.Context) error {
	for _, sub := range c.Actions {
		if err := sub.TryExecute(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Revert walks sub-actions in reverse, calling TryRevert on each.
func (c *CompositeAction) Revert(ctx context.Context) error {
	for i := len(c.Actions) - 1; i >= 0; i-- {
		if err := c.Actions[i].TryRevert(ctx); err != nil {
			return err
		}
	}
	return nil
}

// PartiallyCompleted reports whether at least one but not all sub-actions
// are StateCompleted.
func (c *CompositeAction) PartiallyCompleted() bool {
	completed := 0
	for _, sub := range c.Actions {
		if sub.State == StateCompleted {
			completed++
		}
	}
	return completed > 0 && completed < len(c.Actions)
}

func init() {
	Register("composite", func() Action { return &CompositeAction{} })
}
