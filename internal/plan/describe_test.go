package plan

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitational/rtinstall/internal/action"
)

func TestDescribeInstallDefaultSettings(t *testing.T) {
	p := newTestPlan(t, &fakeAction{Tag: "a"})
	out := p.DescribeInstall(false)
	assert.Contains(t, out, "(with default settings)")
	assert.Contains(t, out, "execute a")
}

func TestDescribeInstallSortsConfiguredSettings(t *testing.T) {
	p := newTestPlan(t, &fakeAction{Tag: "a"})
	p.Planner.Settings = map[string]string{"zeta": "1", "alpha": "2"}
	out := p.DescribeInstall(false)

	alphaIdx := strings.Index(out, "alpha")
	zetaIdx := strings.Index(out, "zeta")
	assert.True(t, alphaIdx < zetaIdx)
	assert.NotContains(t, out, "(with default settings)")
}

func TestDescribeUninstallUsesReverseOrderAndRevertText(t *testing.T) {
	p := newTestPlan(t, &fakeAction{Tag: "a"}, &fakeAction{Tag: "b"})
	out := p.DescribeUninstall(false)

	bIdx := strings.Index(out, "revert b")
	aIdx := strings.Index(out, "revert a")
	assert.True(t, bIdx < aIdx)
}

func TestDescribeExplainIncludesExplanation(t *testing.T) {
	explained := &explainedAction{}
	p := newTestPlan(t, explained)
	out := p.DescribeInstall(true)
	assert.Contains(t, out, "why this matters")
}

type explainedAction struct{}

func (explainedAction) Typetag() string { return "explained" }
func (explainedAction) DescribeExecute() []action.Description {
	return []action.Description{{Description: "do the thing", Explanation: []string{"why this matters"}}}
}
func (explainedAction) DescribeRevert() []action.Description { return nil }
func (explainedAction) TracingSynopsis() string              { return "explained" }
func (explainedAction) Execute(ctx context.Context) error     { return nil }
func (explainedAction) Revert(ctx context.Context) error      { return nil }
