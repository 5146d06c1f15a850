package plan

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gravitational/rtinstall/internal/action"
)

var boldKey = color.New(color.Bold)

// renderHeader renders the `<verb> plan "<tag>", version <v>` header line
// plus the settings block: settings are sorted lexicographically by key,
// each line is "* <key>: <value>" with the key bold when the output is a
// terminal (fatih/color auto-detects this), and when no settings are
// configured the header instead gains the literal suffix
// " (with default settings)" and the block is omitted.
func renderHeader(verb string, p *InstallPlan) string {
	var b strings.Builder
	if len(p.Planner.Settings) == 0 {
		fmt.Fprintf(&b, "%v plan %q, version %v (with default settings)\n", verb, p.Planner.Tag, p.Version)
		return b.String()
	}
	fmt.Fprintf(&b, "%v plan %q, version %v\n", verb, p.Planner.Tag, p.Version)
	for _, key := range sortedSettingsKeys(p.Planner.Settings) {
		fmt.Fprintf(&b, "* %v: %v\n", boldKey.Sprint(key), p.Planner.Settings[key])
	}
	return b.String()
}

// renderDescriptions renders a "Planned actions:" block from a flat list of
// descriptions, one line each in explain=false mode, with indented
// explanation paragraphs appended per-description in explain=true mode.
func renderDescriptions(descs []action.Description, explain bool) string {
	var b strings.Builder
	b.WriteString("Planned actions:\n")
	for _, d := range descs {
		fmt.Fprintf(&b, "%v\n", d.Description)
		if explain {
			for _, line := range d.Explanation {
				fmt.Fprintf(&b, "    %v\n", line)
			}
		}
	}
	return b.String()
}

// DescribeInstall renders the stable-ordered install description block:
// header, settings, then every action's execute descriptions in plan order.
func (p *InstallPlan) DescribeInstall(explain bool) string {
	var descs []action.Description
	for _, a := range p.Actions {
		descs = append(descs, a.DescribeExecute()...)
	}
	return renderHeader("Install", p) + renderDescriptions(descs, explain)
}

// DescribeUninstall renders the same structure but iterates actions in
// reverse and uses each action's revert descriptions.
func (p *InstallPlan) DescribeUninstall(explain bool) string {
	var descs []action.Description
	for i := len(p.Actions) - 1; i >= 0; i-- {
		descs = append(descs, p.Actions[i].DescribeRevert()...)
	}
	return renderHeader("Uninstall", p) + renderDescriptions(descs, explain)
}
