package main

import (
	"context"
	"fmt"

	"github.com/gravitational/trace"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/gravitational/rtinstall/internal/buildversion"
	"github.com/gravitational/rtinstall/internal/config"
	"github.com/gravitational/rtinstall/internal/diagnostics"
	"github.com/gravitational/rtinstall/internal/plan"
)

// commands holds the parsed kingpin clauses for every subcommand this
// binary exposes.
type commands struct {
	install   *kingpin.CmdClause
	installCh *installFlags

	uninstall *kingpin.CmdClause
	explain   *bool
}

type installFlags struct {
	root     *string
	channel  *string
	proxy    *string
	noDaemon *bool
	explain  *bool
}

// registerCommands wires the install/uninstall subcommands and their
// flags directly onto app's kingpin.Application.
func registerCommands(app *kingpin.Application) *commands {
	c := &commands{}

	c.install = app.Command("install", "Install the runtime")
	f := &installFlags{}
	f.root = c.install.Flag("root", "Runtime root directory").String()
	f.channel = c.install.Flag("channel", "Release channel").String()
	f.proxy = c.install.Flag("proxy", "HTTP(S) proxy for the archive fetch").String()
	f.noDaemon = c.install.Flag("no-daemon", "Skip installing the background service").Bool()
	f.explain = c.install.Flag("explain", "Show paragraph-form explanations").Bool()
	c.installCh = f

	c.uninstall = app.Command("uninstall", "Uninstall the runtime")
	c.explain = c.uninstall.Flag("explain", "Show paragraph-form explanations").Bool()

	return c
}

// dispatch runs whichever subcommand kingpin selected.
func dispatch(c *commands, selected string, cancel <-chan struct{}) error {
	switch selected {
	case c.install.FullCommand():
		return runInstall(c, cancel)
	case c.uninstall.FullCommand():
		return runUninstall(c, cancel)
	}
	return trace.BadParameter("unknown command %q", selected)
}

func runInstall(c *commands, cancel <-chan struct{}) error {
	cfg := config.Config{
		Explain: *c.installCh.explain,
	}
	cfg.Settings.InstallRoot = *c.installCh.root
	cfg.Settings.Channel = *c.installCh.channel
	cfg.Settings.Proxy = *c.installCh.proxy
	cfg.Settings.NoDaemon = *c.installCh.noDaemon
	if err := cfg.CheckAndSetDefaults(); err != nil {
		return trace.Wrap(err)
	}

	p, err := cfg.Planner()
	if err != nil {
		return trace.Wrap(err)
	}

	ip, err := plan.New(buildversion.Version(), p)
	if err != nil {
		return trace.Wrap(err)
	}

	fmt.Println(ip.DescribeInstall(cfg.Explain))

	return ip.Install(context.Background(), cancel, diagnostics.NopSink{})
}

func runUninstall(c *commands, cancel <-chan struct{}) error {
	ip, err := plan.ReadReceipt(buildversion.Version())
	if err != nil {
		return trace.Wrap(err)
	}

	fmt.Println(ip.DescribeUninstall(*c.explain))

	return ip.Uninstall(context.Background(), cancel, diagnostics.NopSink{})
}
