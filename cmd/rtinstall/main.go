package main

import (
	stdlog "log"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	log.SetOutput(os.Stderr)
	stdlog.SetOutput(log.StandardLogger().Writer())

	app := kingpin.New("rtinstall", "Install and uninstall the runtime")
	if err := run(app); err != nil {
		log.Error(err)
		os.Exit(255)
	}
}

func run(app *kingpin.Application) error {
	cmd := registerCommands(app)

	parsed, err := app.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	cancel := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		close(cancel)
	}()

	return dispatch(cmd, parsed, cancel)
}
