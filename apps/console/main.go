package main

import (
	"log"
	"os"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/session"
	"github.com/trezcool/lava/services/backend"
	feedbacksvc "github.com/trezcool/lava/services/feedback"
	dummyfeedback "github.com/trezcool/lava/services/feedback/dummy"
	logsvc "github.com/trezcool/lava/services/logger"
	sessionstore "github.com/trezcool/lava/storage/session"
	"github.com/trezcool/lava/ui"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()
	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up services
	var logger core.Logger
	if conf.Debug {
		logger = core.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	var fbSvc core.FeedbackService
	if conf.Feedback.URL == "" {
		fbSvc = dummyfeedback.NewService()
	} else {
		fbSvc = feedbacksvc.NewService(conf, logger)
	}

	// set up session store
	store, err := sessionstore.Open(conf.SessionDBPath)
	if err != nil {
		logger.Fatal("opening session store", err)
	}
	defer store.Close()
	sess := session.NewManager(store)

	app := ui.NewApp(&ui.Options{
		Session:  sess,
		API:      backend.NewClient(conf, sess, logger),
		Feedback: fbSvc,
		Logger:   logger,
		Out:      os.Stdout,
	})
	app.Start()
	app.WaitIdle()

	// start CLI
	cli := commandLine{app: app, logger: logger}
	if err := cli.run(os.Stdin); err != nil {
		logger.Fatal("command shell failed", err)
	}
}
