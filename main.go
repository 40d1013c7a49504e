package main

import (
	"flag"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/urban-sim-lab/gridtraffic/server"
	"github.com/urban-sim-lab/gridtraffic/utils/config"
)

var (
	listenAddr = flag.String("listen", ":8585", "HTTP listening address for the renderer boundary")
	configPath = flag.String("config", "", "yaml config file path (defaults apply when empty)")

	analyze = flag.Bool("analyze", false, "run the batch signal-timing analysis instead of serving")

	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "log level (trace debug info warn error critical off)")

	log = logrus.WithField("module", "main")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Panicf("%v", err)
		}
	}
	log.Infof("%+v", cfg)

	if *analyze {
		if err := runAnalysis(cfg); err != nil {
			log.Panicf("analysis: %v", err)
		}
		return
	}

	s := server.New(cfg)
	if err := s.ListenAndServe(*listenAddr); err != nil {
		log.Panicf("serve: %v", err)
	}
}
