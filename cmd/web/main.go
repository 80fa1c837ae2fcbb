package main

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/pageza/mixoholic/config"
	"github.com/pageza/mixoholic/internal/client"
	"github.com/pageza/mixoholic/internal/logger"
	"github.com/pageza/mixoholic/internal/metrics"
	"github.com/pageza/mixoholic/internal/router"
	"github.com/pageza/mixoholic/internal/server"
	"github.com/pageza/mixoholic/internal/webui"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("Failed to load .env file")
	}

	app := cli.NewApp()
	app.Name = "mixoholic-web"
	app.Usage = "Mixoholic web client"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "port", Usage: "port to listen on", EnvVar: "WEB_PORT"},
		cli.StringFlag{Name: "host", Usage: "host to bind to", EnvVar: "WEB_HOST"},
		cli.StringFlag{Name: "api-url", Usage: "recipe service base URL", EnvVar: "MIXOHOLIC_API_URL"},
		cli.StringFlag{Name: "log-level", Usage: "log level", EnvVar: "LOG_LEVEL"},
		cli.StringFlag{Name: "log-format", Usage: "log format (text or json)", EnvVar: "LOG_FORMAT"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("Web client failed")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.LoadWebConfig(func(cfg *config.WebConfig) {
		if c.IsSet("port") {
			cfg.Port = c.String("port")
		}
		if c.IsSet("host") {
			cfg.Host = c.String("host")
		}
		if c.IsSet("api-url") {
			cfg.APIURL = strings.TrimRight(c.String("api-url"), "/")
		}
		if c.IsSet("log-level") {
			cfg.LogLevel = c.String("log-level")
		}
		if c.IsSet("log-format") {
			cfg.LogFormat = c.String("log-format")
		}
	})
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ui, err := webui.NewHandler(client.New(cfg.APIURL), cfg.APIURL, log)
	if err != nil {
		return err
	}
	r := router.SetupWebRouter(log, metrics.New(), ui)

	log.WithField("api_url", cfg.APIURL).Info("Starting web client")
	return server.New(cfg.Addr(), r, log).Run()
}
