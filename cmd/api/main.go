package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/pageza/mixoholic/config"
	"github.com/pageza/mixoholic/internal/api"
	"github.com/pageza/mixoholic/internal/logger"
	"github.com/pageza/mixoholic/internal/metrics"
	"github.com/pageza/mixoholic/internal/router"
	"github.com/pageza/mixoholic/internal/server"
	"github.com/pageza/mixoholic/internal/service"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("Failed to load .env file")
	}

	app := cli.NewApp()
	app.Name = "mixoholic-api"
	app.Usage = "Mixoholic recipe service"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "port", Usage: "port to listen on", EnvVar: "PORT"},
		cli.StringFlag{Name: "host", Usage: "host to bind to", EnvVar: "SERVER_HOST"},
		cli.StringFlag{Name: "model", Usage: "completion model", EnvVar: "OPENAI_MODEL"},
		cli.StringFlag{Name: "log-level", Usage: "log level", EnvVar: "LOG_LEVEL"},
		cli.StringFlag{Name: "log-format", Usage: "log format (text or json)", EnvVar: "LOG_FORMAT"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("Recipe service failed")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.LoadConfig(flagOverrides(c))
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

	llm, err := service.NewLLMService(cfg, log)
	if err != nil {
		return err
	}

	m := metrics.New()
	cocktails := service.NewCocktailService(llm, m, log)
	r := router.SetupRouter(log, m, api.NewRecipeHandler(cocktails))

	log.WithFields(logrus.Fields{
		"env":   config.GetEnvironment(),
		"model": llm.Model(),
	}).Info("Starting recipe service")

	return server.New(cfg.Addr(), r, log).Run()
}

func flagOverrides(c *cli.Context) config.Override {
	return func(cfg *config.Config) {
		applyFlags(c, cfg)
	}
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("port") {
		cfg.ServerPort = c.String("port")
	}
	if c.IsSet("host") {
		cfg.ServerHost = c.String("host")
	}
	if c.IsSet("model") {
		cfg.OpenAIModel = c.String("model")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
}
