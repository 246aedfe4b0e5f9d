package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/climbstats/internal/config"
	"github.com/2beens/climbstats/internal/dashboard"
	"github.com/2beens/climbstats/internal/logging"
	"github.com/2beens/climbstats/internal/report"
	"github.com/2beens/climbstats/internal/strava"

	log "github.com/sirupsen/logrus"
)

// one-shot strava elevation dashboard generator

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	outputPath := flag.String("output", "", "output HTML file path (overrides config)")
	dateFlag := flag.String("date", "", "reference date YYYY-MM-DD (default: today), for reproducible runs")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Printf("failed to load config: %s\n", err)
		os.Exit(1)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "climbstats-dashboard",
	})
	// fatal exits flush through the logrus exit handler; this covers the
	// normal return path
	defer logging.Flush(5 * time.Second)

	log.Warnf("---->> running in [%s] environment", *env)

	clientID := os.Getenv("CLIMBSTATS_STRAVA_CLIENT_ID")
	if clientID == "" {
		log.Fatalln("strava client id not set, use CLIMBSTATS_STRAVA_CLIENT_ID env var to set it")
	}
	clientSecret := os.Getenv("CLIMBSTATS_STRAVA_CLIENT_SECRET")
	if clientSecret == "" {
		log.Fatalln("strava client secret not set, use CLIMBSTATS_STRAVA_CLIENT_SECRET env var to set it")
	}
	refreshToken := os.Getenv("CLIMBSTATS_STRAVA_REFRESH_TOKEN")
	if refreshToken == "" {
		log.Fatalln("strava refresh token not set, use CLIMBSTATS_STRAVA_REFRESH_TOKEN env var to set it")
	}

	today := time.Now()
	if *dateFlag != "" {
		today, err = time.ParseInLocation("2006-01-02", *dateFlag, time.UTC)
		if err != nil {
			log.Fatalf("invalid -date value %q: %s", *dateFlag, err)
		}
	}

	output := cfg.OutputPath
	if *outputPath != "" {
		output = *outputPath
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		receivedSig := <-chOsInterrupt
		log.Warnf("signal [%s] received, canceling ...", receivedSig)
		cancel()
	}()

	stravaClient := strava.NewClient(
		strava.ClientConfig{
			AuthURL:       cfg.StravaAuthURL,
			ActivitiesURL: cfg.StravaActivitiesURL,
			ClientID:      clientID,
			ClientSecret:  clientSecret,
			RefreshToken:  refreshToken,
		},
		&http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
	)

	generator := dashboard.NewGenerator(dashboard.NewGeneratorParams{
		Fetcher:        stravaClient,
		Writer:         report.NewFileWriter(output),
		ActivityTypes:  cfg.ActivityTypes,
		LookbackMonths: cfg.LookbackMonths,
	})

	if err := generator.Run(ctx, today); err != nil {
		log.Fatalf("dashboard generation failed: %s", err)
	}

	log.Infoln("dashboard generation done")
}
