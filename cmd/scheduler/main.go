// Scheduler periodically invokes the trigger-check webhook. It is the
// external caller the evaluation engine expects; the server itself never
// runs checks on its own.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"price-tracker/internal/config"
	"price-tracker/internal/logger"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

var (
	baseURL      = flag.String("url", "http://localhost:8080", "price-tracker server base URL")
	dropSchedule = flag.String("drops", "*/30 * * * *", "cron schedule for price drop checks")
	restockCron  = flag.String("restocks", "15 * * * *", "cron schedule for restock checks")
	summaryCron  = flag.String("summary", "0 9 * * *", "cron schedule for the daily summary")
	once         = flag.Bool("once", false, "run every check once and exit")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.WithComponent("scheduler")

	client := resty.New()
	client.SetTimeout(2 * time.Minute)

	runCheck := func(checkType string) {
		resp, err := client.R().
			SetHeader("X-Cron-Secret", cfg.CronSecret).
			SetQueryParam("check_type", checkType).
			Post(fmt.Sprintf("%s/api/v1/alerts/trigger-check", *baseURL))
		if err != nil {
			log.Error().Err(err).Str("check", checkType).Msg("trigger-check request failed")
			return
		}
		if resp.StatusCode() != 200 {
			log.Error().Int("status", resp.StatusCode()).Str("check", checkType).
				Str("body", resp.String()).Msg("trigger-check rejected")
			return
		}
		log.Info().Str("check", checkType).Str("result", resp.String()).Msg("check completed")
	}

	if *once {
		runCheck("price_drops")
		runCheck("restocks")
		runCheck("summary")
		return
	}

	c := cron.New()
	mustAdd(c, *dropSchedule, func() { runCheck("price_drops") })
	mustAdd(c, *restockCron, func() { runCheck("restocks") })
	mustAdd(c, *summaryCron, func() { runCheck("summary") })
	c.Start()
	log.Info().Str("url", *baseURL).Msg("scheduler started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx := c.Stop()
	<-ctx.Done()
	log.Info().Msg("scheduler stopped")
}

func mustAdd(c *cron.Cron, spec string, fn func()) {
	if _, err := c.AddFunc(spec, fn); err != nil {
		fmt.Fprintf(os.Stderr, "invalid cron spec %q: %v\n", spec, err)
		os.Exit(1)
	}
}
