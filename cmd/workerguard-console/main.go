package main

import (
	"context"
	"os"
	"time"

	"workerguard-console/internal/api"
	"workerguard-console/internal/config"
	"workerguard-console/internal/domain"
	"workerguard-console/internal/logger"
	"workerguard-console/internal/service"
	"workerguard-console/internal/store"

	"go.uber.org/zap"
)

// Smoke runner: logs in with credentials from the environment, walks every
// tab once, and reports slot sizes. The render layer consumes the same engine
// through the service.Console API.
func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "workerguard-console")
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	session := service.NewSessionManager(log)
	client := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Backend.Retries, session, log)
	slots := store.NewSlots()
	console := service.NewConsole(client, session, slots, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		log.Warn("backend health check failed", zap.Error(err))
	}

	code := os.Getenv("WG_COMPANY_CODE")
	username := os.Getenv("WG_USERNAME")
	key := os.Getenv("WG_PASSWORD")
	if username == "" {
		log.Info("no credentials in environment (WG_COMPANY_CODE/WG_USERNAME/WG_PASSWORD), exiting")
		return
	}

	if err := console.Login(ctx, code, username, key); err != nil {
		log.Error("login failed", zap.Error(err))
		os.Exit(1)
	}

	console.SetCenter(cfg.View.Center)
	console.SetMonth(cfg.View.Month)
	console.SetDate(cfg.View.Date)

	tabs := []domain.Tab{
		domain.TabRisk,
		domain.TabAnalytics,
		domain.TabWorkers,
		domain.TabPayroll,
		domain.TabSMS,
		domain.TabSettings,
	}
	for _, tab := range tabs {
		console.SetTab(tab)
		console.Refresh(ctx)
	}

	log.Info("refresh cycle complete",
		zap.Int("risk_centers", len(slots.Risk())),
		zap.Int("analytics_months", len(slots.Analytics())),
		zap.Int("workers", len(slots.Workers())),
		zap.Int("payroll_entries", len(slots.Payroll())),
		zap.Int("sms_messages", len(slots.SMS())),
		zap.Int("job_settings", len(slots.Settings())),
	)
}
