package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/api"
	"taskboard/internal/config"
	"taskboard/internal/notify"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo)
	digestSvc := service.NewDigestService(taskRepo)

	logger := log.New(os.Stdout, "", log.LstdFlags)
	server := api.NewServer(cfg, taskSvc, categorySvc, logger)

	if cfg.DigestInterval > 0 {
		var notifier *notify.TelegramNotifier
		if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
			notifier, err = notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
			if err != nil {
				log.Fatalf("telegram: %v", err)
			}
		}

		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleInterval(cfg.DigestInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			summary, err := digestSvc.Summary(jobCtx, time.Now())
			if err != nil {
				log.Printf("digest: %v", err)
				return
			}
			log.Printf("digest:\n%s", summary)
			if notifier != nil {
				if err := notifier.Send(summary); err != nil {
					log.Printf("digest send: %v", err)
				}
			}
		}); err != nil {
			log.Fatalf("schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	log.Println("Taskboard server started.")
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
		<-errCh
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("server stopped with error: %v", err)
		}
	}
	log.Println("Shutdown complete.")
}
