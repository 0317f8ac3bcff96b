package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"hostelhub/internal/config"
	"hostelhub/internal/database"
	"hostelhub/internal/modules/recurring"
)

// Runs the monthly-payment reminder sweep. With -once it sweeps and exits;
// otherwise it stays up and sweeps daily at 09:00.
func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	svc := recurring.NewService(db)

	sweep := func() {
		report, err := svc.SendReminders(context.Background())
		if err != nil {
			log.Printf("reminder sweep failed: %v", err)
			return
		}
		log.Printf("reminder sweep done sent=%d overdue=%d", report.RemindersSent, report.MarkedOverdue)
	}

	if *once {
		sweep()
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", sweep); err != nil {
		log.Fatal(err)
	}
	c.Start()
	log.Println("reminder scheduler started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx := c.Stop()
	<-ctx.Done()
	log.Println("reminder scheduler stopped")
}
