package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/notify"
	"github.com/UDAVALAPATISURESH/backend-spn/redis"
)

var notifier notify.Notifier

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs(n notify.Notifier) {
	notifier = n

	c := cron.New()
	// Day-ahead reminders for confirmed appointments.
	if _, err := c.AddFunc("*/15 * * * *", sendDayAheadReminders); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Short-notice reminders shortly before the start time.
	if _, err := c.AddFunc("*/5 * * * *", sendShortNoticeReminders); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendDayAheadReminders emails customers with confirmed appointments starting
// roughly 24 hours from now.
func sendDayAheadReminders() {
	now := time.Now()
	remind(
		"reminder:24h",
		now.Add(23*time.Hour), now.Add(25*time.Hour),
		notifier.SendReminder,
	)
}

// sendShortNoticeReminders pings customers whose appointment starts in about
// 15 minutes, by SMS when possible.
func sendShortNoticeReminders() {
	now := time.Now()
	remind(
		"reminder:15m",
		now.Add(15*time.Minute), now.Add(20*time.Minute),
		notifier.SendFifteenMinuteReminder,
	)
}

// remind sends one notification per confirmed appointment starting within
// [from, to). The job windows overlap across runs, so each send is claimed in
// Redis first. Failures are logged per appointment and never stop the loop.
func remind(keyPrefix string, from, to time.Time, send func(*models.Appointment) error) {
	var appointments []models.Appointment
	err := db.DB.
		Preload("User").
		Preload("Services").Preload("Services.Service").Preload("Services.Staff").
		Where("status = ? AND start_time >= ? AND start_time < ?", models.StatusConfirmed, from, to).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for i := range appointments {
		appointment := &appointments[i]

		key := fmt.Sprintf("%s:%d", keyPrefix, appointment.ID)
		claimed, err := redis.MarkOnce(key, 48*time.Hour)
		if err != nil {
			log.Printf("Reminder dedupe check failed for appointment %d: %v", appointment.ID, err)
		} else if !claimed {
			continue
		}

		if err := send(appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.User.Email)
	}
}
