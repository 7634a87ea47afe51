package utils

import (
	"log"
	"time"

	"learnhub/database"
	"learnhub/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeSubscriptionScheduler sets up the subscription expiry scheduler
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at 9 AM to expire lapsed subscriptions and send reminders
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		ProcessExpiringSubscriptions()
		ExpireSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at 9 AM")
}

// ProcessExpiringSubscriptions sends reminder emails for subscriptions expiring in 2 days
func ProcessExpiringSubscriptions() {
	db := database.Database.Db
	today := now.BeginningOfDay()
	twoDaysFromNow := today.AddDate(0, 0, 2)

	var expiring []models.Subscription
	if err := db.
		Where("status = ? AND reminder_sent = ? AND is_deleted = ?", models.SubscriptionActive, false, false).
		Where("end_date BETWEEN ? AND ?", today, twoDaysFromNow).
		Find(&expiring).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expiring subscriptions: %v", err)
		return
	}

	log.Printf("[SUBSCRIPTION-SCHEDULER] Found %d subscriptions expiring soon", len(expiring))

	for _, sub := range expiring {
		var user models.User
		if err := db.Where("id = ?", sub.UserID).First(&user).Error; err != nil {
			log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching user %d: %v", sub.UserID, err)
			continue
		}

		SendSubscriptionExpiryReminder(user.Email, user.Name, sub.PlanType, sub.EndDate)

		db.Model(&sub).Update("reminder_sent", true)
		log.Printf("[SUBSCRIPTION-SCHEDULER] Sent expiry reminder for subscription %d to %s", sub.ID, user.Email)
	}
}

// ExpireSubscriptions marks lapsed ACTIVE subscriptions as EXPIRED
func ExpireSubscriptions() {
	db := database.Database.Db

	res := db.Model(&models.Subscription{}).
		Where("status = ? AND end_date < ? AND is_deleted = ?", models.SubscriptionActive, time.Now(), false).
		Update("status", models.SubscriptionExpired)
	if res.Error != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error expiring subscriptions: %v", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Marked %d subscriptions EXPIRED", res.RowsAffected)
	}
}
