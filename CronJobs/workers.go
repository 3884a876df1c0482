package CronJobs

import (
	"fmt"
	"log"
	"time"

	"CDCPlatform/Models"
	"CDCPlatform/Whatsapp"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// BookingMaintenance expires stale payment orders and follows up on paid
// consultations.
type BookingMaintenance struct {
	DB *gorm.DB
}

func NewBookingMaintenance(db *gorm.DB) *BookingMaintenance {
	return &BookingMaintenance{
		DB: db,
	}
}

// StartMaintenanceCron starts the periodic booking sweep.
func (bm *BookingMaintenance) StartMaintenanceCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(15).Minutes().Do(func() {
		if err := bm.ExpireStaleOrders(); err != nil {
			log.Printf("Error expiring stale orders: %v", err)
		}
		if err := bm.SendConsultationReminders(); err != nil {
			log.Printf("Error sending consultation reminders: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Booking maintenance cron job started")

	return scheduler
}

// ExpireStaleOrders fails pending orders the gateway never settled. A
// Razorpay order that saw no callback within a day is dead.
func (bm *BookingMaintenance) ExpireStaleOrders() error {
	cutoff := time.Now().Add(-24 * time.Hour)

	var bookings []Models.Booking
	result := bm.DB.Where("status = ? AND created_at < ?", Models.BookingStatusPending, cutoff).
		Find(&bookings)
	if result.Error != nil {
		return fmt.Errorf("failed to query stale orders: %w", result.Error)
	}

	for _, booking := range bookings {
		if err := booking.MarkFailed(); err != nil {
			continue
		}
		if err := bm.DB.Save(&booking).Error; err != nil {
			log.Printf("Failed to expire order %s: %v", booking.OrderID, err)
			continue
		}
		log.Printf("Expired stale order %s", booking.OrderID)
	}

	return nil
}

// SendConsultationReminders messages each parent whose paid consultation
// has not yet been followed up on.
func (bm *BookingMaintenance) SendConsultationReminders() error {
	var bookings []Models.Booking
	result := bm.DB.Where("status = ? AND reminder_sent = ?", Models.BookingStatusPaid, false).
		Find(&bookings)
	if result.Error != nil {
		return fmt.Errorf("failed to query paid bookings: %w", result.Error)
	}

	for _, booking := range bookings {
		var child Models.Child
		if err := bm.DB.First(&child, booking.ChildID).Error; err != nil {
			log.Printf("Failed to find child for booking ID %d: %v", booking.ID, err)
			continue
		}

		parent, err := Models.GetUserByID(child.ParentID)
		if err != nil || parent.Phone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Reminder: your consultation for %s is booked and our team is scheduling it. "+
				"If you have not heard from us yet, please reach out to the help desk.",
			child.FirstName,
		)

		if err := Whatsapp.SendMessage(parent.Phone, message); err != nil {
			log.Printf("Failed to send reminder to %s: %v", parent.Name, err)
			continue
		}

		booking.ReminderSent = true
		if err := bm.DB.Save(&booking).Error; err != nil {
			log.Printf("Failed to mark reminder sent for booking ID %d: %v", booking.ID, err)
		}
	}

	return nil
}
