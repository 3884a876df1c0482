package Models

import (
	"errors"

	"gorm.io/gorm"
)

const (
	BookingStatusPending = "pending"
	BookingStatusPaid    = "paid"
	BookingStatusFailed  = "failed"
)

// Booking tracks one consultation payment. Status moves pending -> paid on a
// verified gateway callback, pending -> failed otherwise; terminal states
// never change.
type Booking struct {
	gorm.Model
	ChildID      uint    `json:"child_id"`
	ResultID     uint    `json:"result_id"`
	OrderID      string  `json:"order_id" gorm:"unique"`
	PaymentID    string  `json:"payment_id"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	ReminderSent bool    `json:"reminder_sent"`
}

var ErrBookingNotPending = errors.New("booking is not pending")

func (booking *Booking) MarkPaid(paymentID string) error {
	if booking.Status != BookingStatusPending {
		return ErrBookingNotPending
	}
	booking.Status = BookingStatusPaid
	booking.PaymentID = paymentID
	return nil
}

func (booking *Booking) MarkFailed() error {
	if booking.Status != BookingStatusPending {
		return ErrBookingNotPending
	}
	booking.Status = BookingStatusFailed
	return nil
}

func GetBookingByOrderID(orderID string) (Booking, error) {
	var booking Booking
	if err := DB.Model(&Booking{}).Where("order_id = ?", orderID).First(&booking).Error; err != nil {
		return booking, errors.New("Booking not found")
	}
	return booking, nil
}

// GetPendingBooking finds an open order for the child/result pair so a
// double create-order reuses it instead of abandoning the first.
func GetPendingBooking(childID, resultID uint) (Booking, error) {
	var booking Booking
	err := DB.Model(&Booking{}).
		Where("child_id = ? AND result_id = ? AND status = ?", childID, resultID, BookingStatusPending).
		First(&booking).Error
	return booking, err
}
