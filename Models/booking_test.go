package Models

import (
	"errors"
	"testing"
)

func TestMarkPaid(t *testing.T) {
	booking := Booking{OrderID: "order_1", Status: BookingStatusPending}
	if err := booking.MarkPaid("pay_1"); err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusPaid {
		t.Errorf("Status = %q, want %q", booking.Status, BookingStatusPaid)
	}
	if booking.PaymentID != "pay_1" {
		t.Errorf("PaymentID = %q, want pay_1", booking.PaymentID)
	}
}

func TestMarkFailed(t *testing.T) {
	booking := Booking{OrderID: "order_1", Status: BookingStatusPending}
	if err := booking.MarkFailed(); err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusFailed {
		t.Errorf("Status = %q, want %q", booking.Status, BookingStatusFailed)
	}
}

// Paid and failed are terminal; no transition leaves them.
func TestTerminalStatesAreImmutable(t *testing.T) {
	paid := Booking{Status: BookingStatusPaid, PaymentID: "pay_1"}
	if err := paid.MarkFailed(); !errors.Is(err, ErrBookingNotPending) {
		t.Errorf("MarkFailed on paid booking: err = %v, want ErrBookingNotPending", err)
	}
	if err := paid.MarkPaid("pay_2"); !errors.Is(err, ErrBookingNotPending) {
		t.Errorf("MarkPaid on paid booking: err = %v, want ErrBookingNotPending", err)
	}
	if paid.PaymentID != "pay_1" {
		t.Errorf("PaymentID changed to %q on a rejected transition", paid.PaymentID)
	}

	failed := Booking{Status: BookingStatusFailed}
	if err := failed.MarkPaid("pay_3"); !errors.Is(err, ErrBookingNotPending) {
		t.Errorf("MarkPaid on failed booking: err = %v, want ErrBookingNotPending", err)
	}
	if failed.Status != BookingStatusFailed {
		t.Errorf("Status = %q, failed booking must stay failed", failed.Status)
	}
}
