package Controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"CDCPlatform/Constants"
	"CDCPlatform/FirebaseMessaging"
	"CDCPlatform/Models"
	"CDCPlatform/Payments"
	"CDCPlatform/SSE"
	"CDCPlatform/Utils/Token"
	"CDCPlatform/Whatsapp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	gatewayOnce   sync.Once
	gatewayClient *Payments.Client
)

// gateway is created lazily so the .env file is loaded first.
func gateway() *Payments.Client {
	gatewayOnce.Do(func() {
		gatewayClient = Payments.NewClientFromEnv()
	})
	return gatewayClient
}

type CreateOrderInput struct {
	ChildID  uint `json:"child_id" binding:"required"`
	ResultID uint `json:"result_id" binding:"required"`
}

// CreateOrder opens a consultation payment order for a flagged result. A
// repeat call while an order is still pending returns that same order.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if _, err := Models.GetChildForParent(input.ChildID, parent_id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}

	result, err := Models.GetResultForChild(input.ResultID, input.ChildID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}
	if !result.NeedsConsultation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This result does not call for a consultation"})
		return
	}

	if existing, err := Models.GetPendingBooking(input.ChildID, input.ResultID); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"orderId": existing.OrderID,
			"amount":  existing.Amount,
			"key":     gateway().KeyID,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing bookings"})
		return
	}

	order, err := gateway().CreateOrder(Constants.ConsultationFee, Constants.Currency)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create payment order"})
		return
	}

	booking := Models.Booking{
		ChildID:  input.ChildID,
		ResultID: input.ResultID,
		OrderID:  order.ID,
		Amount:   Constants.ConsultationFee,
		Status:   Models.BookingStatusPending,
	}
	if err := Models.DB.Create(&booking).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId": order.ID,
		"amount":  booking.Amount,
		"key":     gateway().KeyID,
	})
}

type VerifyPaymentInput struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment settles a booking from the gateway callback. Only a valid
// signature moves it to paid; anything else marks it failed. A booking never
// reaches paid without this verification.
func VerifyPayment(c *gin.Context) {
	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := Models.GetBookingByOrderID(input.OrderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	// The gateway may retry a callback it already delivered.
	if booking.Status == Models.BookingStatusPaid && booking.PaymentID == input.PaymentID {
		c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed", "booking": booking})
		return
	}

	if !gateway().VerifyCallback(input.OrderID, input.PaymentID, input.Signature) {
		if err := booking.MarkFailed(); err == nil {
			if err := Models.DB.Save(&booking).Error; err != nil {
				log.Println(err)
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
		return
	}

	if err := booking.MarkPaid(input.PaymentID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking already settled"})
		return
	}
	if err := Models.DB.Save(&booking).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed", "booking": booking})

	notifyBookingPaid(booking)
	SSE.Broadcaster.Broadcast("refresh")
}

func notifyBookingPaid(booking Models.Booking) {
	var child Models.Child
	if err := Models.DB.First(&child, booking.ChildID).Error; err != nil {
		log.Println(err)
		return
	}

	fcms, _ := Models.GetStaffFCMs()
	if len(fcms) > 0 {
		FirebaseMessaging.SendMessage(Models.NotificationRequest{
			Tokens: fcms,
			Title:  "A Consultation Has Been Booked",
			Body:   fmt.Sprintf("A consultation for %s has been paid for and awaits scheduling", child.FirstName),
		})
	}

	parent, err := Models.GetUserByID(child.ParentID)
	if err != nil || parent.Phone == "" {
		return
	}
	if err := Whatsapp.SendMessage(parent.Phone, fmt.Sprintf("Your consultation booking for %s is confirmed. Our team will contact you within 24 hours to schedule the appointment.", child.FirstName)); err != nil {
		log.Println(err)
	}
}

// FetchChildBookings lists a child's bookings for the owning parent.
func FetchChildBookings(c *gin.Context) {
	var input struct {
		ChildID uint `json:"child_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parent_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if _, err := Models.GetChildForParent(input.ChildID, parent_id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}

	var bookings []Models.Booking
	if err := Models.DB.Model(&Models.Booking{}).Where("child_id = ?", input.ChildID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// FetchBookings lists all bookings for staff dashboards.
func FetchBookings(c *gin.Context) {
	var bookings []Models.Booking
	if err := Models.DB.Model(&Models.Booking{}).Order("created_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
