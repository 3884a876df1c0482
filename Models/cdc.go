package Models

import (
	"errors"

	"gorm.io/gorm"
)

const (
	CDCStatusPending  = "pending"
	CDCStatusApproved = "approved"
	CDCStatusRejected = "rejected"
)

// CDC is a registered child development center. Profile holds the full
// onboarding submission as JSON; the indexed columns are extracted from it.
type CDC struct {
	gorm.Model
	Name    string `json:"name"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Profile string `json:"profile"`
	Status  string `json:"status"`
	AdminID uint   `json:"admin_id"`
}

// OnboardingDraft persists a CDC admin's wizard progress between visits.
// One draft per admin.
type OnboardingDraft struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"unique"`
	Step      int    `json:"step"`
	Data      string `json:"data"`
	Submitted bool   `json:"submitted"`
}

func CDCExists(id uint) (bool, error) {
	var count int64
	err := DB.Model(&CDC{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetDraftForUser(userID uint) (OnboardingDraft, error) {
	var draft OnboardingDraft
	err := DB.Model(&OnboardingDraft{}).Where("user_id = ?", userID).First(&draft).Error
	return draft, err
}

func ReviewCDC(id uint, status string) error {
	if status != CDCStatusApproved && status != CDCStatusRejected {
		return errors.New("unknown review status")
	}
	return DB.Model(&CDC{}).Where("id = ?", id).Update("status", status).Error
}
