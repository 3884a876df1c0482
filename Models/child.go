package Models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Child struct {
	gorm.Model
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"` // "2006-01-02"
	Gender      string `json:"gender"`        // Boy | Girl
	ParentID    uint   `json:"parent_id"`
	AgeInMonths int    `json:"age_in_months" gorm:"-"`
}

const dateOfBirthLayout = "2006-01-02"

// ComputeAge fills AgeInMonths from the date of birth. The stored value is
// never authoritative; it is recomputed on every read.
func (child *Child) ComputeAge(now time.Time) error {
	dob, err := time.Parse(dateOfBirthLayout, child.DateOfBirth)
	if err != nil {
		return errors.New("invalid date of birth")
	}
	if dob.After(now) {
		return errors.New("date of birth is in the future")
	}
	child.AgeInMonths = MonthsBetween(dob, now)
	return nil
}

// MonthsBetween counts whole calendar months elapsed from dob to now.
func MonthsBetween(dob, now time.Time) int {
	months := (now.Year()-dob.Year())*12 + int(now.Month()) - int(dob.Month())
	if now.Day() < dob.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func GetChildForParent(childID, parentID uint) (Child, error) {
	var child Child
	if err := DB.Model(&Child{}).Where("id = ? AND parent_id = ?", childID, parentID).First(&child).Error; err != nil {
		return child, errors.New("Child not found")
	}
	if err := child.ComputeAge(time.Now()); err != nil {
		return child, err
	}
	return child, nil
}
