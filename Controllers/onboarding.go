package Controllers

import (
	"errors"
	"log"
	"net/http"

	"CDCPlatform/Models"
	"CDCPlatform/Onboarding"
	"CDCPlatform/Utils/Token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func loadWizard(c *gin.Context) (*Onboarding.Wizard, *Models.OnboardingDraft, bool) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	draft, err := Models.GetDraftForUser(user_id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		draft = Models.OnboardingDraft{UserID: user_id, Step: 1, Data: "{}"}
		if err := Models.DB.Create(&draft).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start onboarding"})
			return nil, nil, false
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load onboarding"})
		return nil, nil, false
	}

	data, err := Onboarding.UnmarshalData(draft.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Corrupt onboarding draft"})
		return nil, nil, false
	}
	return Onboarding.Restore(draft.Step, data, draft.Submitted), &draft, true
}

func persistWizard(c *gin.Context, wizard *Onboarding.Wizard, draft *Models.OnboardingDraft) bool {
	raw, err := wizard.MarshalData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save onboarding"})
		return false
	}
	draft.Step = wizard.Step()
	draft.Data = raw
	draft.Submitted = wizard.Submitted()
	if err := Models.DB.Save(draft).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save onboarding"})
		return false
	}
	return true
}

func respondWizard(c *gin.Context, wizard *Onboarding.Wizard) {
	c.JSON(http.StatusOK, gin.H{
		"step":       wizard.Step(),
		"step_title": wizard.StepTitle(),
		"steps":      Onboarding.StepTitles,
		"data":       wizard.Data(),
		"submitted":  wizard.Submitted(),
	})
}

func FetchOnboarding(c *gin.Context) {
	wizard, _, ok := loadWizard(c)
	if !ok {
		return
	}
	respondWizard(c, wizard)
}

// NextOnboardingStep merges the current step's form and advances.
func NextOnboardingStep(c *gin.Context) {
	var input struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wizard, draft, ok := loadWizard(c)
	if !ok {
		return
	}
	if wizard.Submitted() {
		c.JSON(http.StatusBadRequest, gin.H{"error": Onboarding.ErrAlreadySubmitted.Error()})
		return
	}

	wizard.Merge(input.Data)
	wizard.Next()
	if !persistWizard(c, wizard, draft) {
		return
	}
	respondWizard(c, wizard)
}

func PreviousOnboardingStep(c *gin.Context) {
	wizard, draft, ok := loadWizard(c)
	if !ok {
		return
	}
	wizard.Previous()
	if !persistWizard(c, wizard, draft) {
		return
	}
	respondWizard(c, wizard)
}

// SubmitOnboarding turns the completed wizard into a pending CDC awaiting
// Super Admin review.
func SubmitOnboarding(c *gin.Context) {
	wizard, draft, ok := loadWizard(c)
	if !ok {
		return
	}

	data, err := wizard.Submit()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, err := wizard.MarshalData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save onboarding"})
		return
	}

	cdc := Models.CDC{
		Name:    stringField(data, "name"),
		City:    stringField(data, "city"),
		Phone:   stringField(data, "phone"),
		Profile: raw,
		Status:  Models.CDCStatusPending,
		AdminID: draft.UserID,
	}
	if cdc.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CDC name is required"})
		return
	}

	tx := Models.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&cdc).Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register CDC"})
		return
	}

	draft.Step = wizard.Step()
	draft.Data = raw
	draft.Submitted = true
	if err := tx.Save(draft).Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save onboarding"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println(err)
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "CDC submitted for review", "cdc": cdc})
}

func stringField(data map[string]interface{}, key string) string {
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}
