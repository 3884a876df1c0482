package Controllers

import (
	"log"
	"net/http"

	"CDCPlatform/Models"
	"CDCPlatform/Utils/Token"

	"github.com/gin-gonic/gin"
)

type CreateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// createUserWithRole is shared by the per-role creation endpoints; the role
// itself is fixed by the route, never taken from the request body.
func createUserWithRole(c *gin.Context, role string) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user := Models.User{}
	user.Name = input.Name
	user.Email = input.Email
	user.Password = input.Password
	user.Phone = input.Phone
	user.Role = role
	user.CreatedByID = &creator_id

	if _, err := user.SaveUser(); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed To Register User"})
		return
	}

	user.PrepareGive()
	c.JSON(http.StatusOK, gin.H{
		"message": role + " created successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func CreateSubAdmin(c *gin.Context)     { createUserWithRole(c, Models.RoleSubAdmin) }
func CreateCDCAdmin(c *gin.Context)     { createUserWithRole(c, Models.RoleCDCAdmin) }
func CreateDoctor(c *gin.Context)       { createUserWithRole(c, Models.RoleDoctor) }
func CreatePsychiatrist(c *gin.Context) { createUserWithRole(c, Models.RolePsychiatrist) }
func CreateHelpDesk(c *gin.Context)     { createUserWithRole(c, Models.RoleHelpDesk) }
func CreateMarketing(c *gin.Context)    { createUserWithRole(c, Models.RoleMarketing) }

// Hierarchy lists the accounts the caller created, most recent first.
func Hierarchy(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var users []Models.User
	if err := Models.DB.Model(&Models.User{}).
		Where("created_by_id = ?", user_id).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for index := range users {
		users[index].PrepareGive()
	}
	c.JSON(http.StatusOK, gin.H{"hierarchy": users})
}

func FreezeUser(c *gin.Context) {
	var input struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user Models.User
	if err := Models.DB.First(&user, input.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.ChangeState()
	if err := Models.DB.Model(&Models.User{}).Where("id = ?", user.ID).Update("is_frozen", user.IsFrozen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "is_frozen": user.IsFrozen})
}
