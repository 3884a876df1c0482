package Controllers

import (
	"log"
	"net/http"
	"time"

	"CDCPlatform/Models"
	"CDCPlatform/Sessions"
	"CDCPlatform/Utils/Token"
	"CDCPlatform/Whatsapp"

	"github.com/gin-gonic/gin"
)

func CurrentUser(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByID(user_id)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var output struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	output.ID = user.ID
	output.Name = user.Name
	output.Email = user.Email
	output.Role = user.Role
	c.JSON(http.StatusOK, gin.H{"message": "success", "user": output, "timestamp": time.Now()})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := Models.LoginCheck(input.Email, input.Password)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email or password is incorrect."})
		return
	}

	if user.IsFrozen {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User Frozen"})
		return
	}

	openSession(user, token)
	respondLoggedIn(c, user, token)
}

// openSession records the login in the session registry; the guard resolves
// bearer tokens against it and purges them on expiry.
func openSession(user Models.User, token string) {
	Sessions.Active.Put(Sessions.Session{
		UserID:      user.ID,
		DisplayName: user.Name,
		Role:        user.Role,
		Token:       token,
		ExpiresAt:   time.Now().Add(Token.Lifespan()),
	})
}

func respondLoggedIn(c *gin.Context, user Models.User, token string) {
	user.PrepareGive()
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login Successful",
		"token":     token,
		"dashboard": Models.DashboardPath(user.Role),
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// Register creates a Parent account; staff accounts only come from the
// role-gated creation endpoints.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := Models.User{}

	user.Name = input.Name
	user.Email = input.Email
	user.Password = input.Password
	user.Phone = input.Phone
	user.Role = Models.RoleParent
	_, err := user.SaveUser()

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := Token.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	openSession(user, token)
	respondLoggedIn(c, user, token)
}

// RegisterAdmin bootstraps the first Super Admin. Once one exists the
// endpoint refuses.
func RegisterAdmin(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	if err := Models.DB.Model(&Models.User{}).Where("role = ?", Models.RoleSuperAdmin).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing admins"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Super Admin already registered"})
		return
	}

	user := Models.User{}
	user.Name = input.Name
	user.Email = input.Email
	user.Password = input.Password
	user.Phone = input.Phone
	user.Role = Models.RoleSuperAdmin

	if _, err := user.SaveUser(); err != nil {
		log.Println(err)
		c.String(http.StatusBadRequest, "Failed To Register User")
		c.Abort()
		return
	}

	token, err := Token.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	openSession(user, token)
	respondLoggedIn(c, user, token)
}

func RequestOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByPhone(input.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone Number Not Registered"})
		return
	}

	user.GenerateOTP(6)
	if err := Models.DB.Model(&Models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"otp": user.OTP, "otp_expiry": user.OTPExpiry}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store code"})
		return
	}

	if err := Whatsapp.SendMessage(user.Phone, "Your CDC Platform login code is "+user.OTP); err != nil {
		log.Println("failed to deliver OTP:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not deliver the code, try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Code sent over WhatsApp"})
}

func LoginOTP(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByPhone(input.Phone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "phone or code is incorrect."})
		return
	}

	if err := user.CheckOTP(input.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if user.IsFrozen {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User Frozen"})
		return
	}

	// One-time: burn the code.
	if err := Models.DB.Model(&Models.User{}).Where("id = ?", user.ID).Update("otp", "").Error; err != nil {
		log.Println(err)
	}

	token, err := Token.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	openSession(user, token)
	respondLoggedIn(c, user, token)
}

func Logout(c *gin.Context) {
	tokenStr := Token.ExtractToken(c)
	Sessions.Active.Clear(tokenStr)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func SaveFcmToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	deviceToken := Models.DeviceToken{UserID: user_id, Value: input.Token}
	if err := Models.DB.Save(&deviceToken).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func DeleteUser(c *gin.Context) {
	user_id, err := Token.ExtractTokenID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.GetUserByID(user_id)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Unscoped().Delete(&Models.DeviceToken{}, "user_id = ?", user.ID).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Unscoped().Delete(&Models.User{}, user.ID).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	Sessions.Active.Clear(Token.ExtractToken(c))
	c.JSON(http.StatusOK, gin.H{"message": "Account Deleted Successfully"})
}
