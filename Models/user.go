package Models

import (
	"CDCPlatform/Utils/Token"
	"errors"
	"html"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string        `gorm:"size:255;not null" json:"name"`
	Email       string        `gorm:"size:255;not null;unique" json:"email"`
	Phone       string        `gorm:"size:32;index" json:"phone"`
	Password    string        `gorm:"size:255;not null" json:"password"`
	Role        string        `gorm:"size:32;not null" json:"role"`
	IsFrozen    bool          `json:"is_frozen"`
	CreatedByID *uint         `json:"created_by_id" gorm:"default:null"`
	Tokens      []DeviceToken `gorm:"foreignKey:UserID"`
	OTP         string        `json:"-"`
	OTPExpiry   time.Time     `json:"-"`
}

type DeviceToken struct {
	gorm.Model
	UserID uint
	Value  string `json:"value" gorm:"unique"`
}

func GetUserByID(uid uint) (User, error) {
	var user User

	if err := DB.First(&user, uid).Error; err != nil {
		return user, errors.New("User not found")
	}

	user.PrepareGive()

	return user, nil
}

func GetUserByPhone(phone string) (User, error) {
	var user User
	if err := DB.Model(&User{}).Where("phone = ?", phone).Take(&user).Error; err != nil {
		return user, errors.New("User not found")
	}
	return user, nil
}

// GetStaffFCMs collects device tokens of the roles that handle incoming
// bookings, for push notifications.
func GetStaffFCMs() ([]string, error) {
	var fcms []string
	staffRoles := []string{RoleHelpDesk, RoleDoctor, RolePsychiatrist}
	if err := DB.Model(&DeviceToken{}).
		Joins("JOIN users ON users.id = device_tokens.user_id").
		Where("users.role IN ?", staffRoles).
		Select("device_tokens.value").Find(&fcms).Error; err != nil {
		return []string{}, errors.New("No FCMs found")
	}
	return fcms, nil
}

func (user *User) ChangeState() {
	user.IsFrozen = !user.IsFrozen
}

func (user *User) PrepareGive() {
	user.Password = ""
	user.OTP = ""
}

// GenerateOTP sets a fresh numeric one-time code valid for five minutes.
func (user *User) GenerateOTP(count int) {
	var possibleCharacters = []rune("1234567890")

	token := make([]rune, count)
	for index := range token {
		token[index] = possibleCharacters[rand.Intn(len(possibleCharacters))]
	}
	user.OTP = string(token)
	user.OTPExpiry = time.Now().Add(5 * time.Minute)
}

func (user *User) CheckOTP(otp string) error {
	if user.OTP == "" || user.OTP != otp {
		return errors.New("incorrect code")
	}
	if time.Now().After(user.OTPExpiry) {
		return errors.New("code expired")
	}
	return nil
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(email string, password string) (User, string, error) {

	var err error

	user := User{}

	err = DB.Model(User{}).Where("email = ?", email).Take(&user).Error

	if err != nil {
		return user, "", err
	}

	err = VerifyPassword(password, user.Password)

	if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
		return user, "", err
	}

	token, err := Token.GenerateToken(user.ID, user.Role)

	if err != nil {
		return user, "", err
	}

	return user, token, nil
}

func (user *User) SaveUser() (*User, error) {

	if err := user.BeforeSave(); err != nil {
		return &User{}, err
	}

	if err := DB.Create(&user).Error; err != nil {
		return &User{}, err
	}

	return user, nil
}

func (user *User) BeforeSave() error {

	if !IsValidRole(user.Role) {
		return errors.New("unknown role: " + user.Role)
	}

	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	//remove spaces in email
	user.Email = html.EscapeString(strings.TrimSpace(user.Email))

	return nil
}
