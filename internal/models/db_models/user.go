package db_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string `gorm:"unique;not null"`
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	AvatarURL    string
	DateOfBirth  *time.Time `gorm:"type:date"`
	Role         string     `gorm:"default:user"` // "user" | "admin"

	// Gmail integration. Tokens are present only while the account is linked.
	GmailAccessToken    string `gorm:"type:text"`
	GmailRefreshToken   string `gorm:"type:text"`
	GmailTokenExpiry    *time.Time
	GmailProfileUpdated *time.Time
	GmailProfile        datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Settings  *UserSettings `gorm:"foreignKey:UserID"`
	Bookings  []Booking     `gorm:"foreignKey:UserID"`
	Reviews   []Review      `gorm:"foreignKey:UserID"`
	Favorites []Favorite    `gorm:"foreignKey:UserID"`
}

func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

func (u *User) GmailLinked() bool {
	return u.GmailAccessToken != ""
}

// GmailTokenExpired reports whether the access token needs a refresh.
// An unset expiry counts as expired.
func (u *User) GmailTokenExpired() bool {
	if u.GmailTokenExpiry == nil {
		return true
	}
	return !time.Now().Before(*u.GmailTokenExpiry)
}

type UserSettings struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	EmailNotifications bool   `gorm:"default:true"`
	PushNotifications  bool   `gorm:"default:true"`
	ProfilePublic      bool   `gorm:"default:false"`
	ShowReviews        bool   `gorm:"default:true"`
	PreferredLanguage  string `gorm:"size:5;default:ru"` // "ru" | "en"
	Timezone           string `gorm:"size:50;default:Europe/Moscow"`
}
