package response_models

type AccountResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`

	GmailLinked    bool   `json:"gmail_linked"`
	GmailSyncedAt  string `json:"gmail_synced_at,omitempty"`
	FavoritesCount int64  `json:"favorites_count"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type GmailConnectResponse struct {
	AuthURL string `json:"auth_url"`
}

type SettingsResponse struct {
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	ProfilePublic      bool   `json:"profile_public"`
	ShowReviews        bool   `json:"show_reviews"`
	PreferredLanguage  string `json:"preferred_language"`
	Timezone           string `json:"timezone"`
}
