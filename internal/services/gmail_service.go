package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"selexia/internal/config"
	"selexia/internal/models/db_models"
	"selexia/internal/models/response_models"
	"selexia/internal/repositories"
	mem "selexia/pkg/memcache"
	"selexia/pkg/utils"
)

// oauthStateTTL bounds how long a started consent flow stays valid.
const oauthStateTTL = 10 * time.Minute

type GmailServiceInterface interface {
	// ConnectURL starts the consent flow and returns the Google URL
	// the client should redirect to.
	ConnectURL(ctx context.Context, userID uuid.UUID) (response_models.GmailConnectResponse, error)
	HandleCallback(ctx context.Context, state, code string) (response_models.AccountResponse, error)
	Sync(ctx context.Context, userID uuid.UUID) (response_models.AccountResponse, error)
	Disconnect(ctx context.Context, userID uuid.UUID) error
}

type GmailService struct {
	accountRepo  repositories.AccountRepository
	favoriteRepo repositories.FavoriteRepository
	states       mem.OAuthStateStore
	oauth        *oauth2.Config
}

func NewGmailService(
	cfg *config.Config,
	accountRepo repositories.AccountRepository,
	favoriteRepo repositories.FavoriteRepository,
	states mem.OAuthStateStore,
) GmailServiceInterface {
	return &GmailService{
		accountRepo:  accountRepo,
		favoriteRepo: favoriteRepo,
		states:       states,
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes: []string{
				oauth2api.UserinfoEmailScope,
				oauth2api.UserinfoProfileScope,
			},
			Endpoint: google.Endpoint,
		},
	}
}

// gmailProfile is the snapshot of the Google account stored alongside
// the user.
type gmailProfile struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
	Locale     string `json:"locale"`
}

func (g *GmailService) ConnectURL(ctx context.Context, userID uuid.UUID) (response_models.GmailConnectResponse, error) {
	user, err := g.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return response_models.GmailConnectResponse{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.GmailConnectResponse{}, utils.ErrAccountNotFound
	}

	state := g.states.Issue(userID, oauthStateTTL)
	url := g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	return response_models.GmailConnectResponse{AuthURL: url}, nil
}

func (g *GmailService) HandleCallback(ctx context.Context, state, code string) (response_models.AccountResponse, error) {
	var empty response_models.AccountResponse

	userID, ok := g.states.Consume(state)
	if !ok {
		return empty, utils.ErrGmailStateInvalid
	}

	user, err := g.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if user == nil {
		return empty, utils.ErrAccountNotFound
	}

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return empty, utils.ErrGmailStateInvalid
	}

	if err := g.applyProfile(ctx, user, token); err != nil {
		return empty, err
	}
	return g.accountResponse(ctx, user)
}

// Sync refreshes the stored token when needed and pulls the current
// Google profile into the account.
func (g *GmailService) Sync(ctx context.Context, userID uuid.UUID) (response_models.AccountResponse, error) {
	var empty response_models.AccountResponse

	user, err := g.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return empty, utils.ErrDatabaseError
	}
	if user == nil {
		return empty, utils.ErrAccountNotFound
	}
	if !user.GmailLinked() {
		return empty, utils.ErrGmailNotLinked
	}

	token := &oauth2.Token{
		AccessToken:  user.GmailAccessToken,
		RefreshToken: user.GmailRefreshToken,
	}
	if user.GmailTokenExpiry != nil {
		token.Expiry = *user.GmailTokenExpiry
	} else {
		// Unknown expiry counts as expired so the token source
		// refreshes before the userinfo call.
		token.Expiry = time.Now().Add(-time.Minute)
	}

	fresh, err := g.oauth.TokenSource(ctx, token).Token()
	if err != nil {
		return empty, utils.ErrGmailNotLinked
	}

	if err := g.applyProfile(ctx, user, fresh); err != nil {
		return empty, err
	}
	return g.accountResponse(ctx, user)
}

func (g *GmailService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	user, err := g.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	if !user.GmailLinked() {
		return utils.ErrGmailNotLinked
	}

	user.GmailAccessToken = ""
	user.GmailRefreshToken = ""
	user.GmailTokenExpiry = nil
	user.GmailProfileUpdated = nil
	user.GmailProfile = []byte("{}")

	if err := g.accountRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// applyProfile stores the token, fetches userinfo and merges it into
// the account: empty names are filled, a changed Google email replaces
// the stored one, and the raw profile is kept as a snapshot.
func (g *GmailService) applyProfile(ctx context.Context, user *db_models.User, token *oauth2.Token) error {
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return utils.ErrDatabaseError
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return utils.ErrGmailNotLinked
	}

	user.GmailAccessToken = token.AccessToken
	if token.RefreshToken != "" {
		user.GmailRefreshToken = token.RefreshToken
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		user.GmailTokenExpiry = &expiry
	}

	if user.FirstName == "" {
		user.FirstName = info.GivenName
	}
	if user.LastName == "" {
		user.LastName = info.FamilyName
	}
	if user.AvatarURL == "" {
		user.AvatarURL = info.Picture
	}
	if info.Email != "" && info.Email != user.Email {
		user.Email = info.Email
	}

	snapshot, err := json.Marshal(gmailProfile{
		Email:      info.Email,
		GivenName:  info.GivenName,
		FamilyName: info.FamilyName,
		Picture:    info.Picture,
		Locale:     info.Locale,
	})
	if err != nil {
		return utils.ErrDatabaseError
	}
	user.GmailProfile = snapshot

	now := time.Now().UTC()
	user.GmailProfileUpdated = &now

	if err := g.accountRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GmailService) accountResponse(ctx context.Context, user *db_models.User) (response_models.AccountResponse, error) {
	favoritesCount, err := g.favoriteRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	return toAccountResponse(user, favoritesCount), nil
}
