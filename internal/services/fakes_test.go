package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"selexia/internal/models/db_models"
	"selexia/internal/repositories"
)

var errSMTPDown = errors.New("smtp down")

// The fakes embed their repository interface and override only the
// methods a test exercises; calling anything else panics, which makes
// unexpected repository traffic visible immediately.

type fakeExcursionRepo struct {
	repositories.ExcursionRepository
	excursions map[uuid.UUID]*db_models.Excursion
}

func newFakeExcursionRepo(excursions ...*db_models.Excursion) *fakeExcursionRepo {
	m := make(map[uuid.UUID]*db_models.Excursion, len(excursions))
	for _, e := range excursions {
		m[e.ID] = e
	}
	return &fakeExcursionRepo{excursions: m}
}

func (f *fakeExcursionRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Excursion, error) {
	return f.excursions[id], nil
}

func (f *fakeExcursionRepo) FindBySlug(_ context.Context, slug string) (*db_models.Excursion, error) {
	for _, e := range f.excursions {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, nil
}

type fakeBookingRepo struct {
	repositories.BookingRepository
	mu        sync.Mutex
	bookings  map[uuid.UUID]*db_models.Booking
	excursion *fakeExcursionRepo
	eligible  bool
}

func newFakeBookingRepo(excursions *fakeExcursionRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:  make(map[uuid.UUID]*db_models.Booking),
		excursion: excursions,
	}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *db_models.Booking) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking.ID = uuid.New()
	if e := f.excursion.excursions[booking.ExcursionID]; e != nil {
		booking.Excursion = *e
	}
	f.bookings[booking.ID] = booking
	return booking.ID, nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[id].Status = status
	return nil
}

func (f *fakeBookingRepo) HasEligibleBooking(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return f.eligible, nil
}

type fakeReviewRepo struct {
	repositories.ReviewRepository
	mu      sync.Mutex
	reviews map[uuid.UUID]*db_models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*db_models.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *db_models.Review) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review.ID = uuid.New()
	f.reviews[review.ID] = review
	return review.ID, nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reviews[id], nil
}

func (f *fakeReviewRepo) FindByUserAndExcursion(_ context.Context, userID, excursionID uuid.UUID) (*db_models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reviews {
		if r.UserID == userID && r.ExcursionID == excursionID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *db_models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reviews, id)
	return nil
}

type fakeFavoriteRepo struct {
	repositories.FavoriteRepository
	mu        sync.Mutex
	favorites map[uuid.UUID]*db_models.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[uuid.UUID]*db_models.Favorite)}
}

func (f *fakeFavoriteRepo) Find(_ context.Context, userID uuid.UUID, itemType db_models.FavoriteItemType, itemID uuid.UUID) (*db_models.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fav := range f.favorites {
		if fav.UserID == userID && fav.ItemType == itemType && fav.ItemID == itemID {
			return fav, nil
		}
	}
	return nil, nil
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *db_models.Favorite) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	favorite.ID = uuid.New()
	f.favorites[favorite.ID] = favorite
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.favorites, id)
	return nil
}

func (f *fakeFavoriteRepo) ListByUser(_ context.Context, userID uuid.UUID, itemType string, page, pageSize int) ([]db_models.Favorite, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []db_models.Favorite
	for _, fav := range f.favorites {
		if fav.UserID != userID {
			continue
		}
		if itemType != "" && string(fav.ItemType) != itemType {
			continue
		}
		matched = append(matched, *fav)
	}
	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeFavoriteRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	repositories.CategoryRepository
	categories map[uuid.UUID]*db_models.Category
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Category, error) {
	return f.categories[id], nil
}

type fakeCountryRepo struct {
	repositories.CountryRepository
	countries map[uuid.UUID]*db_models.Country
}

func (f *fakeCountryRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Country, error) {
	return f.countries[id], nil
}

func (f *fakeCountryRepo) FindBySlug(_ context.Context, slug string) (*db_models.Country, error) {
	for _, c := range f.countries {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

type fakeCityRepo struct {
	repositories.CityRepository
	cities []db_models.City
}

func (f *fakeCityRepo) ListByCountry(_ context.Context, countryID uuid.UUID, page, pageSize int) ([]db_models.City, int64, error) {
	var matched []db_models.City
	for _, c := range f.cities {
		if c.CountryID == countryID {
			matched = append(matched, c)
		}
	}
	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type fakeApplicationRepo struct {
	repositories.ApplicationRepository
	mu           sync.Mutex
	applications map[uuid.UUID]*db_models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[uuid.UUID]*db_models.Application)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *db_models.Application) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	application.ID = uuid.New()
	f.applications[application.ID] = application
	return application.ID, nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applications[id], nil
}

func (f *fakeApplicationRepo) Save(_ context.Context, application *db_models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applications[application.ID] = application
	return nil
}

// fakeMailService records notifications instead of talking to SMTP.
type fakeMailService struct {
	mu     sync.Mutex
	sent   []string
	failAl bool
}

func (f *fakeMailService) record(kind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, kind)
	if f.failAl {
		return errSMTPDown
	}
	return nil
}

func (f *fakeMailService) SendBookingCreated(*db_models.Booking, *db_models.User) error {
	return f.record("booking_created")
}

func (f *fakeMailService) SendBookingStatusChanged(*db_models.Booking, *db_models.User) error {
	return f.record("booking_status")
}

func (f *fakeMailService) SendApplicationReceived(*db_models.Application) error {
	return f.record("application")
}

func (f *fakeMailService) SendWelcome(*db_models.User) error {
	return f.record("welcome")
}

func (f *fakeMailService) sentKinds() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}
