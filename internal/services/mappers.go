package services

import (
	"selexia/internal/models/db_models"
	"selexia/internal/models/response_models"
	"selexia/pkg/utils"
)

func toAccountResponse(user *db_models.User, favoritesCount int64) response_models.AccountResponse {
	resp := response_models.AccountResponse{
		ID:             user.ID.String(),
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		FullName:       user.FullName(),
		Phone:          user.Phone,
		AvatarURL:      user.AvatarURL,
		Role:           user.Role,
		CreatedAt:      utils.FormatRFC3339(utils.FromUnixSeconds(user.CreatedAt)),
		GmailLinked:    user.GmailLinked(),
		FavoritesCount: favoritesCount,
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format(utils.DateLayout)
	}
	if user.GmailProfileUpdated != nil {
		resp.GmailSyncedAt = utils.FormatRFC3339(*user.GmailProfileUpdated)
	}
	return resp
}

func toSettingsResponse(settings *db_models.UserSettings) response_models.SettingsResponse {
	return response_models.SettingsResponse{
		EmailNotifications: settings.EmailNotifications,
		PushNotifications:  settings.PushNotifications,
		ProfilePublic:      settings.ProfilePublic,
		ShowReviews:        settings.ShowReviews,
		PreferredLanguage:  settings.PreferredLanguage,
		Timezone:           settings.Timezone,
	}
}

func toExcursionListItem(e *db_models.Excursion) response_models.ExcursionListItem {
	item := response_models.ExcursionListItem{
		ID:                 e.ID.String(),
		Slug:               e.Slug,
		TitleRu:            e.TitleRu,
		TitleEn:            e.TitleEn,
		ShortDescriptionRu: e.ShortDescriptionRu,
		ShortDescriptionEn: e.ShortDescriptionEn,
		CountryName:        e.Country.NameRu,
		CountrySlug:        e.Country.Slug,
		CityName:           e.City.NameRu,
		CitySlug:           e.City.Slug,
		CategoryName:       e.Category.NameRu,
		CategorySlug:       e.Category.Slug,
		Price:              e.Price,
		Currency:           e.Currency,
		Duration:           e.Duration,
		DurationUnit:       string(e.DurationUnit),
		MaxPeople:          e.MaxPeople,
		Rating:             e.Rating,
		ReviewsCount:       e.ReviewsCount,
		ViewsCount:         e.ViewsCount,
		IsPopular:          e.IsPopular,
		IsFeatured:         e.IsFeatured,
	}
	if len(e.Images) > 0 {
		item.MainImage = e.Images[0]
	}
	return item
}

func toExcursionDetail(e *db_models.Excursion) response_models.ExcursionDetail {
	return response_models.ExcursionDetail{
		ExcursionListItem: toExcursionListItem(e),
		DescriptionRu:     e.DescriptionRu,
		DescriptionEn:     e.DescriptionEn,
		ProgramRu:         e.ProgramRu,
		ProgramEn:         e.ProgramEn,
		IncludedRu:        e.IncludedRu,
		IncludedEn:        e.IncludedEn,
		ImportantInfoRu:   e.ImportantInfoRu,
		ImportantInfoEn:   e.ImportantInfoEn,
		MeetingPointRu:    e.MeetingPointRu,
		MeetingPointEn:    e.MeetingPointEn,
		Status:            string(e.Status),
		Images:            e.Images,
		CreatedAt:         utils.FormatRFC3339(utils.FromUnixSeconds(e.CreatedAt)),
	}
}

func toBookingResponse(b *db_models.Booking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:              b.ID.String(),
		ExcursionID:     b.ExcursionID.String(),
		ExcursionTitle:  b.Excursion.TitleRu,
		ExcursionSlug:   b.Excursion.Slug,
		Date:            b.Date.Format(utils.DateLayout),
		PeopleCount:     b.PeopleCount,
		TotalPrice:      b.TotalPrice,
		Currency:        b.Excursion.Currency,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		ContactPhone:    b.ContactPhone,
		ContactEmail:    b.ContactEmail,
		CreatedAt:       utils.FormatRFC3339(utils.FromUnixSeconds(b.CreatedAt)),
	}
}

func toReviewResponse(r *db_models.Review) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:          r.ID.String(),
		ExcursionID: r.ExcursionID.String(),
		UserName:    r.User.FullName(),
		Rating:      r.Rating,
		Text:        r.Text,
		IsApproved:  r.IsApproved,
		Images:      r.Images,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(r.CreatedAt)),
	}
}

func toCountryResponse(c *db_models.Country, cityCount, tourCount int64) response_models.CountryResponse {
	return response_models.CountryResponse{
		ID:        c.ID.String(),
		NameRu:    c.NameRu,
		NameEn:    c.NameEn,
		ISOCode:   c.ISOCode,
		Slug:      c.Slug,
		ImageURL:  c.ImageURL,
		IsPopular: c.IsPopular,
		CityCount: cityCount,
		TourCount: tourCount,
	}
}

func toCityResponse(c *db_models.City) response_models.CityResponse {
	return response_models.CityResponse{
		ID:          c.ID.String(),
		NameRu:      c.NameRu,
		NameEn:      c.NameEn,
		Slug:        c.Slug,
		CountrySlug: c.Country.Slug,
		CountryName: c.Country.NameRu,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		ImageURL:    c.ImageURL,
		IsPopular:   c.IsPopular,
	}
}

func toCategoryResponse(c *db_models.Category) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:            c.ID.String(),
		NameRu:        c.NameRu,
		NameEn:        c.NameEn,
		DescriptionRu: c.DescriptionRu,
		DescriptionEn: c.DescriptionEn,
		Slug:          c.Slug,
		ImageURL:      c.ImageURL,
		Icon:          c.Icon,
		Color:         c.Color,
		IsFeatured:    c.IsFeatured,
	}
}

func toApplicationResponse(a *db_models.Application) response_models.ApplicationResponse {
	return response_models.ApplicationResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Phone:       a.Phone,
		Email:       a.Email,
		Message:     a.Message,
		Destination: a.Destination,
		TravelDates: a.TravelDates,
		PeopleCount: a.PeopleCount,
		Budget:      a.Budget,
		Status:      string(a.Status),
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(a.CreatedAt)),
	}
}
