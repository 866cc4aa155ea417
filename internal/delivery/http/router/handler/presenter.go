package handler

import (
	"time"

	"wardrobe/internal/domain/entity"
)

// userView is the wire representation of an account. The password hash
// never leaves the server.
type userView struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	City        string              `json:"city,omitempty"`
	Gender      string              `json:"gender,omitempty"`
	Preferences *entity.Preferences `json:"preferences,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:          user.ID.String(),
		Email:       user.Email,
		Name:        user.Name,
		City:        user.City,
		Gender:      string(user.Gender),
		Preferences: user.Preferences,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// authView bundles the account with a fresh token pair.
type authView struct {
	User         *userView `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

type productView struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Brand         string              `json:"brand,omitempty"`
	Category      string              `json:"category"`
	Subcategory   string              `json:"subcategory,omitempty"`
	Price         float64             `json:"price"`
	OriginalPrice *float64            `json:"originalPrice,omitempty"`
	Currency      string              `json:"currency"`
	ImageURL      string              `json:"imageUrl"`
	ProductURL    string              `json:"productUrl"`
	Description   string              `json:"description,omitempty"`
	Sizes         []string            `json:"sizes,omitempty"`
	Colors        []string            `json:"colors,omitempty"`
	IsLuxury      bool                `json:"isLuxury"`
	IsEconomic    bool                `json:"isEconomic"`
	IsAvailable   bool                `json:"isAvailable"`
	Source        string              `json:"source,omitempty"`
	Gender        string              `json:"gender"`
	Season        string              `json:"season,omitempty"`
	Weather       *entity.WeatherTags `json:"weather,omitempty"`
	ScrapedAt     time.Time           `json:"scrapedAt"`
}

func toProductView(p *entity.Product) *productView {
	return &productView{
		ID:            p.ID.String(),
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Currency:      p.Currency,
		ImageURL:      p.ImageURL,
		ProductURL:    p.ProductURL,
		Description:   p.Description,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		IsLuxury:      p.IsLuxury,
		IsEconomic:    p.IsEconomic,
		IsAvailable:   p.IsAvailable,
		Source:        p.Source,
		Gender:        p.Gender,
		Season:        p.Season,
		Weather:       p.Weather,
		ScrapedAt:     p.ScrapedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return views
}

// pageView wraps a list with its paging metadata.
type pageView struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type recommendationView struct {
	ID               string                 `json:"id"`
	City             string                 `json:"city"`
	Gender           string                 `json:"gender"`
	Weather          entity.WeatherSnapshot `json:"weather"`
	Outfit           entity.Outfit          `json:"outfit"`
	AIRecommendation string                 `json:"aiRecommendation"`
	IsActive         bool                   `json:"isActive"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

func toRecommendationView(rec *entity.Recommendation) *recommendationView {
	return &recommendationView{
		ID:               rec.ID.String(),
		City:             rec.City,
		Gender:           string(rec.Gender),
		Weather:          rec.Weather,
		Outfit:           rec.Outfit,
		AIRecommendation: rec.AIRecommendation,
		IsActive:         rec.IsActive,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func toRecommendationViews(recs []*entity.Recommendation) []*recommendationView {
	views := make([]*recommendationView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, toRecommendationView(rec))
	}

	return views
}
