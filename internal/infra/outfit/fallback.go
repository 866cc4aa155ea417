package outfit

import (
	"strings"

	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/service"
)

// fallbackResult builds an outfit from weather rules alone. It is used
// whenever the model backend fails or returns an unusable answer, so it
// never errors itself.
func fallbackResult(economic, luxury []*entity.Product, weather *entity.WeatherSnapshot) *service.OutfitResult {
	isHot := weather.Temperature > 25
	isCold := weather.Temperature < 15
	isRainy := strings.Contains(strings.ToLower(weather.Condition), "rain")

	outfit := entity.Outfit{
		Economic: pickForWeather(economic, isHot, isCold),
		Luxury:   pickForWeather(luxury, isHot, isCold),
	}

	var reasoning strings.Builder
	reasoning.WriteString("Recomendação baseada nas condições climáticas: ")
	switch {
	case isHot:
		reasoning.WriteString("tempo quente, roupas leves e respiráveis")
	case isCold:
		reasoning.WriteString("tempo frio, roupas quentes e confortáveis")
	default:
		reasoning.WriteString("temperatura amena, roupas versáteis")
	}
	if isRainy {
		reasoning.WriteString(" com proteção contra chuva")
	}

	return &service.OutfitResult{
		Outfit:    outfit,
		Reasoning: reasoning.String(),
	}
}

// pickForWeather takes up to two products suited to the temperature band,
// falling back to the head of the pool when no category matches.
func pickForWeather(pool []*entity.Product, isHot, isCold bool) []entity.OutfitItem {
	selected := pool
	switch {
	case isHot:
		selected = filterByCategory(pool, "shirt", "shorts")
	case isCold:
		selected = filterByCategory(pool, "jacket", "pants")
	}
	if len(selected) == 0 {
		selected = pool
	}
	if len(selected) > 2 {
		selected = selected[:2]
	}

	items := make([]entity.OutfitItem, 0, len(selected))
	for _, p := range selected {
		items = append(items, entity.OutfitItem{
			ProductID:  p.ID.String(),
			Category:   p.Category,
			Name:       p.Name,
			Price:      p.Price,
			ImageURL:   p.ImageURL,
			ProductURL: p.ProductURL,
		})
	}

	return items
}

func filterByCategory(pool []*entity.Product, categories ...string) []*entity.Product {
	var matched []*entity.Product
	for _, p := range pool {
		for _, category := range categories {
			if p.Category == category {
				matched = append(matched, p)

				break
			}
		}
	}

	return matched
}
