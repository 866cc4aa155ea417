package outfit

import (
	"encoding/json"
	"strings"

	"wardrobe/internal/domain/entity"
	"wardrobe/internal/errors"
)

// defaultReasoning is used when the model omits its overall rationale.
const defaultReasoning = "Recomendação baseada no clima atual"

// modelItem is one product pick as echoed back by the model.
type modelItem struct {
	ProductID string  `json:"productId"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Reasoning string  `json:"reasoning"`
}

// modelResponse is the JSON document the prompt asks the model to produce.
type modelResponse struct {
	Economic         []modelItem `json:"economic"`
	Luxury           []modelItem `json:"luxury"`
	GeneralReasoning string      `json:"general_reasoning"`
}

// extractJSON pulls the outermost JSON object out of free-form model text.
// Models often wrap the document in prose or code fences.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", errors.New("no JSON object found in model response")
	}

	return text[start : end+1], nil
}

// parseResponse decodes the model text and joins each pick back against its
// pool. The pool is authoritative for image and product URLs; picks the model
// invented keep "#" as their product URL.
func parseResponse(text string, economic, luxury []*entity.Product) (*entity.Outfit, string, error) {
	doc, err := extractJSON(text)
	if err != nil {
		return nil, "", err
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(doc), &resp); err != nil {
		return nil, "", errors.Wrap(err, "decode model response")
	}
	if resp.Economic == nil || resp.Luxury == nil {
		return nil, "", errors.New("model response missing economic or luxury array")
	}

	outfit := &entity.Outfit{
		Economic: joinPool(resp.Economic, economic),
		Luxury:   joinPool(resp.Luxury, luxury),
	}

	reasoning := resp.GeneralReasoning
	if reasoning == "" {
		reasoning = defaultReasoning
	}

	return outfit, reasoning, nil
}

func joinPool(items []modelItem, pool []*entity.Product) []entity.OutfitItem {
	joined := make([]entity.OutfitItem, 0, len(items))
	for _, item := range items {
		out := entity.OutfitItem{
			ProductID:  item.ProductID,
			Category:   item.Category,
			Name:       item.Name,
			Price:      item.Price,
			ProductURL: "#",
			Reasoning:  item.Reasoning,
		}
		if product := findByID(pool, item.ProductID); product != nil {
			out.ImageURL = product.ImageURL
			if product.ProductURL != "" {
				out.ProductURL = product.ProductURL
			}
		}
		joined = append(joined, out)
	}

	return joined
}

func findByID(pool []*entity.Product, id string) *entity.Product {
	for _, p := range pool {
		if p.ID.String() == id {
			return p
		}
	}

	return nil
}
