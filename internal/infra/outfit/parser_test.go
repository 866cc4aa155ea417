package outfit

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe/internal/domain/entity"
)

func testProduct(name, category string, price float64, economic, luxury bool) *entity.Product {
	return &entity.Product{
		ID:         uuid.New(),
		Name:       name,
		Category:   category,
		Price:      price,
		IsEconomic: economic,
		IsLuxury:   luxury,
		ImageURL:   "https://img.example.com/" + name + ".jpg",
		ProductURL: "https://shop.example.com/" + name,
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			text: `{"economic": []}`,
			want: `{"economic": []}`,
		},
		{
			name: "wrapped in prose",
			text: "Aqui está a recomendação:\n```json\n{\"economic\": []}\n```\nEspero que goste!",
			want: `{"economic": []}`,
		},
		{
			name:    "no object",
			text:    "não consegui gerar uma recomendação",
			wantErr: true,
		},
		{
			name:    "empty",
			text:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.text)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseResponse_JoinsPicksAgainstPool(t *testing.T) {
	shirt := testProduct("camiseta-basica", "shirt", 49.9, true, false)
	coat := testProduct("casaco-la", "jacket", 899.0, false, true)

	text := fmt.Sprintf(`{
		"economic": [{"productId": %q, "category": "shirt", "name": "camiseta-basica", "price": 49.9, "reasoning": "leve"}],
		"luxury": [{"productId": %q, "category": "jacket", "name": "casaco-la", "price": 899.0, "reasoning": "elegante"}],
		"general_reasoning": "dia quente pede tecidos leves"
	}`, shirt.ID, coat.ID)

	outfit, reasoning, err := parseResponse(text, []*entity.Product{shirt}, []*entity.Product{coat})
	require.NoError(t, err)

	assert.Equal(t, "dia quente pede tecidos leves", reasoning)
	require.Len(t, outfit.Economic, 1)
	assert.Equal(t, shirt.ImageURL, outfit.Economic[0].ImageURL)
	assert.Equal(t, shirt.ProductURL, outfit.Economic[0].ProductURL)
	assert.Equal(t, "leve", outfit.Economic[0].Reasoning)
	require.Len(t, outfit.Luxury, 1)
	assert.Equal(t, coat.ProductURL, outfit.Luxury[0].ProductURL)
}

func TestParseResponse_UnknownPickKeepsPlaceholderURL(t *testing.T) {
	text := `{
		"economic": [{"productId": "invented-id", "category": "shirt", "name": "peça inventada", "price": 10}],
		"luxury": [],
		"general_reasoning": ""
	}`

	outfit, reasoning, err := parseResponse(text, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, defaultReasoning, reasoning)
	require.Len(t, outfit.Economic, 1)
	assert.Equal(t, "#", outfit.Economic[0].ProductURL)
	assert.Empty(t, outfit.Economic[0].ImageURL)
}

func TestParseResponse_MalformedJSONErrors(t *testing.T) {
	_, _, err := parseResponse(`{"economic": [`, nil, nil)
	require.Error(t, err)
}

func TestParseResponse_MissingTierArraysErrors(t *testing.T) {
	// Valid JSON that drops the outfit arrays is a schema mismatch, not an
	// empty recommendation.
	tests := []struct {
		name string
		text string
	}{
		{name: "both arrays missing", text: `{"general_reasoning": "dia quente"}`},
		{name: "luxury missing", text: `{"economic": [], "general_reasoning": "dia quente"}`},
		{name: "economic missing", text: `{"luxury": [], "general_reasoning": "dia quente"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseResponse(tt.text, nil, nil)
			require.Error(t, err)
		})
	}
}

func TestSplitPools(t *testing.T) {
	cheap := testProduct("basica", "shirt", 30, true, false)
	fancy := testProduct("grife", "jacket", 2000, false, true)
	both := testProduct("meio-termo", "pants", 150, true, true)

	economic, luxury := splitPools([]*entity.Product{cheap, fancy, both})

	assert.Equal(t, []*entity.Product{cheap, both}, economic)
	assert.Equal(t, []*entity.Product{fancy, both}, luxury)
}
