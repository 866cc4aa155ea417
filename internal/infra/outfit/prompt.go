// Package outfit implements the domain OutfitGenerator against language
// model backends, with a deterministic weather-rule fallback.
package outfit

import (
	"fmt"
	"strings"

	"wardrobe/internal/domain/entity"
	"wardrobe/internal/domain/service"
)

// splitPools divides the candidate list into the two budget tiers. A product
// flagged both economic and luxury lands in both pools.
func splitPools(candidates []*entity.Product) (economic, luxury []*entity.Product) {
	for _, p := range candidates {
		if p.IsEconomic {
			economic = append(economic, p)
		}
		if p.IsLuxury {
			luxury = append(luxury, p)
		}
	}

	return economic, luxury
}

// capPool limits a pool for prompt building. Zero means no limit.
func capPool(pool []*entity.Product, limit int) []*entity.Product {
	if limit > 0 && len(pool) > limit {
		return pool[:limit]
	}

	return pool
}

// buildPrompt renders the instruction sent to the model. The catalog lines
// carry the product IDs the model must echo back so the response can be
// joined against the pools.
func buildPrompt(req *service.OutfitRequest, economic, luxury []*entity.Product) string {
	var b strings.Builder

	b.WriteString("Você é um consultor de moda especializado. Com base nas informações fornecidas, recomende um outfit completo.\n\n")

	b.WriteString("DADOS DO CLIMA:\n")
	fmt.Fprintf(&b, "- Cidade: %s\n", req.City)
	fmt.Fprintf(&b, "- Temperatura: %d°C\n", req.Weather.Temperature)
	fmt.Fprintf(&b, "- Condição: %s\n", req.Weather.Condition)
	fmt.Fprintf(&b, "- Descrição: %s\n", req.Weather.Description)
	fmt.Fprintf(&b, "- Umidade: %d%%\n", req.Weather.Humidity)
	fmt.Fprintf(&b, "- Vento: %d km/h\n\n", req.Weather.WindSpeed)

	b.WriteString("PERFIL DO USUÁRIO:\n")
	fmt.Fprintf(&b, "- Gênero: %s\n\n", req.Gender)

	b.WriteString("PRODUTOS DISPONÍVEIS ECONÔMICOS:\n")
	writeProductLines(&b, economic)
	b.WriteString("\nPRODUTOS DISPONÍVEIS LUXO:\n")
	writeProductLines(&b, luxury)

	b.WriteString(`
TAREFA:
1. Analise o clima e sugira 2 opções ECONÔMICAS e 2 opções LUXUOSAS
2. Considere a adequação ao clima, conforto e estilo
3. Retorne APENAS um JSON válido no formato:

{
  "economic": [
    {
      "productId": "id_do_produto",
      "category": "categoria",
      "name": "nome_do_produto",
      "price": preço_numérico,
      "reasoning": "motivo_da_escolha"
    }
  ],
  "luxury": [
    {
      "productId": "id_do_produto",
      "category": "categoria",
      "name": "nome_do_produto",
      "price": preço_numérico,
      "reasoning": "motivo_da_escolha"
    }
  ],
  "general_reasoning": "explicação_geral_da_escolha_baseada_no_clima_e_situação"
}`)

	return b.String()
}

func writeProductLines(b *strings.Builder, pool []*entity.Product) {
	for _, p := range pool {
		fmt.Fprintf(b, "- %s: %s - R$ %.2f (ID: %s)\n", p.Category, p.Name, p.Price, p.ID)
	}
}
