package config

import "github.com/CollideNV/hadron/pkg/models"

// providerRegistry maps model ids to per-million-token USD prices.
// Input and output are priced separately.
var providerRegistry = map[string]models.ModelPrice{
	// Anthropic
	"claude-sonnet-4-5":  {InputPerMillion: 3.00, OutputPerMillion: 15.00},
	"claude-haiku-4-5":   {InputPerMillion: 1.00, OutputPerMillion: 5.00},
	"claude-opus-4-1":    {InputPerMillion: 15.00, OutputPerMillion: 75.00},
	// Google
	"gemini-2.5-pro":     {InputPerMillion: 1.25, OutputPerMillion: 10.00},
	"gemini-2.5-flash":   {InputPerMillion: 0.30, OutputPerMillion: 2.50},
}

// modelProviders maps model ids to the provider that serves them.
var modelProviders = map[string]string{
	"claude-sonnet-4-5": "anthropic",
	"claude-haiku-4-5":  "anthropic",
	"claude-opus-4-1":   "anthropic",
	"gemini-2.5-pro":    "gemini",
	"gemini-2.5-flash":  "gemini",
}

// PricingTable returns a copy of the registry for freezing into a
// config snapshot.
func PricingTable() map[string]models.ModelPrice {
	out := make(map[string]models.ModelPrice, len(providerRegistry))
	for k, v := range providerRegistry {
		out[k] = v
	}
	return out
}

// ProviderForModel returns the provider name serving a model id, or
// "" when the model is unknown.
func ProviderForModel(modelID string) string {
	return modelProviders[modelID]
}

// ModelsForProvider lists the registry's model ids for one provider.
func ModelsForProvider(provider string) []string {
	var out []string
	for model, p := range modelProviders {
		if p == provider {
			out = append(out, model)
		}
	}
	return out
}
