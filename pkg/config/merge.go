package config

// mergeProviders merges built-in and user-defined provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeProviders(builtin map[string]*ProviderConfig, user map[string]ProviderConfig) map[string]*ProviderConfig {
	result := make(map[string]*ProviderConfig)

	for name, provider := range builtin {
		providerCopy := *provider
		result[name] = &providerCopy
	}

	// Override with user-defined providers (or add new ones)
	for name, userProvider := range user {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergePricing merges built-in and user-defined model pricing.
// User-defined entries override built-in entries with the same model key.
func mergePricing(builtin, user map[string]ModelPricing) map[string]ModelPricing {
	result := make(map[string]ModelPricing, len(builtin)+len(user))

	for model, pricing := range builtin {
		result[model] = pricing
	}

	for model, pricing := range user {
		result[model] = pricing
	}

	return result
}
