package scraper

// Info describes one supported provider for the catalog listing.
type Info struct {
	ID               Provider `json:"id"`
	Name             string   `json:"name"`
	CredentialFields []string `json:"credential_fields"`
}

// Catalog lists every supported provider. Static data, consulted read-only.
func Catalog() []Info {
	return []Info{
		{ID: ProviderHapoalim, Name: "Bank Hapoalim", CredentialFields: []string{"userCode", "password"}},
		{ID: ProviderLeumi, Name: "Bank Leumi", CredentialFields: []string{"username", "password"}},
		{ID: ProviderDiscount, Name: "Discount Bank", CredentialFields: []string{"id", "password", "num"}},
		{ID: ProviderMizrahi, Name: "Mizrahi Tefahot", CredentialFields: []string{"username", "password"}},
		{ID: ProviderIsracard, Name: "Isracard", CredentialFields: []string{"id", "card6Digits", "password"}},
		{ID: ProviderMax, Name: "Max", CredentialFields: []string{"username", "password"}},
		{ID: ProviderVisaCal, Name: "Visa Cal", CredentialFields: []string{"username", "password"}},
	}
}
