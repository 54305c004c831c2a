package types

// TemplatesResponse lists the theme catalog and which themes the caller may use.
type TemplatesResponse struct {
	AllTemplates       []string `json:"allTemplates"`
	AvailableTemplates []string `json:"availableTemplates"`
	SubscriptionPlan   string   `json:"subscriptionPlan"`
	IsPremium          bool     `json:"isPremium"`
}
