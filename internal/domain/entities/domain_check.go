package entities

// DomainResult is one row of a domain-availability lookup. The first result
// always answers the exact query; the rest are suggested alternatives.
//
// Results are advisory only. Checkout never blocks on them.

type DomainResult struct {
	Name        string `json:"name"`
	IsAvailable bool   `json:"is_available"`
	Price       string `json:"price"`
	Reasoning   string `json:"reasoning,omitempty"`
}

// FallbackDomainResults is the clearly-marked suggestion set returned when
// the suggestion provider is unavailable or unconfigured.
func FallbackDomainResults(domainName string) []DomainResult {
	return []DomainResult{
		{Name: domainName, IsAvailable: false, Price: "N/A", Reasoning: "Service temporarily unavailable."},
		{Name: "get" + domainName + ".com", IsAvailable: true, Price: "$12.99", Reasoning: "Try adding a verb prefix."},
		{Name: domainName + "app.io", IsAvailable: true, Price: "$35.00", Reasoning: "Great for tech startups."},
	}
}
