package memory_test

import "github.com/aretw0/rentals/pkg/domain"

var fixtureShops = []domain.Shop{
	{
		ID:          "alpha",
		Name:        "Alpha Rentals",
		Location:    "Mountain Village",
		Description: "Skis and boards at the gondola.",
		Services:    []string{"rentals", "delivery"},
		Equipment:   []string{"skis", "beginner"},
		PriceRange:  "Moderate ($45-70/day)",
	},
	{
		ID:          "bravo",
		Name:        "Bravo Backcountry",
		Location:    "Town of Telluride",
		Description: "Touring setups and avalanche gear.",
		Services:    []string{"guiding"},
		Equipment:   []string{"Touring", "backcountry"},
		PriceRange:  "Premium ($60-100/day)",
		Hours:       "7am-6pm",
	},
	{
		ID:          "charlie",
		Name:        "Charlie's Kids Corner",
		Location:    "Lawson Hill",
		Description: "Junior equipment only.",
		Services:    []string{"rentals"},
		Equipment:   []string{"kids", "junior"},
		PriceRange:  "Budget ($30-50/day)",
	},
}
