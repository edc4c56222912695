package loam

// ShopMetadata is the frontmatter of a shop document.
// The markdown body becomes the description when no description key is given.
type ShopMetadata struct {
	ID          string   `json:"id" mapstructure:"id"`
	Order       int      `json:"order" mapstructure:"order"`
	Name        string   `json:"name" mapstructure:"name"`
	Location    string   `json:"location" mapstructure:"location"`
	Address     string   `json:"address" mapstructure:"address"`
	Phone       string   `json:"phone" mapstructure:"phone"`
	Website     string   `json:"website" mapstructure:"website"`
	Description string   `json:"description" mapstructure:"description"`
	Services    []string `json:"services" mapstructure:"services"`
	Equipment   []string `json:"equipment" mapstructure:"equipment"`
	PriceRange  string   `json:"price_range" mapstructure:"price_range"`
	Hours       string   `json:"hours" mapstructure:"hours"`
}
