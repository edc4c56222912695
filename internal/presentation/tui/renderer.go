package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With no options it detects a light or dark background.
func NewRenderer(opts ...glamour.TermRendererOption) (func(string) (string, error), error) {
	if len(opts) == 0 {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// CatalogMarkdown formats shops as one markdown section per record.
func CatalogMarkdown(shops []domain.Shop) string {
	var b strings.Builder
	b.WriteString("# Rental shops\n\n")
	if len(shops) == 0 {
		b.WriteString("_No shops in catalog._\n")
		return b.String()
	}

	for _, s := range shops {
		fmt.Fprintf(&b, "## %s\n\n", s.Name)
		fmt.Fprintf(&b, "`%s` · %s · %s\n\n", s.ID, s.Location, s.PriceRange)
		if s.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Description)
		}
		if len(s.Services)+len(s.Equipment) > 0 {
			writeTags(&b, "Services", s.Services)
			writeTags(&b, "Equipment", s.Equipment)
			b.WriteString("\n")
		}

		contact := make([]string, 0, 4)
		for _, v := range []string{s.Address, s.Phone, s.Website, s.Hours} {
			if v != "" {
				contact = append(contact, v)
			}
		}
		if len(contact) > 0 {
			fmt.Fprintf(&b, "%s\n\n", strings.Join(contact, " | "))
		}
	}
	return b.String()
}

func writeTags(b *strings.Builder, label string, tags []string) {
	if len(tags) == 0 {
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, strings.Join(tags, ", "))
}
