// Package recommend implements the need-keyword classification used by the
// recommend tool: an ordered list of rules, first match wins, with a terminal
// default that returns the whole catalog.
package recommend

import (
	"strings"

	"github.com/aretw0/rentals/pkg/domain"
)

// Shop ids singled out by the built-in rules.
const (
	IDTellurideSportsMain = "telluride-sports-main"
	IDTellurideSportsMV   = "telluride-sports-mv"
	IDBootDoctors         = "boot-doctors"
	IDChristySportsMV     = "christy-sports-mv"
	IDSkiButlers          = "ski-butlers"
	IDTimberlineRentals   = "timberline-rentals"
)

// BudgetMarker is the price-range text that marks a low-price shop.
const BudgetMarker = "Budget"

// Explanations returned with each branch.
const (
	ExplainBeginner    = "These shops offer beginner-friendly equipment and staff who can help first-timers get set up."
	ExplainExpert      = "These shops carry high-performance and premium equipment suited to advanced and expert skiers."
	ExplainBackcountry = "These shops rent touring and backcountry setups for skiing beyond the resort boundaries."
	ExplainDelivery    = "These shops deliver rental equipment directly to your lodging."
	ExplainBudget      = "These shops offer the most affordable rental rates."
	ExplainPremium     = "These shops provide premium, high-end rental experiences."
	ExplainFamily      = "These shops carry kids' and junior equipment for the whole family."
	ExplainDefault     = "Here are all available rental shops. Describe your need (beginner, expert, backcountry, delivery, budget, premium or family) for a narrower list."
)

// Recommendation is the structured payload of the recommend tool.
type Recommendation struct {
	Explanation     string        `json:"explanation"`
	Recommendations []domain.Shop `json:"recommendations"`
}

// Rule maps a set of need keywords to a record predicate.
// A rule matches when the need text contains any of its keywords.
type Rule struct {
	Name        string
	Keywords    []string
	Explanation string
	Match       func(domain.Shop) bool
}

// Matches reports whether need (already lower-cased) selects this rule.
func (r Rule) Matches(need string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(need, kw) {
			return true
		}
	}
	return false
}

// Policy is an ordered rule list evaluated top to bottom.
type Policy struct {
	Rules    []Rule
	Fallback string
}

// DefaultPolicy returns the built-in rule set.
func DefaultPolicy() Policy {
	return Policy{
		Rules: []Rule{
			{
				Name:        "beginner",
				Keywords:    []string{"beginner"},
				Explanation: ExplainBeginner,
				Match: func(s domain.Shop) bool {
					return s.HasEquipment("beginner") || oneOf(s.ID, IDTellurideSportsMain, IDTimberlineRentals)
				},
			},
			{
				Name:        "expert",
				Keywords:    []string{"expert", "advanced"},
				Explanation: ExplainExpert,
				Match: func(s domain.Shop) bool {
					return s.HasEquipment("performance") || s.HasEquipment("premium") ||
						oneOf(s.ID, IDBootDoctors, IDTellurideSportsMV)
				},
			},
			{
				Name:        "backcountry",
				Keywords:    []string{"backcountry", "touring"},
				Explanation: ExplainBackcountry,
				Match: func(s domain.Shop) bool {
					return s.HasService("backcountry") || s.HasService("touring") ||
						s.HasEquipment("backcountry") || s.HasEquipment("touring")
				},
			},
			{
				Name:        "delivery",
				Keywords:    []string{"delivery"},
				Explanation: ExplainDelivery,
				Match: func(s domain.Shop) bool {
					return s.HasService("delivery") || s.ID == IDSkiButlers
				},
			},
			{
				Name:        "budget",
				Keywords:    []string{"budget", "affordable"},
				Explanation: ExplainBudget,
				Match: func(s domain.Shop) bool {
					return strings.Contains(s.PriceRange, BudgetMarker) || s.ID == IDTimberlineRentals
				},
			},
			{
				Name:        "premium",
				Keywords:    []string{"premium", "luxury"},
				Explanation: ExplainPremium,
				Match: func(s domain.Shop) bool {
					return oneOf(s.ID, IDBootDoctors, IDSkiButlers, IDChristySportsMV)
				},
			},
			{
				Name:        "family",
				Keywords:    []string{"family", "kids"},
				Explanation: ExplainFamily,
				Match: func(s domain.Shop) bool {
					return s.HasEquipment("kids") || s.HasEquipment("junior")
				},
			},
		},
		Fallback: ExplainDefault,
	}
}

// Recommend classifies need and filters shops with the first matching rule.
// need is lower-cased here as well, so callers may pass raw text.
// The recommendations slice is never nil.
func (p Policy) Recommend(need string, shops []domain.Shop) Recommendation {
	need = strings.ToLower(need)
	for _, rule := range p.Rules {
		if !rule.Matches(need) {
			continue
		}
		out := make([]domain.Shop, 0)
		for _, s := range shops {
			if rule.Match(s) {
				out = append(out, s)
			}
		}
		return Recommendation{Explanation: rule.Explanation, Recommendations: out}
	}

	all := make([]domain.Shop, len(shops))
	copy(all, shops)
	return Recommendation{Explanation: p.Fallback, Recommendations: all}
}

func oneOf(id string, ids ...string) bool {
	for _, candidate := range ids {
		if id == candidate {
			return true
		}
	}
	return false
}
