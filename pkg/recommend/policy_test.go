package recommend_test

import (
	"testing"

	"github.com/aretw0/rentals/pkg/catalog"
	"github.com/aretw0/rentals/pkg/domain"
	"github.com/aretw0/rentals/pkg/recommend"
	"github.com/stretchr/testify/assert"
)

func ids(shops []domain.Shop) []string {
	out := make([]string, 0, len(shops))
	for _, s := range shops {
		out = append(out, s.ID)
	}
	return out
}

func TestDefaultPolicy(t *testing.T) {
	shops := catalog.Default()
	policy := recommend.DefaultPolicy()

	tests := []struct {
		need        string
		explanation string
		want        []string
	}{
		{"beginner", recommend.ExplainBeginner, []string{"telluride-sports-main", "christy-sports-mv", "timberline-rentals"}},
		{"expert", recommend.ExplainExpert, []string{"telluride-sports-mv", "boot-doctors", "christy-sports-mv", "ski-butlers"}},
		{"advanced skier", recommend.ExplainExpert, []string{"telluride-sports-mv", "boot-doctors", "christy-sports-mv", "ski-butlers"}},
		{"backcountry", recommend.ExplainBackcountry, []string{"boot-doctors"}},
		{"touring", recommend.ExplainBackcountry, []string{"boot-doctors"}},
		{"delivery", recommend.ExplainDelivery, []string{"ski-butlers"}},
		{"budget", recommend.ExplainBudget, []string{"timberline-rentals"}},
		{"something affordable", recommend.ExplainBudget, []string{"timberline-rentals"}},
		{"premium", recommend.ExplainPremium, []string{"boot-doctors", "christy-sports-mv", "ski-butlers"}},
		{"luxury", recommend.ExplainPremium, []string{"boot-doctors", "christy-sports-mv", "ski-butlers"}},
		{"family", recommend.ExplainFamily, []string{"telluride-sports-main", "telluride-sports-mv", "christy-sports-mv", "ski-butlers", "timberline-rentals"}},
		{"kids", recommend.ExplainFamily, []string{"telluride-sports-main", "telluride-sports-mv", "christy-sports-mv", "ski-butlers", "timberline-rentals"}},
	}

	for _, tt := range tests {
		t.Run(tt.need, func(t *testing.T) {
			got := policy.Recommend(tt.need, shops)
			assert.Equal(t, tt.explanation, got.Explanation)
			assert.Equal(t, tt.want, ids(got.Recommendations))
		})
	}
}

func TestDefaultPolicy_FirstMatchWins(t *testing.T) {
	shops := catalog.Default()
	policy := recommend.DefaultPolicy()

	// "beginner" is evaluated before "budget" and "family".
	got := policy.Recommend("budget beginner family", shops)
	assert.Equal(t, recommend.ExplainBeginner, got.Explanation)

	// "expert" is evaluated before "premium".
	got = policy.Recommend("premium expert", shops)
	assert.Equal(t, recommend.ExplainExpert, got.Explanation)
}

func TestDefaultPolicy_Fallback(t *testing.T) {
	shops := catalog.Default()

	got := recommend.DefaultPolicy().Recommend("nonsense-keyword", shops)
	assert.Equal(t, recommend.ExplainDefault, got.Explanation)
	assert.Equal(t, ids(shops), ids(got.Recommendations))

	got = recommend.DefaultPolicy().Recommend("", shops)
	assert.Equal(t, recommend.ExplainDefault, got.Explanation)
	assert.Len(t, got.Recommendations, len(shops))
}

func TestDefaultPolicy_IgnoresCase(t *testing.T) {
	shops := catalog.Default()

	got := recommend.DefaultPolicy().Recommend("DELIVERY", shops)
	assert.Equal(t, recommend.ExplainDelivery, got.Explanation)
}

func TestDefaultPolicy_AllowlistIgnoresTags(t *testing.T) {
	// Designated ids qualify even when their tags say nothing.
	shops := []domain.Shop{
		{ID: recommend.IDSkiButlers},
		{ID: recommend.IDTimberlineRentals},
		{ID: "other", Services: []string{"delivery"}},
	}
	policy := recommend.DefaultPolicy()

	assert.Equal(t, []string{recommend.IDSkiButlers, "other"}, ids(policy.Recommend("delivery", shops).Recommendations))
	assert.Equal(t, []string{recommend.IDTimberlineRentals}, ids(policy.Recommend("budget", shops).Recommendations))
	assert.Equal(t, []string{recommend.IDSkiButlers}, ids(policy.Recommend("premium", shops).Recommendations))
}

func TestRecommend_EmptyResultIsNotNil(t *testing.T) {
	got := recommend.DefaultPolicy().Recommend("backcountry", []domain.Shop{{ID: "x"}})
	assert.NotNil(t, got.Recommendations)
	assert.Empty(t, got.Recommendations)
}
