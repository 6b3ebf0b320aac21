package packages

import (
	"strings"

	"github.com/fati-2700/pricingos/core/types"
)

// BulletMarker prefixes every line of Package.IncludesText.
const BulletMarker = "• "

// itemSet holds the cumulative deliverables of one category.
type itemSet struct {
	category types.Category
	keywords []string
	base     []string
	standard []string
	premium  []string
}

// catalog is in classification precedence order. The generic set has no
// keywords and must stay last.
var catalog = []itemSet{
	{
		category: types.CategoryWebsite,
		keywords: []string{"website", "web"},
		base:     []string{"Responsive design", "Up to 5 pages", "Basic SEO setup"},
		standard: []string{"Up to 10 pages", "Advanced SEO optimization", "Contact form integration", "Social media integration"},
		premium:  []string{"Unlimited pages", "Custom animations", "E-commerce integration", "Priority support", "3 months of maintenance"},
	},
	{
		category: types.CategoryBrand,
		keywords: []string{"brand"},
		base:     []string{"Logo design", "Color palette", "Typography selection"},
		standard: []string{"Brand guidelines document", "Business card design", "Social media templates"},
		premium:  []string{"Full brand identity system", "Stationery design", "Brand video", "Brand strategy consultation"},
	},
	{
		category: types.CategoryCopy,
		keywords: []string{"copy"},
		base:     []string{"Up to 5 pages of copy", "1 round of revisions", "SEO-optimized content"},
		standard: []string{"Up to 10 pages of copy", "2 rounds of revisions", "Content strategy document"},
		premium:  []string{"Unlimited pages", "Unlimited revisions", "Content calendar", "A/B testing recommendations"},
	},
	{
		category: types.CategorySEO,
		keywords: []string{"seo"},
		base:     []string{"SEO audit", "Keyword research", "Monthly reporting"},
		standard: []string{"On-page optimization", "Content recommendations", "Link building strategy"},
		premium:  []string{"Full SEO strategy", "Content creation", "Technical SEO fixes", "Competitor analysis"},
	},
	{
		category: types.CategoryGeneric,
		base:     []string{"Core deliverables", "1 round of revisions", "Basic documentation"},
		standard: []string{"Extended deliverables", "2 rounds of revisions", "Comprehensive documentation"},
		premium:  []string{"Full scope deliverables", "Unlimited revisions", "Priority support", "Extended warranty"},
	},
}

// CategoryInfo is a read-only view of one category's deliverables.
type CategoryInfo struct {
	Category      types.Category `json:"category"`
	Keywords      []string       `json:"keywords,omitempty"`
	BaseItems     []string       `json:"base_items"`
	StandardItems []string       `json:"standard_items"`
	PremiumItems  []string       `json:"premium_items"`
}

func lookup(name string) *itemSet {
	lower := strings.ToLower(name)
	for i := range catalog {
		for _, kw := range catalog[i].keywords {
			if strings.Contains(lower, kw) {
				return &catalog[i]
			}
		}
	}
	return &catalog[len(catalog)-1]
}

// Classify returns the copy category of a project type name. Matching is a
// case-insensitive substring test; the first category in precedence order
// wins, so "Web Branding" is a website project.
func Classify(name string) types.Category {
	return lookup(name).category
}

// Categories lists every category in precedence order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(catalog))
	for _, set := range catalog {
		out = append(out, CategoryInfo{
			Category:      set.category,
			Keywords:      clone(set.keywords),
			BaseItems:     clone(set.base),
			StandardItems: clone(set.standard),
			PremiumItems:  clone(set.premium),
		})
	}
	return out
}

// Items returns the cumulative deliverables of tier for a project type name.
func Items(name string, tier types.Tier) []string {
	return lookup(name).items(tier)
}

func (s *itemSet) items(tier types.Tier) []string {
	out := make([]string, 0, len(s.base)+len(s.standard)+len(s.premium))
	out = append(out, s.base...)
	if tier == types.TierStarter {
		return out
	}
	out = append(out, s.standard...)
	if tier == types.TierStandard {
		return out
	}
	return append(out, s.premium...)
}

// IncludesText renders items as a newline separated bullet list.
func IncludesText(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(BulletMarker)
		b.WriteString(item)
	}
	return b.String()
}

// ParseIncludes splits an IncludesText back into items. Lines without the
// bullet marker are kept as-is; blank lines are dropped.
func ParseIncludes(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, strings.TrimSpace(strings.TrimPrefix(line, strings.TrimSpace(BulletMarker))))
	}
	return items
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
