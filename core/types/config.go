// Package types - Quote configuration value objects
package types

// SiteKind is the type of website being quoted
type SiteKind string

const (
	SiteShowcase  SiteKind = "showcase"
	SiteEcommerce SiteKind = "ecommerce"
)

// SeoTier is the SEO option level
type SeoTier string

const (
	SeoBasic    SeoTier = "basic"
	SeoAdvanced SeoTier = "advanced"
)

// BillingCycle is the recurring billing frequency
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// Channel is a social network a posting plan can publish to.
// Facebook and Instagram are included with the social module;
// LinkedIn and Pinterest are paid add-ons.
type Channel string

const (
	ChannelFacebook  Channel = "facebook"
	ChannelInstagram Channel = "instagram"
	ChannelLinkedIn  Channel = "linkedin"
	ChannelPinterest Channel = "pinterest"
)

// Premium reports whether the channel carries a surcharge
func (c Channel) Premium() bool {
	return c == ChannelLinkedIn || c == ChannelPinterest
}

// WebsiteQuoteConfig captures one website-creation configuration.
// Constructed fresh from form state on every recompute; never retained.
type WebsiteQuoteConfig struct {
	// SiteKind selects showcase or ecommerce
	SiteKind SiteKind `json:"site_kind"`

	// PageCount is the number of pages, domain [1, 50]
	PageCount int `json:"page_count"`

	// SeoTier selects the SEO option
	SeoTier SeoTier `json:"seo_tier"`

	// ProductVolumeBand indexes the ordered product volume bands;
	// only meaningful when SiteKind is ecommerce
	ProductVolumeBand int `json:"product_volume_band"`

	// MaintenanceEnabled toggles the recurring maintenance plan
	MaintenanceEnabled bool `json:"maintenance_enabled"`

	// BillingCycle is the maintenance billing frequency
	BillingCycle BillingCycle `json:"billing_cycle"`
}

// MarketingQuoteConfig captures one recurring marketing configuration.
// A module with quantity 0 is off: no charge, no minimum check.
type MarketingQuoteConfig struct {
	// GmbPostsPerMonth is the Google Business posting volume
	GmbPostsPerMonth int `json:"gmb_posts_per_month"`

	// SocialPostsPerMonth is the social posting volume
	SocialPostsPerMonth int `json:"social_posts_per_month"`

	// BlogArticlesPerMonth is the blog article volume
	BlogArticlesPerMonth int `json:"blog_articles_per_month"`

	// SocialChannels lists the enabled channels; premium ones are billed
	// only while the social module itself is enabled
	SocialChannels []Channel `json:"social_channels,omitempty"`
}

// HasChannel reports whether the channel is selected
func (c MarketingQuoteConfig) HasChannel(ch Channel) bool {
	for _, sel := range c.SocialChannels {
		if sel == ch {
			return true
		}
	}
	return false
}
