// Package quote - Preset marketing packs
package quote

import "agency-quote/core/types"

// Pack is a named preset marketing configuration. Packs feed the same
// aggregator as custom configurations; they carry no pricing of their own.
type Pack struct {
	// ID is the stable pack identifier
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// Config is the preset configuration
	Config types.MarketingQuoteConfig `json:"config"`
}

// Packs returns the preset packs in display order
func Packs() []Pack {
	return []Pack{
		{
			ID:   "starter",
			Name: "Starter",
			Config: types.MarketingQuoteConfig{
				GmbPostsPerMonth:     4,
				BlogArticlesPerMonth: 2,
				SocialChannels:       []types.Channel{types.ChannelFacebook, types.ChannelInstagram},
			},
		},
		{
			ID:   "essential",
			Name: "Essential",
			Config: types.MarketingQuoteConfig{
				GmbPostsPerMonth:     4,
				SocialPostsPerMonth:  4,
				BlogArticlesPerMonth: 2,
				SocialChannels: []types.Channel{
					types.ChannelFacebook, types.ChannelInstagram, types.ChannelLinkedIn,
				},
			},
		},
		{
			ID:   "performance",
			Name: "Performance",
			Config: types.MarketingQuoteConfig{
				GmbPostsPerMonth:     8,
				SocialPostsPerMonth:  8,
				BlogArticlesPerMonth: 7,
				SocialChannels: []types.Channel{
					types.ChannelFacebook, types.ChannelInstagram,
					types.ChannelLinkedIn, types.ChannelPinterest,
				},
			},
		},
	}
}

// FindPack returns the pack with the given ID
func FindPack(id string) (Pack, bool) {
	for _, p := range Packs() {
		if p.ID == id {
			return p, true
		}
	}
	return Pack{}, false
}
