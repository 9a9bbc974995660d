package models

// ReviewSummary holds the short review label plus the longer tooltip
// texts for the overall and recent (last 30 days) review breakdowns.
// Either tooltip may be empty when the page does not carry it.
type ReviewSummary struct {
	Label   string `json:"label"`
	Overall string `json:"overall,omitempty"`
	Recent  string `json:"recent,omitempty"`
}

// HistoricalLow is the lowest recorded price for an app, as reported
// by the SteamDB price history table.
type HistoricalLow struct {
	Date     string `json:"date"`
	Price    string `json:"price"`
	Discount string `json:"discount"`
}

// AppInfo is the merged metadata record for one app. AppID is always
// set; every other field is independently optional and left at its
// zero value when the source page does not carry it.
type AppInfo struct {
	AppID              string         `json:"app_id"`
	Name               string         `json:"name,omitempty"`
	ReleaseDate        string         `json:"release_date,omitempty"`
	Metascore          *int           `json:"metascore,omitempty"`
	ReviewSummary      *ReviewSummary `json:"review_summary,omitempty"`
	Categories         []string       `json:"categories,omitempty"`
	Tags               []string       `json:"tags,omitempty"`
	Genres             []string       `json:"genres,omitempty"`
	Developers         []string       `json:"developers,omitempty"`
	Publishers         []string       `json:"publishers,omitempty"`
	DescriptionSnippet string         `json:"description,omitempty"`
	HistoricalLow      *HistoricalLow `json:"historical_low,omitempty"`
}

// WishlistEntry is one line of a user's wishlist.
//
// Discounted is true iff both DiscountPrice and DiscountPercent are
// set. PriceError marks entries whose embedded pricing data was
// missing or malformed; such entries keep their place in the list but
// carry no price fields.
type WishlistEntry struct {
	AppID           string `json:"app_id"`
	Title           string `json:"title"`
	AddedOn         int64  `json:"added_on"`
	URL             string `json:"url"`
	Discounted      bool   `json:"discounted"`
	FullPrice       string `json:"full_price,omitempty"`
	DiscountPrice   string `json:"discount_price,omitempty"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	PriceError      bool   `json:"price_error,omitempty"`
}

// Achievement is one row of a community achievements page. Percent is
// the global unlock rate; UnlockedAt is set only for a user's
// unlocked achievements.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Percent     string `json:"percent,omitempty"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

// UserAchievements splits a user's achievements for one app into
// unlocked and still-locked sets.
type UserAchievements struct {
	Unlocked []Achievement `json:"unlocked"`
	Locked   []Achievement `json:"locked"`
}

// BrowseRow is one app row from a tag browse page section.
type BrowseRow struct {
	AppID         string `json:"app_id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Price         string `json:"price,omitempty"`
	DiscountPct   string `json:"discount_pct,omitempty"`
	OriginalPrice string `json:"original_price,omitempty"`
}

// OwnedGame is one entry of the GetOwnedGames Web API response.
type OwnedGame struct {
	AppID           int64  `json:"appid"`
	Name            string `json:"name,omitempty"`
	PlaytimeForever int    `json:"playtime_forever"`
}
