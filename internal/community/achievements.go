// Package community extracts achievement data from Steam community
// stats pages.
package community

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/mtlaird/steam-db/internal/models"
)

const baseURL = "https://steamcommunity.com"

// GlobalAchievements fetches an app's global achievement stats: each
// achievement's texts plus its global unlock percentage.
func GlobalAchievements(ctx context.Context, f httpdoc.Fetcher, appID string) ([]models.Achievement, error) {
	doc, err := f.Fetch(ctx, fmt.Sprintf("%s/stats/%s/achievements/", baseURL, appID))
	if err != nil {
		return nil, err
	}

	var achievements []models.Achievement
	doc.Find(".achieveTxtHolder").Each(func(_ int, holder *goquery.Selection) {
		txt := holder.Find(".achieveTxt")
		achievements = append(achievements, models.Achievement{
			Title:       strings.TrimSpace(txt.Find("h3").Text()),
			Description: strings.TrimSpace(txt.Find("h5").Text()),
			Percent:     strings.TrimSpace(holder.Find(".achievePercent").Text()),
		})
	})
	return achievements, nil
}

// UserAchievementsFor fetches a user's achievements for one app, split
// into unlocked (with their unlock time) and still-locked sets.
func UserAchievementsFor(ctx context.Context, f httpdoc.Fetcher, userID, appID string) (*models.UserAchievements, error) {
	doc, err := f.Fetch(ctx, fmt.Sprintf("%s/profiles/%s/stats/%s/achievements/", baseURL, userID, appID))
	if err != nil {
		return nil, err
	}

	result := &models.UserAchievements{}
	doc.Find(".achieveTxt").Each(func(_ int, txt *goquery.Selection) {
		a := models.Achievement{
			Title:       strings.TrimSpace(txt.Find("h3").Text()),
			Description: strings.TrimSpace(txt.Find("h5").Text()),
		}
		unlock := txt.Find(".achieveUnlockTime")
		if unlock.Length() == 0 {
			result.Locked = append(result.Locked, a)
			return
		}
		a.UnlockedAt = strings.TrimPrefix(strings.TrimSpace(unlock.Text()), "Unlocked ")
		result.Unlocked = append(result.Unlocked, a)
	})
	return result, nil
}
