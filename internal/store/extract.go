package store

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mtlaird/steam-db/internal/models"
)

// cleanList trims every element and drops empty ones.
func cleanList(in []string) []string {
	out := []string{}
	for _, e := range in {
		if s := strings.TrimSpace(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AppName extracts the app's display name.
func AppName(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(".apphub_AppName").First().Text())
}

// ReleaseDate extracts the release date as the page formats it.
// The page carries the "Release Date:" label inside the node; only the
// label and layout whitespace are stripped, the date text itself is
// left source-formatted.
func ReleaseDate(doc *goquery.Document) string {
	text := doc.Find(".release_date").First().Text()
	text = strings.ReplaceAll(text, "Release Date: ", "")
	return strings.NewReplacer("\t", "", "\n", "", "\r", "").Replace(text)
}

// Metascore extracts the critic score as the first integer token of
// the metascore block, or nil when the app has none.
func Metascore(doc *goquery.Document) *int {
	block := doc.Find("#game_area_metascore").First()
	if block.Length() == 0 {
		return nil
	}
	for _, tok := range strings.Fields(block.Text()) {
		if n, err := strconv.Atoi(tok); err == nil {
			return &n
		}
	}
	return nil
}

// Reviews extracts the short review label and the overall/recent
// tooltip texts. The recent tooltip is recognized by its "in the last
// 30 days" phrasing; pages without a recent breakdown yield only the
// overall one.
func Reviews(doc *goquery.Document) *models.ReviewSummary {
	label := doc.Find(".game_review_summary").First()
	if label.Length() == 0 {
		return nil
	}
	summary := &models.ReviewSummary{Label: strings.TrimSpace(label.Text())}

	doc.Find(".user_reviews_summary_row").Each(func(_ int, row *goquery.Selection) {
		if summary.Overall != "" && summary.Recent != "" {
			return
		}
		tooltip, ok := row.Attr("data-store-tooltip")
		if !ok {
			return
		}
		if strings.Contains(tooltip, "in the last 30 days") {
			summary.Recent = tooltip
		} else {
			summary.Overall = tooltip
		}
	})
	return summary
}

// Categories extracts the feature category names (single-player,
// achievements, cloud saves, ...).
func Categories(doc *goquery.Document) []string {
	var cats []string
	doc.Find("#category_block .name").Each(func(_ int, s *goquery.Selection) {
		cats = append(cats, s.Text())
	})
	return cats
}

// Tags extracts the user-defined popular tags. The tag block's text is
// line-separated after parsing; tabs and the trailing "+" expander are
// layout noise.
func Tags(doc *goquery.Document) []string {
	block := doc.Find(".popular_tags").First()
	if block.Length() == 0 {
		return []string{}
	}
	text := strings.NewReplacer("\t", "", "+", "").Replace(block.Text())
	return cleanList(strings.Split(text, "\n"))
}

// Details extracts genres, developers and publishers from the details
// block. The block is a run of "Label: value, value" lines; extraction
// splits the whole text on newlines, colons and commas and slices the
// token spans between the recognized labels, in their textual order.
// A missing label leaves the corresponding list empty. Index-based
// slicing between labels is a behavioral contract of this extraction;
// do not replace it with per-line parsing.
func Details(doc *goquery.Document) (genres, developers, publishers []string) {
	genres, developers, publishers = []string{}, []string{}, []string{}

	block := doc.Find(".details_block").First()
	if block.Length() == 0 {
		return
	}
	text := strings.NewReplacer("\r", "", "\t", "").Replace(block.Text())
	text = strings.ReplaceAll(text, "\n", ",")
	text = strings.ReplaceAll(text, ":", ",")
	tokens := strings.Split(text, ",")

	span := func(from, to string) []string {
		start := indexOf(tokens, from)
		end := indexOf(tokens, to)
		if start < 0 || end < 0 || start+1 > end {
			return nil
		}
		return tokens[start+1 : end]
	}

	genres = cleanList(span("Genre", "Developer"))
	developers = cleanList(span("Developer", "Publisher"))
	publishers = cleanList(span("Publisher", "Release Date"))
	return
}

func indexOf(tokens []string, want string) int {
	for i, t := range tokens {
		if t == want {
			return i
		}
	}
	return -1
}

// DescriptionSnippet extracts the short description shown in the
// page's right-hand column.
func DescriptionSnippet(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(".game_description_snippet").First().Text())
}
