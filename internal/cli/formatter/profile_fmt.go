package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/domain"
)

const maxGenreRows = 5

// FormatProfileSummary renders the profile overview shown by `profile show`.
func FormatProfileSummary(s *app.ProfileSummary, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s   %s %d   %s %d\n",
		Dim("Watched:"), StyleFg.Render(FormatHours(s.TotalHours)),
		Dim("Sessions:"), s.WatchCount,
		Dim("Titles:"), s.DistinctTitles,
	))
	b.WriteString(fmt.Sprintf("%s %d   %s %d\n",
		Dim("Wishlist:"), s.WishlistCount,
		Dim("Rated:"), s.RatedCount,
	))
	if s.LastWatched != nil {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim("Last watch:"),
			StyleFg.Render(s.LastWatched.ItemID),
			Dim(Ago(s.LastWatched.WatchedAt, now)),
		))
	}

	b.WriteString("\n" + Header("Genres") + "\n")
	if len(s.TopGenres) == 0 {
		b.WriteString(Dim("No engagement yet.") + "\n")
	} else {
		rows := make([][]string, 0, maxGenreRows)
		for i, g := range s.TopGenres {
			if i == maxGenreRows {
				break
			}
			rows = append(rows, []string{g.Genre, FormatHours(g.Hours)})
		}
		b.WriteString(RenderTable([]Column{{Title: "GENRE"}, {Title: "HOURS", Right: true}}, rows))
	}

	b.WriteString("\n" + Header("Buckets") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", BucketBadge(domain.BucketDay), bucketList(s.DayBucket)))
	b.WriteString(fmt.Sprintf("%s %s\n", BucketBadge(domain.BucketNight), bucketList(s.NightBucket)))

	b.WriteString("\n" + Header("Engine Weights") + "\n")
	b.WriteString(FormatWeights(s.Weights))

	b.WriteString("\n" + Dim(fmt.Sprintf("Profile created %s", s.CreatedAt.Format("Jan 2, 2006"))))

	return RenderBox("Your Profile", b.String())
}

// FormatWeights renders the four tunable engine weights.
func FormatWeights(w domain.EngineWeights) string {
	rows := [][]string{
		{"genre", fmt.Sprintf("%.2f", w.GenreWeight)},
		{"wishlist", fmt.Sprintf("x%.2f", w.WishlistMultiplier)},
		{"imdb", fmt.Sprintf("%.2f", w.ImdbWeight)},
		{"rating", fmt.Sprintf("%.2f", w.RatingWeight)},
	}
	return RenderTable([]Column{{Title: "WEIGHT"}, {Title: "VALUE", Right: true}}, rows)
}

func bucketList(titles []string) string {
	if len(titles) == 0 {
		return Dim("empty")
	}
	return StyleFg.Render(strings.Join(titles, ", "))
}
