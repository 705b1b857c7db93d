package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/luk14236/food-advice-agent/models"
)

// maxReportRows is a safety cap on the window size.
const maxReportRows = 10000

// ReportService computes aggregate statistics over the most recent rows.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

type DishCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ReportStats struct {
	RowsInput            int         `json:"rows_input"`
	Top3                 []DishCount `json:"top_3"`
	VegetarianUsersCount int         `json:"vegetarian_users_count"`
}

// Stats windows the rows most recent records (created_at DESC, id DESC) and
// aggregates them. A window larger than the table simply uses every row; an
// empty table yields an empty report, not an error.
func (s *ReportService) Stats(ctx context.Context, rows int, strictVeg bool) (*ReportStats, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: 'rows' must be > 0", ErrInvalidArgument)
	}
	if rows > maxReportRows {
		rows = maxReportRows
	}

	var window []models.FavoriteFood
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(rows).
		Find(&window).Error; err != nil {
		return nil, fmt.Errorf("%w: window query failed: %v", ErrStore, err)
	}

	return &ReportStats{
		RowsInput:            rows,
		Top3:                 topDishes(window, 3),
		VegetarianUsersCount: vegetarianUsers(window, strictVeg),
	}, nil
}

// topDishes groups by lower(trim(name)); the displayed name is the smallest
// raw spelling in the group. Ties in count break alphabetically.
func topDishes(window []models.FavoriteFood, n int) []DishCount {
	type group struct {
		display string
		count   int
	}
	groups := map[string]*group{}
	for _, r := range window {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{display: r.Name, count: 1}
			continue
		}
		g.count++
		if r.Name < g.display {
			g.display = r.Name
		}
	}

	out := make([]DishCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, DishCount{Name: g.display, Count: g.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// vegetarianUsers counts distinct user ids whose windowed rows are
// vegetarian/vegan: at least one such row normally, every row under strict
// mode. Only rows inside the window count, even if that cuts a user's group.
func vegetarianUsers(window []models.FavoriteFood, strict bool) int {
	qualifies := map[string]bool{}
	for _, r := range window {
		veg := r.Diet == models.DietVegetarian || r.Diet == models.DietVegan
		prev, seen := qualifies[r.UserID]
		switch {
		case !seen:
			qualifies[r.UserID] = veg
		case strict:
			qualifies[r.UserID] = prev && veg
		default:
			qualifies[r.UserID] = prev || veg
		}
	}

	count := 0
	for _, ok := range qualifies {
		if ok {
			count++
		}
	}
	return count
}
