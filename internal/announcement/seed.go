package announcement

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	util "github.com/skillfolio/skillfolio-lambda/internal/utils"
)

// SeedData is the decoded contents of a catalog seed file.
type SeedData struct {
	Announcements []Announcement
	Facts         []Fact
}

type seedAnnouncement struct {
	Title         string         `json:"title"`
	Platform      string         `json:"platform"`
	Type          string         `json:"type"`
	URL           string         `json:"url"`
	StartsAt      *util.DateOnly `json:"starts_at"`
	EndsAt        *util.DateOnly `json:"ends_at"`
	DiscountPct   *int           `json:"discount_pct"`
	PriceOriginal *float64       `json:"price_original"`
	PriceCurrent  *float64       `json:"price_current"`
	Tags          []string       `json:"tags"`
}

type seedFact struct {
	Text      string `json:"text"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url"`
	Active    *bool  `json:"active"`
}

type seedFile struct {
	Results       []seedAnnouncement `json:"results"`
	Announcements []seedAnnouncement `json:"announcements"`
	Facts         []seedFact         `json:"facts"`
}

// ParseSeed decodes a seed file. Accepted shapes: a bare JSON array of
// announcements, or an object with "announcements" (or legacy
// "results") and "facts" arrays.
func ParseSeed(r io.Reader) (*SeedData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file seedFile
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, &file.Announcements); err != nil {
			return nil, fmt.Errorf("invalid seed file: %w", err)
		}
	} else {
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("invalid seed file: %w", err)
		}
		if len(file.Announcements) == 0 {
			file.Announcements = file.Results
		}
	}

	data := &SeedData{}
	for i, item := range file.Announcements {
		a, err := item.toEntity()
		if err != nil {
			return nil, fmt.Errorf("announcement %d: %w", i, err)
		}
		data.Announcements = append(data.Announcements, *a)
	}
	for i, item := range file.Facts {
		if strings.TrimSpace(item.Text) == "" {
			return nil, fmt.Errorf("fact %d: text is required", i)
		}
		active := true
		if item.Active != nil {
			active = *item.Active
		}
		data.Facts = append(data.Facts, Fact{
			Text:      item.Text,
			Source:    item.Source,
			SourceURL: item.SourceURL,
			Active:    active,
		})
	}
	return data, nil
}

func (x seedAnnouncement) toEntity() (*Announcement, error) {
	if strings.TrimSpace(x.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(x.Platform) == "" {
		return nil, fmt.Errorf("platform is required")
	}

	t := Type(strings.ToLower(strings.TrimSpace(x.Type)))
	if t == "" {
		t = TypeEnrollment
	}
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, x.Type)
	}
	if x.DiscountPct != nil && (*x.DiscountPct < 0 || *x.DiscountPct > 100) {
		return nil, fmt.Errorf("discount_pct out of range: %d", *x.DiscountPct)
	}

	tags := x.Tags
	if tags == nil {
		tags = []string{}
	}
	rawTags, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}

	return &Announcement{
		Title:         x.Title,
		Platform:      x.Platform,
		Type:          t,
		URL:           x.URL,
		StartsAt:      x.StartsAt,
		EndsAt:        x.EndsAt,
		DiscountPct:   x.DiscountPct,
		PriceOriginal: x.PriceOriginal,
		PriceCurrent:  x.PriceCurrent,
		Tags:          rawTags,
	}, nil
}

// Seed upserts the parsed catalog. Announcements dedupe on
// title+platform and facts on text, so re-running the seeder never
// duplicates rows. Returns how many rows were created.
func Seed(db *gorm.DB, data *SeedData) (created int, err error) {
	for i := range data.Announcements {
		a := data.Announcements[i]
		res := db.Where("title = ? AND platform = ?", a.Title, a.Platform).
			Attrs(a).
			FirstOrCreate(&Announcement{})
		if res.Error != nil {
			return created, res.Error
		}
		if res.RowsAffected > 0 {
			created++
		}
	}
	for i := range data.Facts {
		f := data.Facts[i]
		res := db.Where("text = ?", f.Text).
			Attrs(f).
			FirstOrCreate(&Fact{})
		if res.Error != nil {
			return created, res.Error
		}
		if res.RowsAffected > 0 {
			created++
		}
	}
	return created, nil
}
