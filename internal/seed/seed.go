// Package seed loads the initial events of the calendar.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type file struct {
	Events []eventEntry `yaml:"events"`
}

type eventEntry struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Email       string `yaml:"email"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
}

type eventsCreator interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
}

// Decode reads a YAML seed document.
func Decode(r io.Reader) ([]*model.EventCreate, error) {
	f := &file{}
	if err := yaml.NewDecoder(r).Decode(f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	res := make([]*model.EventCreate, len(f.Events))
	for i, e := range f.Events {
		color, err := model.ParseColor(e.Color)
		if err != nil {
			color = model.Color(e.Color)
		}
		if e.Color == "" {
			color = ""
		}

		res[i] = &model.EventCreate{
			Title:       e.Title,
			Date:        e.Date,
			Time:        e.Time,
			Email:       e.Email,
			Color:       color,
			Description: e.Description,
		}
	}

	return res, nil
}

func LoadFile(path string) ([]*model.EventCreate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Demo returns the sample events of the console.
func Demo() []*model.EventCreate {
	return []*model.EventCreate{
		{
			Title:       "Team Meeting",
			Date:        "2024-03-20",
			Time:        "10:00",
			Email:       "team@example.com",
			Color:       model.ColorBlue,
			Description: "Weekly team sync",
		},
		{
			Title:       "Project Review",
			Date:        "2024-03-22",
			Time:        "14:00",
			Email:       "project@example.com",
			Color:       model.ColorPurple,
			Description: "Q1 project review",
		},
	}
}

// Apply creates every entry. Rejected entries are logged and skipped.
func Apply(ctx context.Context, events eventsCreator, entries []*model.EventCreate, logger *zap.SugaredLogger) (int, error) {
	created := 0
	for i, e := range entries {
		if _, err := events.CreateEvent(ctx, e); err != nil {
			if ctx.Err() != nil {
				return created, ctx.Err()
			}
			logger.Warnw("Skipping seed event", "index", i, "title", e.Title, "err", err)
			continue
		}
		created++
	}

	return created, nil
}
