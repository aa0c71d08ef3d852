package model

import (
	"fmt"
	"strings"
)

type Granularity int

const (
	GranularityMonth Granularity = iota
	GranularityWeek
	GranularityDay
)

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(s) {
	case "month":
		return GranularityMonth, nil
	case "week":
		return GranularityWeek, nil
	case "day":
		return GranularityDay, nil
	default:
		return 0, fmt.Errorf("unknown view %q", s)
	}
}

func (g Granularity) String() string {
	switch g {
	case GranularityMonth:
		return "month"
	case GranularityWeek:
		return "week"
	case GranularityDay:
		return "day"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}
