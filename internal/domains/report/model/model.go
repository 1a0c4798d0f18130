package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EntityName = "report"

	KindOccupancy = "occupancy"
	KindRevenue   = "revenue"
	KindDashboard = "dashboard"
)

const (
	UnknownBranch = "Unknown Branch"
	UnknownHotel  = "Unknown Hotel"
	Unassigned    = "Unassigned"
)

var (
	ErrUnknownMode    = errors.New("unknown mode")
	ErrUnknownGroupBy = errors.New("unknown group by")
)

// Mode selects realized (actual) or expected (forecast) figures.
type Mode string

const (
	ModeActual   Mode = "actual"
	ModeForecast Mode = "forecast"
)

// ParseMode is case-insensitive; an empty value means actual.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeActual:
		return ModeActual, nil
	case ModeForecast:
		return ModeForecast, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// GroupBy picks the revenue bucket key.
type GroupBy int

const (
	GroupByDay GroupBy = iota
	GroupByRoomType
	GroupByRoom
	GroupByBranch
	GroupByHotel
)

var groupByNames = [...]string{
	GroupByDay:      "day",
	GroupByRoomType: "room_type",
	GroupByRoom:     "room",
	GroupByBranch:   "branch",
	GroupByHotel:    "hotel",
}

func (g GroupBy) String() string {
	if g < 0 || int(g) >= len(groupByNames) {
		return fmt.Sprintf("GroupBy(%d)", int(g))
	}

	return groupByNames[g]
}

func (g GroupBy) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GroupBy) UnmarshalText(text []byte) error {
	parsed, err := ParseGroupBy(string(text))
	if err != nil {
		return err
	}

	*g = parsed

	return nil
}

// ParseGroupBy accepts snake_case and camelCase names; an empty value means day.
func ParseGroupBy(value string) (GroupBy, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(value), "_", ""))
	if normalized == "" {
		return GroupByDay, nil
	}

	for idx, name := range groupByNames {
		if strings.ReplaceAll(name, "_", "") == normalized {
			return GroupBy(idx), nil
		}
	}

	return GroupByDay, fmt.Errorf("%w: %q", ErrUnknownGroupBy, value)
}

// GroupKey identifies a revenue bucket by a stable ID with its display name alongside.
type GroupKey struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
