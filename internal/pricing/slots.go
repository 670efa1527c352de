package pricing

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrInvalidTime    = errors.New("invalid HH:MM time")
	ErrInvalidHours   = errors.New("closing time must be after opening time")
	ErrEmptySelection = errors.New("no slots selected")
	ErrUnknownSlot    = errors.New("slot id outside operating hours")
	ErrNonContiguous  = errors.New("selected slots must form one contiguous block")
)

// Slot is a one-hour bookable interval within a ground's operating hours.
// IDs are 1-based from the opening hour: with opening "08:00", slot 3 covers
// 10:00 - 11:00.
type Slot struct {
	ID    int    `json:"id"`
	Label string `json:"label"` // "10:00 - 11:00"
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "11:00"
}

// TimeRange is a half-open [Start, End) interval within a single day.
type TimeRange struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Overlaps reports whether two half-open ranges intersect.
func (r TimeRange) Overlaps(other TimeRange) bool {
	rs, err1 := minutesOfDay(r.Start)
	re, err2 := minutesOfDay(r.End)
	os, err3 := minutesOfDay(other.Start)
	oe, err4 := minutesOfDay(other.End)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return rs < oe && os < re
}

// GenerateSlots produces one candidate slot per whole hour between opening and
// closing, exclusive of the closing hour. "08:00" to "22:00" yields 14 slots.
func GenerateSlots(opening, closing string) ([]Slot, error) {
	openHour, err := hourOf(opening)
	if err != nil {
		return nil, err
	}
	closeHour, err := hourOf(closing)
	if err != nil {
		return nil, err
	}
	if closeHour <= openHour {
		return nil, ErrInvalidHours
	}

	slots := make([]Slot, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		start := fmt.Sprintf("%02d:00", h)
		end := fmt.Sprintf("%02d:00", h+1)
		slots = append(slots, Slot{
			ID:    h - openHour + 1,
			Label: start + " - " + end,
			Start: start,
			End:   end,
		})
	}
	return slots, nil
}

// IsBooked reports whether the slot overlaps any already-booked range.
func IsBooked(s Slot, booked []TimeRange) bool {
	slotRange := TimeRange{Start: s.Start, End: s.End}
	for _, b := range booked {
		if slotRange.Overlaps(b) {
			return true
		}
	}
	return false
}

// IsSelectable reports whether the slot can be added to the current selection.
// A booked slot is never selectable. With an empty selection any free slot
// qualifies; otherwise the slot must be hour-adjacent to a selected one so the
// final selection stays contiguous.
func IsSelectable(s Slot, selectedIDs []int, booked []TimeRange) bool {
	if IsBooked(s, booked) {
		return false
	}
	if len(selectedIDs) == 0 {
		return true
	}
	for _, id := range selectedIDs {
		if s.ID == id-1 || s.ID == id+1 || s.ID == id {
			return true
		}
	}
	return false
}

// Contiguous reports whether the ids form one unbroken run of consecutive
// hours. The empty selection is not contiguous.
func Contiguous(ids []int) bool {
	if len(ids) == 0 {
		return false
	}
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

// SelectionRange resolves the selected ids to the overall [start, end) time
// range, from the start of the earliest slot to the end of the latest.
func SelectionRange(opening, closing string, ids []int) (TimeRange, error) {
	if len(ids) == 0 {
		return TimeRange{}, ErrEmptySelection
	}

	slots, err := GenerateSlots(opening, closing)
	if err != nil {
		return TimeRange{}, err
	}

	byID := make(map[int]Slot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	first, ok := byID[minOf(ids)]
	if !ok {
		return TimeRange{}, ErrUnknownSlot
	}
	last, ok := byID[maxOf(ids)]
	if !ok {
		return TimeRange{}, ErrUnknownSlot
	}

	return TimeRange{Start: first.Start, End: last.End}, nil
}

func minOf(ids []int) int {
	m := ids[0]
	for _, id := range ids[1:] {
		if id < m {
			m = id
		}
	}
	return m
}

func maxOf(ids []int) int {
	m := ids[0]
	for _, id := range ids[1:] {
		if id > m {
			m = id
		}
	}
	return m
}

func hourOf(hhmm string) (int, error) {
	m, err := minutesOfDay(hhmm)
	if err != nil {
		return 0, err
	}
	return m / 60, nil
}

func minutesOfDay(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	return h*60 + m, nil
}
