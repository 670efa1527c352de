package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turfbook/turfbook/internal/pricing"
)

func TestGenerateSlots(t *testing.T) {
	slots, err := pricing.GenerateSlots("08:00", "22:00")
	require.NoError(t, err)
	require.Len(t, slots, 14)

	require.Equal(t, 1, slots[0].ID)
	require.Equal(t, "08:00 - 09:00", slots[0].Label)
	require.Equal(t, "08:00", slots[0].Start)
	require.Equal(t, "09:00", slots[0].End)

	require.Equal(t, 14, slots[13].ID)
	require.Equal(t, "21:00 - 22:00", slots[13].Label)
}

func TestGenerateSlotsInvalidInput(t *testing.T) {
	_, err := pricing.GenerateSlots("22:00", "08:00")
	require.ErrorIs(t, err, pricing.ErrInvalidHours)

	_, err = pricing.GenerateSlots("8am", "22:00")
	require.ErrorIs(t, err, pricing.ErrInvalidTime)

	_, err = pricing.GenerateSlots("08:00", "08:00")
	require.ErrorIs(t, err, pricing.ErrInvalidHours)
}

func TestTimeRangeOverlaps(t *testing.T) {
	booked := pricing.TimeRange{Start: "10:00", End: "12:00"}

	require.True(t, booked.Overlaps(pricing.TimeRange{Start: "11:00", End: "13:00"}))
	require.True(t, booked.Overlaps(pricing.TimeRange{Start: "09:00", End: "11:00"}))
	require.True(t, booked.Overlaps(pricing.TimeRange{Start: "10:00", End: "11:00"}))
	// Half-open ranges: touching endpoints do not overlap.
	require.False(t, booked.Overlaps(pricing.TimeRange{Start: "12:00", End: "13:00"}))
	require.False(t, booked.Overlaps(pricing.TimeRange{Start: "09:00", End: "10:00"}))
}

func TestBookedSlotNeverSelectable(t *testing.T) {
	slots, err := pricing.GenerateSlots("08:00", "22:00")
	require.NoError(t, err)

	booked := []pricing.TimeRange{{Start: "10:00", End: "12:00"}}
	slot3 := slots[2] // 10:00 - 11:00, inside the booked range

	require.True(t, pricing.IsBooked(slot3, booked))
	require.False(t, pricing.IsSelectable(slot3, nil, booked))
	require.False(t, pricing.IsSelectable(slot3, []int{2}, booked))
	require.False(t, pricing.IsSelectable(slot3, []int{4}, booked))
}

func TestSelectabilityAdjacency(t *testing.T) {
	slots, err := pricing.GenerateSlots("08:00", "22:00")
	require.NoError(t, err)

	t.Run("empty selection allows any free slot", func(t *testing.T) {
		for _, s := range slots {
			require.True(t, pricing.IsSelectable(s, nil, nil), "slot %d", s.ID)
		}
	})

	t.Run("non-empty selection only admits adjacent slots", func(t *testing.T) {
		selected := []int{5}
		for _, s := range slots {
			want := s.ID >= 4 && s.ID <= 6
			require.Equal(t, want, pricing.IsSelectable(s, selected, nil), "slot %d", s.ID)
		}
	})

	t.Run("adjacency to either end of a block", func(t *testing.T) {
		selected := []int{5, 6, 7}
		require.True(t, pricing.IsSelectable(slots[3], selected, nil))  // 4
		require.True(t, pricing.IsSelectable(slots[7], selected, nil))  // 8
		require.False(t, pricing.IsSelectable(slots[1], selected, nil)) // 2
		require.False(t, pricing.IsSelectable(slots[9], selected, nil)) // 10
	})
}

func TestContiguous(t *testing.T) {
	require.True(t, pricing.Contiguous([]int{3}))
	require.True(t, pricing.Contiguous([]int{3, 4, 5}))
	require.True(t, pricing.Contiguous([]int{5, 3, 4})) // order does not matter
	require.False(t, pricing.Contiguous([]int{3, 5}))
	require.False(t, pricing.Contiguous(nil))
}

func TestSelectionRange(t *testing.T) {
	// Opening 08:00: ids 3..5 cover 10:00 - 13:00.
	r, err := pricing.SelectionRange("08:00", "22:00", []int{3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, "10:00", r.Start)
	require.Equal(t, "13:00", r.End)

	_, err = pricing.SelectionRange("08:00", "22:00", nil)
	require.ErrorIs(t, err, pricing.ErrEmptySelection)

	_, err = pricing.SelectionRange("08:00", "22:00", []int{99})
	require.ErrorIs(t, err, pricing.ErrUnknownSlot)
}
