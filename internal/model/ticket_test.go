package model

import (
	"testing"

	apperrors "theatre-booking-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateSeat(t *testing.T) {
	hall := &TheatreHall{ID: 1, Name: "Main Hall", Rows: 10, SeatsInRow: 15}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateSeat(1, 1, hall))
		assert.NoError(t, ValidateSeat(10, 15, hall))
		assert.NoError(t, ValidateSeat(5, 8, hall))
	})

	t.Run("RowTooLarge", func(t *testing.T) {
		err := ValidateSeat(11, 1, hall)
		assert.ErrorIs(t, err, apperrors.ErrSeatOutOfRange)
		assert.Contains(t, err.Error(), "row must be in range [1, 10]")
	})

	t.Run("SeatTooLarge", func(t *testing.T) {
		err := ValidateSeat(1, 16, hall)
		assert.ErrorIs(t, err, apperrors.ErrSeatOutOfRange)
		assert.Contains(t, err.Error(), "seat must be in range [1, 15]")
	})

	// 既有行為：下限不做檢查，0 與負數會通過
	t.Run("LowerBoundNotChecked", func(t *testing.T) {
		assert.NoError(t, ValidateSeat(0, 0, hall))
		assert.NoError(t, ValidateSeat(-3, -1, hall))
	})
}

func TestTheatreHallCapacity(t *testing.T) {
	hall := &TheatreHall{Rows: 10, SeatsInRow: 15}
	assert.Equal(t, 150, hall.Capacity())
}
