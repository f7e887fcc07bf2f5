package order_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusInTransit,
		order.StatusOutForDelivery,
		order.StatusDelivered,
		order.StatusFailedDelivery,
		order.StatusReturned,
		order.StatusCustomsClearance,
		order.StatusArrivedAtFacility,
		order.StatusScanned,
		order.StatusProblem,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("all_recognized_statuses_are_valid", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			require.NoError(t, status.Validate(), "status %s", status)
		}
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out_of_range_is_invalid", func(t *testing.T) {
		err := order.Status(99).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.StatusUnknown:           "unknown",
		order.StatusPending:           "pending",
		order.StatusInTransit:         "in_transit",
		order.StatusOutForDelivery:    "out_for_delivery",
		order.StatusDelivered:         "delivered",
		order.StatusFailedDelivery:    "failed_delivery",
		order.StatusReturned:          "returned",
		order.StatusCustomsClearance:  "customs_clearance",
		order.StatusArrivedAtFacility: "arrived_at_facility",
		order.StatusScanned:           "scanned",
		order.StatusProblem:           "problem",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_valid_status", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("empty_string_is_invalid", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unrecognized_value_is_invalid", func(t *testing.T) {
		_, err := order.StatusFromString("teleported")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("case_sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("Pending")

		require.Error(t, err)
	})
}
