package entities_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/entities"
)

func TestNewBookingTarget(t *testing.T) {
	testCases := []struct {
		name      string
		packageID *int64
		eventID   *int64
		want      entities.BookingTarget
		wantErr   bool
	}{
		{name: "package", packageID: pointer.ToInt64(4), want: entities.PackageTarget(4)},
		{name: "event", eventID: pointer.ToInt64(9), want: entities.EventTarget(9)},
		{name: "both", packageID: pointer.ToInt64(4), eventID: pointer.ToInt64(9), wantErr: true},
		{name: "neither", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.NewBookingTarget(tc.packageID, tc.eventID)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidTarget)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBookingTarget_ids(t *testing.T) {
	pkg := entities.PackageTarget(4)
	assert.Equal(t, pointer.ToInt64(4), pkg.PackageID())
	assert.Nil(t, pkg.EventID())
	assert.Equal(t, "package:4", pkg.String())

	evt := entities.EventTarget(9)
	assert.Nil(t, evt.PackageID())
	assert.Equal(t, pointer.ToInt64(9), evt.EventID())
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, entities.BookingPending.IsTerminal())
	assert.False(t, entities.BookingConfirmed.IsTerminal())
	assert.True(t, entities.BookingCancelled.IsTerminal())
	assert.True(t, entities.BookingFailed.IsTerminal())
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2026-03-14", " 2026-03-14 ", "2026-03-14T18:30:00Z", "2026-03-14T23:30:00+05:30"} {
		d, err := entities.ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(d.Time), "%s parsed as %s", in, d.Time)
	}

	_, err := entities.ParseDate("14/03/2026")
	assert.Error(t, err)
}

func TestDate_json(t *testing.T) {
	var draft entities.BookingDraft
	require.NoError(t, json.Unmarshal([]byte(`{"packageId": 1, "travelDate": "2026-12-01", "adults": 2}`), &draft))

	require.NotNil(t, draft.TravelDate)
	assert.Equal(t, "2026-12-01", draft.TravelDate.String())
	assert.Equal(t, 2, draft.Slots())

	out, err := json.Marshal(draft.TravelDate)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-12-01"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"travelDate": "next week"}`), &draft))
}

func TestDate_Scan(t *testing.T) {
	var d entities.Date

	require.NoError(t, d.Scan(time.Date(2026, 5, 2, 15, 4, 0, 0, time.UTC)))
	assert.Equal(t, "2026-05-02", d.String())

	require.NoError(t, d.Scan([]byte("2026-05-03")))
	assert.Equal(t, "2026-05-03", d.String())

	assert.Error(t, d.Scan(42))
}
