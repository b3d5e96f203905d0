package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHours(t *testing.T) {
	checkIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		checkOut time.Time
		work     float64
		extra    float64
	}{
		{checkIn.Add(8 * time.Hour), 8, 0},
		{checkIn.Add(9 * time.Hour), 9, 0},
		{checkIn.Add(10*time.Hour + 30*time.Minute), 10.5, 1.5},
		{checkIn.Add(20 * time.Minute), 0.33, 0},
		{checkIn, 0, 0},
		{checkIn.Add(-time.Minute), 0, 0},
	}

	for _, c := range cases {
		work, extra := ComputeHours(checkIn, c.checkOut)
		assert.Equal(t, c.work, work, "checkout %s", c.checkOut)
		assert.Equal(t, c.extra, extra, "checkout %s", c.checkOut)
	}
}

func TestDateOf_UsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	instant := time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), DateOf(instant, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), DateOf(instant, jakarta))
}

func TestListAttendanceRequest_Filter(t *testing.T) {
	req := ListAttendanceRequest{Month: "2024-02"}
	require.NoError(t, req.Validate())

	filter := req.Filter()
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, "2024-02-01", filter.From.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", filter.To.Format("2006-01-02"))
	assert.Nil(t, filter.EmployeeID)

	req = ListAttendanceRequest{Date: "2024-03-04"}
	filter = req.Filter()
	assert.Equal(t, *filter.From, *filter.To)
}

func TestListAttendanceRequest_Validate(t *testing.T) {
	req := ListAttendanceRequest{Date: "2024-03-04", Month: "2024-03", EmployeeID: "not-a-uuid"}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use either date or month")
	assert.Contains(t, err.Error(), "employeeId")
}
