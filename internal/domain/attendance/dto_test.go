package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

func TestListRequest_Validate(t *testing.T) {
	cases := []struct {
		name       string
		request    ListRequest
		wantFields []string
	}{
		{"valid range", ListRequest{EmployeeNumber: 10001, From: "2024-06-03", To: "2024-06-07"}, nil},
		{"single day", ListRequest{EmployeeNumber: 10001, From: "2024-06-03", To: "2024-06-03"}, nil},
		{"mixed date layouts", ListRequest{EmployeeNumber: 10001, From: "06/03/2024", To: "2024-06-07"}, nil},
		{"missing from", ListRequest{EmployeeNumber: 10001, To: "2024-06-07"}, []string{"from"}},
		{"unparseable to", ListRequest{EmployeeNumber: 10001, From: "2024-06-03", To: "June 7"}, []string{"to"}},
		{"to before from", ListRequest{EmployeeNumber: 10001, From: "2024-06-07", To: "2024-06-03"}, []string{"to"}},
		{"zero employee number", ListRequest{From: "2024-06-03", To: "2024-06-07"}, []string{"employee_number"}},
	}

	for _, c := range cases {
		err := c.request.Validate()
		if len(c.wantFields) == 0 {
			assert.NoError(t, err, c.name)
			continue
		}

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, c.name)
		fields := verrs.ToMap()
		assert.Len(t, fields, len(c.wantFields), c.name)
		for _, field := range c.wantFields {
			assert.Contains(t, fields, field, c.name)
		}
	}
}

func TestImportRow_ToRecord(t *testing.T) {
	row := ImportRow{EmployeeNumber: 10001, Date: "06/03/2024", TimeIn: "8:59", TimeOut: "18:31"}

	rec, err := row.ToRecord()
	require.NoError(t, err)

	assert.Equal(t, 10001, rec.EmployeeNumber)
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), rec.Date)
	require.NotNil(t, rec.TimeIn)
	assert.Equal(t, "8:59", *rec.TimeIn)
	require.NotNil(t, rec.TimeOut)
	assert.Equal(t, "18:31", *rec.TimeOut)
}

func TestImportRow_ToRecord_MissingTimeOut(t *testing.T) {
	row := ImportRow{EmployeeNumber: 10001, Date: "2024-06-03", TimeIn: "8:59"}

	rec, err := row.ToRecord()
	require.NoError(t, err)

	require.NotNil(t, rec.TimeIn)
	assert.Nil(t, rec.TimeOut)
}

func TestImportRow_ToRecord_BadDate(t *testing.T) {
	row := ImportRow{EmployeeNumber: 10001, Date: "not-a-date", TimeIn: "8:59", TimeOut: "18:31"}

	_, err := row.ToRecord()
	assert.Error(t, err)
}
