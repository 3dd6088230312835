package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsrv/docsrv/internal/errors"
	"github.com/docsrv/docsrv/internal/logging"
)

func TestTimeformatMagnitudes(t *testing.T) {
	testCases := []struct {
		seconds  float64
		expected string
	}{
		{45, "45 seconds"},
		{120, "2 minutes"},
		{125, "2.1 minutes"},
		{7200, "2 hours"},
		{1, "1 seconds"},
		{90, "1.5 minutes"},
		{5400, "1.5 hours"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			out, err := Timeformat(tc.seconds)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestTimeformatAcceptsIntegers(t *testing.T) {
	out, err := Timeformat(125)
	require.NoError(t, err)
	assert.Equal(t, "2.1 minutes", out)
}

func TestTimeformatRejectsNonNumeric(t *testing.T) {
	_, err := Timeformat("soon")
	require.Error(t, err)

	var ferr *errors.FilterError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "timeformat", ferr.Filter)
}

func TestTimeformatRelative(t *testing.T) {
	testCases := []struct {
		age      time.Duration
		expected string
	}{
		{30 * time.Second, "just now"},
		{90 * time.Second, "one minute ago"},
		{10 * time.Minute, "10 minutes ago"},
		{90 * time.Minute, "one hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{30 * time.Hour, "one day ago"},
		{96 * time.Hour, "4 days ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			ts := time.Now().Add(-tc.age)
			out, err := Timeformat(ts, "relative")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestTimeformatRelativeParsesRFC3339(t *testing.T) {
	ts := time.Now().Add(-10 * time.Minute).Format(time.RFC3339)
	out, err := Timeformat(ts, "relative")
	require.NoError(t, err)
	assert.Equal(t, "10 minutes ago", out)
}

func TestTimeformatRelativeRejectsGarbage(t *testing.T) {
	_, err := Timeformat("not a timestamp", "relative")
	var ferr *errors.FilterError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "timeformat", ferr.Filter)
}

func TestDedent(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed indents", "  line1\n    line2", "line1\nline2"},
		{"tabs", "\tfoo\n\t\tbar", "foo\nbar"},
		{"blank lines preserved", "  a\n\n  b", "a\n\nb"},
		{"no indent", "a\nb", "a\nb"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Dedent(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestDedentRejectsNonString(t *testing.T) {
	_, err := Dedent([]int{1, 2})
	var ferr *errors.FilterError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "dedent", ferr.Filter)
}

func TestDbgReturnsValueUnchanged(t *testing.T) {
	dbg := Dbg(logging.NewTestLogger())

	out, err := dbg(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, out)
}
