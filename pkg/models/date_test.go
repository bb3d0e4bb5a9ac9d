package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want Date
	}{
		{
			name: "driver time value",
			src:  time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC),
			want: "2025-12-08",
		},
		{
			name: "plain date string",
			src:  "2025-12-08",
			want: "2025-12-08",
		},
		{
			name: "date string with time suffix",
			src:  "2025-12-08T00:00:00Z",
			want: "2025-12-08",
		},
		{
			name: "byte slice",
			src:  []byte("2025-12-08"),
			want: "2025-12-08",
		},
		{
			name: "null",
			src:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDateScanUnsupported(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := Date("2025-12-08").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-08", v)

	v, err = Date("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
