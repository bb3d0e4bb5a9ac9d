package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		Name  Optional[string] `json:"name"`
		Count Optional[int]    `json:"count"`
	}

	tests := []struct {
		name string
		body string
		want payload
	}{
		{
			name: "absent fields stay unset",
			body: `{}`,
			want: payload{},
		},
		{
			name: "null marks set but invalid",
			body: `{"name": null}`,
			want: payload{Name: Null[string]()},
		},
		{
			name: "value marks set and valid",
			body: `{"name": "Lisbon", "count": 3}`,
			want: payload{Name: Some("Lisbon"), Count: Some(3)},
		},
		{
			name: "zero value is still a value",
			body: `{"count": 0}`,
			want: payload{Count: Some(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalApply(t *testing.T) {
	t.Run("unset leaves destination alone", func(t *testing.T) {
		dst := "keep"
		Optional[string]{}.Apply(&dst)
		assert.Equal(t, "keep", dst)
	})

	t.Run("null writes zero value", func(t *testing.T) {
		dst := "old"
		Null[string]().Apply(&dst)
		assert.Equal(t, "", dst)
	})

	t.Run("value overwrites", func(t *testing.T) {
		dst := "old"
		Some("new").Apply(&dst)
		assert.Equal(t, "new", dst)
	})
}

func TestOptionalApplyPtr(t *testing.T) {
	existing := "old"

	t.Run("unset leaves pointer alone", func(t *testing.T) {
		dst := &existing
		Optional[string]{}.ApplyPtr(&dst)
		require.NotNil(t, dst)
		assert.Equal(t, "old", *dst)
	})

	t.Run("null clears pointer", func(t *testing.T) {
		dst := &existing
		Null[string]().ApplyPtr(&dst)
		assert.Nil(t, dst)
	})

	t.Run("value sets fresh pointer", func(t *testing.T) {
		var dst *string
		Some("new").ApplyPtr(&dst)
		require.NotNil(t, dst)
		assert.Equal(t, "new", *dst)
	})
}

func TestOptionalPtr(t *testing.T) {
	assert.Nil(t, Optional[int]{}.Ptr())
	assert.Nil(t, Null[int]().Ptr())

	p := Some(42).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 42, *p)
}

func TestPatchRoundTrip(t *testing.T) {
	var patch FlightDetailsPatch
	body := `{"airline": "TAP", "flight_number": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	assert.True(t, patch.HasChanges())

	old := "TP123"
	details := FlightDetails{FlightNumber: &old}
	patch.Apply(&details)

	require.NotNil(t, details.Airline)
	assert.Equal(t, "TAP", *details.Airline)
	assert.Nil(t, details.FlightNumber)
}
