package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Flag
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"true"`, true},
		{`null`, false},
	}

	for _, tt := range tests {
		var req CreateEventRequest
		err := json.Unmarshal([]byte(`{"refreshment":`+tt.in+`}`), &req)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, req.Refreshment, tt.in)
	}

	var req CreateEventRequest
	assert.Error(t, json.Unmarshal([]byte(`{"refreshment":"maybe"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"refreshment":2}`), &req))
}

func TestParseWindow(t *testing.T) {
	for raw, want := range map[string]Window{"0": WindowPast, "1": WindowToday, "2": WindowFuture} {
		got, ok := ParseWindow(raw)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "3", "-1", "today", "1.0"} {
		_, ok := ParseWindow(raw)
		assert.False(t, ok, raw)
	}
}
