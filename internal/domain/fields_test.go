package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw       string
		wantState fieldState
		wantValue int
	}{
		{`5`, fieldSet, 5},
		{`-3`, fieldSet, -3},
		{`5.0`, fieldSet, 5},
		{`1e2`, fieldSet, 100},
		{`3.5`, fieldWrongType, 0},
		{`"5"`, fieldWrongType, 0},
		{`true`, fieldWrongType, 0},
		{`99999999999`, fieldWrongType, 0},
		{`null`, fieldNull, 0},
	}

	for _, tc := range tests {
		var f Int
		require.NoError(t, f.UnmarshalJSON([]byte(tc.raw)), tc.raw)
		assert.Equal(t, tc.wantState, f.state, tc.raw)
		assert.Equal(t, tc.wantValue, f.Value, tc.raw)
	}
}

func TestAbsentFieldsStayAbsent(t *testing.T) {
	t.Parallel()

	var in WorkoutInput
	require.NoError(t, json.Unmarshal([]byte(`{"unrelated": 1}`), &in))
	assert.Equal(t, fieldAbsent, in.Date.state)
	assert.Equal(t, fieldAbsent, in.DurationMinutes.state)
	assert.Equal(t, fieldAbsent, in.Notes.state)
}

func TestBoolAndStringFields(t *testing.T) {
	t.Parallel()

	var b Bool
	require.NoError(t, b.UnmarshalJSON([]byte(`false`)))
	assert.Equal(t, fieldSet, b.state)
	assert.False(t, b.Value)

	require.NoError(t, b.UnmarshalJSON([]byte(`1`)))
	assert.Equal(t, fieldWrongType, b.state)

	var s String
	require.NoError(t, s.UnmarshalJSON([]byte(`{"a":1}`)))
	assert.Equal(t, fieldWrongType, s.state)

	require.NoError(t, s.UnmarshalJSON([]byte(`"ok"`)))
	assert.Equal(t, StringOf("ok"), s)
}

func TestDateField(t *testing.T) {
	t.Parallel()

	var d DateField
	require.NoError(t, d.UnmarshalJSON([]byte(`"2024-01-01"`)))
	assert.Equal(t, DateFieldOf(NewDate(2024, time.January, 1)), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`"01/02/2024"`)))
	assert.Equal(t, fieldWrongType, d.state)
	assert.True(t, d.Value.IsZero())
}
