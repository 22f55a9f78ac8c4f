package paragraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrdersNumerically(t *testing.T) {
	s, err := Parse([]byte(`{"10": "ten", "2": "two", "0": "zero", "1": "one"}`))
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"zero", "one", "two", "ten"}, s.Texts())
}

func TestParseNullValue(t *testing.T) {
	s, err := Parse([]byte(`{"0": null, "1": "text"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"", "text"}, s.Texts())
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "alpha key", input: `{"a": "x"}`, want: ErrInvalidKey},
		{name: "negative key", input: `{"-1": "x"}`, want: ErrInvalidKey},
		{name: "fractional key", input: `{"1.5": "x"}`, want: ErrInvalidKey},
		{name: "empty key", input: `{"": "x"}`, want: ErrInvalidKey},
		{name: "padded duplicate", input: `{"1": "x", "01": "y"}`, want: ErrDuplicateKey},
		{name: "repeated key", input: `{"0": "a", "1": "b", "0": "c"}`, want: ErrDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseNonStringValue(t *testing.T) {
	_, err := Parse([]byte(`{"0": 12}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`["a", "b"]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"0": "a"} {"1": "b"}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"0": "a"`))
	assert.Error(t, err)
}

func TestParseNullAndEmptyObject(t *testing.T) {
	s, err := Parse([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	s, err = Parse([]byte(` {} `))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestFromMapAndSlice(t *testing.T) {
	s, err := FromMap(map[string]string{"3": "c", "1": "a", "2": "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s.Texts())

	entries := FromSlice([]string{"x", "y"}).Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[1].Key)
	assert.Equal(t, uint64(1), entries[1].Index)
}

func TestZeroValueSet(t *testing.T) {
	var s Set
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Texts())

	require.NoError(t, s.Add("0", "first"))
	assert.Equal(t, []string{"first"}, s.Texts())
}
