package corpus

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthdata-io/synth-engine/pkg/apperrors"
)

func TestParse(t *testing.T) {
	records, err := Parse([]byte(`[{"firstName": "Anna"}, {"firstName": "Berta"}]`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Anna", records[0].StringValue("firstName"))
}

func TestParse_UnwrapsNestedArray(t *testing.T) {
	records, err := Parse([]byte(`[[{"firstName": "Anna"}, {"firstName": "Berta"}]]`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Berta", records[1].StringValue("firstName"))
}

func TestParse_NormalizesLineBreaks(t *testing.T) {
	records, err := Parse([]byte("[{\"description\": \"line one\nline two\"}]"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "line one line two", records[0].StringValue("description"))
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "not json at all"},
		{"object not array", `{"firstName": "Anna"}`},
		{"empty array", `[]`},
		{"scalar elements", `[1, 2, 3]`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.True(t, errors.Is(err, apperrors.ErrMalformedCorpus), "error = %v", err)
		})
	}
}

func TestPoolAttributes(t *testing.T) {
	pool, err := Parse([]byte(`[{"b": "1", "a": "2"}, {"c": "3"}]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, Pool(pool).Attributes())
}

func TestPoolValues(t *testing.T) {
	pool, err := Parse([]byte(`[{"name": "Anna"}, {"other": "x"}, {"name": "Berta"}]`))
	require.NoError(t, err)

	values := Pool(pool).Values("name")
	assert.Equal(t, []string{"Anna", "Berta"}, values)
	assert.Empty(t, Pool(pool).Values("absent"))
}

func TestPoolSample(t *testing.T) {
	pool, err := Parse([]byte(`[{"name": "Anna"}, {"name": "Berta"}]`))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		rec := Pool(pool).Sample(rng)
		name := rec.StringValue("name")
		assert.Contains(t, []string{"Anna", "Berta"}, name)
	}
}
