package skill

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"AI/ML & GenAI", "ai_ml_genai"},
		{"Backend & Cloud", "backend_cloud"},
		{"Specialties", "specialties"},
		{"Data Engineering", "data_engineering"},
		{"  --Leading & Trailing--  ", "leading_trailing"},
		{"C++ / C#", "c_c"},
		{"", ""},
	}
	for _, tc := range cases {
		got := CategoryKey(tc.in)
		assert.Equal(t, tc.want, got, "key for %q", tc.in)
		assert.Equal(t, got, CategoryKey(got), "deriving twice must be stable for %q", tc.in)
	}
}

func TestCatalog_PreservesOrderAndEmptyLists(t *testing.T) {
	c := NewCatalog()
	c.Set("backend_cloud", []string{"Go", "AWS"})
	c.Set("leadership", nil)
	c.Set("ai_ml_genai", []string{"LangChain"})

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"backend_cloud":["Go","AWS"],"leadership":[],"ai_ml_genai":["LangChain"]}`, string(raw))
	assert.Equal(t, []string{"backend_cloud", "leadership", "ai_ml_genai"}, c.Keys())
}

func TestCatalog_ResetKeepsPosition(t *testing.T) {
	c := NewCatalog()
	c.Set("a", []string{"1"})
	c.Set("b", []string{"2"})
	c.Set("a", []string{"3"})

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"3"}, got)
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_EmptyMarshalsAsObject(t *testing.T) {
	raw, err := json.Marshal(NewCatalog())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}
