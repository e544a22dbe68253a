package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{}, SplitList("   "))
	assert.Equal(t, []string{"rouge"}, SplitList("rouge"))
	assert.Equal(t, []string{"rouge", "bleu", "vert"}, SplitList(" rouge, bleu ,vert "))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("hood", "Black HOODIE"))
	assert.True(t, Matches("ana", "Diaz", "ana@example.com"))
	assert.False(t, Matches("tee", "Hoodie", "Sweat"))
}

func TestAmount_Unmarshal(t *testing.T) {
	var p struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12.5, "b": "", "c": null}`), &p))

	assert.True(t, p.A.Valid)
	assert.Equal(t, "12.5", p.A.String())
	assert.False(t, p.B.Valid)
	assert.False(t, p.C.Valid)
	assert.Empty(t, p.C.String())
}
