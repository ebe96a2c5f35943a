package catalog_test

import (
	"testing"

	"github.com/strikelab/commandstrike/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommended(t *testing.T) {
	models := catalog.Recommended()
	require.NotEmpty(t, models)

	assert.Equal(t, "gemma3:12b", models[0].Name)

	seen := make(map[string]struct{}, len(models))
	for _, m := range models {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Description)
		assert.NotEmpty(t, m.Size)

		_, dup := seen[m.Name]
		assert.False(t, dup, "duplicate model %q", m.Name)
		seen[m.Name] = struct{}{}
	}
}
