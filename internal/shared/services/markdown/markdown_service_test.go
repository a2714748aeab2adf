package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSanitized_BasicMarkdown(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderSanitized("# Install\n\nRun the **installer**.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Install")
	assert.Contains(t, out, "<strong>installer</strong>")
}

func TestRenderSanitized_StripsScripts(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderSanitized("hello <script>alert(1)</script> world")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}
