package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	html, err := Render(TemplateWelcome, PreviewData[TemplateWelcome])
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome aboard, walker!")
}

func TestRenderEscapesData(t *testing.T) {
	html, err := Render(TemplateWelcome, map[string]string{"Username": "<script>"})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}
