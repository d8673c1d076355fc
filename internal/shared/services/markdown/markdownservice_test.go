package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTML(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTML("# Heading\n\nsome **bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Heading</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestService_ToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("hello <script>alert('xss')</script> world")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "hello")
}

func TestService_ToHTMLSanitized_StripsEventHandlers(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)
	require.NoError(t, err)
	assert.NotContains(t, out, "onerror")
}

func TestService_Sanitize_KeepsSafeMarkup(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p>fine</p><a href="https://example.com">link</a>`)
	assert.Contains(t, out, "<p>fine</p>")
	assert.Contains(t, out, "example.com")
}
