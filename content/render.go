package content

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy

	markdownOnce   sync.Once
	markdownEngine goldmark.Markdown
)

// SanitizeRichText scrubs stored rich text before display. Posts are edited
// by trusted admins, but the content round-trips through a remote backend,
// so script-capable markup is stripped regardless of origin.
func SanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").OnElements("p", "h2", "h3", "ul", "ol", "li", "blockquote")
		richTextPolicy = policy
	})
	return richTextPolicy
}

// RenderMarkdown converts markdown-authored post bodies into sanitized HTML.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer().Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return SanitizeRichText(buf.String()), nil
}

func markdownRenderer() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownEngine = goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		)
	})
	return markdownEngine
}
