package md

import "strings"

// Defaults for the image source rewrite. Spotlight pages reference images
// through a site template expression that only resolves on the website.
const (
	DefaultImagePrefix  = "{{ site.directory.images | relative_url}}"
	DefaultImageBaseURL = "https://hifis.net/assets/img/"
)

// SourceRewriter replaces a templated path prefix with an absolute base URL.
type SourceRewriter struct {
	Prefix  string
	BaseURL string
}

// DefaultSourceRewriter returns a rewriter for the website's image template.
func DefaultSourceRewriter() SourceRewriter {
	return SourceRewriter{Prefix: DefaultImagePrefix, BaseURL: DefaultImageBaseURL}
}

// Rewrite returns src with the prefix replaced by the base URL. Base and
// remainder are joined with exactly one slash. Sources that do not start
// with the prefix are returned unchanged.
func (r SourceRewriter) Rewrite(src string) string {
	if r.Prefix == "" || !strings.HasPrefix(src, r.Prefix) {
		return src
	}
	rest := strings.TrimPrefix(src[len(r.Prefix):], "/")
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + rest
}
