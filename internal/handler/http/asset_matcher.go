package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-crm-front/internal/config"
)

// AssetMatcher decides whether an unresolved request was meant for a
// static asset, in which case it is answered with 404 instead of a redirect.
type AssetMatcher interface {
	IsAsset(r *http.Request) bool
}

// NewAssetMatcher returns the matcher for one of the config.AssetMatch*
// modes. Unknown modes fall back to substring matching.
func NewAssetMatcher(mode string) AssetMatcher {
	if mode == config.AssetMatchExtension {
		return extensionAssetMatcher{}
	}
	return substringAssetMatcher{}
}

// substringAssetMatcher treats any request URI containing "js" or "css"
// as an asset request. It also matches unrelated names such as "jsonx".
type substringAssetMatcher struct{}

func (substringAssetMatcher) IsAsset(r *http.Request) bool {
	uri := requestURI(r)
	return strings.Contains(uri, "js") || strings.Contains(uri, "css")
}

// extensionAssetMatcher matches paths ending in .js or .css.
type extensionAssetMatcher struct{}

func (extensionAssetMatcher) IsAsset(r *http.Request) bool {
	switch strings.ToLower(path.Ext(r.URL.Path)) {
	case ".js", ".css":
		return true
	}
	return false
}

func requestURI(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
