package middleware

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// Embeds and video sections load third-party players over https, and
// countdown and accordion sections ship inline scripts.
var defaultPolicy = map[string][]string{
	"default-src":     {"'self'"},
	"script-src":      {"'self'", "'unsafe-inline'"},
	"style-src":       {"'self'", "'unsafe-inline'"},
	"img-src":         {"'self'", "data:", "https:"},
	"media-src":       {"'self'", "data:", "blob:"},
	"frame-src":       {"'self'", "https://www.youtube-nocookie.com", "https://player.vimeo.com"},
	"object-src":      {"'none'"},
	"base-uri":        {"'self'"},
	"frame-ancestors": {"'none'"},
}

// buildContentSecurityPolicy merges extra frame and media sources into the default policy.
func buildContentSecurityPolicy(frameSources, mediaSources []string) string {
	directives := make(map[string][]string, len(defaultPolicy))
	for name, values := range defaultPolicy {
		directives[name] = append([]string(nil), values...)
	}
	directives["frame-src"] = appendUnique(directives["frame-src"], frameSources...)
	directives["media-src"] = appendUnique(directives["media-src"], mediaSources...)

	names := make([]string, 0, len(directives))
	for name := range directives {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+strings.Join(directives[name], " "))
	}
	return strings.Join(parts, "; ")
}

func appendUnique(values []string, extra ...string) []string {
	for _, candidate := range extra {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		found := false
		for _, existing := range values {
			if existing == candidate {
				found = true
				break
			}
		}
		if !found {
			values = append(values, candidate)
		}
	}
	return values
}

func SecurityHeadersMiddleware(frameSources, mediaSources []string) gin.HandlerFunc {
	policy := buildContentSecurityPolicy(frameSources, mediaSources)
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-DNS-Prefetch-Control", "off")
		c.Header("Cross-Origin-Opener-Policy", "same-origin")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Header("Content-Security-Policy", policy)
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Next()
	}
}
