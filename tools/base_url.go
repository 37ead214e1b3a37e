package tools

import "strings"

// FullURL joins baseURL and path with exactly one slash. Every trailing slash of baseURL is dropped.
func FullURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	if path == "" {
		return baseURL
	}
	return baseURL + "/" + strings.TrimLeft(path, "/")
}
