package utils

import "strings"

// WatchURL converts an embeddable player URL into its watch-page form.
// Ex: https://www.youtube.com/embed/ID -> https://www.youtube.com/watch?v=ID
// Returns the input unchanged when it is not an embed URL.
func WatchURL(embedURL string) string {
	if embedURL == "" {
		return ""
	}
	return strings.Replace(embedURL, "embed/", "watch?v=", 1)
}
