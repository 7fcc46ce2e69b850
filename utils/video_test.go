package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.youtube.com/watch?v=Ptbk2af68e8",
		WatchURL("https://www.youtube.com/embed/Ptbk2af68e8"))
}

func TestWatchURLEmpty(t *testing.T) {
	assert.Equal(t, "", WatchURL(""))
}

func TestWatchURLNonEmbed(t *testing.T) {
	url := "https://www.youtube.com/watch?v=Ptbk2af68e8"
	assert.Equal(t, url, WatchURL(url))
}
