package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const youtubeIDLength = 11

// Основной паттерн покрывает watch?v=, youtu.be/, embed/, v/ и т.п.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

var queryDelimiters = regexp.MustCompile(`[?&]`)

// ExtractYouTubeID достаёт идентификатор ролика из URL. Если основной паттерн
// не сработал, запасной путь — разобрать строку запроса и поискать параметр v=
// ожидаемой длины. Пустой результат означает невалидный URL.
func ExtractYouTubeID(rawURL string) string {
	url := strings.TrimSpace(rawURL)

	if m := youtubeIDPattern.FindStringSubmatch(url); len(m) == 2 {
		return m[1]
	}

	for _, part := range queryDelimiters.Split(url, -1) {
		if !strings.HasPrefix(part, "v=") {
			continue
		}
		id := strings.SplitN(strings.TrimPrefix(part, "v="), "&", 2)[0]
		if len(id) == youtubeIDLength {
			return id
		}
	}

	return ""
}

// ThumbnailURL — детерминированная обложка по идентификатору ролика.
func ThumbnailURL(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", youtubeID)
}
