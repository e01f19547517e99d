package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FallbackTalkSlug подставляется, когда из заголовка не осталось ни одного
// допустимого символа.
const FallbackTalkSlug = "wisdom-talk"

var (
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	// Допустимы арабские буквы, латиница, цифры и дефис.
	slugDisallowed = regexp.MustCompile(`[^\x{0600}-\x{06FF}a-zA-Z0-9-]`)
)

// MakeSlug строит slug из заголовка: пробелы и подчёркивания схлопываются в
// дефис, всё вне допустимого набора вырезается. Уникальность не проверяется —
// коллизии для обсуждений допустимы.
func MakeSlug(input string) string {
	s := strings.TrimSpace(input)
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	if s == "" {
		return FallbackTalkSlug
	}
	return s
}

// ArticleSlug — slug статьи с миллисекундным суффиксом, практически уникален.
func ArticleSlug(title string, now time.Time) string {
	return fmt.Sprintf("%s-%d", MakeSlug(title), now.UnixMilli())
}
