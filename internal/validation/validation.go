package validation

import (
	"fmt"
	"regexp"
)

// DocumentNamePattern определяет допустимый формат имени документа
// Латинские буквы (a-z, A-Z), цифры (0-9), точка, дефис и нижнее подчеркивание
// Длина: 1-64 символа
var DocumentNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,64}$`)

const (
	// MaxDocumentNameLen максимальная длина имени документа
	MaxDocumentNameLen = 64
	// MinAccessKeyLen минимальная длина ключа доступа
	MinAccessKeyLen = 12
)

// ValidateDocumentName проверяет, что имя документа соответствует требованиям.
// Имя используется как ключ BoltDB и как сегмент URL.
func ValidateDocumentName(name string) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty")
	}

	if len(name) > MaxDocumentNameLen {
		return fmt.Errorf("document name must not exceed %d characters", MaxDocumentNameLen)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("document name cannot be %q", name)
	}

	if !DocumentNamePattern.MatchString(name) {
		return fmt.Errorf("document name can only contain letters (a-z, A-Z), numbers (0-9), dots, dashes and underscores")
	}

	return nil
}

// ValidateAccessKey проверяет минимальные требования к ключу доступа сайта
// Минимум 12 символов
func ValidateAccessKey(key string) error {
	if key == "" {
		return fmt.Errorf("access key cannot be empty")
	}

	if len(key) < MinAccessKeyLen {
		return fmt.Errorf("access key must be at least %d characters long", MinAccessKeyLen)
	}

	return nil
}
