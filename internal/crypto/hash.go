package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidAccessKey возвращается, если ключ доступа не совпадает с сохраненным хешем
var ErrInvalidAccessKey = errors.New("invalid access key")

// HashAccessKey генерирует соль и хеширует ключ доступа.
// Возвращает хеш и соль в Base64 для хранения на сервере.
func HashAccessKey(accessKey, siteID string, params Params) (hashBase64, saltBase64 string, err error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", "", err
	}

	hash, err := DeriveAccessKeyHash(accessKey, siteID, salt, params)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(hash), base64.StdEncoding.EncodeToString(salt), nil
}

// VerifyAccessKey проверяет ключ доступа по сохраненным хешу и соли
func VerifyAccessKey(accessKey, siteID, hashBase64, saltBase64 string, params Params) error {
	if hashBase64 == "" {
		return fmt.Errorf("hashed access key cannot be empty")
	}

	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return fmt.Errorf("failed to decode salt: %w", err)
	}
	expected, err := base64.StdEncoding.DecodeString(hashBase64)
	if err != nil {
		return fmt.Errorf("failed to decode hash: %w", err)
	}

	computed, err := DeriveAccessKeyHash(accessKey, siteID, salt, params)
	if err != nil {
		return err
	}

	// Сравнение за постоянное время
	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrInvalidAccessKey
	}

	return nil
}
