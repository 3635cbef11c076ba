package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// SaltSize размер соли ключа доступа в байтах
const SaltSize = 32

// Params параметры Argon2id
type Params struct {
	Time    uint32 // число проходов
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultParams параметры сервера по умолчанию: 1 проход, 64 MiB, 4 потока
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

// Validate отклоняет параметры, с которыми argon2 паникует или хеш бесполезно короткий
func (p Params) Validate() error {
	switch {
	case p.Time == 0:
		return errors.New("argon2: time must be positive")
	case p.Threads == 0:
		return errors.New("argon2: threads must be positive")
	case p.Memory < 8*uint32(p.Threads):
		return fmt.Errorf("argon2: memory must be at least %d KiB for %d threads", 8*uint32(p.Threads), p.Threads)
	case p.KeyLen < 16:
		return fmt.Errorf("argon2: key length %d is too short", p.KeyLen)
	}
	return nil
}

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveAccessKeyHash вычисляет Argon2id хеш ключа доступа сайта.
// Хеш привязан к site id: одинаковые ключи разных сайтов дают разные хеши.
func DeriveAccessKeyHash(accessKey, siteID string, salt []byte, params Params) ([]byte, error) {
	if accessKey == "" {
		return nil, errors.New("access key cannot be empty")
	}
	if siteID == "" {
		return nil, errors.New("site id cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Разделитель исключает совпадение пар ("ab", "c") и ("a", "bc")
	input := make([]byte, 0, len(siteID)+1+len(accessKey))
	input = append(input, siteID...)
	input = append(input, 0)
	input = append(input, accessKey...)

	return argon2.IDKey(input, salt, params.Time, params.Memory, params.Threads, params.KeyLen), nil
}
