package models

import "time"

// Site представляет зарегистрированный сайт (реплику).
// Ключ доступа хранится только в виде Argon2id хеша.
type Site struct {
	CreatedAt time.Time
	ID        string // 8 hex символов, совпадает с SiteID в операциях
	KeyHash   string // base64(argon2id(access_key, site_id, salt))
	KeySalt   string // base64 соль
}
