package api

// RegisterRequest представляет запрос на регистрацию нового сайта (реплики)
type RegisterRequest struct {
	SiteID    string `json:"site_id"`    // идентификатор сайта (8 hex символов)
	AccessKey string `json:"access_key"` // ключ доступа, на сервере хранится только Argon2id хеш
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	SiteID  string `json:"site_id"` // зарегистрированный сайт
	Message string `json:"message"` // сообщение об успешной регистрации
}

// TokenRequest представляет запрос на получение access token
type TokenRequest struct {
	SiteID    string `json:"site_id"`    // идентификатор сайта
	AccessKey string `json:"access_key"` // ключ доступа
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
