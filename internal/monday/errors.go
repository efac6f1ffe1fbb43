package monday

import "errors"

// Ошибки upstream вызовов.
var (
	// ErrBadResponse — upstream вернул тело, которое не парсится как JSON.
	ErrBadResponse = errors.New("malformed upstream response")

	// ErrTransport — HTTP запрос к upstream не удался (connect/reset/timeout).
	ErrTransport = errors.New("upstream request failed")
)
