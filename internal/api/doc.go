// Package api содержит HTTP API прокси.
//
// Структура:
//   - handler.go        — Handler с DI (monday client, temp store, logger)
//   - routes.go         — регистрация маршрутов
//   - middleware.go     — middleware (recovery, logging, metrics, CORS)
//   - response.go       — унифицированные JSON-ответы и ретрансляция upstream тел
//   - dto.go            — Data Transfer Objects (request)
//   - item_handler.go   — /create-item, /create-subitem, /health
//   - upload_handler.go — /upload
//
// Каждый обработчик валидирует входные поля до любого I/O: при отсутствии
// обязательного поля клиент получает 400 и upstream вызов не выполняется.
package api
