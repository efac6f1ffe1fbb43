// Package monday содержит клиент monday.com GraphQL API.
//
// Структура:
//   - client.go    — Client: один исходящий POST на операцию (/v2, /v2/file)
//   - multipart.go — сборка multipart тела для загрузки файла
//   - errors.go    — sentinel-ошибки upstream вызовов
//
// Тело ответа upstream накапливается целиком и валидируется как JSON.
// Валидный JSON возвращается вызывающему как есть, включая GraphQL ошибки,
// которые monday.com сообщает внутри ответа со статусом 200.
package monday
