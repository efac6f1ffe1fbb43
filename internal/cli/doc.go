// Package cli реализует инструмент командной строки monday-proxy.
//
// # Обзор
//
// CLI — клиентская утилита для взаимодействия с прокси через HTTP API.
// Работает через HTTP, не импортирует внутренние пакеты сервера.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для API прокси. Инкапсулирует запросы, сборку multipart
// формы для загрузки файлов и разбор ошибок (ErrorResponse).
//
//	client := cli.NewClient("http://localhost:8080")
//	result, err := client.CreateItem("123", "Task A")
//
// ## Output
//
// Форматирование вывода. Прокси ретранслирует ответы monday.com как есть,
// поэтому вывод — JSON (с отступами или компактный, флаг --compact).
// Данные выводятся в stdout, сообщения — в stderr.
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - item: create
//   - subitem: create
//   - file: upload
//
// Каждая группа создаётся через фабричную функцию (NewItemCmd и т.д.),
// принимающую clientFn и outputFn — замыкания для ленивого создания
// Client и Output после парсинга PersistentFlags.
package cli
