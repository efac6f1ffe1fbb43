package api

// CreateItemRequest — запрос на создание item.
//
// boardId приходит от фронтенда то строкой, то числом, поэтому поле
// декодируется как any и передаётся upstream без преобразования:
// GraphQL ID! принимает обе формы.
type CreateItemRequest struct {
	BoardID  any    `json:"boardId"`
	ItemName string `json:"itemName"`
}

// CreateSubitemRequest — запрос на создание subitem.
type CreateSubitemRequest struct {
	ParentItemID any    `json:"parentItemId"`
	ItemName     string `json:"itemName"`
}

// present сообщает, задано ли значение поля: nil и пустая строка
// считаются отсутствующими.
func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}
