package entities

// User аутентифицированный пользователь, данные берутся из токена
type User struct {
	ID    string
	Email string
}
