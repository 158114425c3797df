package entities

// Email - адрес электронной почты контакта.
// Формат не проверяется, строка сохраняется как есть.
type Email string

// NewEmail оборачивает строку в Email.
func NewEmail(value string) Email {
	return Email(value)
}

// String возвращает адрес как обычную строку.
func (e Email) String() string {
	return string(e)
}
