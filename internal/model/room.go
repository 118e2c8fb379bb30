package model

// roomCategories maps the public room-category tokens to their fixed
// internal ids. The ids match the seeded room_categories rows.
var roomCategories = map[string]int64{
	"standard": 1,
	"suite":    2,
	"premium":  3,
}

// RoomCategoryID resolves a public category token to its internal id.
func RoomCategoryID(token string) (int64, bool) {
	id, ok := roomCategories[token]
	return id, ok
}

// securityQuestions maps a stored question code to its display text.
var securityQuestions = map[string]string{
	"pet":    "What is the name of your first pet?",
	"mother": "What is your mother's maiden name?",
	"city":   "In what city were you born?",
}

// SecurityQuestionText resolves a question code to its display text.
func SecurityQuestionText(code string) (string, bool) {
	text, ok := securityQuestions[code]
	return text, ok
}

// ValidSecurityQuestion reports whether the code is a known question.
func ValidSecurityQuestion(code string) bool {
	_, ok := securityQuestions[code]
	return ok
}
