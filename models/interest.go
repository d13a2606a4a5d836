package models

// Interest is an entry of the global interest catalogue.
type Interest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultInterests is the catalogue installed by the seeder.
var DefaultInterests = []string{
	"Спорт",
	"Музыка",
	"Путешествия",
	"Кино",
	"Книги",
	"Игры",
	"Искусство",
	"Технологии",
	"Кулинария",
	"Фотография",
}
