package domain

type Flashcard struct {
	ID         int64
	Collection int64
	Question   string
	Answer     string
}
