package response

import "flashcardapp/internal/core/domain"

const StatusSuccess = "success"

type CollectionResponse struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
}

type FlashcardResponse struct {
	ID         int64  `json:"id"`
	Collection int64  `json:"collection"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// RowsResponse is the envelope of every collection and flashcard route. Data
// holds a single key whose value is the list of affected rows.
type RowsResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type GreetingResponse struct {
	Msg string `json:"msg"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}

func NewCollections(rows []domain.Collection) []CollectionResponse {
	data := make([]CollectionResponse, 0, len(rows))

	for _, row := range rows {
		data = append(data, CollectionResponse{
			ID:      row.ID,
			OwnerID: row.OwnerID,
			Name:    row.Name,
		})
	}

	return data
}

func NewFlashcards(rows []domain.Flashcard) []FlashcardResponse {
	data := make([]FlashcardResponse, 0, len(rows))

	for _, row := range rows {
		data = append(data, FlashcardResponse{
			ID:         row.ID,
			Collection: row.Collection,
			Question:   row.Question,
			Answer:     row.Answer,
		})
	}

	return data
}
