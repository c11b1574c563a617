package request

type RegisterRequest struct {
	Username string `json:"username,omitempty" validate:"required,max=100"`
	Password string `json:"password,omitempty" validate:"required,maxbytes=72"`
}

type LoginRequest struct {
	Username string `json:"username,omitempty" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
}

type CollectionRequest struct {
	Name string `json:"name,omitempty" validate:"required,max=255"`
}

type FlashcardRequest struct {
	Question string `json:"question,omitempty" validate:"required"`
	Answer   string `json:"answer,omitempty" validate:"required"`
}
