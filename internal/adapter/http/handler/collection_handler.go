package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	. "flashcardapp/internal/adapter/http/helper"
	. "flashcardapp/internal/adapter/http/validation"
	"flashcardapp/internal/core/model/request"
	"flashcardapp/internal/core/model/response"
	"flashcardapp/internal/core/port"
	"flashcardapp/internal/core/util"
	ct "flashcardapp/pkg/context"
	"flashcardapp/pkg/logger"
)

type CollectionHandler struct {
	collections port.CollectionService
	flashcards  port.FlashcardService
	logger      *logger.Logger
}

func NewCollectionHandler(collections port.CollectionService, flashcards port.FlashcardService, logger *logger.Logger) *CollectionHandler {
	return &CollectionHandler{
		collections: collections,
		flashcards:  flashcards,
		logger:      logger,
	}
}

func (h *CollectionHandler) GetAll(c *gin.Context) {
	rows, err := h.collections.GetAll(c.Request.Context())

	if err != nil {
		logFailure(c, h.logger, "list collections failed", err)
		SendDomainError(c, err)
		return
	}

	SendRows(c, "collections", response.NewCollections(rows))
}

func (h *CollectionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rows, err := h.collections.GetByID(c.Request.Context(), id)

	if err != nil {
		logFailure(c, h.logger, "get collection failed", err, zap.Int64("collection_id", id))
		SendDomainError(c, err)
		return
	}

	SendRows(c, "collections", response.NewCollections(rows))
}

func (h *CollectionHandler) Create(c *gin.Context) {
	params, ok := bind[request.CollectionRequest](c)
	if !ok {
		return
	}

	rows, err := h.collections.Create(c.Request.Context(), params.Name)

	if err != nil {
		logFailure(c, h.logger, "create collection failed", err)
		SendDomainError(c, err)
		return
	}

	SendRows(c, "createdCollection", response.NewCollections(rows))
}

func (h *CollectionHandler) Rename(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	params, ok := bind[request.CollectionRequest](c)
	if !ok {
		return
	}

	rows, err := h.collections.Rename(c.Request.Context(), id, params.Name)

	if err != nil {
		logFailure(c, h.logger, "rename collection failed", err, zap.Int64("collection_id", id))
		SendDomainError(c, err)
		return
	}

	// Existing clients read renames under the same key as deletes.
	SendRows(c, "deletedCollection", response.NewCollections(rows))
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rows, err := h.collections.DeleteByID(c.Request.Context(), id)

	if err != nil {
		logFailure(c, h.logger, "delete collection failed", err, zap.Int64("collection_id", id))
		SendDomainError(c, err)
		return
	}

	SendRows(c, "deletedCollection", response.NewCollections(rows))
}

// CreateFlashcard answers POST /collections/:id.
func (h *CollectionHandler) CreateFlashcard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	params, ok := bind[request.FlashcardRequest](c)
	if !ok {
		return
	}

	rows, err := h.flashcards.Create(c.Request.Context(), id, params.Question, params.Answer)

	if err != nil {
		logFailure(c, h.logger, "create flashcard failed", err, zap.Int64("collection_id", id))
		SendDomainError(c, err)
		return
	}

	SendRows(c, "createdFlashcard", response.NewFlashcards(rows))
}

func (h *CollectionHandler) GetFlashcards(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rows, err := h.flashcards.GetByCollection(c.Request.Context(), id)

	if err != nil {
		logFailure(c, h.logger, "list flashcards failed", err, zap.Int64("collection_id", id))
		SendDomainError(c, err)
		return
	}

	SendRows(c, "collection", response.NewFlashcards(rows))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := util.ParamID(c, "id")

	if err != nil {
		SendBadRequestError(c, "id", "id must be an integer")
		return 0, false
	}

	return id, true
}

func bind[T any](c *gin.Context) (T, bool) {
	params, err := util.ParamsToMap[T](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return params, false
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return params, false
	}

	return params, true
}

func logFailure(c *gin.Context, l *logger.Logger, msg string, err error, fields ...zap.Field) {
	ctx := c.Request.Context()

	fields = append(fields,
		zap.Error(err),
		zap.String("request_id", ct.RequestID(ctx)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
	)

	l.ErrorWithTrace(ctx, msg, fields...)
}
