package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillpress/content-api/internal/core/ports"
)

type CommentHandler struct {
	service ports.ContentService
}

func NewCommentHandler(service ports.ContentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /api/articles/:id/comments.
//
// @Summary      Comment on an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Article ID"
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/articles/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	articleID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cm, err := h.service.CreateComment(c.Request().Context(), actorFrom(c), articleID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCommentResponse(cm))
}

// List handles GET /api/articles/:id/comments.
//
// @Summary      List the comments of an article
// @Tags         comments
// @Produce      json
// @Param        id   path      int  true  "Article ID"
// @Success      200  {array}   commentResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/articles/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	articleID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.service.ListArticleComments(c.Request().Context(), actorFrom(c), articleID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentList(comments))
}

// Edit handles PUT /api/comments/:id.
//
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Comment ID"
// @Param        body  body      commentRequest  true  "New text"
// @Success      200   {object}  commentResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/comments/{id} [put]
func (h *CommentHandler) Edit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cm, err := h.service.EditComment(c.Request().Context(), actorFrom(c), id, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(cm))
}

// Delete handles DELETE /api/comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id   path  int  true  "Comment ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteComment(c.Request().Context(), actorFrom(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
