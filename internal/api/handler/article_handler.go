package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillpress/content-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for articles and their comments.
type ArticleHandler struct {
	service ports.ContentService
}

func NewArticleHandler(service ports.ContentService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /api/articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article"
// @Success      201   {object}  articleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.service.CreateArticle(c.Request().Context(), actorFrom(c), ports.CreateArticleInput{
		Title:   req.Title,
		Body:    req.Body,
		Publish: req.Publish,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toArticleResponse(a))
}

// Get handles GET /api/articles/:id. Drafts are only visible to their author.
//
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "Article ID"
// @Success      200  {object}  articleResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.service.GetArticle(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(a))
}

// List handles GET /api/articles: the live, published feed.
//
// @Summary      List published articles
// @Tags         articles
// @Produce      json
// @Success      200  {array}  articleResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.ListArticles(c.Request().Context(), actorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleList(articles))
}

// Edit handles PUT /api/articles/:id.
//
// @Summary      Edit an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Article ID"
// @Param        body  body      editArticleRequest  true  "New title and body"
// @Success      200   {object}  articleResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/articles/{id} [put]
func (h *ArticleHandler) Edit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req editArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.service.EditArticle(c.Request().Context(), actorFrom(c), id, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(a))
}

// Delete handles DELETE /api/articles/:id.
//
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Param        id   path  int  true  "Article ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteArticle(c.Request().Context(), actorFrom(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Publish handles POST /api/articles/:id/publish.
//
// @Summary      Publish an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Article ID"
// @Success      200  {object}  articleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/articles/{id}/publish [post]
func (h *ArticleHandler) Publish(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.service.PublishArticle(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(a))
}
