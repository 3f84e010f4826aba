package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillpress/content-api/internal/core/ports"
)

type UserHandler struct {
	service ports.ContentService
}

func NewUserHandler(service ports.ContentService) *UserHandler {
	return &UserHandler{service: service}
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	u, err := h.service.GetUser(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Articles handles GET /api/users/:id/articles. Drafts are listed only for
// the user themselves.
//
// @Summary      List a user's articles
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   articleResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id}/articles [get]
func (h *UserHandler) Articles(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	articles, err := h.service.ListUserArticles(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleList(articles))
}

// Edit handles PUT /api/users/:id. Only the account holder may edit it.
//
// @Summary      Edit a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "User ID"
// @Param        body  body      editUserRequest  true  "Editable fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Edit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req editUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.service.EditUser(c.Request().Context(), actorFrom(c), id, req.FirstName, req.LastName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /api/users/:id. Allowed for the account holder or an ADMIN.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  int  true  "User ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteUser(c.Request().Context(), actorFrom(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
