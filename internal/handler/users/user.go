package users

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/storage"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
)

const imageField = "userImage"

var (
	listUsers       = service.ListUsers
	getUser         = service.GetUser
	createUser      = service.CreateUser
	updateUser      = service.UpdateUser
	updateUserImage = service.UpdateUserImage
	deleteUser      = service.DeleteUser
)

func userID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user ID: %w", model.ErrInvalidInput)
	}
	return id, nil
}

// @Summary     List all users
// @Tags        users
// @Produce     json
// @Success     200 {object} api.DataResponse{data=[]api.UserResponse}
// @Failure     500 {object} api.ErrorResponse
// @Router      /user [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, api.NewUserListResponse(users))
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} api.DataResponse{data=api.UserResponse}
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userID(c)
		if err != nil {
			return handler.JSONError(c, err)
		}
		u, err := getUser(c.Request().Context(), db, id)
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, api.NewUserResponse(u))
	}
}

// @Summary     Create a user
// @Description Persists the row with a reserved image key; no blob is written until the image is attached later
// @Tags        users
// @Accept      multipart/form-data
// @Produce     json
// @Param       name formData string false "User name"
// @Param       email formData string false "Email, stored lower-cased"
// @Param       userImage formData file false "Ignored at creation; attach via /user/updateuserimage/{id}"
// @Success     201 {object} api.DataResponse{data=api.UserResponse}
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UserRequest
		if err := c.Bind(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("invalid form data: %w", model.ErrInvalidInput))
		}
		if err := c.Validate(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("%v: %w", err, model.ErrInvalidInput))
		}

		u, err := createUser(c.Request().Context(), db, service.UserInput{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusCreated, api.NewUserResponse(u))
	}
}

// @Summary     Update a user
// @Description Rewrites profile fields only; image fields and the blob are untouched
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path int true "User ID"
// @Param       body body api.UserRequest true "Profile fields"
// @Success     200 {object} api.DataResponse{data=api.UserResponse}
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userID(c)
		if err != nil {
			return handler.JSONError(c, err)
		}
		var req api.UserRequest
		if err := c.Bind(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("invalid request body: %w", model.ErrInvalidInput))
		}
		if err := c.Validate(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("%v: %w", err, model.ErrInvalidInput))
		}

		u, err := updateUser(c.Request().Context(), db, id, service.UserInput{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, api.NewUserResponse(u))
	}
}

// @Summary     Attach or replace a user's image
// @Description Re-keys the image to the uploaded filename, updates the row and mirrors the resized blob
// @Tags        users
// @Accept      multipart/form-data
// @Produce     json
// @Param       id path int true "User ID"
// @Param       userImage formData file true "User image"
// @Success     200 {object} api.DataResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/updateuserimage/{id} [put]
func UpdateUserImageHandler(db database.DB, st storage.Storage, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userID(c)
		if err != nil {
			return handler.JSONError(c, err)
		}
		image, filename, contentType, err := handler.FormFileBytes(c, imageField)
		if err != nil {
			return handler.JSONError(c, err)
		}

		if _, err := updateUserImage(c.Request().Context(), db, st, wp, id, image, filename, contentType); err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, struct{}{})
	}
}

// @Summary     Delete a user
// @Description Deletes the row, then removes the blob best-effort
// @Tags        users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} api.DataResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user/{id} [delete]
func DeleteUserHandler(db database.DB, st storage.Storage, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := userID(c)
		if err != nil {
			return handler.JSONError(c, err)
		}
		if err := deleteUser(c.Request().Context(), db, st, wp, id); err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, struct{}{})
	}
}
