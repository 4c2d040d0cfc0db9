package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/model"

	"github.com/labstack/echo/v4"
)

// JSONData wraps the payload in the {data: ...} envelope.
func JSONData(c echo.Context, status int, data any) error {
	return c.JSON(status, api.DataResponse{Data: data})
}

// JSONError is the single error-to-response mapping applied at the HTTP
// boundary. Every failure path ends here, so each request gets exactly one
// response: caller errors keep their message, everything else is reduced to a
// generic 500 and logged server-side.
func JSONError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
	default:
		log.Printf("request %s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
	}
}

// FormFileBytes reads the uploaded file from a multipart form. An absent file
// is not an error here; services decide whether the image is mandatory.
func FormFileBytes(c echo.Context, field string) (data []byte, filename, contentType string, err error) {
	fh, ferr := c.FormFile(field)
	if ferr != nil {
		return nil, "", "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer f.Close()

	buf := make([]byte, fh.Size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, "", "", err
	}
	return buf, fh.Filename, fh.Header.Get("Content-Type"), nil
}
