package products

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

const imageField = "productImage"

var (
	listProducts  = service.ListProducts
	getProduct    = service.GetProduct
	createProduct = service.CreateProduct
	updateProduct = service.UpdateProduct
	deleteProduct = service.DeleteProduct
)

func productID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product ID: %w", model.ErrInvalidInput)
	}
	return id, nil
}

// @Summary     List all products
// @Tags        products
// @Produce     json
// @Success     200 {object} api.DataResponse{data=[]api.ProductResponse}
// @Failure     500 {object} api.ErrorResponse
// @Router      /product [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProducts(c.Request().Context(), db)
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, api.NewProductListResponse(products))
	}
}

// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} api.DataResponse{data=api.ProductResponse}
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := productID(c)
		if err != nil {
			return handler.JSONError(c, err)
		}
		p, err := getProduct(c.Request().Context(), db, id)
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, api.NewProductResponse(p))
	}
}

// @Summary     Create a product
// @Description Resizes the mandatory image, mirrors it to the blob store and persists the row
// @Tags        products
// @Accept      multipart/form-data
// @Produce     json
// @Param       name formData string false "Product name"
// @Param       description formData string false "Product description"
// @Param       price formData string true "Price (numeric)"
// @Param       rating formData string true "Rating (numeric)"
// @Param       productImage formData file true "Product image"
// @Success     201 {object} api.DataResponse{data=api.ProductResponse}
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product [post]
func CreateProductHandler(db database.DB, st storage.Storage, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("invalid form data: %w", model.ErrInvalidInput))
		}
		if err := c.Validate(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("%v: %w", err, model.ErrInvalidInput))
		}
		image, _, contentType, err := handler.FormFileBytes(c, imageField)
		if err != nil {
			return handler.JSONError(c, err)
		}

		p, err := createProduct(c.Request().Context(), db, st, wp, service.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Rating:      req.Rating,
		}, image, contentType)
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusCreated, api.NewProductResponse(p))
	}
}

// @Summary     Update a product
// @Description Rewrites row fields; when a new image is uploaded it replaces the blob under the existing key
// @Tags        products
// @Accept      multipart/form-data
// @Produce     json
// @Param       id path int true "Product ID"
// @Param       name formData string false "Product name"
// @Param       description formData string false "Product description"
// @Param       price formData string true "Price (numeric)"
// @Param       rating formData string true "Rating (numeric)"
// @Param       productImage formData file false "Replacement image"
// @Success     200 {object} api.DataResponse{data=api.ProductResponse}
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/{id} [put]
func UpdateProductHandler(db database.DB, st storage.Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := productID(c)
		if err != nil {
			return handler.JSONError(c, err)
		}
		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("invalid form data: %w", model.ErrInvalidInput))
		}
		if err := c.Validate(&req); err != nil {
			return handler.JSONError(c, fmt.Errorf("%v: %w", err, model.ErrInvalidInput))
		}
		image, _, contentType, err := handler.FormFileBytes(c, imageField)
		if err != nil {
			return handler.JSONError(c, err)
		}

		p, err := updateProduct(c.Request().Context(), db, st, id, service.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Rating:      req.Rating,
		}, image, contentType)
		if err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, api.NewProductResponse(p))
	}
}

// @Summary     Delete a product
// @Description Deletes the row, then removes the blob best-effort
// @Tags        products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} api.DataResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /product/{id} [delete]
func DeleteProductHandler(db database.DB, st storage.Storage, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := productID(c)
		if err != nil {
			return handler.JSONError(c, err)
		}
		if err := deleteProduct(c.Request().Context(), db, st, wp, id); err != nil {
			return handler.JSONError(c, err)
		}
		return handler.JSONData(c, http.StatusOK, struct{}{})
	}
}
