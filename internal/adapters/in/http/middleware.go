package http

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openapiSpec []byte

// RequestValidator checks incoming requests against the OpenAPI contract
// before they reach the handlers.
type RequestValidator struct {
	router routers.Router
}

// NewRequestValidator loads the embedded contract and builds a route matcher
// for it.
func NewRequestValidator() (*RequestValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi contract: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi contract: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return &RequestValidator{router: router}, nil
}

// Middleware returns an echo middleware that rejects requests not matching
// the contract. Validation reads the body and restores it, so handlers can
// bind as usual.
func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			request := ctx.Request()

			route, pathParams, err := v.router.FindRoute(request)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return ctx.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    request,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(request.Context(), input); err != nil {
				var requestErr *openapi3filter.RequestError
				if errors.As(err, &requestErr) {
					return ctx.JSON(http.StatusBadRequest, ErrorResponse{
						Code:    http.StatusBadRequest,
						Message: requestErr.Error(),
					})
				}
				return ctx.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}
}
