package handler

import (
	"github.com/deppfellow/cats-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Interceptor transforms a handler's successful result before it is
// serialized. Interceptors are declared per controller via NewHandler.
type Interceptor interface {
	Intercept(c echo.Context, result any) any
}

// InterceptorFunc adapts a plain function to Interceptor.
type InterceptorFunc func(c echo.Context, result any) any

func (f InterceptorFunc) Intercept(c echo.Context, result any) any {
	return f(c, result)
}

// Envelope is the uniform body of every successful response.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// SuccessInterceptor wraps results as {"success": true, "data": result}.
type SuccessInterceptor struct{}

func (SuccessInterceptor) Intercept(c echo.Context, result any) any {
	middleware.GetLogger(c).Debug().
		Str("interceptor", "success").
		Str("route", c.Path()).
		Msg("before response")

	return Envelope{
		Success: true,
		Data:    result,
	}
}
