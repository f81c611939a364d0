package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tours/internal/entities"
)

func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).Int64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, entities.NewFieldError(name, "must be a positive integer")
	}
	return id, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var v bool
	if err := echo.QueryParamsBinder(c).Bool(name, &v).BindError(); err != nil {
		return nil, entities.NewFieldError(name, "must be true or false")
	}
	return &v, nil
}

func queryInt64(c echo.Context, name string) (*int64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var v int64
	if err := echo.QueryParamsBinder(c).Int64(name, &v).BindError(); err != nil {
		return nil, entities.NewFieldError(name, "must be an integer")
	}
	return &v, nil
}

func queryDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, entities.NewFieldError(name, "must be a number")
	}
	return &v, nil
}

func queryDate(c echo.Context, name string) (*entities.Date, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	d, err := entities.ParseDate(raw)
	if err != nil {
		return nil, entities.NewFieldError(name, err.Error())
	}
	return &d, nil
}

func queryTime(c echo.Context, name string) (*time.Time, error) {
	d, err := queryDate(c, name)
	if err != nil || d == nil {
		return nil, err
	}
	return &d.Time, nil
}
