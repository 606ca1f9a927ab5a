package api

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"portfolioledger/internal/domain"
	"portfolioledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 500
)

var registerOnce sync.Once

// registerValidators teaches gin's validator to compare decimals
// numerically, so tags like gt=0 work on decimal.Decimal fields.
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		}
	})
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// bindJson wraps gin binding errors as validation failures.
func bindJson(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}

func int64Param(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, name, raw)
	}
	return id, nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrValidation, name, raw)
	}
	return v, nil
}

func pageRequest(c *gin.Context, defaultSortBy string) (domain.PageRequest, error) {
	page, err := intQuery(c, "page", 0)
	if err != nil {
		return domain.PageRequest{}, err
	}
	size, err := intQuery(c, "size", defaultPageSize)
	if err != nil {
		return domain.PageRequest{}, err
	}
	if page < 0 {
		return domain.PageRequest{}, fmt.Errorf("%w: page must be >= 0", domain.ErrValidation)
	}
	if size <= 0 || size > maxPageSize {
		return domain.PageRequest{}, fmt.Errorf("%w: size must be between 1 and %d", domain.ErrValidation, maxPageSize)
	}

	direction := strings.ToLower(c.DefaultQuery("sortDirection", "desc"))
	if direction != "asc" && direction != "desc" {
		return domain.PageRequest{}, fmt.Errorf("%w: sortDirection must be asc or desc", domain.ErrValidation)
	}

	return domain.PageRequest{
		Page:          page,
		Size:          size,
		SortBy:        c.DefaultQuery("sortBy", defaultSortBy),
		SortDirection: direction,
	}, nil
}

func dateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	}
	d, err := util.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", domain.ErrValidation, name, raw)
	}
	return &d, nil
}
