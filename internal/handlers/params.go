package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/go-playground/validator/v10"
)

// productListParams is the query string of GET /api/products
type productListParams struct {
	Type        string   `validate:"omitempty,oneof=team individual fitness indoor apparel"`
	Category    string   `validate:"max=64"`
	Subcategory string   `validate:"max=64"`
	Brands      []string `validate:"dive,required,max=64"`
	Min         *int64
	Max         *int64
	Query       string `validate:"max=200"`
	Sort        string `validate:"omitempty,oneof=featured price-asc price-desc name price-low price-high"`
}

type searchParams struct {
	Query string `validate:"max=200"`
}

type albumParams struct {
	Type string `validate:"omitempty,oneof=image video"`
}

func bindProductList(values url.Values) (productListParams, error) {
	p := productListParams{
		Type:        values.Get("type"),
		Category:    values.Get("category"),
		Subcategory: values.Get("subcategory"),
		Brands:      splitList(values["brand"]),
		Query:       values.Get("q"),
		Sort:        values.Get("sort"),
	}

	var err error
	if p.Min, err = optionalInt(values, "min"); err != nil {
		return p, err
	}
	if p.Max, err = optionalInt(values, "max"); err != nil {
		return p, err
	}
	return p, nil
}

// query converts validated params into an engine query
func (p productListParams) query() catalog.ProductQuery {
	return catalog.ProductQuery{
		Scope: catalog.Scope{
			CategoryID:    p.Category,
			SubcategoryID: p.Subcategory,
			SportType:     models.SportType(p.Type),
		},
		BrandIDs: catalog.BrandSet(p.Brands...),
		MinPrice: p.Min,
		MaxPrice: p.Max,
		Search:   p.Query,
		Sort:     catalog.ParseSortKey(p.Sort),
	}
}

// splitList accepts both repeated keys and comma separated values
func splitList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func optionalInt(values url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

// validationMessage renders the first failed rule as a client-facing message
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s is too long", field)
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
