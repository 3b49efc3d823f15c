package http

import (
	"strconv"
	"strings"

	"fintech-directory/pkg/pagination"

	"github.com/labstack/echo/v4"
)

// pageParams reads page, limit, sortBy and sortOrder. Garbage is left for Normalize to default.
func pageParams(c echo.Context) pagination.Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return pagination.Params{
		Page:      page,
		Limit:     limit,
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: pagination.ParseOrder(c.QueryParam("sortOrder")),
	}
}

// queryBool is nil when the parameter is absent or not a boolean.
func queryBool(c echo.Context, name string) *bool {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

func queryFloat(c echo.Context, name string) *float64 {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

// queryList splits a comma separated parameter, dropping blanks.
func queryList(c echo.Context, name string) []string {
	var out []string
	for _, s := range strings.Split(c.QueryParam(name), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
