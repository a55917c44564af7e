// file: internals/helpers/pagination.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
	AllowAll       bool // izinkan per_page=all
	AllHardCap     int  // batas saat all
}

// ===== Preset =====
var (
	DefaultOpts = Options{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = Options{DefaultPerPage: 50, MaxPerPage: 500, AllowAll: true, AllHardCap: 5_000}
	ExportOpts  = Options{DefaultPerPage: 100, MaxPerPage: 1000, AllowAll: true, AllHardCap: 10_000}
)

type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
	All       bool   // true jika per_page=all dipakai
}

// ParseFiber: parse pagination/sorting dari Fiber ctx.
func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt Options) Params {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("per_page"), c.Query("limit")))
	all := false
	per := opt.DefaultPerPage

	if opt.AllowAll && strings.EqualFold(perRaw, "all") {
		all = true
		page = 1
		if opt.AllHardCap > 0 {
			per = opt.AllHardCap
		} else {
			per = opt.MaxPerPage
		}
	} else {
		if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
			per = n
		}
		if per > opt.MaxPerPage {
			per = opt.MaxPerPage
		}
		if per < 1 {
			per = opt.DefaultPerPage
		}
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(c.Query("order"), c.Query("sort"))))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return Params{
		Page:      page,
		PerPage:   per,
		SortBy:    sortBy,
		SortOrder: order,
		All:       all,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// Limit & Offset
func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// ORDER BY aman (kolom dari whitelist)
func (p Params) SafeOrderClause(allowed map[string]string, defaultKey string) (string, error) {
	key := p.SortBy
	if key == "" {
		key = defaultKey
	}
	col, ok := allowed[key]
	if !ok {
		col, ok = allowed[defaultKey]
		if !ok {
			return "", fmt.Errorf("no valid default sort key")
		}
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return col + " " + dir, nil
}

// BuildPagination: meta standar untuk JsonList
func BuildPagination(total int64, p Params) Pagination {
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage)) // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       p.Page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
