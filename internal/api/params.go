package api

import (
	"net/http"
	"strconv"

	"taskboard/internal/apperr"
	"taskboard/internal/repository"
)

// parseListParams turns the raw list query string into a filter and a
// window. Numeric paging values fall back to defaults when unparsable or
// out of range; page_size is capped. Bad category or completed values are
// rejected rather than silently ignored.
func (s *Server) parseListParams(r *http.Request) (repository.TaskFilter, repository.Page, error) {
	query := r.URL.Query()

	page := repository.Page{
		Number: queryParamInt(r, "page", 1),
		Size:   queryParamInt(r, "page_size", s.defaultPageSize),
	}
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = s.defaultPageSize
	}
	if page.Size > s.maxPageSize {
		page.Size = s.maxPageSize
	}

	filter := repository.TaskFilter{
		Search:   query.Get("search"),
		Priority: query.Get("priority"),
	}

	if raw := query.Get("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, page, apperr.Validation("category must be a numeric id")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	if raw := query.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, page, apperr.Validation("completed must be true or false")
		}
		filter.Completed = &completed
	}

	return filter, page, nil
}

// idParam extracts the {id} path segment as an unsigned integer.
func idParam(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid id %q", raw)
	}
	return uint(id), nil
}

// queryParamInt extracts an integer query parameter with a default value.
func queryParamInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
