package web

import (
	"net/http"
	"slices"
	"strings"

	"bestlocations/internal/app/places"
	"bestlocations/internal/http/middleware"
	"bestlocations/internal/models"
)

const (
	formPrefix = "place["
	formSuffix = "]"
)

func formKey(field string) string {
	return formPrefix + field + formSuffix
}

// fieldFromKey maps "place[title]" to "title". Only the five place fields
// are accepted.
func fieldFromKey(key string) (string, bool) {
	if !strings.HasPrefix(key, formPrefix) || !strings.HasSuffix(key, formSuffix) {
		return "", false
	}
	field := strings.TrimSuffix(strings.TrimPrefix(key, formPrefix), formSuffix)
	if !slices.Contains(models.PlaceFields, field) {
		return "", false
	}
	return field, true
}

// decodePlaceForm reads the urlencoded place[...] fields from the request
// body. A key that is present sets its field even when the value is empty.
func decodePlaceForm(r *http.Request, requireField bool) (map[string]string, error) {
	verr := &places.ValidationError{}
	if err := r.ParseForm(); err != nil {
		verr.Add("form", "could not be read")
		return nil, verr
	}

	values := make(map[string]string, len(models.PlaceFields))
	keys := make([]string, 0, len(r.PostForm))
	for key := range r.PostForm {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if key == middleware.MethodOverrideParam {
			continue
		}
		field, ok := fieldFromKey(key)
		if !ok {
			verr.Add(key, "is not a place field")
			continue
		}
		submitted := r.PostForm[key]
		if len(submitted) > 1 {
			verr.Add(field, "was submitted more than once")
			continue
		}
		values[field] = submitted[0]
	}

	if requireField && len(values) == 0 && len(verr.Errors) == 0 {
		verr.Add("place", "must include at least one field")
	}
	if err := verr.OrNil(); err != nil {
		return values, err
	}
	return values, nil
}

func createInput(values map[string]string) models.CreatePlaceInput {
	return models.CreatePlaceInput{
		Title:       values[models.FieldTitle],
		Price:       values[models.FieldPrice],
		Description: values[models.FieldDescription],
		Location:    values[models.FieldLocation],
		Image:       values[models.FieldImage],
	}
}

func updateInput(values map[string]string) models.UpdatePlaceInput {
	get := func(field string) *string {
		v, ok := values[field]
		if !ok {
			return nil
		}
		return &v
	}
	return models.UpdatePlaceInput{
		Title:       get(models.FieldTitle),
		Price:       get(models.FieldPrice),
		Description: get(models.FieldDescription),
		Location:    get(models.FieldLocation),
		Image:       get(models.FieldImage),
	}
}
