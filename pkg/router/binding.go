package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/tavernsheet/backend/pkg/errorx"
)

// bindRequest parses the loosely-typed request payload (query string, form
// fields, or a JSON body) into the strongly-typed request object, so handlers
// never see raw form values.
func bindRequest(req *http.Request, obj any) error {
	switch req.Method {
	case http.MethodGet:
		return bindValues(req.URL.Query(), obj)

	case http.MethodPost:
		contentType := req.Header.Get("Content-Type")
		if strings.HasPrefix(contentType, "application/json") {
			body, err := io.ReadAll(req.Body)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Cannot read the request body")
			}

			if len(body) == 0 {
				return nil
			}

			if err := json.Unmarshal(body, obj); err != nil {
				return errorx.New(errorx.BadRequest, "Invalid json body")
			}

			return nil
		}

		if strings.HasPrefix(contentType, "multipart/form-data") {
			// Multipart bodies are parsed lazily by the handler to respect
			// the file size limit.
			return nil
		}

		if err := req.ParseForm(); err != nil {
			return errorx.New(errorx.BadRequest, "Invalid form body")
		}

		return bindValues(req.PostForm, obj)
	}

	return errMethodNotSupported
}

func bindValues(values url.Values, obj any) error {
	structValue := reflect.ValueOf(obj).Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}

		raw, ok := values[name]
		if !ok || len(raw) == 0 {
			continue
		}

		if err := setField(structValue.Field(i), name, raw); err != nil {
			return err
		}
	}

	return nil
}

func setField(field reflect.Value, name string, raw []string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw[0])

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw[0], 10, 64)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Field %s must be a number", name)
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return errorx.New(errorx.BadRequest, "Field %s must be a boolean", name)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return nil
		}

		// Accept both repeated fields and a single comma-separated field.
		var items []string
		for _, r := range raw {
			for _, item := range strings.Split(r, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
		}
		field.Set(reflect.ValueOf(items))

	case reflect.Pointer:
		elem := reflect.New(field.Type().Elem())
		if err := setField(elem.Elem(), name, raw); err != nil {
			return err
		}
		field.Set(elem)
	}

	return nil
}
