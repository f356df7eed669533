// internal/api/handler/request.go
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// fieldValue is a JSON value read as text: strings are unquoted and numbers keep
// their literal form, so `"30"` and `30` both reach validation as "30".
// Null, booleans, objects and arrays read as empty, as if the field were absent.
type fieldValue string

func (v *fieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*v = ""
	if len(data) == 0 {
		return nil
	}
	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = fieldValue(s)
	case c == '-' || (c >= '0' && c <= '9'):
		*v = fieldValue(data)
	}
	return nil
}

// decodeFields reads a flat request body as JSON or as an HTML form,
// depending on Content-Type. An empty body yields no fields.
func decodeFields(w http.ResponseWriter, r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	fields := map[string]string{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxBodyBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return fields, err
		}
		for key := range r.PostForm {
			fields[key] = r.PostForm.Get(key)
		}
		return fields, nil
	}

	var raw map[string]fieldValue
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return fields, nil
		}
		return fields, err
	}
	for key, value := range raw {
		fields[key] = string(value)
	}
	return fields, nil
}
