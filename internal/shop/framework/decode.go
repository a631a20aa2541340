package framework

import (
	"io"
	"mime/quotedprintable"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"gowebshop/internal/shop/business/errs"
)

// ParseParams splits a raw form-encoded string into key/value pairs.
// An empty input yields an empty map; an item without '=' fails the whole
// parse. Values are returned as transmitted; DecodeValue is applied by the
// dispatcher, not here.
func ParseParams(raw string) (map[string]string, error) {
	result := make(map[string]string)
	if raw == "" {
		return result, nil
	}

	for _, item := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(item, "=")
		if !found {
			return nil, errs.Validation("malformed parameter %q", item)
		}
		result[key] = value
	}
	return result, nil
}

// DecodeValue reverses the legacy form encoding: '%' stands for the
// quoted-printable escape '=', '+' for space. The recovered bytes are
// expected to be UTF-8; anything else is treated as windows-1251, the
// encoding of the legacy clients.
func DecodeValue(s string) (string, error) {
	qp := strings.ReplaceAll(s, "%", "=")
	qp = strings.ReplaceAll(qp, "+", " ")

	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(qp)))
	if err != nil {
		return "", errs.Validation("malformed value %q: %v", s, err)
	}

	if utf8.Valid(decoded) {
		return string(decoded), nil
	}

	recoded, err := charmap.Windows1251.NewDecoder().Bytes(decoded)
	if err != nil {
		return "", errs.Validation("undecodable value %q: %v", s, err)
	}
	return string(recoded), nil
}

// decodeParams runs DecodeValue over every parsed value.
func decodeParams(params map[string]string) (map[string]string, error) {
	decoded := make(map[string]string, len(params))
	for key, value := range params {
		v, err := DecodeValue(value)
		if err != nil {
			return nil, err
		}
		decoded[key] = v
	}
	return decoded, nil
}
