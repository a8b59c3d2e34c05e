package gateway

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"language_connect/internal/apperr"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
)

type (
	Event  = events.APIGatewayProxyRequest
	Result = events.APIGatewayProxyResponse
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Request is the decoded view of an Event handed to a HandlerFunc.
type Request struct {
	Method string
	Action Action
	Event  Event
}

func (r *Request) Query(key string) string {
	return r.Event.QueryStringParameters[key]
}

// QueryInt returns def when key is absent or not an integer.
func (r *Request) QueryInt(key string, def int) int {
	v := r.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (r *Request) QueryBool(key string) bool {
	return strings.EqualFold(r.Query(key), "true")
}

// QueryID parses a required positive integer query parameter.
func (r *Request) QueryID(key string) (int64, error) {
	return parseID(key, r.Query(key))
}

// ID reads key from the path parameters, then from the query string.
func (r *Request) ID(key string) (int64, error) {
	v := r.Event.PathParameters[key]
	if v == "" {
		v = r.Query(key)
	}
	return parseID(key, v)
}

func parseID(key, v string) (int64, error) {
	if v == "" {
		return 0, apperr.Validation(map[string]string{key: "required"})
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, apperr.Validation(map[string]string{key: "must be a positive integer"})
	}
	return n, nil
}

// Bind decodes the JSON body into v and runs its validate tags. An empty
// body decodes as {}.
func (r *Request) Bind(v any) error {
	body := []byte(r.Event.Body)
	if r.Event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(r.Event.Body)
		if err != nil {
			return apperr.BadRequest("Invalid request body")
		}
		body = decoded
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}

	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.Validation(map[string]string{typeErr.Field: "must be " + typeErr.Type.String()})
		}
		return apperr.BadRequest("Invalid request body")
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = describe(fe)
			}
			return apperr.Validation(fields)
		}
		return apperr.Internal(err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email"
	case "gt", "min":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
