package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	"hotelier/shared/dto"
	"hotelier/shared/timezone"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// TransformFields converts the non-zero `db` tagged fields of a struct into a column map for
// an UPDATE, stamping modified_at and modified_by.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// HasChanges reports whether fields carries anything beyond the modification stamp.
func HasChanges(fields map[string]any) bool {
	for key := range fields {
		if key != constant.FieldModifiedAt && key != constant.FieldModifiedBy {
			return true
		}
	}

	return false
}

// ValidID reports whether id can name a row. Primary and foreign keys are UUID columns, so
// anything else matches nothing and is answered as not found without a query.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts with colons.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery derives a stable key from the pagination params and the rendered filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	// json.Marshal sorts map keys, which keeps the digest stable.
	encodedArgs, err := json.Marshal(args)
	if err != nil {
		encodedArgs = []byte(fmt.Sprint(args))
	}

	digest := sha256.Sum256([]byte(where + "|" + string(encodedArgs)))

	return BuildCacheKey(
		prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		hex.EncodeToString(digest[:8]),
	)
}

// InvalidateCaches removes every key under prefix. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}

// Actor names who is acting on the request, for created_by and modified_by.
func Actor(ctx context.Context) string {
	if actor, ok := ctx.Value(constant.ContextKeyActor).(string); ok && actor != "" {
		return actor
	}

	return constant.ContextGuest
}

// WithActor returns a context that records actor for Actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyActor, actor)
}

// GroupDigits inserts a comma every three digits in each run of digits, counting from the
// right of the run. "1500000" becomes "1,500,000" and "₹2500.50" becomes "₹2,500.50".
func GroupDigits(value string) string {
	runes := []rune(value)

	var builder strings.Builder

	for i := 0; i < len(runes); {
		if !isDigit(runes[i]) {
			builder.WriteRune(runes[i])
			i++

			continue
		}

		end := i
		for end < len(runes) && isDigit(runes[end]) {
			end++
		}

		// Digits after a decimal point are left alone.
		if i > 0 && runes[i-1] == '.' {
			builder.WriteString(string(runes[i:end]))
			i = end

			continue
		}

		for pos := i; pos < end; pos++ {
			if pos > i && (end-pos)%3 == 0 {
				builder.WriteRune(',')
			}

			builder.WriteRune(runes[pos])
		}

		i = end
	}

	return builder.String()
}

// Deref returns the value behind p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T

		return zero
	}

	return *p
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
