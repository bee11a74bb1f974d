package orderform

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalidForm = errors.New("invalid order form")

// Коды ошибок совпадают с кодами валидаторов клиентской формы.
const (
	CodeRequired  = "required"
	CodeMinLength = "minlength"
	CodeEmail     = "email"
	CodePattern   = "pattern"
	CodeMin       = "min"
)

// ValidationErrors - ошибки по полям формы: ключ поля -> код ошибки.
// Ключи позиций имеют вид items[0].quantity.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
