package scenario

import (
	"regexp"

	"github.com/viant/structology/visitor"
)

var placeholderExpr = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// expandText replaces {{ name }} placeholders with bound values; unknown
// placeholders are kept as is.
func expandText(text string, variables map[string]string) string {
	return placeholderExpr.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderExpr.FindStringSubmatch(match)[1]
		if value, ok := variables[name]; ok {
			return value
		}
		return match
	})
}

// expandValue walks decoded JSON/YAML data expanding every string it holds.
// The source value is not modified.
func expandValue(value interface{}, variables map[string]string) (interface{}, error) {
	var err error
	switch actual := value.(type) {
	case string:
		return expandText(actual, variables), nil
	case map[string]interface{}:
		expanded := make(map[string]interface{}, len(actual))
		visit := visitor.MapVisitorOf[string, interface{}](actual)
		err = visit(func(key string, element interface{}) (bool, error) {
			if expanded[key], err = expandValue(element, variables); err != nil {
				return false, err
			}
			return true, nil
		})
		return expanded, err
	case map[interface{}]interface{}:
		expanded := make(map[interface{}]interface{}, len(actual))
		visit := visitor.MapVisitorOf[interface{}, interface{}](actual)
		err = visit(func(key interface{}, element interface{}) (bool, error) {
			if expanded[key], err = expandValue(element, variables); err != nil {
				return false, err
			}
			return true, nil
		})
		return expanded, err
	case []interface{}:
		expanded := make([]interface{}, len(actual))
		for i, item := range actual {
			if expanded[i], err = expandValue(item, variables); err != nil {
				return nil, err
			}
		}
		return expanded, nil
	default:
		return value, nil
	}
}
