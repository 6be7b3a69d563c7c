package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将横幅文本中的 ${path.to.value} 替换为 data 中的值，
// 支持 ${path|fallback} 形式的缺省值。若 data 为空、路径不存在且
// 未提供缺省值，则保留原占位符。
func Interpolate(text string, data any) string {
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		expr := strings.TrimSpace(groups[1])
		if expr == "" {
			return match
		}

		path := expr
		fallback := ""
		hasFallback := false
		if i := strings.IndexByte(expr, '|'); i != -1 {
			path = strings.TrimSpace(expr[:i])
			fallback = strings.TrimSpace(expr[i+1:])
			hasFallback = true
		}

		if val, ok := resolvePath(data, path); ok {
			return fmt.Sprint(val)
		}
		if hasFallback {
			return fallback
		}
		return match
	})
}

// resolvePath 沿着 a.b[0].c 形式的路径在 data 中逐层下钻。
func resolvePath(data any, path string) (any, bool) {
	if data == nil {
		return nil, false
	}
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes := parseSegment(segment)
		if name != "" {
			var ok bool
			current, ok = descendMap(current, name)
			if !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			var ok bool
			current, ok = descendArray(current, idx)
			if !ok {
				return nil, false
			}
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []string) {
	name := segment
	var indexes []string
	if i := strings.Index(segment, "["); i != -1 {
		name = segment[:i]
		rest := segment[i:]
		for strings.HasPrefix(rest, "[") {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				break
			}
			indexes = append(indexes, rest[1:end])
			rest = rest[end+1:]
		}
	}
	return name, indexes
}

func descendMap(current any, key string) (any, bool) {
	m, ok := current.(map[string]interface{})
	if !ok {
		return nil, false
	}
	val, ok := m[key]
	return val, ok
}

func descendArray(current any, idx int) (any, bool) {
	arr, ok := current.([]interface{})
	if !ok || idx < 0 || idx >= len(arr) {
		return nil, false
	}
	return arr[idx], true
}
