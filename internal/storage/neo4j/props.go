package neo4j

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// props reads a map projection column such as `RETURN j {.*} AS job`
func props(rec *neo4j.Record, key string) map[string]any {
	v, ok := rec.Get(key)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

func str(p map[string]any, k string) string {
	s, _ := p[k].(string)
	return s
}

func integer(p map[string]any, k string) int {
	switch v := p[k].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func boolean(p map[string]any, k string) bool {
	b, _ := p[k].(bool)
	return b
}

func strList(p map[string]any, k string) []string {
	raw, ok := p[k].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func timestamp(p map[string]any, k string) time.Time {
	switch v := p[k].(type) {
	case time.Time:
		return v.UTC()
	case neo4j.LocalDateTime:
		return v.Time()
	}
	return time.Time{}
}

// millis encodes a time for datetime({epochMillis: ...}); zero becomes null
func millis(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UnixMilli()
}

func count(recs []*neo4j.Record, key string) int {
	if len(recs) == 0 {
		return 0
	}
	v, _ := recs[0].Get(key)
	n, _ := v.(int64)
	return int(n)
}
