package creature

import "strconv"

const (
	serializerBasePrefix  = '['
	serializerStatePrefix = `{"state":"`
	serializerCountPrefix = `","count":`
	serializerRowSuffix   = "},"
	serializerBaseSuffix  = ']'
)

// SerializeRuns is a convenience function that returns a JSON encoding of
// runs, as an array of {"state":"alive","count":3} objects.
func SerializeRuns(runs []Run) []byte {
	if len(runs) == 0 {
		return []byte("[]")
	}
	buf := make([]byte, 0, 2+len(runs)*32)
	buf = append(buf, serializerBasePrefix)
	for _, r := range runs {
		buf = append(buf, serializerStatePrefix...)
		buf = append(buf, r.State.String()...)
		buf = append(buf, serializerCountPrefix...)
		buf = strconv.AppendInt(buf, int64(r.Count), 10)
		buf = append(buf, serializerRowSuffix...)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf
}

// Serialize returns a JSON encoding of the summary.
func (s Summary) Serialize() []byte {
	fields := [...]struct {
		name  string
		value int
	}{
		{"length", s.Length},
		{"alive", s.Alive},
		{"dead", s.Dead},
		{"life", s.Life},
		{"injections", s.Injections},
		{"kills", s.Kills},
		{"longestAlive", s.LongestAlive},
		{"longestDead", s.LongestDead},
	}
	buf := make([]byte, 0, 160)
	buf = append(buf, '{')
	for i, f := range fields {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendQuote(buf, f.name)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(f.value), 10)
	}
	buf = append(buf, '}')
	return buf
}
