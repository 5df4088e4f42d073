// Package permutation exports one concrete shuffled permutation as CSV.
package permutation

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"exusiai.dev/shufflestat/internal/core/coreerr"
)

const (
	Header      = "Key,Value"
	ContentType = "text/csv;charset=utf-8;"

	separator = ":"
)

// Ambiguity reasons.
const (
	ReasonNoSeparator    = "no separator"
	ReasonExtraSeparator = "extra separator"
	ReasonComma          = "comma in field"
)

// AmbiguousToken is a token whose key or value cannot be recovered faithfully.
// It is still exported, split the same way as every other token.
type AmbiguousToken struct {
	Index  int    `json:"index"`
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Export struct {
	Rows      []Row            `json:"rows"`
	Ambiguous []AmbiguousToken `json:"ambiguous,omitempty"`
	CSV       string           `json:"-"`
}

// SplitToken splits a "key:value" token the way the producing service expects:
// the token is cut at every ':' and only the first two fields are kept. A token
// without ':' has an empty value rather than the string "undefined".
func SplitToken(token string) Row {
	fields := strings.Split(token, separator)
	row := Row{Key: fields[0]}
	if len(fields) > 1 {
		row.Value = fields[1]
	}
	return row
}

func ambiguity(token string) (string, bool) {
	switch n := strings.Count(token, separator); {
	case n == 0:
		return ReasonNoSeparator, true
	case n > 1:
		return ReasonExtraSeparator, true
	case strings.Contains(token, ","):
		return ReasonComma, true
	}
	return "", false
}

// ExportCSV renders tokens as a "Key,Value" CSV document, newline-joined with no
// trailing newline. Fields are written verbatim, without quoting. An empty
// permutation is reported as coreerr.ErrEmptyInput.
func ExportCSV(tokens []string) (*Export, error) {
	if len(tokens) == 0 {
		return nil, errors.Wrap(coreerr.ErrEmptyInput, "nothing to export")
	}

	export := &Export{
		Rows: make([]Row, 0, len(tokens)),
	}
	lines := make([]string, 0, len(tokens)+1)
	lines = append(lines, Header)
	for i, token := range tokens {
		if reason, ok := ambiguity(token); ok {
			export.Ambiguous = append(export.Ambiguous, AmbiguousToken{
				Index:  i,
				Token:  token,
				Reason: reason,
			})
		}
		row := SplitToken(token)
		export.Rows = append(export.Rows, row)
		lines = append(lines, row.Key+","+row.Value)
	}
	export.CSV = strings.Join(lines, "\n")

	return export, nil
}

// Filename is the download name of an export made at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("shuffled_result_%d.csv", t.UnixMilli())
}
