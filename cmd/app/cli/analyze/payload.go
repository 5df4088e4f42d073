package analyze

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"exusiai.dev/shufflestat/internal/util"
)

// readPayload decodes the JSON payload in path into dest, unwrapping the
// producer envelope. A path of "-" reads stdin.
func readPayload(path string, dest any) error {
	var (
		body []byte
		err  error
	)
	if path == "-" {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(path)
	}
	if err != nil {
		return errors.Wrap(err, "failed to read payload")
	}

	body, err = util.UnwrapEnvelope(body)
	if err != nil {
		return errors.Wrapf(err, "failed to read payload %s", path)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.Wrapf(err, "failed to decode payload %s", path)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
