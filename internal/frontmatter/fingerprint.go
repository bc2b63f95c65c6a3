package frontmatter

import (
	"strings"

	"github.com/inful/mdfp"
)

// FingerprintField is the front-matter key holding the content fingerprint.
const FingerprintField = mdfp.FingerprintField

// Fingerprint computes the canonical content fingerprint of a page.
//
// The fingerprint field itself is excluded from the hash so that adding it
// does not change the value.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == FingerprintField {
			continue
		}
		hashed[k] = v
	}
	serialized, err := SerializeYAML(hashed)
	if err != nil {
		return "", err
	}
	fm := strings.TrimSuffix(string(serialized), "\n")
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}
