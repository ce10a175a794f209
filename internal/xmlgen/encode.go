package xmlgen

import (
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/ysakura/shuushi/internal/common"
)

// EncodeShiftJIS transcodes the built document text to the legacy codepage
// for file delivery. The filing system has no multibyte fallback, so any
// rune Shift_JIS cannot represent rejects the whole export; characters are
// never substituted.
func EncodeShiftJIS(text string) ([]byte, error) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(text))
	if err != nil {
		return nil, &common.EncodingError{Err: err, Rune: findUnencodable(text)}
	}
	return encoded, nil
}

// findUnencodable locates the first rune the codepage rejects, for the error
// message. Zero when the failure was not rune-specific.
func findUnencodable(text string) rune {
	encoder := japanese.ShiftJIS.NewEncoder()
	for _, r := range text {
		if _, _, err := transform.String(encoder, string(r)); err != nil {
			return r
		}
	}
	return 0
}
