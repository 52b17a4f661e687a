package xmldoc

import (
	"strconv"

	"bitbucket.org/crgw/hotel-avail/internal/tools/converting"
)

// ExtractTimeout reads timeoutMilliseconds. Anything but a plain run of digits
// yields 0.
func ExtractTimeout(doc *Document) int {
	text := converting.Unwrap(doc.ChildText("timeoutMilliseconds"))
	if !converting.IsDigits(text) {
		return 0
	}

	timeout, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}

	return timeout
}
