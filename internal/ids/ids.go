package ids

import "github.com/segmentio/ksuid"

// New returns a sortable unique ID for domain records.
func New() string {
	return ksuid.New().String()
}
