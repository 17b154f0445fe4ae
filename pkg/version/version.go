// Package version exposes build-time version information for skiller.
package version

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	// Version is the current version of skiller, set during the build process
	Version = "dev"

	// GitCommit is the git commit SHA that was built
	GitCommit = "unknown"
)

// Info represents version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
	}
}

// JSON returns the version information as a JSON string
func (i Info) JSON() (string, error) {
	b, err := json.Marshal(i)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal version info")
	}
	return string(b), nil
}
