package hwenum

import (
	"context"
	"encoding/json"
	"os"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

// snapshotEntry is one object of the exporter's cache file. The exporter
// writes a JSON array of PNP devices that carry location paths; InstanceId
// is present in newer exports only.
type snapshotEntry struct {
	DeviceName    string   `json:"DeviceName"`
	InstanceID    string   `json:"InstanceId"`
	LocationPaths []string `json:"LocationPaths"`
	Status        string   `json:"Status"`
	Class         string   `json:"Class"`
}

// SnapshotSource reads device descriptors from an exported JSON snapshot
// file instead of probing the running system.
type SnapshotSource struct {
	path string
}

// NewSnapshotSource returns a source backed by the snapshot file at path.
func NewSnapshotSource(path string) *SnapshotSource {
	return &SnapshotSource{path: path}
}

// Devices parses the snapshot file. A missing file is a NotFound error,
// malformed JSON an Enumeration error.
func (s *SnapshotSource) Devices(_ context.Context) ([]Device, error) {
	const op = "hwenum.SnapshotSource.Devices"

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.NotFound, err, "snapshot %s", s.path).WithOp(op)
		}
		return nil, errors.Wrapf(errors.Enumeration, err, "read snapshot %s", s.path).WithOp(op)
	}

	var entries []snapshotEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(errors.Enumeration, err, "decode snapshot %s", s.path).WithOp(op)
	}

	devices := make([]Device, 0, len(entries))
	for _, e := range entries {
		devices = append(devices, Device{
			Name:          e.DeviceName,
			Descriptor:    e.InstanceID,
			Class:         classifyPnp(e.Class),
			LocationPaths: e.LocationPaths,
			Status:        e.Status,
		})
	}
	return devices, nil
}
