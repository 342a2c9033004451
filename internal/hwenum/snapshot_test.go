package hwenum

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/errors"
)

const sampleSnapshot = `[
  {
    "DeviceName": "AMD Radeon RX 580",
    "InstanceId": "PCI\\VEN_1002&DEV_67DF&SUBSYS_34111462\\4&2283f625&0&0019",
    "LocationPaths": [
      "PCIROOT(0)#PCI(0100)#PCI(0000)",
      "ACPI(_SB_)#ACPI(PCI0)#ACPI(PEG0)#ACPI(PEGP)"
    ],
    "Status": "OK",
    "Class": "Display"
  },
  {
    "DeviceName": "Intel(R) Ethernet Connection I219-V",
    "InstanceId": "PCI\\VEN_8086&DEV_15B8\\3&11583659&0&FE",
    "LocationPaths": ["PCIROOT(0)#PCI(1F06)"],
    "Status": "OK",
    "Class": "Net"
  },
  {
    "DeviceName": "USB Root Hub",
    "LocationPaths": ["PCIROOT(0)#PCI(1400)#USBROOT(0)"],
    "Status": "OK",
    "Class": "USB"
  }
]`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device_cache.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSnapshotSourceDevices(t *testing.T) {
	src := NewSnapshotSource(writeSnapshot(t, sampleSnapshot))

	devices, err := src.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 3)

	gpu := devices[0]
	assert.Equal(t, "AMD Radeon RX 580", gpu.Name)
	assert.Equal(t, constants.ClassGPU, gpu.Class)
	assert.Contains(t, gpu.Descriptor, "VEN_1002&DEV_67DF")
	assert.Len(t, gpu.LocationPaths, 2)
	assert.Equal(t, "OK", gpu.Status)

	assert.Equal(t, constants.ClassEthernet, devices[1].Class)

	// Classes outside the checked set map to the empty class.
	hub := devices[2]
	assert.Equal(t, constants.HardwareClass(""), hub.Class)
	assert.Empty(t, hub.Descriptor)
}

func TestSnapshotSourceMissingFile(t *testing.T) {
	src := NewSnapshotSource(filepath.Join(t.TempDir(), "absent.json"))

	_, err := src.Devices(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.NotFound))
}

func TestSnapshotSourceMalformed(t *testing.T) {
	src := NewSnapshotSource(writeSnapshot(t, "{not json"))

	_, err := src.Devices(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.Enumeration))
}

func TestClassifyPnp(t *testing.T) {
	tests := []struct {
		pnp  string
		want constants.HardwareClass
	}{
		{"Display", constants.ClassGPU},
		{"MEDIA", constants.ClassAudio},
		{"AudioEndpoint", constants.ClassAudio},
		{"Net", constants.ClassEthernet},
		{"DiskDrive", constants.ClassDisk},
		{"Processor", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyPnp(tt.pnp), "class %q", tt.pnp)
	}
}
