//go:build linux

package serial

import (
	"strings"

	"github.com/hedhyw/Go-Serial-Detector/pkg/v1/serialdet"
)

// FindReceiverPortName scans the active serial devices for the MT-RX,
// which shows up with its USB-serial bridge description.
func FindReceiverPortName() (string, error) {
	devices, err := serialdet.List()
	if err != nil {
		return "", err
	}

	for _, device := range devices {
		description := strings.ToLower(device.Description())
		if strings.Contains(description, "mt-rx") {
			return device.Path(), nil
		}
	}

	return "", NoReceiverFound
}
