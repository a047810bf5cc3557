//go:build !linux

package serial

func FindReceiverPortName() (string, error) {
	// no-op for other OSes
	return "", NoReceiverFound
}
