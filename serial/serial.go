package serial

import (
	"errors"
	"io"

	"github.com/jacobsa/go-serial/serial"

	"github.com/roby2014/wte-mt-rx-parser/com"
)

var (
	NoReceiverFound = errors.New("no MT-RX receiver device found")
)

// Open the MT-RX on the given serial port and start a receiver session.
func Open(portName string) (*com.Receiver, error) {
	device, err := openSerial(portName)
	if err != nil {
		return nil, err
	}

	return com.New(device), nil
}

// OpenWithTrace works like Open, but traces all received lines to the given writer.
func OpenWithTrace(portName string, traceWriter io.Writer) (*com.Receiver, error) {
	device, err := openSerial(portName)
	if err != nil {
		return nil, err
	}

	return com.NewWithTrace(device, traceWriter), nil
}

func openSerial(portName string) (io.ReadWriteCloser, error) {
	// MT-RX serial out line settings: 9600 8N1, no flow control
	portConfig := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              9600,
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		MinimumReadSize:       1,
		InterCharacterTimeout: 100,
	}

	return serial.Open(portConfig)
}
