// mtrx-monitor prints every telegram an MT-RX alerting receiver emits on its
// serial port. Without -port it tries to autodetect the receiver.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/roby2014/wte-mt-rx-parser/com"
	"github.com/roby2014/wte-mt-rx-parser/serial"
	"github.com/roby2014/wte-mt-rx-parser/telegram"
)

var (
	port  = flag.String("port", "", "serial port of the MT-RX, autodetect if empty")
	trace = flag.Bool("trace", false, "trace all received lines to stderr")
)

func main() {
	flag.Parse()

	portName := *port
	if portName == "" {
		var err error
		portName, err = serial.FindReceiverPortName()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("using %s", portName)
	}

	var tracer io.Writer
	if *trace {
		tracer = os.Stderr
	}

	receiver, err := serial.OpenWithTrace(portName, tracer)
	if err != nil {
		log.Fatal(err)
	}

	receiver.OnStructuredAlert(func(message telegram.StructuredAlert) {
		log.Printf("%s #%03d %s beacon %s signal %s position %02d°%02d'%02d\"%c %03d°%02d'%02d\"%c checksum %04X",
			message.MessageType,
			message.SequenceNumber,
			message.ID,
			message.Beacon[:],
			message.SignalStrength[:],
			message.LatDegrees, message.LatMinutes, message.LatSeconds, message.LatHemisphere,
			message.LongDegrees, message.LongMinutes, message.LongSeconds, message.LongHemisphere,
			message.Checksum,
		)
	})
	receiver.OnRaw(func(message telegram.Raw) {
		checksum := "checksum ok"
		if !message.ChecksumOK() {
			checksum = "CHECKSUM MISMATCH"
		}
		log.Printf("raw #%03d %s data %s %s", message.SequenceNumber, message.ID, message.Data[:], checksum)
	})
	receiver.OnReceiverStatus(func(message telegram.ReceiverStatus) {
		// NNN is approximately -130 + (NNN / 2) dBm
		log.Printf("rss %s %d (approx. %.1f dBm)", message.RSSType, message.NNN, -130+float64(message.NNN)/2)
	})
	receiver.OnDecodeError(func(line string, err error) {
		log.Printf("rejected %q: %v", line, err)
	})

	waitForShutdown(receiver)
}

func waitForShutdown(receiver *com.Receiver) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	closed := make(chan struct{})
	go func() {
		receiver.WaitUntilClosed()
		close(closed)
	}()

	select {
	case <-signals:
	case <-closed:
		log.Print("receiver connection closed")
	}
}
