/*
The package telegram decodes the fixed-format text telegrams that the
"MT-RX AIS, 406 + 121.5/243 MHz ALERTING RECEIVER" emits on its serial port.
This implementation is solely based on:
  [MT-RX] MT-RX-3 406 EPIRB Receiver User Manual v2.62

The receiver emits three telegram shapes:
  MT1: the structured serial out packet with beacon identity and position
  MT6: the raw data serial out packet with the undecoded beacon payload
  SS:  the received signal strength (RSS) report

The decoder is strict: a telegram is either decoded completely into one of the
three record types, or it is rejected with a DecodeError. It never repairs
malformed input and it never returns a partial record.

Decoding a 406 MHz beacon payload and any AIS/NMEA sentences the receiver may
also emit are out of scope of this package.
*/
package telegram
