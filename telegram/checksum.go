package telegram

// ComputeChecksum calculates the MT-RX telegram checksum over the given bytes.
// For MT1 telegrams the checksum covers the telegram from its first character,
// for MT6 telegrams it covers the 36 raw data characters.
func ComputeChecksum(data []byte) uint16 {
	var checksum uint16
	for _, b := range data {
		checksum ^= uint16(b)
		if checksum&0x8000 != 0 {
			checksum = (checksum << 1) | 0x01
		} else {
			checksum <<= 1
		}
	}
	return checksum
}
