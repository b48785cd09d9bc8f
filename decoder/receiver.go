package decoder

// FeedReceiver consumes one byte of the receiver-direction stream (the
// receiving side's flow-control and acknowledgement bytes back to the
// side sending frames),
// covering samples [start, end) of the capture, and emits the matching
// annotation. Unlike FeedSender this direction carries no multi-byte
// structure, so each byte is independent.
func (d *Decoder) FeedReceiver(start, end int, b byte) {
	switch b {
	case 0x11:
		d.emit("receiver", "XON", start, end)
	case 0x13:
		d.emit("receiver", "XOFF", start, end)
	case 0x23:
		d.emit("receiver", "Ack", start, end)
	case 0x3F:
		d.emit("receiver", "NACK", start, end)
	default:
		d.Warn("unexpected receiver byte %#x", b)
		d.emit("receiver-warning", "?", start, end)
	}
}
