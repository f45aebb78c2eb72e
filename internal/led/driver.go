package led

// Driver is where a Buffer sends its pixels. It receives one frame per Show.
type Driver interface {
	// Write takes a frame of R, G, B bytes, three per LED, in strip order.
	Write(rgb []byte) error
	// Close releases the port, if the driver holds one.
	Close() error
}
