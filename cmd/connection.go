// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/google/gousb"
	"github.com/gorilla/websocket"
	"go.bug.st/serial"
	"golang.org/x/term"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/jphalip/ticlib/pkg/tic"
)

// Session binds an open controller connection to its cleanup. Every
// command opens one session, uses the device, and closes it.
type Session struct {
	Device *tic.Device
	Info   string

	closers []func() error
}

func (s *Session) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// streamPort adapts a byte stream to the exact-length reads the serial
// session layer performs.
type streamPort struct {
	rw io.ReadWriter
}

func (p streamPort) Write(b []byte) error {
	_, err := p.rw.Write(b)
	return err
}

func (p streamPort) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.rw, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// i2cPort adapts a periph I2C device. A write is one transaction; a read
// is one transaction with no preceding write, as the controller expects
// between the address-setting write and the data read.
type i2cPort struct {
	dev *i2c.Dev
}

func (p i2cPort) Write(b []byte) error {
	return p.dev.Tx(b, nil)
}

func (p i2cPort) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := p.dev.Tx(nil, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ErrConnectionClosed is returned when reading from a closed WebSocket connection
var ErrConnectionClosed = fmt.Errorf("websocket connection closed")

// webSocketStream bridges the serial byte stream over a WebSocket
// connection to a remote serial server.
type webSocketStream struct {
	conn      *websocket.Conn
	buf       []byte
	bufOffset int
	closed    bool // Track if connection has failed/closed
}

func (w *webSocketStream) Read(p []byte) (int, error) {
	// Return immediately if connection is known to be closed
	if w.closed {
		return 0, ErrConnectionClosed
	}

	// If we have buffered data, return it first
	if w.bufOffset < len(w.buf) {
		n := copy(p, w.buf[w.bufOffset:])
		w.bufOffset += n
		return n, nil
	}

	// Read next message from WebSocket (non-recursive loop to avoid stack overflow)
	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			// Mark connection as closed to prevent further read attempts
			w.closed = true
			return 0, err
		}

		// The serial bridge only carries binary messages
		if messageType != websocket.BinaryMessage {
			// Skip non-binary messages and continue loop
			continue
		}

		// Buffer the message and return what fits
		w.buf = data
		w.bufOffset = 0
		n := copy(p, w.buf)
		w.bufOffset = n
		return n, nil
	}
}

func (w *webSocketStream) Write(p []byte) (int, error) {
	err := w.conn.WriteMessage(websocket.BinaryMessage, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *webSocketStream) Close() error {
	return w.conn.Close()
}

func serialOptions() tic.SerialOptions {
	opts := tic.SerialOptions{
		CRCForCommands:  crcCommands,
		CRCForResponses: crcResponses,
	}
	if deviceNumber >= 0 {
		n := uint16(deviceNumber)
		opts.DeviceNumber = &n
	}
	return opts
}

// openSerialSession opens a local serial port connection
func openSerialSession() (*Session, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %v", portName, err)
	}

	return &Session{
		Device:  tic.NewDevice(tic.NewSerial(streamPort{rw: port}, serialOptions())),
		Info:    fmt.Sprintf("Serial: %s @ %d baud", portName, baudRate),
		closers: []func() error{port.Close},
	}, nil
}

// openI2CSession opens an I2C bus connection
func openI2CSession() (*Session, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize I2C host: %v", err)
	}

	bus, err := i2creg.Open(i2cBus)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %s: %v", i2cBus, err)
	}
	if i2cAddress < 0 || i2cAddress > 0x7F {
		bus.Close()
		return nil, fmt.Errorf("I2C address %d out of 7-bit range", i2cAddress)
	}

	dev := &i2c.Dev{Bus: bus, Addr: uint16(i2cAddress)}
	return &Session{
		Device:  tic.NewDevice(tic.NewI2C(i2cPort{dev: dev})),
		Info:    fmt.Sprintf("I2C: %s @ 0x%02X", bus, i2cAddress),
		closers: []func() error{bus.Close},
	}, nil
}

// openUSBSession opens a native USB connection, optionally filtered to a
// single product
func openUSBSession() (*Session, error) {
	products := tic.ProductIDs
	if usbProduct != "" {
		id, err := productIDByName(usbProduct)
		if err != nil {
			return nil, err
		}
		products = []uint16{id}
	}

	ctx := gousb.NewContext()
	for _, product := range products {
		dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(tic.VendorID), gousb.ID(product))
		if err != nil {
			ctx.Close()
			return nil, fmt.Errorf("failed to open USB device: %v", err)
		}
		if dev == nil {
			continue
		}
		return &Session{
			Device:  tic.NewDevice(tic.NewUSB(dev)),
			Info:    fmt.Sprintf("USB: %s", tic.ProductName(product)),
			closers: []func() error{ctx.Close, dev.Close},
		}, nil
	}
	ctx.Close()
	return nil, fmt.Errorf("no Tic controller found on USB")
}

func productIDByName(name string) (uint16, error) {
	switch strings.ToLower(name) {
	case "t825":
		return tic.ProductT825, nil
	case "t834":
		return tic.ProductT834, nil
	case "t500":
		return tic.ProductT500, nil
	case "n825":
		return tic.ProductN825, nil
	case "t249":
		return tic.ProductT249, nil
	case "36v4":
		return tic.Product36v4, nil
	default:
		return 0, fmt.Errorf("unknown product %q (use t825, t834, t500, n825, t249, or 36v4)", name)
	}
}

// openWebSocketSession bridges the serial protocol over a WebSocket
// connection with HTTP Basic auth
func openWebSocketSession() (*Session, error) {
	password := ""
	if wsUsername != "" {
		var err error
		password, err = GetPassword()
		if err != nil {
			return nil, err
		}
	}

	// Parse and validate URL
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}

	// Validate scheme
	switch u.Scheme {
	case "ws", "wss":
		// OK
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	// Create dialer with timeout
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	// Configure TLS for wss://
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: wsNoSSLVerify,
		}
	}

	// Build HTTP headers with Basic auth
	headers := http.Header{}
	if wsUsername != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(wsUsername + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	// Connect
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %v", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %v", err)
	}

	stream := &webSocketStream{conn: conn}
	return &Session{
		Device:  tic.NewDevice(tic.NewSerial(streamPort{rw: stream}, serialOptions())),
		Info:    fmt.Sprintf("WebSocket: %s", wsURL),
		closers: []func() error{stream.Close},
	}, nil
}

// GetPassword retrieves password from environment or prompts user
func GetPassword() (string, error) {
	// First check environment variable
	if pw := os.Getenv("TICCTL_PASSWORD"); pw != "" {
		return pw, nil
	}

	// Prompt user for password (hide input)
	fmt.Fprint(os.Stderr, "Password: ")

	// Read password without echo
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if terminal functions fail
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		fmt.Fprintln(os.Stderr) // newline after password
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr) // newline after password
	return string(passwordBytes), nil
}

// OpenSession opens a controller connection based on the config file and
// flags, exactly one backend at a time
func OpenSession() (*Session, error) {
	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg.apply(rootCmd.PersistentFlags())
	}

	selected := 0
	for _, on := range []bool{portName != "", i2cBus != "", useUSB, wsURL != ""} {
		if on {
			selected++
		}
	}
	if selected == 0 {
		return nil, fmt.Errorf("one of --port, --i2c-bus, --usb, or --url must be specified")
	}
	if selected > 1 {
		return nil, fmt.Errorf("only one of --port, --i2c-bus, --usb, and --url may be specified")
	}

	switch {
	case portName != "":
		return openSerialSession()
	case i2cBus != "":
		return openI2CSession()
	case useUSB:
		return openUSBSession()
	default:
		return openWebSocketSession()
	}
}
