package lightify

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	commandAllLightStatus = 0x13
	commandLuminance      = 0x31
	commandOnOff          = 0x32
	commandTemperature    = 0x33
	commandColour         = 0x36
)

const (
	flagLight  = 0x00
	flagGlobal = 0x02
)

// layout of the all light status response
const (
	statusCountOffset = 9
	statusHeaderLen   = 11
	statusRecordLen   = 50
)

var ErrShortFrame = errors.New("short frame")

type lightStatus struct {
	addr   uint64
	name   string
	status Status
}

func buildGlobalCommand(command byte, seq byte, data []byte) []byte {
	buf := make([]byte, 8, 8+len(data))
	binary.LittleEndian.PutUint16(buf, uint16(6+len(data)))
	buf[2] = flagGlobal
	buf[3] = command
	buf[6] = 0x07
	buf[7] = seq
	return append(buf, data...)
}

func buildLightCommand(command byte, seq byte, addr uint64, data []byte) []byte {
	buf := make([]byte, 16, 16+len(data))
	binary.LittleEndian.PutUint16(buf, uint16(14+len(data)))
	buf[2] = flagLight
	buf[3] = command
	buf[6] = 0x07
	buf[7] = seq
	binary.LittleEndian.PutUint64(buf[8:], addr)
	return append(buf, data...)
}

func onOffPayload(on bool) []byte {
	if on {
		return []byte{1}
	}
	return []byte{0}
}

func luminancePayload(lum int, time int) []byte {
	buf := []byte{byte(clamp(lum, 0, 100)), 0, 0}
	binary.LittleEndian.PutUint16(buf[1:], uint16(clamp(time, 0, 0xffff)))
	return buf
}

func temperaturePayload(kelvin int, time int) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint16(buf, uint16(clamp(kelvin, 0, 0xffff)))
	binary.LittleEndian.PutUint16(buf[2:], uint16(clamp(time, 0, 0xffff)))
	return buf
}

func colourPayload(red, green, blue uint8, time int) []byte {
	buf := []byte{red, green, blue, 0xff, 0, 0}
	binary.LittleEndian.PutUint16(buf[4:], uint16(clamp(time, 0, 0xffff)))
	return buf
}

// reads one length prefixed frame, the returned slice includes the length field
func readFrame(r io.Reader) ([]byte, error) {
	head := make([]byte, 2)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, fmt.Errorf("Error reading frame length: %w", err)
	}
	length := binary.LittleEndian.Uint16(head)
	frame := make([]byte, 2+int(length))
	copy(frame, head)
	if _, err := io.ReadFull(r, frame[2:]); err != nil {
		return nil, fmt.Errorf("Error reading frame body (%d bytes): %w", length, err)
	}
	return frame, nil
}

func parseAllLightStatus(frame []byte) ([]lightStatus, error) {
	if len(frame) < statusHeaderLen {
		return nil, fmt.Errorf("Error parsing light status, %d byte header: %w", len(frame), ErrShortFrame)
	}
	count := int(binary.LittleEndian.Uint16(frame[statusCountOffset:]))
	if len(frame) < statusHeaderLen+count*statusRecordLen {
		return nil, fmt.Errorf("Error parsing light status, %d lights in %d bytes: %w", count, len(frame), ErrShortFrame)
	}

	lights := make([]lightStatus, 0, count)
	for i := 0; i < count; i++ {
		pos := statusHeaderLen + i*statusRecordLen
		record := frame[pos : pos+statusRecordLen]

		// uint16 pad, uint64 addr, status[16], name[16], uint64 extra
		stat := record[10:26]
		lights = append(lights, lightStatus{
			addr: binary.LittleEndian.Uint64(record[2:10]),
			name: strings.ReplaceAll(string(record[26:42]), "\x00", ""),
			status: Status{
				On:    stat[8] != 0,
				Lum:   int(stat[9]),
				Temp:  int(binary.LittleEndian.Uint16(stat[10:12])),
				Red:   stat[12],
				Green: stat[13],
				Blue:  stat[14],
			},
		})
	}
	return lights, nil
}

func clamp(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
