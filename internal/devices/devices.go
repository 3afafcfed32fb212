// Package devices maps the host's playback devices to the Wwise audio device
// profile the game should initialize with.
package devices

import (
	"fmt"

	"github.com/gen2brain/malgo"

	"github.com/morrilet/GMTK-2022/wwise"
)

// Device is a playback endpoint reported by miniaudio.
type Device struct {
	ID        string
	Name      string
	IsDefault bool
}

// Enumerate lists the playback devices of the default miniaudio backend.
func Enumerate() ([]Device, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("error initializing audio context: %w", err)
	}
	defer teardown(ctx)

	infos, err := ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("error enumerating playback devices: %w", err)
	}

	devs := make([]Device, 0, len(infos))
	for _, info := range infos {
		devs = append(devs, Device{
			ID:        info.ID.String(),
			Name:      info.Name(),
			IsDefault: info.IsDefault != 0,
		})
	}
	return devs, nil
}

// Resolve picks the System device when anything can play audio and falls
// back to No_Output otherwise, matching what the Wwise sound engine does.
func Resolve(devs []Device) wwise.AudioDeviceID {
	if len(devs) == 0 {
		return wwise.AudioDeviceNoOutput
	}
	return wwise.AudioDeviceSystem
}

// Default returns the device marked as default, or the first one.
func Default(devs []Device) (Device, bool) {
	for _, d := range devs {
		if d.IsDefault {
			return d, true
		}
	}
	if len(devs) > 0 {
		return devs[0], true
	}
	return Device{}, false
}

func teardown(ctx *malgo.AllocatedContext) {
	_ = ctx.Uninit()
	ctx.Free()
}
