package wintoast

import (
	"net/url"

	"github.com/beevik/etree"
)

// Sound identifies one of the system notification sounds. The zero
// value is SoundNone (no sound).
type Sound struct {
	name    string
	looping bool
}

// System sounds.
var (
	SoundNone     = Sound{}
	SoundDefault  = Sound{name: "Default"}
	SoundIM       = Sound{name: "IM"}
	SoundMail     = Sound{name: "Mail"}
	SoundReminder = Sound{name: "Reminder"}
	SoundSMS      = Sound{name: "SMS"}
)

// Looping sounds. These repeat until the toast is dismissed.
var (
	SoundLoopingAlarm   = Sound{name: "Alarm", looping: true}
	SoundLoopingAlarm2  = Sound{name: "Alarm2", looping: true}
	SoundLoopingAlarm3  = Sound{name: "Alarm3", looping: true}
	SoundLoopingAlarm4  = Sound{name: "Alarm4", looping: true}
	SoundLoopingAlarm5  = Sound{name: "Alarm5", looping: true}
	SoundLoopingAlarm6  = Sound{name: "Alarm6", looping: true}
	SoundLoopingAlarm7  = Sound{name: "Alarm7", looping: true}
	SoundLoopingAlarm8  = Sound{name: "Alarm8", looping: true}
	SoundLoopingAlarm9  = Sound{name: "Alarm9", looping: true}
	SoundLoopingAlarm10 = Sound{name: "Alarm10", looping: true}
	SoundLoopingCall    = Sound{name: "Call", looping: true}
	SoundLoopingCall2   = Sound{name: "Call2", looping: true}
	SoundLoopingCall3   = Sound{name: "Call3", looping: true}
	SoundLoopingCall4   = Sound{name: "Call4", looping: true}
	SoundLoopingCall5   = Sound{name: "Call5", looping: true}
	SoundLoopingCall6   = Sound{name: "Call6", looping: true}
	SoundLoopingCall7   = Sound{name: "Call7", looping: true}
	SoundLoopingCall8   = Sound{name: "Call8", looping: true}
	SoundLoopingCall9   = Sound{name: "Call9", looping: true}
	SoundLoopingCall10  = Sound{name: "Call10", looping: true}
)

// Audio is the audio element of a toast.
type Audio struct {
	sound  Sound
	custom string // non-empty when the source is a caller-supplied URL
	loop   bool
	silent bool
}

// NewAudio creates an audio element playing the given system sound.
func NewAudio(sound Sound) *Audio {
	return &Audio{sound: sound}
}

// NewAudioFromURL creates an audio element playing a custom sound
// source, e.g. a file:// URL produced by url over an absolute path.
func NewAudioFromURL(src *url.URL) *Audio {
	return &Audio{custom: src.String()}
}

// WithLooping makes the sound repeat until the toast is dismissed.
func (a *Audio) WithLooping() *Audio {
	a.loop = true
	return a
}

// WithSilent mutes the sound.
func (a *Audio) WithSilent() *Audio {
	a.silent = true
	return a
}

func (a *Audio) writeTo(el *etree.Element) {
	silent := a.silent
	switch {
	case a.custom != "":
		el.CreateAttr("src", a.custom)
	case a.sound == SoundNone:
		// No source to play: force silent regardless of the flag.
		silent = true
	case a.sound.looping:
		el.CreateAttr("src", "ms-winsoundevent:Notification.Looping."+a.sound.name)
	default:
		el.CreateAttr("src", "ms-winsoundevent:Notification."+a.sound.name)
	}
	el.CreateAttr("loop", boolString(a.loop))
	el.CreateAttr("silent", boolString(silent))
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
