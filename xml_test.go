package wintoast

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestEmptyToast(t *testing.T) {
	got := NewToast().XML()
	want := `<toast><visual><binding template="ToastGeneric"/></visual></toast>`
	assert.Equal(t, want, got)
}

func TestThreeTextSlotsInOrder(t *testing.T) {
	toast := NewToast().
		Text1(NewText("Title")).
		Text2(NewText("Body")).
		Text3(NewText("Via SMS").WithPlacement(TextPlacementAttribution))

	got := toast.XML()
	want := `<toast><visual><binding template="ToastGeneric">` +
		`<text id="1">Title</text>` +
		`<text id="2">Body</text>` +
		`<text id="3" placement="attribution">Via SMS</text>` +
		`</binding></visual></toast>`
	assert.Equal(t, want, got)
}

func TestTextPlacementOnlyWhenSet(t *testing.T) {
	got := NewToast().Text1(NewText("Title")).XML()
	assert.NotContains(t, got, "placement")
}

func TestImagesSerializeInSlotIDOrder(t *testing.T) {
	img := func(name string) *Image {
		i, err := NewImageFromPath("/tmp/" + name)
		require.NoError(t, err)
		return i
	}

	// Register out of slot order; output must be ascending by id.
	toast := NewToast().
		Image(3, img("c.png")).
		Image(1, img("a.png")).
		Image(2, img("b.png"))

	got := toast.XML()
	want := `<toast><visual><binding template="ToastGeneric">` +
		`<image id="1" src="file:///tmp/a.png"/>` +
		`<image id="2" src="file:///tmp/b.png"/>` +
		`<image id="3" src="file:///tmp/c.png"/>` +
		`</binding></visual></toast>`
	assert.Equal(t, want, got)
}

func TestImageSlotReplacedNotDuplicated(t *testing.T) {
	first, err := NewImageFromPath("/tmp/first.png")
	require.NoError(t, err)
	second, err := NewImageFromPath("/tmp/second.png")
	require.NoError(t, err)

	got := NewToast().Image(1, first).Image(1, second).XML()
	assert.Equal(t, 1, strings.Count(got, "<image"))
	assert.Contains(t, got, "second.png")
	assert.NotContains(t, got, "first.png")
}

func TestImageAttributes(t *testing.T) {
	img, err := NewImageFromPath("/tmp/chick.jpeg")
	require.NoError(t, err)
	img.WithPlacement(ImagePlacementAppLogoOverride).WithHintCrop(ImageHintCropCircle)

	got := NewToast().Image(2, img).XML()
	assert.Contains(t, got,
		`<image id="2" src="file:///tmp/chick.jpeg" placement="appLogoOverride" hint-crop="circle"/>`)
}

func TestAudioSoundSources(t *testing.T) {
	tests := []struct {
		name  string
		audio *Audio
		want  string
	}{
		{
			name:  "named sound",
			audio: NewAudio(SoundReminder),
			want:  `<audio src="ms-winsoundevent:Notification.Reminder" loop="false" silent="false"/>`,
		},
		{
			name:  "looping sound",
			audio: NewAudio(SoundLoopingAlarm5).WithLooping(),
			want:  `<audio src="ms-winsoundevent:Notification.Looping.Alarm5" loop="true" silent="false"/>`,
		},
		{
			name:  "no sound forces silent",
			audio: NewAudio(SoundNone),
			want:  `<audio loop="false" silent="true"/>`,
		},
		{
			name:  "explicit silent",
			audio: NewAudio(SoundDefault).WithSilent(),
			want:  `<audio src="ms-winsoundevent:Notification.Default" loop="false" silent="true"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewToast().Audio(tt.audio).XML()
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestAudioLoopingSoundNames(t *testing.T) {
	all := map[*Audio]string{
		NewAudio(SoundLoopingAlarm):   "Looping.Alarm",
		NewAudio(SoundLoopingAlarm10): "Looping.Alarm10",
		NewAudio(SoundLoopingCall):    "Looping.Call",
		NewAudio(SoundLoopingCall10):  "Looping.Call10",
	}
	for audio, name := range all {
		got := NewToast().Audio(audio).XML()
		assert.Contains(t, got, fmt.Sprintf(`src="ms-winsoundevent:Notification.%s"`, name))
	}
}

func TestCustomAudioSource(t *testing.T) {
	u := mustParseURL(t, "file:///C:/sounds/ding.wav")
	got := NewToast().Audio(NewAudioFromURL(u).WithLooping()).XML()
	assert.Contains(t, got, `<audio src="file:///C:/sounds/ding.wav" loop="true" silent="false"/>`)
}

func TestActionAttributes(t *testing.T) {
	action := NewAction("Send", "send", "").
		WithActivationType(ActivationTypeBackground).
		WithPlacement(ActionPlacementContextMenu).
		WithButtonStyle(ButtonStyleCritical).
		WithInputID("box")

	got := NewToast().Action(action).XML()
	want := `<actions><action content="Send" arguments="send" type="" ` +
		`activationType="background" placement="contextMenu" ` +
		`hint-buttonStyle="Critical" hint-inputId="box"/></actions>`
	assert.Contains(t, got, want)
}

func TestActionOptionalAttributesOmitted(t *testing.T) {
	got := NewToast().Action(NewAction("Yes", "yes", "")).XML()
	assert.Contains(t, got, `<action content="Yes" arguments="yes" type=""/>`)
	assert.NotContains(t, got, "activationType")
	assert.NotContains(t, got, "hint-buttonStyle")
	assert.NotContains(t, got, "hint-inputId")
}

func TestActionsElementPresence(t *testing.T) {
	// No input and no actions: no actions element at all.
	assert.NotContains(t, NewToast().Text1(NewText("t")).XML(), "<actions>")

	// Input alone is enough.
	withInput := NewToast().Input(NewInput("box", InputTypeText)).XML()
	assert.Contains(t, withInput, "<actions>")
}

func TestInputWithSelectionsInInsertionOrder(t *testing.T) {
	toast := NewToast().
		Input(NewInput("response", InputTypeSelection).
			WithTitle("Select option").
			WithDefaultInput("yes")).
		Selection(NewSelection("yes", "Yes")).
		Selection(NewSelection("no", "No")).
		Selection(NewSelection("maybe", "Maybe later")).
		Action(NewAction("Send", "send_response", "").WithInputID("response"))

	got := toast.XML()
	want := `<actions>` +
		`<input id="response" type="selection" title="Select option" defaultInput="yes">` +
		`<selection id="yes" content="Yes"/>` +
		`<selection id="no" content="No"/>` +
		`<selection id="maybe" content="Maybe later"/>` +
		`</input>` +
		`<action content="Send" arguments="send_response" type="" hint-inputId="response"/>` +
		`</actions>`
	assert.Contains(t, got, want)
}

func TestInputPlaceholder(t *testing.T) {
	got := NewToast().Input(NewInput("box", InputTypeText).WithPlaceholder("Type here...")).XML()
	assert.Contains(t, got, `<input id="box" type="text" placeHolderContent="Type here..."/>`)
}

func TestHeaderAttributes(t *testing.T) {
	toast := NewToast().
		Header(NewHeader("chat-42", "Camping?", "action=openChat&id=42").
			WithActivationType(ActivationTypeProtocol)).
		Text1(NewText("Hello"))

	got := toast.XML()
	want := `<toast><header id="chat-42" title="Camping?" ` +
		`arguments="action=openChat&amp;id=42" activationType="protocol"/>` +
		`<visual>`
	assert.Contains(t, got, want)
}

func TestToastRootAttributes(t *testing.T) {
	toast := NewToast().
		Scenario(ScenarioIncomingCall).
		Launch("app-defined-string").
		Duration(DurationLong).
		UseButtonStyle(true)

	got := toast.XML()
	assert.Contains(t, got,
		`<toast scenario="incomingCall" launch="app-defined-string" duration="long" useButtonStyle="true">`)
}

func TestToastRootAttributesAbsentByDefault(t *testing.T) {
	got := NewToast().Text1(NewText("t")).XML()
	for _, attr := range []string{"scenario", "launch", "duration", "useButtonStyle"} {
		assert.NotContains(t, got, attr)
	}
}

func TestSerializationDoesNotMutateToast(t *testing.T) {
	toast := NewToast().
		Text1(NewText("Title")).
		Action(NewAction("Yes", "yes", ""))

	first := toast.XML()
	second := toast.XML()
	assert.Equal(t, first, second)
}
